package adapter

import (
	"context"
	"sync"
	"testing"
	"time"

	"testforge/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCounterAdapter_IncrAndGet(t *testing.T) {
	store := NewMemoryCounterAdapter()
	ctx := context.Background()

	_, err := store.Get(ctx, "total")
	assert.ErrorIs(t, err, domain.ErrCounterMiss)

	for i := int64(1); i <= 3; i++ {
		val, err := store.Incr(ctx, "total")
		require.NoError(t, err)
		assert.Equal(t, i, val)
	}

	val, err := store.Get(ctx, "total")
	require.NoError(t, err)
	assert.Equal(t, int64(3), val)
}

func TestMemoryCounterAdapter_MGet(t *testing.T) {
	store := NewMemoryCounterAdapter()
	ctx := context.Background()

	_, _ = store.Incr(ctx, "a")
	_, _ = store.Incr(ctx, "a")
	_, _ = store.Incr(ctx, "c")

	vals, err := store.MGet(ctx, "a", "b", "c")
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 0, 1}, vals)
}

func TestMemoryCounterAdapter_Expire(t *testing.T) {
	store := NewMemoryCounterAdapter()
	ctx := context.Background()

	now := time.Date(2024, 3, 9, 14, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	_, _ = store.Incr(ctx, "bucket")
	require.NoError(t, store.Expire(ctx, "bucket", time.Hour))
	require.NoError(t, store.Expire(ctx, "missing", time.Hour))

	now = now.Add(59 * time.Minute)
	val, err := store.Get(ctx, "bucket")
	require.NoError(t, err)
	assert.Equal(t, int64(1), val)

	now = now.Add(time.Minute)
	_, err = store.Get(ctx, "bucket")
	assert.ErrorIs(t, err, domain.ErrCounterMiss)

	val, err = store.Incr(ctx, "bucket")
	require.NoError(t, err)
	assert.Equal(t, int64(1), val, "expired counter restarts from zero")
}

func TestMemoryCounterAdapter_ConcurrentIncr(t *testing.T) {
	store := NewMemoryCounterAdapter()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = store.Incr(ctx, "total")
		}()
	}
	wg.Wait()

	val, err := store.Get(ctx, "total")
	require.NoError(t, err)
	assert.Equal(t, int64(50), val)
}
