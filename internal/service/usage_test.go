package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"testforge/internal/adapter"
	"testforge/internal/cache"
	"testforge/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 9, 14, 25, 0, 0, time.UTC)

func newTestUsageService(store domain.CounterStore) *usageService {
	svc := NewUsageService(store, 0).(*usageService)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestUsageService_Record(t *testing.T) {
	ctx := context.Background()
	store := new(MockCounterStore)
	svc := newTestUsageService(store)

	hourKey := "tf:generate_quiz_hour:2024-03-09T14"
	store.On("Incr", ctx, "tf:generate_quiz_total").Return(int64(11), nil).Once()
	store.On("Incr", ctx, hourKey).Return(int64(2), nil).Once()
	store.On("Expire", ctx, hourKey, 7*24*time.Hour).Return(nil).Once()

	total, err := svc.Record(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(11), total)
	store.AssertExpectations(t)
}

func TestUsageService_Record_ErrorsAreReported(t *testing.T) {
	ctx := context.Background()
	store := new(MockCounterStore)
	svc := newTestUsageService(store)

	storeErr := errors.New("connection refused")
	store.On("Incr", ctx, "tf:generate_quiz_total").Return(int64(0), storeErr).Once()
	store.On("Incr", ctx, mock.Anything).Return(int64(0), storeErr).Once()

	total, err := svc.Record(ctx)
	assert.ErrorIs(t, err, storeErr)
	assert.Zero(t, total)
	store.AssertNotCalled(t, "Expire", mock.Anything, mock.Anything, mock.Anything)
}

func TestUsageService_Record_Disabled(t *testing.T) {
	svc := newTestUsageService(nil)
	total, err := svc.Record(context.Background())
	assert.NoError(t, err)
	assert.Zero(t, total)
}

func TestUsageService_Snapshot(t *testing.T) {
	ctx := context.Background()
	store := new(MockCounterStore)
	svc := newTestUsageService(store)

	keys := make([]string, 0, StatsWindowHours)
	for _, h := range cache.LastHours(fixedNow, StatsWindowHours) {
		keys = append(keys, cache.GenerationHourKey(h))
	}
	counts := make([]int64, StatsWindowHours)
	counts[0] = 3
	counts[5] = 1
	counts[23] = 4

	store.On("Get", mock.Anything, "tf:generate_quiz_total").Return(int64(42), nil).Once()
	store.On("MGet", mock.Anything, keys).Return(counts, nil).Once()

	stats, err := svc.Snapshot(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(42), stats.TotalGenerations)
	require.Len(t, stats.Last24Hours, 24)
	assert.Equal(t, "2024-03-09T14", stats.Last24Hours[0].Hour)
	assert.Equal(t, int64(3), stats.Last24Hours[0].Count)
	assert.Equal(t, "2024-03-09T09", stats.Last24Hours[5].Hour)
	assert.Equal(t, int64(1), stats.Last24Hours[5].Count)
	assert.Equal(t, "2024-03-08T15", stats.Last24Hours[23].Hour)
	assert.Equal(t, int64(4), stats.Last24Hours[23].Count)
	store.AssertExpectations(t)
}

func TestUsageService_Snapshot_MissingTotal(t *testing.T) {
	ctx := context.Background()
	store := new(MockCounterStore)
	svc := newTestUsageService(store)

	store.On("Get", mock.Anything, "tf:generate_quiz_total").Return(int64(0), domain.ErrCounterMiss).Once()
	store.On("MGet", mock.Anything, mock.Anything).Return(make([]int64, StatsWindowHours), nil).Once()

	stats, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalGenerations)
	assert.Len(t, stats.Last24Hours, 24)
}

func TestUsageService_Snapshot_StoreError(t *testing.T) {
	ctx := context.Background()
	store := new(MockCounterStore)
	svc := newTestUsageService(store)

	store.On("Get", mock.Anything, "tf:generate_quiz_total").Return(int64(0), errors.New("timeout")).Once()

	_, err := svc.Snapshot(ctx)
	assert.Error(t, err)
}

func TestUsageService_Snapshot_Disabled(t *testing.T) {
	stats, err := newTestUsageService(nil).Snapshot(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalGenerations)
	require.Len(t, stats.Last24Hours, 24)
	for _, h := range stats.Last24Hours {
		assert.Zero(t, h.Count)
	}
}

func TestUsageService_WithMemoryStore(t *testing.T) {
	ctx := context.Background()
	svc := newTestUsageService(adapter.NewMemoryCounterAdapter())

	for i := 0; i < 3; i++ {
		_, err := svc.Record(ctx)
		require.NoError(t, err)
	}
	svc.now = func() time.Time { return fixedNow.Add(2 * time.Hour) }
	total, err := svc.Record(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)

	stats, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalGenerations)
	assert.Equal(t, "2024-03-09T16", stats.Last24Hours[0].Hour)
	assert.Equal(t, int64(1), stats.Last24Hours[0].Count)
	assert.Equal(t, int64(0), stats.Last24Hours[1].Count)
	assert.Equal(t, int64(3), stats.Last24Hours[2].Count)
}

func TestUsageService_Snapshot_IgnoresCallerCancellation(t *testing.T) {
	store := new(MockCounterStore)
	svc := newTestUsageService(store)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	live := mock.MatchedBy(func(c context.Context) bool { return c.Err() == nil })
	store.On("Get", live, "tf:generate_quiz_total").Return(int64(5), nil).Once()
	store.On("MGet", live, mock.Anything).Return(make([]int64, StatsWindowHours), nil).Once()

	stats, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), stats.TotalGenerations)
	store.AssertExpectations(t)
}
