package adapter

import (
	"context"
	"sync"
	"time"

	"testforge/internal/domain"
)

type memoryCounter struct {
	value     int64
	expiresAt time.Time
}

// MemoryCounterAdapter is a process-local domain.CounterStore. It is not
// durable: counts reset on restart and are not shared between processes, so
// it only suits single-process deployments without Redis.
type MemoryCounterAdapter struct {
	mu       sync.Mutex
	counters map[string]*memoryCounter
	now      func() time.Time
}

// NewMemoryCounterAdapter creates an empty in-memory counter store.
func NewMemoryCounterAdapter() *MemoryCounterAdapter {
	return &MemoryCounterAdapter{
		counters: make(map[string]*memoryCounter),
		now:      time.Now,
	}
}

// lookup returns the live counter for key, dropping it if expired. Callers hold mu.
func (m *MemoryCounterAdapter) lookup(key string) (*memoryCounter, bool) {
	c, ok := m.counters[key]
	if !ok {
		return nil, false
	}
	if !c.expiresAt.IsZero() && !m.now().Before(c.expiresAt) {
		delete(m.counters, key)
		return nil, false
	}
	return c, true
}

func (m *MemoryCounterAdapter) Incr(_ context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.lookup(key)
	if !ok {
		c = &memoryCounter{}
		m.counters[key] = c
	}
	c.value++
	return c.value, nil
}

func (m *MemoryCounterAdapter) Get(_ context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.lookup(key)
	if !ok {
		return 0, domain.ErrCounterMiss
	}
	return c.value, nil
}

func (m *MemoryCounterAdapter) MGet(_ context.Context, keys ...string) ([]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	counts := make([]int64, len(keys))
	for i, key := range keys {
		if c, ok := m.lookup(key); ok {
			counts[i] = c.value
		}
	}
	return counts, nil
}

// Expire sets a TTL on an existing key. Like Redis, it is a no-op for missing keys.
func (m *MemoryCounterAdapter) Expire(_ context.Context, key string, expiration time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.lookup(key)
	if !ok {
		return nil
	}
	if expiration <= 0 {
		delete(m.counters, key)
		return nil
	}
	c.expiresAt = m.now().Add(expiration)
	return nil
}

var _ domain.CounterStore = (*MemoryCounterAdapter)(nil)
