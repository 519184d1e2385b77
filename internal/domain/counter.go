package domain

import (
	"context"
	"time"
)

// CounterError represents an error originating from the counter store.
type CounterError string

func (e CounterError) Error() string {
	return string(e)
}

// ErrCounterMiss is returned by Get when a key does not exist.
const ErrCounterMiss = CounterError("counter: key not found")

// CounterStore is the port for an external store with atomic increments.
type CounterStore interface {
	// Incr atomically increments key by one and returns the new value.
	Incr(ctx context.Context, key string) (int64, error)

	// Get returns the value stored at key, or ErrCounterMiss.
	Get(ctx context.Context, key string) (int64, error)

	// MGet returns one value per key, in order. Missing keys report 0.
	MGet(ctx context.Context, keys ...string) ([]int64, error)

	// Expire sets a time-to-live on key.
	Expire(ctx context.Context, key string, expiration time.Duration) error
}
