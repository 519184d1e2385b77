package adapter

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"testforge/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisCounterAdapter implements domain.CounterStore on top of Redis INCR/GET/MGET/EXPIRE.
type RedisCounterAdapter struct {
	client *redis.Client
}

// NewRedisCounterAdapter creates a new instance of RedisCounterAdapter.
// It expects a connected *redis.Client.
func NewRedisCounterAdapter(client *redis.Client) domain.CounterStore {
	return &RedisCounterAdapter{client: client}
}

// Incr implements CounterStore.Incr
func (r *RedisCounterAdapter) Incr(ctx context.Context, key string) (int64, error) {
	return r.client.Incr(ctx, key).Result()
}

// Get retrieves a counter value. It translates redis.Nil to domain.ErrCounterMiss.
func (r *RedisCounterAdapter) Get(ctx context.Context, key string) (int64, error) {
	val, err := r.client.Get(ctx, key).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, domain.ErrCounterMiss
		}
		return 0, err
	}
	return val, nil
}

// MGet implements CounterStore.MGet. Missing keys report 0.
func (r *RedisCounterAdapter) MGet(ctx context.Context, keys ...string) ([]int64, error) {
	if len(keys) == 0 {
		return []int64{}, nil
	}

	vals, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	counts := make([]int64, len(keys))
	for i, v := range vals {
		if i >= len(counts) || v == nil {
			continue
		}
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected value type %T for key %s", v, keys[i])
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("non-integer value for key %s: %w", keys[i], err)
		}
		counts[i] = n
	}
	return counts, nil
}

// Expire implements CounterStore.Expire
func (r *RedisCounterAdapter) Expire(ctx context.Context, key string, expiration time.Duration) error {
	return r.client.Expire(ctx, key, expiration).Err()
}

// Ping checks the health of the Redis server.
func (r *RedisCounterAdapter) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
