package adapter

import (
	"context"
	"fmt"

	"testforge/internal/cache"
	"testforge/internal/config"
	"testforge/internal/domain"
	"testforge/internal/logger"

	"go.uber.org/zap"
)

// NewCounterStore builds the counter store selected by counterCfg.Backend.
// The returned close function releases the backend's connections. A disabled
// backend yields a nil store. When Redis cannot be reached the process-local
// store is used instead, so counting never takes the service down.
func NewCounterStore(ctx context.Context, counterCfg config.CounterConfig, redisCfg config.RedisConfig) (domain.CounterStore, func() error, error) {
	noop := func() error { return nil }

	switch counterCfg.Backend {
	case config.CounterBackendRedis:
		client, err := cache.NewRedisClient(ctx, redisCfg)
		if err != nil {
			logger.Get().Warn("Redis unavailable, falling back to in-memory counters",
				zap.String("address", redisCfg.Address),
				zap.Error(err),
			)
			return NewMemoryCounterAdapter(), noop, nil
		}
		return NewRedisCounterAdapter(client), client.Close, nil
	case config.CounterBackendMemory, "":
		return NewMemoryCounterAdapter(), noop, nil
	case config.CounterBackendDisabled:
		return nil, noop, nil
	default:
		return nil, noop, fmt.Errorf("unsupported counter backend: %s", counterCfg.Backend)
	}
}
