package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"testforge/internal/cache"
	"testforge/internal/domain"
	"testforge/internal/dto"
	"testforge/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	// StatsWindowHours is the number of hourly buckets reported by Snapshot.
	StatsWindowHours = 24

	DefaultBucketTTL = 7 * 24 * time.Hour
)

// UsageService records generation counts and reports rolling statistics.
type UsageService interface {
	// Record increments the total counter and the current UTC hour bucket,
	// returning the new total.
	Record(ctx context.Context) (int64, error)
	// Snapshot returns the total and the last StatsWindowHours hour buckets,
	// newest first.
	Snapshot(ctx context.Context) (*dto.StatsResponse, error)
}

type usageService struct {
	store     domain.CounterStore
	bucketTTL time.Duration
	now       func() time.Time
	sfGroup   singleflight.Group
}

// NewUsageService creates a UsageService over store. A nil store disables
// counting: Record is a no-op and Snapshot reports zeros.
func NewUsageService(store domain.CounterStore, bucketTTL time.Duration) UsageService {
	if bucketTTL <= 0 {
		bucketTTL = DefaultBucketTTL
	}
	if store == nil {
		logger.Get().Warn("UsageService initialized without a counter store. Usage will not be recorded.")
	}
	return &usageService{
		store:     store,
		bucketTTL: bucketTTL,
		now:       time.Now,
	}
}

func (s *usageService) Record(ctx context.Context) (int64, error) {
	if s.store == nil {
		return 0, nil
	}

	now := s.now()
	var errs []error

	total, err := s.store.Incr(ctx, cache.GenerationTotalKey())
	if err != nil {
		errs = append(errs, fmt.Errorf("increment total: %w", err))
	}

	hourKey := cache.GenerationHourKey(now)
	if _, err := s.store.Incr(ctx, hourKey); err != nil {
		errs = append(errs, fmt.Errorf("increment %s: %w", hourKey, err))
	} else if err := s.store.Expire(ctx, hourKey, s.bucketTTL); err != nil {
		errs = append(errs, fmt.Errorf("expire %s: %w", hourKey, err))
	}

	return total, errors.Join(errs...)
}

func (s *usageService) Snapshot(ctx context.Context) (*dto.StatsResponse, error) {
	res, err, _ := s.sfGroup.Do("snapshot", func() (interface{}, error) {
		// Shared by every waiter; one caller cancelling must not fail the rest.
		return s.snapshot(context.WithoutCancel(ctx))
	})
	if err != nil {
		return nil, err
	}

	shared := res.(*dto.StatsResponse)
	out := &dto.StatsResponse{
		TotalGenerations: shared.TotalGenerations,
		Last24Hours:      make([]dto.HourCount, len(shared.Last24Hours)),
	}
	copy(out.Last24Hours, shared.Last24Hours)
	return out, nil
}

func (s *usageService) snapshot(ctx context.Context) (*dto.StatsResponse, error) {
	hours := cache.LastHours(s.now(), StatsWindowHours)
	resp := &dto.StatsResponse{Last24Hours: make([]dto.HourCount, len(hours))}
	for i, h := range hours {
		resp.Last24Hours[i] = dto.HourCount{Hour: cache.HourBucket(h)}
	}

	if s.store == nil {
		return resp, nil
	}

	total, err := s.store.Get(ctx, cache.GenerationTotalKey())
	if err != nil && !errors.Is(err, domain.ErrCounterMiss) {
		return nil, fmt.Errorf("read total: %w", err)
	}
	resp.TotalGenerations = nonNegative(total)

	keys := make([]string, len(hours))
	for i, h := range hours {
		keys[i] = cache.GenerationHourKey(h)
	}
	counts, err := s.store.MGet(ctx, keys...)
	if err != nil {
		return nil, fmt.Errorf("read hour buckets: %w", err)
	}
	for i := range resp.Last24Hours {
		if i < len(counts) {
			resp.Last24Hours[i].Count = nonNegative(counts[i])
		}
	}

	logger.Get().Debug("Usage snapshot computed",
		zap.Int64("total_generations", resp.TotalGenerations),
		zap.String("newest_hour", resp.Last24Hours[0].Hour),
	)
	return resp, nil
}

func nonNegative(n int64) int64 {
	if n < 0 {
		return 0
	}
	return n
}
