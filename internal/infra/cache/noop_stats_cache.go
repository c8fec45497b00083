package cache

import (
	"context"

	"storefront/internal/domain/service"
)

// noopStatsCache always misses, so stats are computed on every request.
type noopStatsCache struct{}

// NewNoopStatsCache returns a StatsCache that stores nothing.
func NewNoopStatsCache() service.StatsCache {
	return noopStatsCache{}
}

func (noopStatsCache) Get(context.Context, string, any) (service.Generation, error) {
	return 0, service.ErrCacheMiss
}

func (noopStatsCache) Set(context.Context, service.Generation, string, any) error {
	return nil
}

func (noopStatsCache) Invalidate(context.Context) error {
	return nil
}
