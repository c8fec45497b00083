package cache

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params holds dependencies for the stats cache, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewStatsCache returns a Redis-backed cache when enabled, otherwise a no-op cache.
func NewStatsCache(params Params) service.StatsCache {
	cfg := params.Config.Cache
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Stats cache disabled, computing stats on every request")

		return NewNoopStatsCache()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrapf(err, "failed to connect to redis at %s", cfg.Addr)
			}
			params.Logger.Info("Stats cache connected",
				slog.String("addr", cfg.Addr),
				slog.Duration("ttl", cfg.TTL),
			)

			return nil
		},
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing stats cache")

			return errors.WithStack(client.Close())
		},
	})

	return NewRedisStatsCache(client, cfg.TTL)
}

// Module provides the stats cache FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewStatsCache),
)
