// Package cache provides the response cache backends used in front of the places upstream.
package cache

import (
	"context"
	"log/slog"
	"time"

	"moodmap/config"
	"moodmap/internal/domain/lifecycle"
	"moodmap/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// noopCache never stores anything, so every Get misses.
type noopCache struct{}

func (noopCache) Get(context.Context, string) ([]byte, error) {
	return nil, repository.ErrCacheMiss
}

func (noopCache) Set(context.Context, string, []byte, time.Duration) error {
	return nil
}

// CacheParams holds dependencies for ResponseCache, injected by Fx
type CacheParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewResponseCache creates a ResponseCache based on configuration
func NewResponseCache(params CacheParams) (repository.ResponseCache, error) {
	cfg := params.Config.Cache
	logger := params.Logger

	switch cfg.Provider {
	case "", config.CacheProviderNone:
		logger.Info("Response cache disabled")

		return noopCache{}, nil

	case config.CacheProviderMemory:
		logger.Info("Using in-memory response cache",
			slog.Int("max_entries", cfg.Memory.MaxEntries),
			slog.Int64("max_bytes", cfg.Memory.MaxBytes),
		)

		return NewMemoryCache(cfg.Memory.MaxEntries, cfg.Memory.MaxBytes), nil

	case config.CacheProviderRedis:
		if cfg.Redis.Addr == "" {
			return nil, errors.New("redis address is required for redis provider")
		}
		logger.Info("Using redis response cache",
			slog.String("addr", cfg.Redis.Addr),
			slog.Int("db", cfg.Redis.DB),
		)

		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		params.Lc.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				if err := client.Ping(ctx).Err(); err != nil {
					return errors.Wrap(err, "failed to ping redis")
				}

				return nil
			},
			OnStop: func(context.Context) error {
				logger.Info("Closing redis response cache")

				return client.Close()
			},
		})

		return NewRedisCache(client, cfg.Prefix), nil

	default:
		return nil, errors.Errorf("unknown cache provider: %s", cfg.Provider)
	}
}
