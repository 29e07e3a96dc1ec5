package cache

import (
	"context"
	"time"

	"moodmap/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

type redisCache struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisCache stores entries under prefix+key with native redis expiry.
func NewRedisCache(client redis.UniversalClient, prefix string) repository.ResponseCache {
	return &redisCache{
		client: client,
		prefix: prefix,
	}
}

func (c *redisCache) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, repository.ErrCacheMiss
	}
	if err != nil {
		return nil, errors.Wrapf(err, "redis get %s", key)
	}

	return value, nil
}

func (c *redisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	if err := c.client.Set(ctx, c.prefix+key, value, ttl).Err(); err != nil {
		return errors.Wrapf(err, "redis set %s", key)
	}

	return nil
}
