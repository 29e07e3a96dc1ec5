package cache

import (
	"context"
	"testing"
	"time"

	"moodmap/internal/domain/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisCache(t *testing.T) (repository.ResponseCache, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisCache(client, "moodmap:"), server
}

func TestRedisCache_SetGet(t *testing.T) {
	ctx := context.Background()
	c, server := newTestRedisCache(t)

	require.NoError(t, c.Set(ctx, "details:p1", []byte(`{"placeId":"p1"}`), time.Hour))

	got, err := c.Get(ctx, "details:p1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"placeId":"p1"}`, string(got))

	assert.True(t, server.Exists("moodmap:details:p1"))
	assert.Equal(t, time.Hour, server.TTL("moodmap:details:p1"))
}

func TestRedisCache_Expiry(t *testing.T) {
	ctx := context.Background()
	c, server := newTestRedisCache(t)

	require.NoError(t, c.Set(ctx, "geocode:1,2", []byte("Mission, SF"), time.Minute))
	server.FastForward(2 * time.Minute)

	_, err := c.Get(ctx, "geocode:1,2")
	assert.ErrorIs(t, err, repository.ErrCacheMiss)
}

func TestRedisCache_ZeroTTLSkipsWrite(t *testing.T) {
	ctx := context.Background()
	c, server := newTestRedisCache(t)

	require.NoError(t, c.Set(ctx, "k", []byte("v"), 0))
	assert.False(t, server.Exists("moodmap:k"))
}

func TestRedisCache_ServerDown(t *testing.T) {
	ctx := context.Background()
	c, server := newTestRedisCache(t)
	server.Close()

	_, err := c.Get(ctx, "k")
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrCacheMiss)
}
