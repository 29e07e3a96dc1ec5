package cache

import (
	"context"
	"testing"
	"time"

	"moodmap/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	return f.now
}

func newTestMemoryCache(maxEntries int) (*MemoryCache, *fakeClock) {
	return newTestMemoryCacheWithBudget(maxEntries, 1<<20)
}

func newTestMemoryCacheWithBudget(maxEntries int, maxBytes int64) (*MemoryCache, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	c := NewMemoryCache(maxEntries, maxBytes)
	c.now = clock.Now

	return c, clock
}

func TestMemoryCache_SetGetExpire(t *testing.T) {
	ctx := context.Background()
	c, clock := newTestMemoryCache(10)

	require.NoError(t, c.Set(ctx, "nearby:1", []byte("payload"), time.Minute))

	got, err := c.Get(ctx, "nearby:1")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), got)

	clock.now = clock.now.Add(time.Minute)
	_, err = c.Get(ctx, "nearby:1")
	assert.ErrorIs(t, err, repository.ErrCacheMiss)
	assert.Zero(t, c.Len())
}

func TestMemoryCache_MissAndZeroTTL(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestMemoryCache(10)

	_, err := c.Get(ctx, "absent")
	assert.ErrorIs(t, err, repository.ErrCacheMiss)

	require.NoError(t, c.Set(ctx, "k", []byte("v"), 0))
	assert.Zero(t, c.Len())
}

func TestMemoryCache_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestMemoryCache(10)

	value := []byte("abc")
	require.NoError(t, c.Set(ctx, "k", value, time.Minute))
	value[0] = 'x'

	got, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)

	got[1] = 'y'
	again, _ := c.Get(ctx, "k")
	assert.Equal(t, []byte("abc"), again)
}

func TestMemoryCache_EvictsWhenFull(t *testing.T) {
	ctx := context.Background()
	c, clock := newTestMemoryCache(2)

	require.NoError(t, c.Set(ctx, "short", []byte("1"), time.Second))
	require.NoError(t, c.Set(ctx, "long", []byte("2"), time.Hour))
	require.NoError(t, c.Set(ctx, "new", []byte("3"), time.Hour))

	assert.Equal(t, 2, c.Len())
	_, err := c.Get(ctx, "short")
	assert.ErrorIs(t, err, repository.ErrCacheMiss)

	clock.now = clock.now.Add(time.Minute)
	_, err = c.Get(ctx, "long")
	assert.NoError(t, err)
	_, err = c.Get(ctx, "new")
	assert.NoError(t, err)
}

func TestMemoryCache_ByteBudget(t *testing.T) {
	ctx := context.Background()

	t.Run("evicts soonest expiring until the value fits", func(t *testing.T) {
		c, _ := newTestMemoryCacheWithBudget(100, 10)

		require.NoError(t, c.Set(ctx, "photo:a", []byte("aaaa"), time.Minute))
		require.NoError(t, c.Set(ctx, "photo:b", []byte("bbbb"), time.Hour))
		require.NoError(t, c.Set(ctx, "photo:c", []byte("cccccc"), time.Hour))

		assert.Equal(t, int64(10), c.Size())
		_, err := c.Get(ctx, "photo:a")
		assert.ErrorIs(t, err, repository.ErrCacheMiss)
		_, err = c.Get(ctx, "photo:b")
		assert.NoError(t, err)
		_, err = c.Get(ctx, "photo:c")
		assert.NoError(t, err)
	})

	t.Run("oversized value is not stored and drops the old one", func(t *testing.T) {
		c, _ := newTestMemoryCacheWithBudget(100, 8)

		require.NoError(t, c.Set(ctx, "photo:a", []byte("small"), time.Hour))
		require.NoError(t, c.Set(ctx, "photo:a", []byte("far too large"), time.Hour))

		_, err := c.Get(ctx, "photo:a")
		assert.ErrorIs(t, err, repository.ErrCacheMiss)
		assert.Zero(t, c.Size())
		assert.Zero(t, c.Len())
	})

	t.Run("replacing a key adjusts the size", func(t *testing.T) {
		c, clock := newTestMemoryCacheWithBudget(100, 64)

		require.NoError(t, c.Set(ctx, "k", []byte("12345"), time.Minute))
		require.NoError(t, c.Set(ctx, "k", []byte("12"), time.Minute))
		assert.Equal(t, int64(2), c.Size())

		clock.now = clock.now.Add(time.Minute)
		_, err := c.Get(ctx, "k")
		assert.ErrorIs(t, err, repository.ErrCacheMiss)
		assert.Zero(t, c.Size())
	})
}
