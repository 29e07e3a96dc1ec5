package cache

import (
	"io"
	"log/slog"
	"testing"

	"moodmap/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNewResponseCache(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		addr     string
		wantErr  bool
		check    func(t *testing.T, c any)
	}{
		{
			name:     "none",
			provider: config.CacheProviderNone,
			check: func(t *testing.T, c any) {
				assert.IsType(t, noopCache{}, c)
			},
		},
		{
			name:     "memory",
			provider: config.CacheProviderMemory,
			check: func(t *testing.T, c any) {
				memory, ok := c.(*MemoryCache)
				require.True(t, ok)
				assert.Equal(t, 3, memory.maxEntries)
				assert.Equal(t, int64(4096), memory.maxBytes)
			},
		},
		{
			name:     "redis",
			provider: config.CacheProviderRedis,
			addr:     "localhost:6379",
			check: func(t *testing.T, c any) {
				assert.IsType(t, &redisCache{}, c)
			},
		},
		{name: "redis without addr", provider: config.CacheProviderRedis, wantErr: true},
		{name: "unknown", provider: "memcached", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Cache.Provider = tt.provider
			cfg.Cache.Redis.Addr = tt.addr
			cfg.Cache.Memory = config.MemoryCacheConfig{MaxEntries: 3, MaxBytes: 4096}

			c, err := NewResponseCache(CacheParams{
				Lc:     fxtest.NewLifecycle(t),
				Config: cfg,
				Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
			})
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			tt.check(t, c)
		})
	}
}
