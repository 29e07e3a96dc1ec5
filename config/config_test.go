package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	t.Setenv(legacyServerKeyEnv, "server-key")
	t.Setenv(legacyBrowserKeyEnv, "browser-key")

	cfg := &Config{}
	cfg.Upstream.BaseURL = "https://example.test/maps/api/"
	cfg.applyDefaults()

	assert.Equal(t, "https://example.test/maps/api", cfg.Upstream.BaseURL)
	assert.Equal(t, "server-key", cfg.Upstream.APIKey)
	assert.Equal(t, "browser-key", cfg.Maps.BrowserAPIKey)
	assert.Equal(t, defaultUpstreamTimeout, cfg.Upstream.Timeout)
	assert.Equal(t, CacheProviderMemory, cfg.Cache.Provider)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL.Nearby)
	assert.Equal(t, time.Hour, cfg.Cache.TTL.Details)
	assert.Equal(t, 24*time.Hour, cfg.Cache.TTL.Geocode)
	assert.Equal(t, defaultMemoryMaxEntries, cfg.Cache.Memory.MaxEntries)
	assert.Equal(t, int64(defaultMemoryMaxBytes), cfg.Cache.Memory.MaxBytes)
	assert.Equal(t, defaultMaxSessions, cfg.Discovery.MaxSessions)
	require.NotNil(t, cfg.QRCode)
	assert.Equal(t, defaultQRCodeSize, cfg.QRCode.Size)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	t.Setenv(legacyServerKeyEnv, "legacy")

	cfg := &Config{}
	cfg.Upstream.APIKey = "configured"
	cfg.Cache.Provider = CacheProviderRedis
	cfg.Cache.TTL.Nearby = time.Minute
	cfg.Cache.Memory.MaxEntries = 50
	cfg.Cache.Memory.MaxBytes = 1 << 20
	cfg.applyDefaults()

	assert.Equal(t, "configured", cfg.Upstream.APIKey)
	assert.Equal(t, CacheProviderRedis, cfg.Cache.Provider)
	assert.Equal(t, time.Minute, cfg.Cache.TTL.Nearby)
	assert.Equal(t, 50, cfg.Cache.Memory.MaxEntries)
	assert.Equal(t, int64(1<<20), cfg.Cache.Memory.MaxBytes)
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yamlBody := []byte("upstream:\n  apiKey: from-yaml\n  timeout: 3s\ncache:\n  ttl:\n    nearby: 2m\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), yamlBody, 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(wd, dir)
	require.NoError(t, err)

	t.Setenv("UPSTREAM_APIKEY", "from-env")

	cfg, err := LoadWithEnv[Config]("test", rel)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Upstream.APIKey)
	assert.Equal(t, 3*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, 2*time.Minute, cfg.Cache.TTL.Nearby)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
