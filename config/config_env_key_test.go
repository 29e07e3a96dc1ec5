package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"upstream": map[string]any{
			"apiKey":  "",
			"baseUrl": "",
		},
		"maps": map[string]any{
			"browserApiKey": "",
		},
		"cache": map[string]any{
			"redis": map[string]any{
				"addr": "",
			},
		},
		"discovery": map[string]any{
			"sessionTtl": "30m",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "UPSTREAM_APIKEY", want: "upstream.apiKey"},
		{envKey: "UPSTREAM_BASEURL", want: "upstream.baseUrl"},
		{envKey: "MAPS_BROWSERAPIKEY", want: "maps.browserApiKey"},
		{envKey: "CACHE_REDIS_ADDR", want: "cache.redis.addr"},
		{envKey: "DISCOVERY_SESSIONTTL", want: "discovery.sessionTtl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
