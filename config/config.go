package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultUpstreamBaseURL   = "https://maps.googleapis.com/maps/api"
	defaultUpstreamTimeout   = 10 * time.Second
	defaultPhotoMaxBytes     = 10 << 20
	defaultCachePrefix       = "moodmap:"
	defaultMemoryMaxEntries  = 10000
	defaultMemoryMaxBytes    = 256 << 20
	defaultNearbyTTL         = 5 * time.Minute
	defaultDetailsTTL        = time.Hour
	defaultGeocodeTTL        = 24 * time.Hour
	defaultPhotoTTL          = 24 * time.Hour
	defaultSessionTTL        = 30 * time.Minute
	defaultMaxSessions       = 10000
	defaultSweepInterval     = time.Minute
	defaultQRCodeSize        = 256
	defaultQRCorrectionLevel = "M"

	// Variable names used by the original serverless deployment.
	legacyServerKeyEnv  = "GOOGLE_MAPS_API_KEY"
	legacyBrowserKeyEnv = "GOOGLE_MAPS_BROWSER_KEY"
)

// Cache providers.
const (
	CacheProviderNone   = "none"
	CacheProviderMemory = "memory"
	CacheProviderRedis  = "redis"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Upstream is the server-side places/geocoding API.
	Upstream UpstreamConfig `json:"upstream" yaml:"upstream"`

	// Maps holds credentials handed to browsers for map rendering.
	Maps MapsConfig `json:"maps" yaml:"maps"`

	Cache CacheConfig `json:"cache" yaml:"cache"`

	// Postgres enables the durable reverse-geocode store when set.
	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Discovery DiscoveryConfig `json:"discovery" yaml:"discovery"`

	// QRCode configuration for place share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// UpstreamConfig defines how the places upstream is reached
type UpstreamConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	APIKey  string        `json:"apiKey" yaml:"apiKey"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// Photos larger than this are rejected
	PhotoMaxBytes int64 `json:"photoMaxBytes" yaml:"photoMaxBytes"`
}

// MapsConfig holds the browser-scoped map key, distinct from the upstream key
type MapsConfig struct {
	BrowserAPIKey string `json:"browserApiKey" yaml:"browserApiKey"`
}

// CacheConfig selects the response cache backend and per-operation freshness
type CacheConfig struct {
	// Provider type: "none", "memory" or "redis"
	Provider string            `json:"provider" yaml:"provider"`
	Prefix   string            `json:"prefix" yaml:"prefix"`
	Memory   MemoryCacheConfig `json:"memory" yaml:"memory"`
	Redis    RedisConfig       `json:"redis" yaml:"redis"`
	TTL      CacheTTL          `json:"ttl" yaml:"ttl"`
}

// MemoryCacheConfig bounds the in-process cache by entry count and total value bytes
type MemoryCacheConfig struct {
	MaxEntries int   `json:"maxEntries" yaml:"maxEntries"`
	MaxBytes   int64 `json:"maxBytes" yaml:"maxBytes"`
}

type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

type CacheTTL struct {
	Nearby  time.Duration `json:"nearby" yaml:"nearby"`
	Details time.Duration `json:"details" yaml:"details"`
	Geocode time.Duration `json:"geocode" yaml:"geocode"`
	Photo   time.Duration `json:"photo" yaml:"photo"`
}

// DiscoveryConfig bounds the server-side discovery sessions
type DiscoveryConfig struct {
	SessionTTL    time.Duration `json:"sessionTtl" yaml:"sessionTtl"`
	MaxSessions   int           `json:"maxSessions" yaml:"maxSessions"`
	SweepInterval time.Duration `json:"sweepInterval" yaml:"sweepInterval"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if cfg.Postgres != nil {
		// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Upstream.BaseURL == "" {
		cfg.Upstream.BaseURL = defaultUpstreamBaseURL
	}
	cfg.Upstream.BaseURL = strings.TrimRight(cfg.Upstream.BaseURL, "/")
	if cfg.Upstream.APIKey == "" {
		cfg.Upstream.APIKey = os.Getenv(legacyServerKeyEnv)
	}
	if cfg.Upstream.Timeout <= 0 {
		cfg.Upstream.Timeout = defaultUpstreamTimeout
	}
	if cfg.Upstream.PhotoMaxBytes <= 0 {
		cfg.Upstream.PhotoMaxBytes = defaultPhotoMaxBytes
	}

	if cfg.Maps.BrowserAPIKey == "" {
		cfg.Maps.BrowserAPIKey = os.Getenv(legacyBrowserKeyEnv)
	}

	if cfg.Cache.Provider == "" {
		cfg.Cache.Provider = CacheProviderMemory
	}
	if cfg.Cache.Prefix == "" {
		cfg.Cache.Prefix = defaultCachePrefix
	}
	if cfg.Cache.Memory.MaxEntries <= 0 {
		cfg.Cache.Memory.MaxEntries = defaultMemoryMaxEntries
	}
	if cfg.Cache.Memory.MaxBytes <= 0 {
		cfg.Cache.Memory.MaxBytes = defaultMemoryMaxBytes
	}
	if cfg.Cache.TTL.Nearby == 0 {
		cfg.Cache.TTL.Nearby = defaultNearbyTTL
	}
	if cfg.Cache.TTL.Details == 0 {
		cfg.Cache.TTL.Details = defaultDetailsTTL
	}
	if cfg.Cache.TTL.Geocode == 0 {
		cfg.Cache.TTL.Geocode = defaultGeocodeTTL
	}
	if cfg.Cache.TTL.Photo == 0 {
		cfg.Cache.TTL.Photo = defaultPhotoTTL
	}

	if cfg.Discovery.SessionTTL <= 0 {
		cfg.Discovery.SessionTTL = defaultSessionTTL
	}
	if cfg.Discovery.MaxSessions <= 0 {
		cfg.Discovery.MaxSessions = defaultMaxSessions
	}
	if cfg.Discovery.SweepInterval <= 0 {
		cfg.Discovery.SweepInterval = defaultSweepInterval
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.QRCode.Size <= 0 {
		cfg.QRCode.Size = defaultQRCodeSize
	}
	if cfg.QRCode.ErrorCorrectionLevel == "" {
		cfg.QRCode.ErrorCorrectionLevel = defaultQRCorrectionLevel
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
