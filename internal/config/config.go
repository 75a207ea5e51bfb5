package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	envPrefix             = "TILAWAH"
	defaultHTTPAddress    = "0.0.0.0:8080"
	defaultDatabaseURL    = "tilawah.db"
	defaultEnvironment    = EnvironmentDevelopment
	defaultUploadsDir     = "public/uploads"
	defaultUploadsURL     = "/uploads"
	defaultMaxFileSize    = 50 * 1024 * 1024
	defaultRateLimitMax   = 5
	defaultRateLimitSpan  = time.Hour
	defaultOrphanGrace    = time.Hour
	defaultPruneSchedule  = "@every 10m"
	defaultSweepSchedule  = "@every 1h"
	defaultPoolSize       = 10
	defaultIdleTimeout    = 30 * time.Second
	defaultConnectTimeout = 10 * time.Second
)

// Recognized runtime environments.
const (
	EnvironmentProduction  = "production"
	EnvironmentDevelopment = "development"
	EnvironmentTest        = "test"
)

// DefaultAllowedTypes lists the declared media types accepted for uploaded audio.
var DefaultAllowedTypes = []string{
	"audio/mpeg",
	"audio/wav",
	"audio/ogg",
	"audio/mp3",
	"audio/m4a",
	"audio/aac",
}

// DefaultAllowedExtensions lists the lower-cased filename extensions accepted for uploaded audio.
var DefaultAllowedExtensions = []string{".mp3", ".wav", ".ogg", ".m4a", ".aac"}

// CachePolicy describes the freshness advertised to collaborating caches.
type CachePolicy struct {
	MaxAge               time.Duration
	StaleWhileRevalidate time.Duration
}

// AppConfig captures runtime configuration for the API server.
type AppConfig struct {
	HTTPAddress    string
	TrustedProxies []string

	DatabaseURL            string
	DatabasePoolSize       int
	DatabaseIdleTimeout    time.Duration
	DatabaseConnectTimeout time.Duration

	Environment      string
	LogLevel         string
	AnalyticsEnabled bool

	UploadsDir        string
	UploadsURLPrefix  string
	ServeUploads      bool
	UploadAPIKey      string
	MaxFileSize       int64
	AllowedTypes      []string
	AllowedExtensions []string
	RateLimitMax      int
	RateLimitWindow   time.Duration
	OrphanGrace       time.Duration

	PruneSchedule string
	SweepSchedule string

	SurahCache       CachePolicy
	RecitationsCache CachePolicy
}

// NewViper returns a viper instance with defaults and env bindings configured.
func NewViper() *viper.Viper {
	configViper := viper.New()
	ApplyDefaults(configViper)
	return configViper
}

// ApplyDefaults configures defaults and env bindings on the provided viper instance.
func ApplyDefaults(configViper *viper.Viper) {
	configViper.SetEnvPrefix(envPrefix)
	configViper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	configViper.AutomaticEnv()

	configViper.SetDefault("http.address", defaultHTTPAddress)
	configViper.SetDefault("http.trusted_proxies", []string{})
	configViper.SetDefault("database.url", defaultDatabaseURL)
	configViper.SetDefault("database.pool_size", defaultPoolSize)
	configViper.SetDefault("database.idle_timeout", defaultIdleTimeout)
	configViper.SetDefault("database.connect_timeout", defaultConnectTimeout)
	configViper.SetDefault("environment", defaultEnvironment)
	configViper.SetDefault("log.level", "")
	configViper.SetDefault("uploads.dir", defaultUploadsDir)
	configViper.SetDefault("uploads.url_prefix", defaultUploadsURL)
	configViper.SetDefault("uploads.serve", true)
	configViper.SetDefault("uploads.api_key", "")
	configViper.SetDefault("uploads.max_file_size", defaultMaxFileSize)
	configViper.SetDefault("uploads.allowed_types", DefaultAllowedTypes)
	configViper.SetDefault("uploads.allowed_extensions", DefaultAllowedExtensions)
	configViper.SetDefault("uploads.rate_limit.max", defaultRateLimitMax)
	configViper.SetDefault("uploads.rate_limit.window", defaultRateLimitSpan)
	configViper.SetDefault("uploads.orphan_grace", defaultOrphanGrace)
	configViper.SetDefault("scheduler.prune_schedule", defaultPruneSchedule)
	configViper.SetDefault("scheduler.sweep_schedule", defaultSweepSchedule)
	configViper.SetDefault("cache.surahs.max_age", time.Hour)
	configViper.SetDefault("cache.surahs.stale_while_revalidate", 24*time.Hour)
	configViper.SetDefault("cache.recitations.max_age", 5*time.Minute)
	configViper.SetDefault("cache.recitations.stale_while_revalidate", time.Hour)
}

// Load parses runtime configuration from viper.
func Load(configViper *viper.Viper) (AppConfig, error) {
	environment := strings.ToLower(strings.TrimSpace(configViper.GetString("environment")))

	analyticsEnabled := environment == EnvironmentProduction
	if configViper.IsSet("analytics.enabled") {
		analyticsEnabled = configViper.GetBool("analytics.enabled")
	}

	cfg := AppConfig{
		HTTPAddress:            configViper.GetString("http.address"),
		TrustedProxies:         configViper.GetStringSlice("http.trusted_proxies"),
		DatabaseURL:            configViper.GetString("database.url"),
		DatabasePoolSize:       configViper.GetInt("database.pool_size"),
		DatabaseIdleTimeout:    configViper.GetDuration("database.idle_timeout"),
		DatabaseConnectTimeout: configViper.GetDuration("database.connect_timeout"),
		Environment:            environment,
		LogLevel:               configViper.GetString("log.level"),
		AnalyticsEnabled:       analyticsEnabled,
		UploadsDir:             configViper.GetString("uploads.dir"),
		UploadsURLPrefix:       configViper.GetString("uploads.url_prefix"),
		ServeUploads:           configViper.GetBool("uploads.serve"),
		UploadAPIKey:           configViper.GetString("uploads.api_key"),
		MaxFileSize:            configViper.GetInt64("uploads.max_file_size"),
		AllowedTypes:           normalizeList(configViper.GetStringSlice("uploads.allowed_types")),
		AllowedExtensions:      normalizeList(configViper.GetStringSlice("uploads.allowed_extensions")),
		RateLimitMax:           configViper.GetInt("uploads.rate_limit.max"),
		RateLimitWindow:        configViper.GetDuration("uploads.rate_limit.window"),
		OrphanGrace:            configViper.GetDuration("uploads.orphan_grace"),
		PruneSchedule:          configViper.GetString("scheduler.prune_schedule"),
		SweepSchedule:          configViper.GetString("scheduler.sweep_schedule"),
		SurahCache: CachePolicy{
			MaxAge:               configViper.GetDuration("cache.surahs.max_age"),
			StaleWhileRevalidate: configViper.GetDuration("cache.surahs.stale_while_revalidate"),
		},
		RecitationsCache: CachePolicy{
			MaxAge:               configViper.GetDuration("cache.recitations.max_age"),
			StaleWhileRevalidate: configViper.GetDuration("cache.recitations.stale_while_revalidate"),
		},
	}

	if err := cfg.validate(); err != nil {
		return AppConfig{}, err
	}

	return cfg, nil
}

// IsProduction reports whether the service runs in production mode.
func (c AppConfig) IsProduction() bool {
	return c.Environment == EnvironmentProduction
}

func (c AppConfig) validate() error {
	if strings.TrimSpace(c.HTTPAddress) == "" {
		return fmt.Errorf("http.address is required")
	}
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("database.url is required")
	}
	switch c.Environment {
	case EnvironmentProduction, EnvironmentDevelopment, EnvironmentTest:
	default:
		return fmt.Errorf("environment must be one of production, development, test: got %q", c.Environment)
	}
	if strings.TrimSpace(c.UploadsDir) == "" {
		return fmt.Errorf("uploads.dir is required")
	}
	if !strings.HasPrefix(c.UploadsURLPrefix, "/") {
		return fmt.Errorf("uploads.url_prefix must start with /")
	}
	if c.MaxFileSize <= 0 {
		return fmt.Errorf("uploads.max_file_size must be positive")
	}
	if len(c.AllowedTypes) == 0 {
		return fmt.Errorf("uploads.allowed_types must not be empty")
	}
	if len(c.AllowedExtensions) == 0 {
		return fmt.Errorf("uploads.allowed_extensions must not be empty")
	}
	for _, extension := range c.AllowedExtensions {
		if !strings.HasPrefix(extension, ".") {
			return fmt.Errorf("uploads.allowed_extensions entries must start with a dot: %q", extension)
		}
	}
	if c.RateLimitMax <= 0 {
		return fmt.Errorf("uploads.rate_limit.max must be positive")
	}
	if c.RateLimitWindow <= 0 {
		return fmt.Errorf("uploads.rate_limit.window must be positive")
	}
	if c.DatabasePoolSize <= 0 {
		return fmt.Errorf("database.pool_size must be positive")
	}
	return nil
}

func normalizeList(values []string) []string {
	normalized := make([]string, 0, len(values))
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			trimmed := strings.ToLower(strings.TrimSpace(part))
			if trimmed != "" {
				normalized = append(normalized, trimmed)
			}
		}
	}
	return normalized
}
