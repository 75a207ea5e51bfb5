package uploads

import (
	"fmt"
	"strings"
	"time"
)

const (
	defaultRateLimitMax    = 5
	defaultRateLimitWindow = time.Hour
	defaultMaxFileSize     = 50 * 1024 * 1024
)

// Config enumerates the options recognized by the intake pipeline.
type Config struct {
	RequireAuth       bool
	APIKey            string
	RateLimitMax      int
	RateLimitWindow   time.Duration
	MaxFileSize       int64
	AllowedTypes      []string
	AllowedExtensions []string
}

// DefaultConfig returns the open-mode configuration with the stock limits and allow-lists.
func DefaultConfig() Config {
	return Config{
		RateLimitMax:      defaultRateLimitMax,
		RateLimitWindow:   defaultRateLimitWindow,
		MaxFileSize:       defaultMaxFileSize,
		AllowedTypes:      []string{"audio/mpeg", "audio/wav", "audio/ogg", "audio/mp3", "audio/m4a", "audio/aac"},
		AllowedExtensions: []string{".mp3", ".wav", ".ogg", ".m4a", ".aac"},
	}
}

// Validate reports configuration that would make the pipeline unusable.
func (c Config) Validate() error {
	if c.RequireAuth && strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("uploads config: api key required when authentication is enabled")
	}
	if c.RateLimitMax <= 0 {
		return fmt.Errorf("uploads config: rate limit max must be positive")
	}
	if c.RateLimitWindow <= 0 {
		return fmt.Errorf("uploads config: rate limit window must be positive")
	}
	if c.MaxFileSize <= 0 {
		return fmt.Errorf("uploads config: max file size must be positive")
	}
	if len(c.AllowedTypes) == 0 {
		return fmt.Errorf("uploads config: allowed types must not be empty")
	}
	if len(c.AllowedExtensions) == 0 {
		return fmt.Errorf("uploads config: allowed extensions must not be empty")
	}
	return nil
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, value := range values {
		set[strings.ToLower(strings.TrimSpace(value))] = struct{}{}
	}
	return set
}
