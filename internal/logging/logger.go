package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	environmentProduction  = "production"
	environmentDevelopment = "development"
	environmentTest        = "test"
)

// NewLogger returns a zap logger for the runtime environment.
// Production emits JSON at info, development emits console output at debug and
// test stays silent. An explicit level overrides the environment default.
func NewLogger(level, environment string) (*zap.Logger, error) {
	env := strings.ToLower(strings.TrimSpace(environment))
	explicit := strings.TrimSpace(level) != ""

	if env == environmentTest && !explicit {
		return zap.NewNop(), nil
	}

	var cfg zap.Config
	if env == environmentDevelopment {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	if explicit {
		cfg.Level = zap.NewAtomicLevelAt(ParseLevel(level))
	}

	return cfg.Build()
}

// ParseLevel maps a textual level onto a zap level, defaulting to info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "info", "":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
