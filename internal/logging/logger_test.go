package logging

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"
)

func TestParseLevel(t *testing.T) {
	testCases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		" INFO ":  zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
		"warning": zapcore.WarnLevel,
		"warn":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"verbose": zapcore.InfoLevel,
	}
	for input, want := range testCases {
		if got := ParseLevel(input); got != want {
			t.Fatalf("ParseLevel(%q) = %s, want %s", input, got, want)
		}
	}
}

func TestNewLoggerRespectsEnvironment(t *testing.T) {
	testLogger, err := NewLogger("", "test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if testLogger.Core().Enabled(zapcore.ErrorLevel) {
		t.Fatalf("expected test environment logger to be silent")
	}

	developmentLogger, err := NewLogger("", "development")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !developmentLogger.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected development logger to enable debug")
	}

	productionLogger, err := NewLogger("", "production")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if productionLogger.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected production logger to suppress debug")
	}

	overridden, err := NewLogger("error", "development")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if overridden.Core().Enabled(zapcore.WarnLevel) {
		t.Fatalf("expected explicit level to override environment default")
	}
}

func TestGormLoggerReportsFailuresButNotMissingRecords(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	gormLogger := NewGormLogger(zap.New(core), "production")

	statement := func() (string, int64) { return "SELECT 1", 0 }
	gormLogger.Trace(context.Background(), time.Now(), statement, gormlogger.ErrRecordNotFound)
	gormLogger.Trace(context.Background(), time.Now(), statement, nil)
	gormLogger.Trace(context.Background(), time.Now(), statement, errors.New("disk I/O error"))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected exactly one log entry, got %d", len(entries))
	}
	if entries[0].Level != zapcore.ErrorLevel {
		t.Fatalf("expected error level, got %s", entries[0].Level)
	}
	if entries[0].Message != "sql statement failed" {
		t.Fatalf("unexpected message %q", entries[0].Message)
	}
}

func TestGormLoggerTracesStatementsInDevelopment(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	gormLogger := NewGormLogger(zap.New(core), "development")

	gormLogger.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 1 }, nil)

	if logs.FilterMessage("sql statement").Len() != 1 {
		t.Fatalf("expected statement trace in development, got %v", logs.All())
	}

	silent := gormLogger.LogMode(gormlogger.Silent)
	silent.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 2", 1 }, errors.New("boom"))
	if logs.Len() != 1 {
		t.Fatalf("expected silent mode to drop traces, got %d entries", logs.Len())
	}
}
