package database

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MarcoPoloResearchLab/tilawah/internal/catalog"
	"github.com/MarcoPoloResearchLab/tilawah/internal/logging"
	"github.com/MarcoPoloResearchLab/tilawah/internal/recitations"
	sqlite "github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Driver names the SQL engine behind a store handle.
type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// Config describes how to acquire the catalog store.
type Config struct {
	URL            string
	PoolSize       int
	IdleTimeout    time.Duration
	ConnectTimeout time.Duration
	Environment    string
}

// DriverFor selects the engine from a connection string.
func DriverFor(databaseURL string) Driver {
	lowered := strings.ToLower(strings.TrimSpace(databaseURL))
	if strings.HasPrefix(lowered, "postgres://") || strings.HasPrefix(lowered, "postgresql://") {
		return DriverPostgres
	}
	return DriverSQLite
}

// Open establishes the store connection, migrates the schema and applies
// pending named migrations. Callers own the handle and must Close it.
func Open(cfg Config, logger *zap.Logger) (*gorm.DB, error) {
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, fmt.Errorf("database url is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	driver := DriverFor(cfg.URL)
	gormConfig := &gorm.Config{Logger: logging.NewGormLogger(logger, cfg.Environment)}

	var dialector gorm.Dialector
	switch driver {
	case DriverPostgres:
		dialector = postgres.Open(withConnectTimeout(cfg.URL, cfg.ConnectTimeout))
	default:
		dialector = sqlite.Open(cfg.URL)
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	switch driver {
	case DriverPostgres:
		if cfg.PoolSize > 0 {
			sqlDB.SetMaxOpenConns(cfg.PoolSize)
			sqlDB.SetMaxIdleConns(cfg.PoolSize)
		}
		if cfg.IdleTimeout > 0 {
			sqlDB.SetConnMaxIdleTime(cfg.IdleTimeout)
		}
	default:
		sqlDB.SetMaxOpenConns(1)
	}

	if err := migrate(db, logger); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	logger.Info("database initialized", zap.String("driver", string(driver)))
	return db, nil
}

// Close releases the pooled connections behind a store handle.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping verifies that the store answers.
func Ping(ctx context.Context, db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database handle is required")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func migrate(db *gorm.DB, logger *zap.Logger) error {
	models := append(catalog.Models(), &recitations.UserRecitation{}, &migrationRecord{})
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return applyMigrations(db, logger)
}

func withConnectTimeout(databaseURL string, timeout time.Duration) string {
	if timeout <= 0 {
		return databaseURL
	}
	parsed, err := url.Parse(databaseURL)
	if err != nil {
		return databaseURL
	}
	query := parsed.Query()
	if query.Get("connect_timeout") != "" {
		return databaseURL
	}
	seconds := int(timeout / time.Second)
	if seconds < 1 {
		seconds = 1
	}
	query.Set("connect_timeout", strconv.Itoa(seconds))
	parsed.RawQuery = query.Encode()
	return parsed.String()
}
