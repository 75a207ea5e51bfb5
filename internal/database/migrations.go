package database

import (
	"context"
	"errors"
	"time"

	"github.com/MarcoPoloResearchLab/tilawah/internal/catalog"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const migrationSeedSurahCatalog = "2025-01-15_seed_surah_catalog"

type migrationRecord struct {
	Name             string `gorm:"column:name;primaryKey;size:190;not null"`
	AppliedAtSeconds int64  `gorm:"column:applied_at_s;not null"`
}

func (migrationRecord) TableName() string {
	return "db_migrations"
}

type migrationDefinition struct {
	name  string
	apply func(*gorm.DB) error
}

func migrationDefinitions() []migrationDefinition {
	return []migrationDefinition{
		{name: migrationSeedSurahCatalog, apply: seedSurahCatalog},
	}
}

func applyMigrations(db *gorm.DB, logger *zap.Logger) error {
	for _, migration := range migrationDefinitions() {
		var record migrationRecord
		err := db.Where("name = ?", migration.name).Take(&record).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := migration.apply(db); err != nil {
			return err
		}
		appliedAt := time.Now().UTC().Unix()
		if err := db.Create(&migrationRecord{Name: migration.name, AppliedAtSeconds: appliedAt}).Error; err != nil {
			return err
		}
		if logger != nil {
			logger.Info("database migration applied", zap.String("migration", migration.name))
		}
	}
	return nil
}

func seedSurahCatalog(db *gorm.DB) error {
	return catalog.Seed(context.Background(), db)
}
