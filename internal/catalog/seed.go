package catalog

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seed inserts the surah catalog and the verses of Al-Fatiha.
// Rows that already exist are left untouched.
func Seed(ctx context.Context, db *gorm.DB) error {
	if db == nil {
		return errMissingDatabase
	}
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		surahs := make([]Surah, len(seedSurahs))
		copy(surahs, seedSurahs)
		if err := tx.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "number"}}, DoNothing: true}).
			CreateInBatches(&surahs, 50).Error; err != nil {
			return fmt.Errorf("seed surahs: %w", err)
		}

		var opening Surah
		if err := tx.Where("number = ?", MinSurahNumber).Take(&opening).Error; err != nil {
			return fmt.Errorf("seed ayahs: load surah %d: %w", MinSurahNumber, err)
		}

		ayahs := make([]Ayah, len(seedOpeningAyahs))
		for index, ayah := range seedOpeningAyahs {
			ayah.SurahID = opening.ID
			ayahs[index] = ayah
		}
		if err := tx.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "surah_id"}, {Name: "number"}}, DoNothing: true}).
			Create(&ayahs).Error; err != nil {
			return fmt.Errorf("seed ayahs: %w", err)
		}
		return nil
	})
}

// SeedSurahCount reports how many surahs the seed table holds.
func SeedSurahCount() int {
	return len(seedSurahs)
}
