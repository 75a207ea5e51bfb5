package catalog

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:catalog_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(Models()...))
	require.NoError(t, Seed(context.Background(), db))

	service, err := NewService(ServiceConfig{Database: db})
	require.NoError(t, err)
	return service, db
}

func TestListSurahsReturnsCatalogInOrder(t *testing.T) {
	service, _ := newTestService(t)

	surahs, err := service.ListSurahs(context.Background())
	require.NoError(t, err)
	require.Len(t, surahs, MaxSurahNumber)

	for index, surah := range surahs {
		assert.Equal(t, index+1, surah.Number)
	}
	assert.Equal(t, "Al-Fatiha", surahs[0].EnglishName)
	assert.Equal(t, RevelationMedinan, surahs[1].RevelationType)
	assert.Equal(t, 286, surahs[1].NumberOfAyahs)
	assert.Equal(t, "An-Nas", surahs[113].EnglishName)
}

func TestGetSurahIncludesOrderedAyahsAndRecitations(t *testing.T) {
	service, db := newTestService(t)

	var opening Surah
	require.NoError(t, db.Where("number = ?", 1).Take(&opening).Error)
	require.NoError(t, db.Create(&Recitation{
		SurahID:     opening.ID,
		ReciterName: "Mishary Rashid Alafasy",
		AudioURL:    "https://cdn.example.com/alafasy/001.mp3",
		Format:      "mp3",
		IsOfficial:  true,
	}).Error)

	detail, err := service.GetSurah(context.Background(), "1")
	require.NoError(t, err)

	assert.Equal(t, "The Opening", detail.EnglishNameTranslation)
	require.Len(t, detail.Ayahs, 7)
	for index, ayah := range detail.Ayahs {
		assert.Equal(t, index+1, ayah.Number)
		assert.Equal(t, opening.ID, ayah.SurahID)
	}
	require.Len(t, detail.Recitations, 1)
	assert.Equal(t, "Mishary Rashid Alafasy", detail.Recitations[0].ReciterName)
}

func TestGetSurahWithoutVersesReturnsEmptyCollections(t *testing.T) {
	service, _ := newTestService(t)

	detail, err := service.GetSurah(context.Background(), "114")
	require.NoError(t, err)
	assert.NotNil(t, detail.Ayahs)
	assert.Empty(t, detail.Ayahs)
	assert.NotNil(t, detail.Recitations)
	assert.Empty(t, detail.Recitations)
}

func TestGetSurahReportsNotFound(t *testing.T) {
	service, _ := newTestService(t)

	for _, identifier := range []string{"0", "115", "-3", "abc", "12abc", ""} {
		t.Run(identifier, func(t *testing.T) {
			_, err := service.GetSurah(context.Background(), identifier)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrSurahNotFound), "unexpected error %v", err)
		})
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	_, db := newTestService(t)

	require.NoError(t, Seed(context.Background(), db))

	var surahCount, ayahCount int64
	require.NoError(t, db.Model(&Surah{}).Count(&surahCount).Error)
	require.NoError(t, db.Model(&Ayah{}).Count(&ayahCount).Error)
	assert.Equal(t, int64(SeedSurahCount()), surahCount)
	assert.Equal(t, int64(7), ayahCount)
}

func TestServiceWithoutDatabaseReportsCode(t *testing.T) {
	service := &Service{}

	_, err := service.ListSurahs(context.Background())
	var serviceErr *ServiceError
	require.True(t, errors.As(err, &serviceErr))
	assert.Equal(t, "catalog.list_surahs.missing_database", serviceErr.Code())
}
