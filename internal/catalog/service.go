package catalog

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrSurahNotFound indicates the identifier is non-numeric or matches no surah.
	ErrSurahNotFound = errors.New("catalog: surah not found")

	errMissingDatabase = errors.New("database handle is required")
	noOpLogger         = zap.NewNop()
)

// ServiceError carries a dotted failure code alongside the cause.
type ServiceError struct {
	code string
	err  error
}

func (e *ServiceError) Error() string {
	if e.err == nil {
		return e.code
	}
	return fmt.Sprintf("%s: %v", e.code, e.err)
}

func (e *ServiceError) Unwrap() error {
	return e.err
}

func (e *ServiceError) Code() string {
	return e.code
}

const (
	opServiceNew = "catalog.service.new"
	opListSurahs = "catalog.list_surahs"
	opGetSurah   = "catalog.get_surah"
)

func newServiceError(operation, reason string, cause error) error {
	return &ServiceError{code: fmt.Sprintf("%s.%s", operation, reason), err: cause}
}

type ServiceConfig struct {
	Database *gorm.DB
	Logger   *zap.Logger
}

// Service answers read-only catalog queries.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewService(cfg ServiceConfig) (*Service, error) {
	if cfg.Database == nil {
		return nil, newServiceError(opServiceNew, "missing_database", errMissingDatabase)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = noOpLogger
	}
	return &Service{db: cfg.Database, logger: logger}, nil
}

// ListSurahs returns the catalog ordered by surah number.
func (s *Service) ListSurahs(ctx context.Context) ([]Surah, error) {
	if s.db == nil {
		s.logError(opListSurahs, "missing_database", errMissingDatabase)
		return nil, newServiceError(opListSurahs, "missing_database", errMissingDatabase)
	}

	surahs := make([]Surah, 0, MaxSurahNumber)
	if err := s.db.WithContext(ctx).Order("number ASC").Find(&surahs).Error; err != nil {
		s.logError(opListSurahs, "query_failed", err)
		return nil, newServiceError(opListSurahs, "query_failed", err)
	}
	return surahs, nil
}

// GetSurah resolves a raw path identifier. Identifiers that are not integers
// are reported as ErrSurahNotFound, the same as unknown numbers.
func (s *Service) GetSurah(ctx context.Context, rawIdentifier string) (SurahDetail, error) {
	number, err := strconv.Atoi(strings.TrimSpace(rawIdentifier))
	if err != nil {
		return SurahDetail{}, fmt.Errorf("%w: %q is not a surah number", ErrSurahNotFound, rawIdentifier)
	}
	return s.GetSurahByNumber(ctx, number)
}

// GetSurahByNumber returns a surah with its verses in order and its official recitations.
func (s *Service) GetSurahByNumber(ctx context.Context, number int) (SurahDetail, error) {
	if s.db == nil {
		s.logError(opGetSurah, "missing_database", errMissingDatabase)
		return SurahDetail{}, newServiceError(opGetSurah, "missing_database", errMissingDatabase)
	}

	db := s.db.WithContext(ctx)

	var surah Surah
	err := db.Where("number = ?", number).Take(&surah).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return SurahDetail{}, fmt.Errorf("%w: %d", ErrSurahNotFound, number)
	}
	if err != nil {
		s.logError(opGetSurah, "surah_select_failed", err, zap.Int("surah_number", number))
		return SurahDetail{}, newServiceError(opGetSurah, "surah_select_failed", err)
	}

	detail := SurahDetail{
		Surah:       surah,
		Ayahs:       make([]Ayah, 0, surah.NumberOfAyahs),
		Recitations: make([]Recitation, 0),
	}
	if err := db.Where("surah_id = ?", surah.ID).Order("number ASC").Find(&detail.Ayahs).Error; err != nil {
		s.logError(opGetSurah, "ayah_select_failed", err, zap.Int("surah_number", number))
		return SurahDetail{}, newServiceError(opGetSurah, "ayah_select_failed", err)
	}
	if err := db.Where("surah_id = ?", surah.ID).Order("id ASC").Find(&detail.Recitations).Error; err != nil {
		s.logError(opGetSurah, "recitation_select_failed", err, zap.Int("surah_number", number))
		return SurahDetail{}, newServiceError(opGetSurah, "recitation_select_failed", err)
	}

	return detail, nil
}

func (s *Service) loggerOrDefault() *zap.Logger {
	if s == nil || s.logger == nil {
		return noOpLogger
	}
	return s.logger
}

func (s *Service) logError(operation, reason string, err error, fields ...zap.Field) {
	attrs := []zap.Field{
		zap.String("operation", operation),
		zap.String("reason", reason),
	}
	if err != nil {
		attrs = append(attrs, zap.Error(err))
	}
	attrs = append(attrs, fields...)
	s.loggerOrDefault().Error("catalog service error", attrs...)
}
