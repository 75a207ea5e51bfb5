package recitations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
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
	opServiceNew    = "recitations.service.new"
	opCreate        = "recitations.create"
	opListApproved  = "recitations.list_approved"
	opListPending   = "recitations.list_pending"
	opSetApproval   = "recitations.set_approval"
	opRecordPlay    = "recitations.record_play"
	opDelete        = "recitations.delete"
	opReferenceFind = "recitations.references_audio"
)

func newServiceError(operation, reason string, cause error) error {
	return &ServiceError{code: fmt.Sprintf("%s.%s", operation, reason), err: cause}
}

type ServiceConfig struct {
	Database *gorm.DB
	Clock    func() time.Time
	Logger   *zap.Logger
}

// Service owns the persisted user recitations.
type Service struct {
	db     *gorm.DB
	clock  func() time.Time
	logger *zap.Logger
}

func NewService(cfg ServiceConfig) (*Service, error) {
	if cfg.Database == nil {
		return nil, newServiceError(opServiceNew, "missing_database", errMissingDatabase)
	}
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	logger := cfg.Logger
	if logger == nil {
		logger = noOpLogger
	}
	return &Service{db: cfg.Database, clock: clock, logger: logger}, nil
}

// Create records a new submission. The row always starts unapproved with no plays.
func (s *Service) Create(ctx context.Context, input NewRecitation) (UserRecitation, error) {
	if s.db == nil {
		s.logError(opCreate, "missing_database", errMissingDatabase)
		return UserRecitation{}, newServiceError(opCreate, "missing_database", errMissingDatabase)
	}

	now := s.clock().UTC()
	record := UserRecitation{
		SurahNumber:  input.SurahNumber,
		ReciterName:  input.ReciterName,
		Description:  input.Description,
		AudioURL:     input.AudioURL,
		FileName:     input.FileName,
		FileSize:     input.FileSize,
		DetectedType: input.DetectedType,
		IsApproved:   false,
		PlayCount:    0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		s.logError(opCreate, "insert_failed", err,
			zap.Int("surah_number", input.SurahNumber),
			zap.String("audio_url", input.AudioURL))
		return UserRecitation{}, newServiceError(opCreate, "insert_failed", err)
	}
	return record, nil
}

// ListApproved returns the publicly visible recitations, newest first.
func (s *Service) ListApproved(ctx context.Context) ([]UserRecitation, error) {
	return s.listByApproval(ctx, opListApproved, true)
}

// ListPending returns recitations waiting for moderation, newest first.
func (s *Service) ListPending(ctx context.Context) ([]UserRecitation, error) {
	return s.listByApproval(ctx, opListPending, false)
}

func (s *Service) listByApproval(ctx context.Context, operation string, approved bool) ([]UserRecitation, error) {
	if s.db == nil {
		s.logError(operation, "missing_database", errMissingDatabase)
		return nil, newServiceError(operation, "missing_database", errMissingDatabase)
	}

	records := make([]UserRecitation, 0)
	if err := s.db.WithContext(ctx).
		Where("is_approved = ?", approved).
		Order("created_at DESC").
		Order("id DESC").
		Find(&records).Error; err != nil {
		s.logError(operation, "query_failed", err)
		return nil, newServiceError(operation, "query_failed", err)
	}
	return records, nil
}

// SetApproval flips the moderation flag and returns the updated row.
func (s *Service) SetApproval(ctx context.Context, id uint, approved bool) (UserRecitation, error) {
	if s.db == nil {
		s.logError(opSetApproval, "missing_database", errMissingDatabase)
		return UserRecitation{}, newServiceError(opSetApproval, "missing_database", errMissingDatabase)
	}

	var record UserRecitation
	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&UserRecitation{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"is_approved": approved,
				"updated_at":  s.clock().UTC(),
			})
		if result.Error != nil {
			s.logError(opSetApproval, "update_failed", result.Error, zap.Uint("recitation_id", id))
			return newServiceError(opSetApproval, "update_failed", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: %d", ErrRecitationNotFound, id)
		}
		return tx.Where("id = ?", id).Take(&record).Error
	})
	if txErr != nil {
		return UserRecitation{}, txErr
	}
	return record, nil
}

// RecordPlay increments the play counter of an approved recitation.
func (s *Service) RecordPlay(ctx context.Context, id uint) (UserRecitation, error) {
	if s.db == nil {
		s.logError(opRecordPlay, "missing_database", errMissingDatabase)
		return UserRecitation{}, newServiceError(opRecordPlay, "missing_database", errMissingDatabase)
	}

	var record UserRecitation
	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&UserRecitation{}).
			Where("id = ? AND is_approved = ?", id, true).
			UpdateColumn("play_count", gorm.Expr("play_count + ?", 1))
		if result.Error != nil {
			s.logError(opRecordPlay, "update_failed", result.Error, zap.Uint("recitation_id", id))
			return newServiceError(opRecordPlay, "update_failed", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: %d", ErrRecitationNotFound, id)
		}
		return tx.Where("id = ?", id).Take(&record).Error
	})
	if txErr != nil {
		return UserRecitation{}, txErr
	}
	return record, nil
}

// Delete removes a recitation row and returns what was removed so the caller
// can dispose of the stored file.
func (s *Service) Delete(ctx context.Context, id uint) (UserRecitation, error) {
	if s.db == nil {
		s.logError(opDelete, "missing_database", errMissingDatabase)
		return UserRecitation{}, newServiceError(opDelete, "missing_database", errMissingDatabase)
	}

	var record UserRecitation
	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("id = ?", id).Take(&record).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: %d", ErrRecitationNotFound, id)
		}
		if err != nil {
			s.logError(opDelete, "select_failed", err, zap.Uint("recitation_id", id))
			return newServiceError(opDelete, "select_failed", err)
		}
		if err := tx.Delete(&UserRecitation{}, id).Error; err != nil {
			s.logError(opDelete, "delete_failed", err, zap.Uint("recitation_id", id))
			return newServiceError(opDelete, "delete_failed", err)
		}
		return nil
	})
	if txErr != nil {
		return UserRecitation{}, txErr
	}
	return record, nil
}

// ReferencesAudio reports whether any row points at the given public audio URL.
func (s *Service) ReferencesAudio(ctx context.Context, audioURL string) (bool, error) {
	if s.db == nil {
		return false, newServiceError(opReferenceFind, "missing_database", errMissingDatabase)
	}
	var count int64
	if err := s.db.WithContext(ctx).
		Model(&UserRecitation{}).
		Where("audio_url = ?", audioURL).
		Count(&count).Error; err != nil {
		s.logError(opReferenceFind, "count_failed", err, zap.String("audio_url", audioURL))
		return false, newServiceError(opReferenceFind, "count_failed", err)
	}
	return count > 0, nil
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
	s.loggerOrDefault().Error("recitations service error", attrs...)
}
