package uploads

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/MarcoPoloResearchLab/tilawah/internal/auth"
	"github.com/MarcoPoloResearchLab/tilawah/internal/recitations"
	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"
)

const (
	messageUnauthorized  = "Unauthorized"
	messageRateLimited   = "Too many uploads. Please try again later."
	messageInvalidForm   = "Invalid form data"
	messageUploadFailure = "Failed to upload recitation"

	sniffLength = 3072
)

// FilePart is the audio attachment of a submission.
type FilePart struct {
	Filename    string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

// Form holds the raw multipart values of a submission.
type Form struct {
	SurahNumber string
	ReciterName string
	Description string
	Audio       *FilePart
}

// FormReader parses the submission body. It is only invoked once the caller
// has been authenticated and admitted by the rate limiter.
type FormReader func() (Form, error)

// Request is one inbound submission.
type Request struct {
	ClientKey  string
	Credential string
	ReadForm   FormReader
}

// Recorder commits the metadata row that takes ownership of a stored file.
type Recorder interface {
	Create(ctx context.Context, input recitations.NewRecitation) (recitations.UserRecitation, error)
}

// PipelineConfig wires the intake pipeline.
type PipelineConfig struct {
	Config   Config
	Limiter  *RateLimiter
	Store    FileStore
	Recorder Recorder
	Clock    func() time.Time
	Logger   *zap.Logger
}

// Pipeline validates submissions, persists the audio and records a pending row.
type Pipeline struct {
	validator *auth.APIKeyValidator
	limiter   *RateLimiter
	fields    *fieldValidator
	files     fileRules
	store     FileStore
	recorder  Recorder
	logger    *zap.Logger
}

// NewPipeline validates configuration and builds a pipeline. A nil limiter is
// replaced by one built from the configured quota.
func NewPipeline(cfg PipelineConfig) (*Pipeline, error) {
	if err := cfg.Config.Validate(); err != nil {
		return nil, err
	}
	if cfg.Store == nil {
		return nil, fmt.Errorf("uploads pipeline: file store required")
	}
	if cfg.Recorder == nil {
		return nil, fmt.Errorf("uploads pipeline: recorder required")
	}
	limiter := cfg.Limiter
	if limiter == nil {
		limiter = NewRateLimiter(cfg.Config.RateLimitMax, cfg.Config.RateLimitWindow, cfg.Clock)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	apiKey := ""
	if cfg.Config.RequireAuth {
		apiKey = cfg.Config.APIKey
	}

	return &Pipeline{
		validator: auth.NewAPIKeyValidator(apiKey),
		limiter:   limiter,
		fields:    newFieldValidator(),
		files:     newFileRules(cfg.Config),
		store:     cfg.Store,
		recorder:  cfg.Recorder,
		logger:    logger,
	}, nil
}

// Limiter exposes the rate limiter so it can be pruned on a schedule.
func (p *Pipeline) Limiter() *RateLimiter {
	return p.limiter
}

// Submit drives one submission to a terminal state. Failures are returned as *IntakeError.
// Once the form has been accepted the caller's cancellation no longer aborts the submission.
func (p *Pipeline) Submit(ctx context.Context, request Request) (recitations.UserRecitation, error) {
	clientKey := normalizeClientKey(request.ClientKey)

	if err := p.validator.Validate(request.Credential); err != nil {
		return p.reject(StageReceived, ErrUnauthorized, messageUnauthorized, err, clientKey)
	}

	decision := p.limiter.Allow(clientKey)
	if !decision.Allowed {
		rejection := rejectAt(StageAuthenticated, ErrRateLimited, messageRateLimited, nil)
		rejection.RetryAfter = decision.RetryAfter
		p.logger.Info("upload rejected",
			zap.String("stage", string(StageAuthenticated)),
			zap.String("client_key", clientKey),
			zap.Int("attempts", decision.Count))
		return recitations.UserRecitation{}, rejection
	}

	if request.ReadForm == nil {
		return p.reject(StageRateChecked, ErrValidation, messageInvalidForm, errors.New("form reader missing"), clientKey)
	}
	form, err := request.ReadForm()
	if err != nil {
		if errors.Is(err, ErrPayloadTooLarge) {
			return p.reject(StageRateChecked, ErrValidation, p.files.sizeMessage, err, clientKey)
		}
		return p.reject(StageRateChecked, ErrValidation, messageInvalidForm, err, clientKey)
	}

	fields, message, err := p.fields.parse(form)
	if err != nil {
		return p.reject(StageRateChecked, ErrValidation, message, err, clientKey)
	}

	if message := p.files.check(form.Audio); message != "" {
		return p.reject(StageFieldValidated, ErrValidation, message, nil, clientKey)
	}

	ctx = context.WithoutCancel(ctx)
	sanitizedName := SanitizeFilename(form.Audio.Filename)

	stored, detectedType, err := p.persist(ctx, form.Audio, sanitizedName)
	if errors.Is(err, ErrFileTooLarge) {
		return p.reject(StageFileValidated, ErrValidation, p.files.sizeMessage, err, clientKey)
	}
	if err != nil {
		p.logger.Error("upload persistence failed",
			zap.String("stage", string(StageFileValidated)),
			zap.String("client_key", clientKey),
			zap.Error(err))
		return recitations.UserRecitation{}, rejectAt(StageFileValidated, ErrStorage, messageUploadFailure, err)
	}

	record, err := p.recorder.Create(ctx, recitations.NewRecitation{
		SurahNumber:  fields.SurahNumber,
		ReciterName:  fields.ReciterName,
		Description:  fields.Description,
		AudioURL:     stored.URL,
		FileName:     sanitizedName,
		FileSize:     stored.Size,
		DetectedType: detectedType,
	})
	if err != nil {
		p.rollback(stored, err)
		return recitations.UserRecitation{}, rollBackAt(StagePersisted, messageUploadFailure, err)
	}

	p.logger.Info("upload committed",
		zap.String("stage", string(StageCommitted)),
		zap.Uint("recitation_id", record.ID),
		zap.Int("surah_number", record.SurahNumber),
		zap.String("stored_path", stored.Path),
		zap.String("detected_type", detectedType),
		zap.Int64("file_size", stored.Size))
	return record, nil
}

func (p *Pipeline) persist(ctx context.Context, audio *FilePart, sanitizedName string) (StoredFile, string, error) {
	if audio.Open == nil {
		return StoredFile{}, "", errors.New("audio content unavailable")
	}
	source, err := audio.Open()
	if err != nil {
		return StoredFile{}, "", fmt.Errorf("open audio: %w", err)
	}
	defer source.Close()

	header := make([]byte, sniffLength)
	headerLength, err := io.ReadFull(source, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return StoredFile{}, "", fmt.Errorf("read audio: %w", err)
	}
	header = header[:headerLength]
	detectedType := mimetype.Detect(header).String()

	stored, err := p.store.Save(ctx, sanitizedName, io.MultiReader(bytes.NewReader(header), source), p.files.maxFileSize)
	if err != nil {
		return StoredFile{}, "", err
	}
	return stored, detectedType, nil
}

func (p *Pipeline) rollback(stored StoredFile, cause error) {
	p.logger.Error("upload commit failed",
		zap.String("stage", string(StagePersisted)),
		zap.String("stored_path", stored.Path),
		zap.Error(cause))
	if err := p.store.Remove(stored); err != nil {
		p.logger.Error("upload rollback failed",
			zap.String("stage", string(StageRolledBack)),
			zap.String("stored_path", stored.Path),
			zap.Error(err))
	}
}

func (p *Pipeline) reject(stage Stage, kind error, message string, cause error, clientKey string) (recitations.UserRecitation, error) {
	p.logger.Info("upload rejected",
		zap.String("stage", string(stage)),
		zap.String("client_key", clientKey),
		zap.String("reason", message))
	return recitations.UserRecitation{}, rejectAt(stage, kind, message, cause)
}
