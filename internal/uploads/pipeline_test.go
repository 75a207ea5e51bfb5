package uploads

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/MarcoPoloResearchLab/tilawah/internal/recitations"
	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
)

type pipelineFixture struct {
	pipeline  *Pipeline
	directory string
	clock     *manualClock
	logs      *observer.ObservedLogs
}

type failingRecorder struct {
	calls int
}

func (r *failingRecorder) Create(context.Context, recitations.NewRecitation) (recitations.UserRecitation, error) {
	r.calls++
	return recitations.UserRecitation{}, errors.New("database is locked")
}

type failingRemoveStore struct {
	*DiskStore
}

func (s failingRemoveStore) Remove(StoredFile) error {
	return errors.New("permission denied")
}

func newRecitationsService(t *testing.T) *recitations.Service {
	t.Helper()

	dsn := fmt.Sprintf("file:uploads_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&recitations.UserRecitation{}))

	service, err := recitations.NewService(recitations.ServiceConfig{Database: db})
	require.NoError(t, err)
	return service
}

func newPipelineFixture(t *testing.T, cfg Config, recorder Recorder) pipelineFixture {
	t.Helper()

	directory := t.TempDir() + "/uploads"
	clock := newManualClock()
	store, err := NewDiskStore(DiskStoreConfig{Directory: directory, URLPrefix: "/uploads", Clock: clock.Now})
	require.NoError(t, err)

	if recorder == nil {
		recorder = newRecitationsService(t)
	}

	core, logs := observer.New(zapcore.InfoLevel)
	pipeline, err := NewPipeline(PipelineConfig{
		Config:   cfg,
		Store:    store,
		Recorder: recorder,
		Clock:    clock.Now,
		Logger:   zap.New(core),
	})
	require.NoError(t, err)

	return pipelineFixture{pipeline: pipeline, directory: directory, clock: clock, logs: logs}
}

func mp3Payload(size int) []byte {
	payload := make([]byte, size)
	copy(payload, []byte("ID3\x04\x00\x00\x00\x00\x00\x00"))
	return payload
}

func audioPart(filename, contentType string, payload []byte) *FilePart {
	return &FilePart{
		Filename:    filename,
		ContentType: contentType,
		Size:        int64(len(payload)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(payload)), nil
		},
	}
}

func validForm() Form {
	return Form{
		SurahNumber: "1",
		ReciterName: "Test Reciter",
		Audio:       audioPart("fatiha.mp3", "audio/mpeg", mp3Payload(4096)),
	}
}

func submit(fixture pipelineFixture, form Form) (recitations.UserRecitation, error) {
	return fixture.pipeline.Submit(context.Background(), Request{
		ClientKey: "203.0.113.7",
		ReadForm:  func() (Form, error) { return form, nil },
	})
}

func storedFiles(t *testing.T, directory string) []string {
	t.Helper()

	entries, err := os.ReadDir(directory)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}

func TestSubmitCommitsPendingRecitation(t *testing.T) {
	fixture := newPipelineFixture(t, DefaultConfig(), nil)
	form := validForm()
	form.ReciterName = "  Test Reciter  "
	form.Description = "Recorded at home"

	record, err := submit(fixture, form)
	require.NoError(t, err)

	assert.NotZero(t, record.ID)
	assert.False(t, record.IsApproved)
	assert.Equal(t, 1, record.SurahNumber)
	assert.Equal(t, "Test Reciter", record.ReciterName)
	require.NotNil(t, record.Description)
	assert.Equal(t, "Recorded at home", *record.Description)
	assert.Equal(t, "fatiha.mp3", record.FileName)
	assert.Equal(t, int64(4096), record.FileSize)
	assert.Equal(t, "audio/mpeg", record.DetectedType)
	assert.True(t, strings.HasPrefix(record.AudioURL, "/uploads/"))

	files := storedFiles(t, fixture.directory)
	require.Len(t, files, 1)
	assert.Equal(t, "/uploads/"+files[0], record.AudioURL)
	assert.True(t, strings.HasPrefix(files[0], fmt.Sprintf("%d-", fixture.clock.Now().UnixMilli())))
	assert.Equal(t, 1, fixture.logs.FilterMessage("upload committed").Len())
}

func TestSubmitRejectsInvalidFieldsWithoutWriting(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*Form)
		message string
	}{
		{name: "surah-zero", mutate: func(f *Form) { f.SurahNumber = "0" }, message: messageInvalidSurah},
		{name: "surah-115", mutate: func(f *Form) { f.SurahNumber = "115" }, message: messageInvalidSurah},
		{name: "surah-negative", mutate: func(f *Form) { f.SurahNumber = "-1" }, message: messageInvalidSurah},
		{name: "surah-not-number", mutate: func(f *Form) { f.SurahNumber = "first" }, message: messageInvalidSurah},
		{name: "surah-missing", mutate: func(f *Form) { f.SurahNumber = "" }, message: messageMissingFields},
		{name: "reciter-missing", mutate: func(f *Form) { f.ReciterName = "" }, message: messageMissingFields},
		{name: "reciter-blank", mutate: func(f *Form) { f.ReciterName = "    " }, message: messageInvalidReciter},
		{name: "reciter-too-long", mutate: func(f *Form) { f.ReciterName = strings.Repeat("r", 101) }, message: messageInvalidReciter},
		{name: "description-too-long", mutate: func(f *Form) { f.Description = strings.Repeat("d", 501) }, message: messageDescriptionTooLong},
		{name: "audio-missing", mutate: func(f *Form) { f.Audio = nil }, message: messageMissingAudio},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			fixture := newPipelineFixture(t, DefaultConfig(), nil)
			form := validForm()
			testCase.mutate(&form)

			_, err := submit(fixture, form)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation), "unexpected error %v", err)

			var intakeErr *IntakeError
			require.True(t, errors.As(err, &intakeErr))
			assert.Equal(t, testCase.message, intakeErr.Message)
			assert.Equal(t, StageRejected, intakeErr.Terminal)
			assert.Empty(t, storedFiles(t, fixture.directory))
		})
	}
}

func TestSubmitAcceptsBoundaryFieldValues(t *testing.T) {
	fixture := newPipelineFixture(t, DefaultConfig(), nil)

	form := validForm()
	form.SurahNumber = "114"
	form.ReciterName = strings.Repeat("ع", 100)
	form.Description = strings.Repeat("d", 500)

	record, err := submit(fixture, form)
	require.NoError(t, err)
	assert.Equal(t, 114, record.SurahNumber)
}

func TestSubmitRejectsDisallowedFilesWithoutWriting(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxFileSize = 8 * 1024

	testCases := []struct {
		name  string
		audio *FilePart
	}{
		{name: "type", audio: audioPart("fatiha.mp3", "video/mp4", mp3Payload(1024))},
		{name: "extension", audio: audioPart("fatiha.flac", "audio/mpeg", mp3Payload(1024))},
		{name: "extension-missing", audio: audioPart("fatiha", "audio/mpeg", mp3Payload(1024))},
		{name: "declared-oversize", audio: audioPart("fatiha.mp3", "audio/mpeg", mp3Payload(8*1024+1))},
		{name: "streamed-oversize", audio: &FilePart{
			Filename:    "fatiha.mp3",
			ContentType: "audio/mpeg",
			Size:        1024,
			Open: func() (io.ReadCloser, error) {
				return io.NopCloser(bytes.NewReader(mp3Payload(16 * 1024))), nil
			},
		}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			fixture := newPipelineFixture(t, cfg, nil)
			form := validForm()
			form.Audio = testCase.audio

			_, err := submit(fixture, form)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation), "unexpected error %v", err)
			assert.Empty(t, storedFiles(t, fixture.directory))
		})
	}
}

func TestSubmitAcceptsUppercaseExtensionAndTypeParameters(t *testing.T) {
	fixture := newPipelineFixture(t, DefaultConfig(), nil)
	form := validForm()
	form.Audio = audioPart("Fatiha.MP3", "audio/mpeg; charset=binary", mp3Payload(2048))

	record, err := submit(fixture, form)
	require.NoError(t, err)
	assert.Equal(t, "Fatiha.MP3", record.FileName)
}

func TestSubmitRollsBackFileWhenCommitFails(t *testing.T) {
	recorder := &failingRecorder{}
	fixture := newPipelineFixture(t, DefaultConfig(), recorder)

	_, err := submit(fixture, validForm())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStorage), "unexpected error %v", err)

	var intakeErr *IntakeError
	require.True(t, errors.As(err, &intakeErr))
	assert.Equal(t, StageRolledBack, intakeErr.Terminal)
	assert.Equal(t, StagePersisted, intakeErr.Stage)
	assert.Equal(t, messageUploadFailure, intakeErr.Message)
	assert.Equal(t, 1, recorder.calls)
	assert.Empty(t, storedFiles(t, fixture.directory))
}

func TestSubmitLogsRollbackFailureWithoutChangingError(t *testing.T) {
	directory := t.TempDir()
	store, err := NewDiskStore(DiskStoreConfig{Directory: directory, URLPrefix: "/uploads"})
	require.NoError(t, err)

	core, logs := observer.New(zapcore.InfoLevel)
	pipeline, err := NewPipeline(PipelineConfig{
		Config:   DefaultConfig(),
		Store:    failingRemoveStore{DiskStore: store},
		Recorder: &failingRecorder{},
		Logger:   zap.New(core),
	})
	require.NoError(t, err)

	_, err = pipeline.Submit(context.Background(), Request{ReadForm: func() (Form, error) { return validForm(), nil }})
	assert.True(t, errors.Is(err, ErrStorage), "unexpected error %v", err)
	assert.Equal(t, 1, logs.FilterMessage("upload rollback failed").Len())
}

func TestSubmitRequiresConfiguredAPIKeyBeforeReadingForm(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RequireAuth = true
	cfg.APIKey = "shared-secret"
	fixture := newPipelineFixture(t, cfg, nil)

	formRead := false
	reader := func() (Form, error) {
		formRead = true
		return validForm(), nil
	}

	_, err := fixture.pipeline.Submit(context.Background(), Request{ClientKey: "client", Credential: "wrong", ReadForm: reader})
	assert.True(t, errors.Is(err, ErrUnauthorized), "unexpected error %v", err)
	assert.False(t, formRead)

	_, err = fixture.pipeline.Submit(context.Background(), Request{ClientKey: "client", ReadForm: reader})
	assert.True(t, errors.Is(err, ErrUnauthorized), "unexpected error %v", err)

	_, err = fixture.pipeline.Submit(context.Background(), Request{ClientKey: "client", Credential: "shared-secret", ReadForm: reader})
	require.NoError(t, err)
	assert.True(t, formRead)
}

func TestSubmitEnforcesRateLimitPerClient(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RateLimitMax = 2
	cfg.RateLimitWindow = time.Hour
	fixture := newPipelineFixture(t, cfg, nil)

	for attempt := 0; attempt < 2; attempt++ {
		_, err := submit(fixture, validForm())
		require.NoError(t, err)
	}

	formRead := false
	_, err := fixture.pipeline.Submit(context.Background(), Request{
		ClientKey: "203.0.113.7",
		ReadForm: func() (Form, error) {
			formRead = true
			return validForm(), nil
		},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRateLimited), "unexpected error %v", err)
	assert.False(t, formRead)

	var intakeErr *IntakeError
	require.True(t, errors.As(err, &intakeErr))
	assert.Equal(t, time.Hour, intakeErr.RetryAfter)

	fixture.clock.Advance(time.Hour + time.Second)
	_, err = submit(fixture, validForm())
	require.NoError(t, err)
}

func TestSubmitMapsOversizedBodyToValidation(t *testing.T) {
	fixture := newPipelineFixture(t, DefaultConfig(), nil)

	_, err := fixture.pipeline.Submit(context.Background(), Request{
		ReadForm: func() (Form, error) { return Form{}, fmt.Errorf("multipart: %w", ErrPayloadTooLarge) },
	})
	var intakeErr *IntakeError
	require.True(t, errors.As(err, &intakeErr))
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Equal(t, "File too large. Maximum size is 50MB", intakeErr.Message)
}

func TestNewPipelineRejectsIncompleteConfig(t *testing.T) {
	store, err := NewDiskStore(DiskStoreConfig{Directory: t.TempDir()})
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.RequireAuth = true
	_, err = NewPipeline(PipelineConfig{Config: cfg, Store: store, Recorder: &failingRecorder{}})
	assert.Error(t, err)

	_, err = NewPipeline(PipelineConfig{Config: DefaultConfig(), Store: store})
	assert.Error(t, err)
}
