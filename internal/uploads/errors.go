package uploads

import (
	"errors"
	"fmt"
	"time"
)

// Stage names a state of one submission moving through the pipeline.
type Stage string

const (
	StageReceived       Stage = "received"
	StageAuthenticated  Stage = "authenticated"
	StageRateChecked    Stage = "rate_checked"
	StageFieldValidated Stage = "field_validated"
	StageFileValidated  Stage = "file_validated"
	StagePersisted      Stage = "persisted"
	StageCommitted      Stage = "committed"
	StageRejected       Stage = "rejected"
	StageRolledBack     Stage = "rolled_back"
)

// Error kinds reported by the pipeline. Match them with errors.Is.
var (
	ErrValidation   = errors.New("uploads: validation failed")
	ErrUnauthorized = errors.New("uploads: unauthorized")
	ErrRateLimited  = errors.New("uploads: rate limited")
	ErrStorage      = errors.New("uploads: storage failure")
)

// ErrPayloadTooLarge is returned by form readers when the request body exceeds its cap.
var ErrPayloadTooLarge = errors.New("uploads: payload too large")

// IntakeError describes why a submission ended in a terminal failure state.
type IntakeError struct {
	Kind       error
	Stage      Stage
	Terminal   Stage
	Message    string
	RetryAfter time.Duration
	cause      error
}

func (e *IntakeError) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("%v at %s: %s", e.Kind, e.Stage, e.Message)
	}
	return fmt.Sprintf("%v at %s: %s: %v", e.Kind, e.Stage, e.Message, e.cause)
}

func (e *IntakeError) Unwrap() error {
	return e.cause
}

func (e *IntakeError) Is(target error) bool {
	return target == e.Kind
}

func rejectAt(stage Stage, kind error, message string, cause error) *IntakeError {
	return &IntakeError{Kind: kind, Stage: stage, Terminal: StageRejected, Message: message, cause: cause}
}

func rollBackAt(stage Stage, message string, cause error) *IntakeError {
	return &IntakeError{Kind: ErrStorage, Stage: stage, Terminal: StageRolledBack, Message: message, cause: cause}
}
