package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

const testAPIKey = "shared-upload-secret"

func TestAPIKeyValidatorOpenMode(t *testing.T) {
	validator := NewAPIKeyValidator("  ")
	if validator.Enabled() {
		t.Fatalf("expected blank secret to disable validation")
	}
	if err := validator.Validate(""); err != nil {
		t.Fatalf("expected open mode to admit missing key, got %v", err)
	}
	if err := validator.Validate("anything"); err != nil {
		t.Fatalf("expected open mode to admit any key, got %v", err)
	}
}

func TestAPIKeyValidatorValidate(t *testing.T) {
	validator := NewAPIKeyValidator(testAPIKey)
	if !validator.Enabled() {
		t.Fatalf("expected validator to be enabled")
	}

	if err := validator.Validate(testAPIKey); err != nil {
		t.Fatalf("unexpected validation failure: %v", err)
	}
	if err := validator.Validate(""); !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected missing key error, got %v", err)
	}
	if err := validator.Validate(testAPIKey + "x"); !errors.Is(err, ErrInvalidAPIKey) {
		t.Fatalf("expected invalid key error, got %v", err)
	}
}

func TestAPIKeyValidatorValidateRequestUsesHeader(t *testing.T) {
	validator := NewAPIKeyValidator(testAPIKey)

	request := httptest.NewRequest(http.MethodPost, "/recitations", http.NoBody)
	request.Header.Set("x-api-key", testAPIKey)
	if err := validator.ValidateRequest(request); err != nil {
		t.Fatalf("validation failed: %v", err)
	}

	anonymous := httptest.NewRequest(http.MethodPost, "/recitations", http.NoBody)
	if err := validator.ValidateRequest(anonymous); !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected missing key error, got %v", err)
	}
}
