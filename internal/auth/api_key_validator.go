package auth

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"
)

// HeaderAPIKey carries the shared upload secret.
const HeaderAPIKey = "X-API-Key"

var (
	ErrMissingAPIKey = errors.New("api key validator: key required")
	ErrInvalidAPIKey = errors.New("api key validator: invalid key")
)

// APIKeyValidator checks request credentials against a single operator-configured secret.
// A validator without a secret admits every request.
type APIKeyValidator struct {
	secret []byte
}

// NewAPIKeyValidator constructs a validator. An empty secret enables open mode.
func NewAPIKeyValidator(secret string) *APIKeyValidator {
	trimmed := strings.TrimSpace(secret)
	if trimmed == "" {
		return &APIKeyValidator{}
	}
	return &APIKeyValidator{secret: []byte(trimmed)}
}

// Enabled reports whether a secret is configured.
func (v *APIKeyValidator) Enabled() bool {
	return v != nil && len(v.secret) > 0
}

// Validate compares the presented credential with the configured secret in constant time.
func (v *APIKeyValidator) Validate(credential string) error {
	if !v.Enabled() {
		return nil
	}
	if credential == "" {
		return ErrMissingAPIKey
	}
	if subtle.ConstantTimeCompare([]byte(credential), v.secret) != 1 {
		return ErrInvalidAPIKey
	}
	return nil
}

// CredentialFromRequest extracts the API key header from the request.
func CredentialFromRequest(r *http.Request) string {
	if r == nil {
		return ""
	}
	return strings.TrimSpace(r.Header.Get(HeaderAPIKey))
}

// ValidateRequest extracts the API key header from the request and validates it.
func (v *APIKeyValidator) ValidateRequest(r *http.Request) error {
	return v.Validate(CredentialFromRequest(r))
}
