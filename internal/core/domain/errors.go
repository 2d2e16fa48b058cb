package domain

import (
	"errors"
	"fmt"
)

var ErrNotAuthenticated = errors.New("not authenticated")
var ErrForbidden = errors.New("access forbidden")

// ErrMalformedResponse means the remote API answered with a success status but
// no known envelope shape yielded a complete credential pair. Kept distinct
// from TransportError so callers can message "server misbehaving" rather than
// "credentials rejected".
var ErrMalformedResponse = errors.New("malformed upstream response")

// ValidationError is a client-side rejection that never reaches the network,
// e.g. an empty email or a register confirm-password mismatch.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// TransportError is a non-2xx answer from the remote API. Message carries the
// server-provided body text when there was one.
type TransportError struct {
	StatusCode int
	Message    string
}

func (e *TransportError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("upstream returned status %d", e.StatusCode)
}
