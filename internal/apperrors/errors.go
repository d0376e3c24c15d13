package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrRemoteUnavailable indicates the remote store could not serve the call
// (network, auth, schema, timeout). Callers are expected to fall back to the
// local cache tier and treat the operation as softly failed.
var ErrRemoteUnavailable = errors.New("remote store unavailable")

// ErrReferentialIntegrity indicates the remote store rejected a write because
// a referenced row is missing. The dual-store layer attempts a one-shot
// repair before letting this degrade to ErrRemoteUnavailable handling.
var ErrReferentialIntegrity = errors.New("referential integrity violation")

// NewValidationError wraps ErrValidation with a human readable reason so
// handlers can match with errors.Is while still surfacing the detail.
func NewValidationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
