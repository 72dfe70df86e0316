package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound marks a referenced entity, account or task that does not exist.
// Repositories wrap it so callers can distinguish "already deleted" from bad
// input via errors.Is.
var ErrNotFound = errors.New("not found")

// ValidationError reports malformed or conflicting input to a core operation.
// It is never silently corrected; the reason is meant for the user.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NewValidationError creates a ValidationError with a formatted reason
func NewValidationError(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// UpstreamError reports a failure talking to a backing service (aggregation
// provider or storage). Distinct from validation so the caller can offer a
// retry without implying user error.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// NewUpstreamError wraps err as an upstream failure of the named operation
func NewUpstreamError(op string, err error) error {
	return &UpstreamError{Op: op, Err: err}
}

// IsUpstream reports whether err is (or wraps) an UpstreamError
func IsUpstream(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}
