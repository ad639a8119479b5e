package apperr

import (
	"errors"
	"fmt"
)

// ErrNotFound marks a missing record on read/update/delete paths.
// CRUD callers are expected to check it with errors.Is and map it to
// a 404 at the boundary instead of treating it as a server fault.
var ErrNotFound = errors.New("record not found")

// ValidationError carries field-level detail for malformed input.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

func NewValidationError(message string, fields map[string]string) *ValidationError {
	return &ValidationError{Message: message, Fields: fields}
}

// UpstreamError wraps a failed call to an external collaborator
// (GitHub API, LinkedIn, Gemini). Status is the upstream HTTP status
// when one was received, 0 otherwise.
type UpstreamError struct {
	Service string
	Status  int
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s upstream failed with status %d", e.Service, e.Status)
	}
	return fmt.Sprintf("%s upstream failed: %v", e.Service, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
