package task

import (
	"errors"
	"fmt"
)

// ValidationError reports a task field that violates the record invariants.
// It is always recoverable: the caller surfaces the message and keeps going.
type ValidationError struct {
	// Field names the offending field (JSON name, e.g. "title", "weight").
	Field string

	// Message is a human-readable description of the violation.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func newValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
