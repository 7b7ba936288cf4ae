package store

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes persistence failures.
type ErrorCode string

const (
	// ErrCodeNotFound indicates no state file exists yet. Callers substitute
	// a default empty state; this is the expected first-run path.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	// ErrCodeCorruptData indicates the state file exists but cannot be
	// parsed into an AppState. Callers must surface this, never silently
	// replace the file with defaults.
	ErrCodeCorruptData ErrorCode = "CORRUPT_DATA"

	// ErrCodeBadFormat indicates a CSV file is missing required columns.
	ErrCodeBadFormat ErrorCode = "BAD_FORMAT"

	// ErrCodeWriteFailed indicates a save or export could not complete.
	// The prior file, if any, is left intact.
	ErrCodeWriteFailed ErrorCode = "WRITE_FAILED"
)

// Error is a structured persistence error.
type Error struct {
	Code    ErrorCode
	Path    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %s (path=%s)", e.Code, msg, e.Path)
	}
	return fmt.Sprintf("%s: %s", e.Code, msg)
}

// Unwrap exposes the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is a missing-state-file error.
func IsNotFound(err error) bool {
	return hasCode(err, ErrCodeNotFound)
}

// IsCorruptData reports whether err is an unparseable-state-file error.
func IsCorruptData(err error) bool {
	return hasCode(err, ErrCodeCorruptData)
}

// IsBadFormat reports whether err is a CSV header error.
func IsBadFormat(err error) bool {
	return hasCode(err, ErrCodeBadFormat)
}

func hasCode(err error, code ErrorCode) bool {
	var se *Error
	return errors.As(err, &se) && se.Code == code
}

func newError(code ErrorCode, path, format string, args ...any) *Error {
	return &Error{Code: code, Path: path, Message: fmt.Sprintf(format, args...)}
}

func wrapError(code ErrorCode, path, message string, err error) *Error {
	return &Error{Code: code, Path: path, Message: message, Err: err}
}
