package state

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes collection lookup failures.
type ErrorCode string

const (
	// ErrCodeTaskNotFound indicates no task matches the given id or prefix.
	ErrCodeTaskNotFound ErrorCode = "TASK_NOT_FOUND"

	// ErrCodeAmbiguousID indicates an id prefix matches more than one task.
	ErrCodeAmbiguousID ErrorCode = "AMBIGUOUS_ID"

	// ErrCodeDuplicateID indicates an insert would violate id uniqueness.
	ErrCodeDuplicateID ErrorCode = "DUPLICATE_ID"
)

// Error is a structured collection error.
type Error struct {
	Code    ErrorCode
	ID      string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s: %s (id=%s)", e.Code, e.Message, e.ID)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsNotFound reports whether err is a task-not-found error.
func IsNotFound(err error) bool {
	var se *Error
	return errors.As(err, &se) && se.Code == ErrCodeTaskNotFound
}

// IsAmbiguous reports whether err is an ambiguous-prefix error.
func IsAmbiguous(err error) bool {
	var se *Error
	return errors.As(err, &se) && se.Code == ErrCodeAmbiguousID
}

func newNotFoundError(id string) *Error {
	return &Error{Code: ErrCodeTaskNotFound, ID: id, Message: "no task matches"}
}

func newAmbiguousError(id string, count int) *Error {
	return &Error{Code: ErrCodeAmbiguousID, ID: id, Message: fmt.Sprintf("prefix matches %d tasks", count)}
}

func newDuplicateError(id string) *Error {
	return &Error{Code: ErrCodeDuplicateID, ID: id, Message: "task id already present"}
}
