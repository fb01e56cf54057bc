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

// ErrForbidden indicates that the user is not allowed to act on the workplace.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidState indicates that the resource is in a state that does not allow the operation,
// e.g. updating or disposing an asset that was already disposed.
var ErrInvalidState = errors.New("invalid state")

// ErrConflict indicates that the resource changed between read and write.
var ErrConflict = errors.New("concurrent modification")

// AppError wraps an infrastructure failure with an HTTP-ish status code.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError. err may be nil.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError returns an error that matches ErrNotFound with errors.Is.
func NewNotFoundError(message string) error {
	return fmt.Errorf("%s: %w", message, ErrNotFound)
}
