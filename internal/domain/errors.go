package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the domain layer. Callers classify with the Is*
// helpers instead of matching error strings.
var (
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")
	ErrInvalidInput  = errors.New("invalid input")
	ErrConflict      = errors.New("resource conflict")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrInternal      = errors.New("internal error")
)

// DomainError carries a machine code, a user-safe message and the
// wrapped cause.
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// UserMessage returns the message safe to show to API clients; internal
// detail stays in Err.
func (e *DomainError) UserMessage() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewNotFoundError builds the not-found error for a named resource.
func NewNotFoundError(resourceType, name string) error {
	return &DomainError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s '%s' not found", resourceType, name),
		Err:     ErrNotFound,
	}
}

// NewAlreadyExistsError builds the duplicate-resource error.
func NewAlreadyExistsError(resourceType, name string) error {
	return &DomainError{
		Code:    "ALREADY_EXISTS",
		Message: fmt.Sprintf("%s '%s' already exists", resourceType, name),
		Err:     ErrAlreadyExists,
	}
}

// NewInvalidInputError builds a validation error with a caller-facing
// message.
func NewInvalidInputError(message string) error {
	return &DomainError{
		Code:    "INVALID_INPUT",
		Message: message,
		Err:     ErrInvalidInput,
	}
}

// NewConflictError builds a state-conflict error.
func NewConflictError(message string) error {
	return &DomainError{
		Code:    "CONFLICT",
		Message: message,
		Err:     ErrConflict,
	}
}

// NewForbiddenError builds a permission error.
func NewForbiddenError(message string) error {
	return &DomainError{
		Code:    "FORBIDDEN",
		Message: message,
		Err:     ErrForbidden,
	}
}

// NewInternalError wraps an unexpected failure without exposing its
// detail to clients.
func NewInternalError(err error) error {
	return &DomainError{
		Code:    "INTERNAL_ERROR",
		Message: "an internal error occurred",
		Err:     fmt.Errorf("%w: %v", ErrInternal, err),
	}
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden)
}

func IsInternalError(err error) bool {
	return errors.Is(err, ErrInternal)
}
