package domain

import (
	"errors"
	"fmt"
)

// Status codes carried by CRUDError. They mirror the HTTP codes the API layer
// answers with, but the domain never imports net/http.
const (
	CodeBadRequest    = 400
	CodeNotFound      = 404
	CodeInternalError = 500
)

// Sentinel errors wrapped by CRUDError. Callers match them with errors.Is.
var (
	// ErrNotFound is returned when a lookup by key finds no entity.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned when a create would duplicate an existing entity.
	ErrAlreadyExists = errors.New("already exists")

	// ErrAlreadyInactive is returned when inactivating an entity that is already inactive.
	ErrAlreadyInactive = errors.New("already inactive")

	// ErrValidation is returned when a domain entity fails validation.
	ErrValidation = errors.New("validation failed")

	// ErrPersistence is returned when the store fails to read or write an entity.
	ErrPersistence = errors.New("persistence failure")
)

// CRUDError is the only error kind returned by the domain services. It carries
// a status code and a human-readable message that is safe to show to clients,
// and wraps the underlying cause.
type CRUDError struct {
	Code    int
	Message string
	Err     error
}

// Error implements the error interface for CRUDError.
func (e *CRUDError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%d %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *CRUDError) Unwrap() error {
	return e.Err
}

// NewCRUDError creates a new CRUDError with the given code, message and cause.
func NewCRUDError(code int, message string, err error) *CRUDError {
	return &CRUDError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewNotFoundError returns a 404 CRUDError wrapping ErrNotFound.
func NewNotFoundError(message string) *CRUDError {
	return NewCRUDError(CodeNotFound, message, ErrNotFound)
}

// NewAlreadyExistsError returns a 400 CRUDError wrapping ErrAlreadyExists.
func NewAlreadyExistsError(message string) *CRUDError {
	return NewCRUDError(CodeBadRequest, message, ErrAlreadyExists)
}

// AsCRUDError extracts a CRUDError from an error chain.
func AsCRUDError(err error) (*CRUDError, bool) {
	var crudErr *CRUDError
	if errors.As(err, &crudErr) {
		return crudErr, true
	}
	return nil, false
}

// ValidationError represents a single field that failed validation.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Unwrap returns ErrValidation, or the wrapped error when one was provided.
func (e *ValidationError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrValidation
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}
