package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a branch with the same code).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity violates a storage constraint
	// (check, not null or foreign key).
	ErrInvalidEntity = errors.New("invalid entity")

	// Entity-specific "not found" errors

	// ErrBranchNotFound indicates that the requested branch does not exist in the store.
	ErrBranchNotFound = fmt.Errorf("%w: branch", ErrNotFound)

	// ErrInterestRateNotFound indicates that the requested interest rate does not exist in the store.
	ErrInterestRateNotFound = fmt.Errorf("%w: interest rate", ErrNotFound)

	// ErrProductAccountNotFound indicates that the requested product account does not exist in the store.
	ErrProductAccountNotFound = fmt.Errorf("%w: product account", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrBranchCodeExists indicates that a branch with the given code already exists.
	ErrBranchCodeExists = fmt.Errorf("%w: branch code", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
// Entity-specific errors wrap ErrNotFound, so a single errors.Is suffices.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// StoreError is a custom error type for store-specific errors with additional context.
type StoreError struct {
	Entity    string // The entity type (e.g., "branch", "interest_rate")
	Operation string // The operation that failed (e.g., "save", "find_by_id")
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"%s operation on %s failed: %s: %v",
			e.Operation,
			e.Entity,
			e.Message,
			e.Err,
		)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation, message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
