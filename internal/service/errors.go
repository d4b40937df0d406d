package service

import (
	"errors"
	"fmt"

	"github.com/banquito/backoffice/internal/domain"
)

// Error handling principles:
// 1. Every service method returns *domain.CRUDError for failures
// 2. The CRUDError code is the status the API layer answers with
// 3. The CRUDError wraps a domain sentinel, and store errors are kept in the chain
// 4. Callers use errors.Is/errors.As to check for specific conditions

// readFailure reports a store failure while listing or looking up entities.
func readFailure(message string, err error) *domain.CRUDError {
	return domain.NewCRUDError(
		domain.CodeInternalError,
		message,
		fmt.Errorf("%w: %w", domain.ErrPersistence, err),
	)
}

// writeFailure reports a store failure while saving an entity.
func writeFailure(message string, err error) *domain.CRUDError {
	return domain.NewCRUDError(
		domain.CodeBadRequest,
		message,
		fmt.Errorf("%w: %w", domain.ErrPersistence, err),
	)
}

// invalidEntity reports an entity that failed domain validation.
func invalidEntity(err error) *domain.CRUDError {
	var validationErr *domain.ValidationError
	message := "invalid entity"
	if errors.As(err, &validationErr) {
		message = validationErr.Error()
	}
	return domain.NewCRUDError(domain.CodeBadRequest, message, err)
}
