package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/banquito/backoffice/internal/api/shared"
	"github.com/banquito/backoffice/internal/domain"
	"github.com/go-playground/validator/v10"
)

const genericErrorMessage = "An unexpected error occurred"

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	if crudErr, ok := domain.AsCRUDError(err); ok {
		if crudErr.Code >= http.StatusBadRequest && crudErr.Code <= 599 {
			return crudErr.Code
		}
		return http.StatusInternalServerError
	}

	var validationErrs validator.ValidationErrors
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &validationErrs),
		errors.Is(err, shared.ErrInvalidJSON),
		errors.Is(err, shared.ErrEmptyBody),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrAlreadyExists),
		errors.Is(err, domain.ErrAlreadyInactive):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return genericErrorMessage
	}

	if crudErr, ok := domain.AsCRUDError(err); ok {
		if crudErr.Code >= http.StatusInternalServerError || crudErr.Message == "" {
			return genericErrorMessage
		}
		return crudErr.Message
	}

	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrs):
		return SanitizeValidationError(err)
	case errors.Is(err, shared.ErrEmptyBody):
		return "Request body is required"
	case MapErrorToStatusCode(err) == http.StatusBadRequest:
		return "Invalid request format"
	default:
		return genericErrorMessage
	}
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		first := validationErrs[0]
		return fmt.Sprintf("Invalid %s: %s", first.Field(), getValidationTagMessage(first.Tag()))
	}

	errMsg := err.Error()
	if strings.Contains(errMsg, "Field validation") {
		// Example format: "Key: 'BranchDTO.Code' Error:Field validation for 'Code' failed on the 'required' tag"
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				if len(fieldParts) >= 5 {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(fieldParts[3]))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min", "gte":
		return "too small"
	case "max", "lte":
		return "too large"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}

// HandleAPIError writes the response for err. A not-found error answers with
// an empty 404 body; everything else gets a JSON error body with a safe
// message. fallbackMessage replaces the safe message when it is non-empty.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string) {
	status := MapErrorToStatusCode(err)
	if status == http.StatusNotFound {
		shared.RespondWithStatus(w, r, http.StatusNotFound)
		return
	}

	message := GetSafeErrorMessage(err)
	if fallbackMessage != "" && status < http.StatusInternalServerError {
		message = fallbackMessage
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
