package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/banquito/backoffice/internal/domain"
	"github.com/go-chi/chi/v5"
)

// getPathParam extracts a non-blank string parameter from the URL path.
func getPathParam(r *http.Request, paramName string) (string, error) {
	value := strings.TrimSpace(chi.URLParam(r, paramName))
	if value == "" {
		return "", domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}
	return value, nil
}

// getPathInt extracts a positive integer parameter from the URL path. Values
// must fit the 32-bit INTEGER id columns.
func getPathInt(r *http.Request, paramName string) (int, error) {
	value, err := getPathParam(r, paramName)
	if err != nil {
		return 0, err
	}

	id, err := strconv.ParseInt(value, 10, 32)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(paramName, "has invalid format", domain.ErrValidation)
	}
	return int(id), nil
}
