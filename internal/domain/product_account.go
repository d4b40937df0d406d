package domain

import (
	"strings"
	"time"
)

// ProductAccount is an account product offered by the bank. CreationDate is
// always assigned server-side.
type ProductAccount struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	State        State     `json:"state"`
	CreationDate time.Time `json:"creation_date"`
}

// Validate checks if the ProductAccount has valid data.
func (a *ProductAccount) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return NewValidationError("name", "cannot be empty", ErrValidation)
	}
	if !a.State.IsValid() {
		return NewValidationError("state", "must be ACT or INA", ErrValidation)
	}
	return nil
}

// IsActive reports whether the account product is in the active state.
func (a *ProductAccount) IsActive() bool {
	return a.State == StateActive
}

// ApplyUpdate copies the mutable fields of changes onto a.
func (a *ProductAccount) ApplyUpdate(changes *ProductAccount) {
	a.Name = changes.Name
}

// Inactivate moves the account product to the inactive state.
// Returns ErrAlreadyInactive if it was already inactive.
func (a *ProductAccount) Inactivate() error {
	if a.State == StateInactive {
		return ErrAlreadyInactive
	}
	a.State = StateInactive
	return nil
}
