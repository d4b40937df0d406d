package domain

import "strings"

// Branch is a bank branch identified by an opaque ID and a unique business code.
// Branches are never hard-deleted.
type Branch struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// Validate checks if the Branch has valid data.
func (b *Branch) Validate() error {
	if strings.TrimSpace(b.Code) == "" {
		return NewValidationError("code", "cannot be empty", ErrValidation)
	}
	if strings.TrimSpace(b.Name) == "" {
		return NewValidationError("name", "cannot be empty", ErrValidation)
	}
	return nil
}

// ApplyUpdate copies the mutable fields of changes onto b.
// The stored ID and Code are never overwritten.
func (b *Branch) ApplyUpdate(changes *Branch) {
	b.Name = changes.Name
}
