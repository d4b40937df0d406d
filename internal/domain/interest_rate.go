package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Rates are stored as NUMERIC(9, 4): at most four decimal places and five
// integer digits.
const rateScale = 4

// maxRate is the smallest rate that no longer fits the stored precision.
var maxRate = decimal.New(1, 5)

// InterestRate is a named rate with a one-way lifecycle: it starts active and
// is inactivated exactly once, at which point End is stamped.
type InterestRate struct {
	ID    int             `json:"id"`
	Name  string          `json:"name"`
	Rate  decimal.Decimal `json:"interest_rate"`
	State State           `json:"state"`
	Start time.Time       `json:"start"`
	End   *time.Time      `json:"end,omitempty"`
}

// Validate checks if the InterestRate has valid data.
func (r *InterestRate) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return NewValidationError("name", "cannot be empty", ErrValidation)
	}
	if r.Rate.IsNegative() {
		return NewValidationError("interest_rate", "cannot be negative", ErrValidation)
	}
	if !r.Rate.Equal(r.Rate.Truncate(rateScale)) {
		return NewValidationError("interest_rate", "cannot have more than 4 decimal places", ErrValidation)
	}
	if r.Rate.GreaterThanOrEqual(maxRate) {
		return NewValidationError("interest_rate", "must be less than 100000", ErrValidation)
	}
	if !r.State.IsValid() {
		return NewValidationError("state", "must be ACT or INA", ErrValidation)
	}
	return nil
}

// IsActive reports whether the rate is in the active state.
func (r *InterestRate) IsActive() bool {
	return r.State == StateActive
}

// ApplyUpdate copies name and rate from changes. State and timestamps are
// only changed through Inactivate.
func (r *InterestRate) ApplyUpdate(changes *InterestRate) {
	r.Name = changes.Name
	r.Rate = changes.Rate
}

// Inactivate moves the rate to the inactive state and stamps End with now.
// Returns ErrAlreadyInactive if the rate was already inactive.
func (r *InterestRate) Inactivate(now time.Time) error {
	if r.State == StateInactive {
		return ErrAlreadyInactive
	}
	r.State = StateInactive
	end := now
	r.End = &end
	return nil
}
