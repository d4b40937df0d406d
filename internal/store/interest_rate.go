package store

import (
	"context"

	"github.com/banquito/backoffice/internal/domain"
)

// InterestRateStore defines the interface for interest rate data persistence.
type InterestRateStore interface {
	// FindAll retrieves every interest rate ordered by ID.
	FindAll(ctx context.Context) ([]*domain.InterestRate, error)

	// FindByState retrieves all interest rates in the given lifecycle state.
	// Returns an empty slice if none match.
	FindByState(ctx context.Context, state domain.State) ([]*domain.InterestRate, error)

	// FindByID retrieves an interest rate by its identifier.
	// Returns ErrInterestRateNotFound if the rate does not exist.
	FindByID(ctx context.Context, id int) (*domain.InterestRate, error)

	// Save upserts the interest rate. A rate with ID 0 is inserted and
	// receives its database-assigned ID; any other ID overwrites that row.
	Save(ctx context.Context, rate *domain.InterestRate) error
}
