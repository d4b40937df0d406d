package store

import (
	"context"

	"github.com/banquito/backoffice/internal/domain"
)

// ProductAccountStore defines the interface for product account data persistence.
type ProductAccountStore interface {
	// FindAll retrieves every product account in insertion order.
	FindAll(ctx context.Context) ([]*domain.ProductAccount, error)

	// FindByState retrieves all product accounts in the given lifecycle state.
	// Returns an empty slice if none match.
	FindByState(ctx context.Context, state domain.State) ([]*domain.ProductAccount, error)

	// FindByID retrieves a product account by its identifier.
	// Returns ErrProductAccountNotFound if the account does not exist.
	FindByID(ctx context.Context, id string) (*domain.ProductAccount, error)

	// Save inserts the product account, or overwrites the stored row with the same ID.
	Save(ctx context.Context, account *domain.ProductAccount) error
}
