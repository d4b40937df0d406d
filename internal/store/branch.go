package store

import (
	"context"

	"github.com/banquito/backoffice/internal/domain"
)

// BranchStore defines the interface for branch data persistence.
type BranchStore interface {
	// FindAll retrieves every branch in insertion order.
	// Returns an empty slice if the store holds no branches.
	FindAll(ctx context.Context) ([]*domain.Branch, error)

	// FindByCode retrieves a branch by its unique business code.
	// Returns ErrBranchNotFound if no branch has that code.
	FindByCode(ctx context.Context, code string) (*domain.Branch, error)

	// FindByID retrieves a branch by its identifier.
	// Returns ErrBranchNotFound if the branch does not exist.
	FindByID(ctx context.Context, id string) (*domain.Branch, error)

	// Save inserts the branch, or overwrites the stored row with the same ID.
	// Returns ErrBranchCodeExists if another branch already uses the code.
	Save(ctx context.Context, branch *domain.Branch) error
}
