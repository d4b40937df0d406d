package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/banquito/backoffice/internal/domain"
	"github.com/banquito/backoffice/internal/platform/logger"
	"github.com/banquito/backoffice/internal/store"
)

// branchesCodeConstraint is the unique constraint on branches.code.
const branchesCodeConstraint = "branches_code_key"

// PostgresBranchStore implements the store.BranchStore interface
// using a PostgreSQL database as the storage backend.
type PostgresBranchStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresBranchStore creates a new PostgreSQL implementation of the BranchStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresBranchStore(db store.DBTX, logger *slog.Logger) *PostgresBranchStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresBranchStore{
		db:     db,
		logger: logger.With(slog.String("component", "branch_store")),
	}
}

// Ensure PostgresBranchStore implements store.BranchStore interface
var _ store.BranchStore = (*PostgresBranchStore)(nil)

// FindAll implements store.BranchStore.FindAll.
// Rows come back in the order they were first inserted.
func (s *PostgresBranchStore) FindAll(ctx context.Context) ([]*domain.Branch, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, code, name
		FROM branches
		ORDER BY seq ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query branches", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list branches: %w", MapError(err))
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close branch rows", slog.String("error", closeErr.Error()))
		}
	}()

	branches := make([]*domain.Branch, 0)
	for rows.Next() {
		var b domain.Branch
		if err := rows.Scan(&b.ID, &b.Code, &b.Name); err != nil {
			log.Error("failed to scan branch row", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to scan branch: %w", err)
		}
		branches = append(branches, &b)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating branch rows", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list branches: %w", MapError(err))
	}

	log.Debug("branches retrieved", slog.Int("count", len(branches)))
	return branches, nil
}

// FindByCode implements store.BranchStore.FindByCode.
// Returns store.ErrBranchNotFound if no branch has the code.
func (s *PostgresBranchStore) FindByCode(ctx context.Context, code string) (*domain.Branch, error) {
	return s.findOne(ctx, "code", code)
}

// FindByID implements store.BranchStore.FindByID.
// Returns store.ErrBranchNotFound if the branch does not exist.
func (s *PostgresBranchStore) FindByID(ctx context.Context, id string) (*domain.Branch, error) {
	return s.findOne(ctx, "id", id)
}

// findOne looks a branch up by one of its two unique columns.
func (s *PostgresBranchStore) findOne(ctx context.Context, column, value string) (*domain.Branch, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// column is one of two fixed identifiers, never caller input.
	query := `SELECT id, code, name FROM branches WHERE ` + column + ` = $1`

	var b domain.Branch
	err := s.db.QueryRowContext(ctx, query, value).Scan(&b.ID, &b.Code, &b.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("branch not found", slog.String(column, value))
			return nil, store.ErrBranchNotFound
		}
		log.Error("failed to get branch",
			slog.String("error", err.Error()),
			slog.String(column, value))
		return nil, fmt.Errorf("failed to get branch by %s: %w", column, MapError(err))
	}

	return &b, nil
}

// Save implements store.BranchStore.Save.
// It inserts the branch or overwrites the row that has the same ID.
// Returns store.ErrBranchCodeExists if another branch already uses the code.
func (s *PostgresBranchStore) Save(ctx context.Context, branch *domain.Branch) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO branches (id, code, name)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE
		SET code = EXCLUDED.code, name = EXCLUDED.name
	`

	_, err := s.db.ExecContext(ctx, query, branch.ID, branch.Code, branch.Name)
	if err != nil {
		mapped := MapUniqueViolation(err, branchesCodeConstraint, store.ErrBranchCodeExists)
		log.Error("failed to save branch",
			slog.String("error", err.Error()),
			slog.String("branch_id", branch.ID),
			slog.String("code", branch.Code))
		return store.NewStoreError("branch", "save", "failed to save branch", mapped)
	}

	log.Info("branch saved",
		slog.String("branch_id", branch.ID),
		slog.String("code", branch.Code))
	return nil
}
