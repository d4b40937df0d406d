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

// PostgresProductAccountStore implements the store.ProductAccountStore interface
// using a PostgreSQL database as the storage backend.
type PostgresProductAccountStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresProductAccountStore creates a new PostgreSQL implementation of the ProductAccountStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresProductAccountStore(db store.DBTX, logger *slog.Logger) *PostgresProductAccountStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresProductAccountStore{
		db:     db,
		logger: logger.With(slog.String("component", "product_account_store")),
	}
}

// Ensure PostgresProductAccountStore implements store.ProductAccountStore interface
var _ store.ProductAccountStore = (*PostgresProductAccountStore)(nil)

func scanProductAccount(row rowScanner) (*domain.ProductAccount, error) {
	var (
		a     domain.ProductAccount
		state string
	)
	if err := row.Scan(&a.ID, &a.Name, &state, &a.CreationDate); err != nil {
		return nil, err
	}
	a.State = domain.State(state)
	return &a, nil
}

// FindAll implements store.ProductAccountStore.FindAll.
func (s *PostgresProductAccountStore) FindAll(ctx context.Context) ([]*domain.ProductAccount, error) {
	query := `
		SELECT id, name, state, creation_date
		FROM product_accounts
		ORDER BY seq ASC
	`
	return s.list(ctx, query)
}

// FindByState implements store.ProductAccountStore.FindByState.
func (s *PostgresProductAccountStore) FindByState(
	ctx context.Context,
	state domain.State,
) ([]*domain.ProductAccount, error) {
	query := `
		SELECT id, name, state, creation_date
		FROM product_accounts
		WHERE state = $1
		ORDER BY seq ASC
	`
	return s.list(ctx, query, string(state))
}

func (s *PostgresProductAccountStore) list(
	ctx context.Context,
	query string,
	args ...any,
) ([]*domain.ProductAccount, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query product accounts", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list product accounts: %w", MapError(err))
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close product account rows", slog.String("error", closeErr.Error()))
		}
	}()

	accounts := make([]*domain.ProductAccount, 0)
	for rows.Next() {
		a, err := scanProductAccount(rows)
		if err != nil {
			log.Error("failed to scan product account row", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to scan product account: %w", err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating product account rows", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list product accounts: %w", MapError(err))
	}

	log.Debug("product accounts retrieved", slog.Int("count", len(accounts)))
	return accounts, nil
}

// FindByID implements store.ProductAccountStore.FindByID.
// Returns store.ErrProductAccountNotFound if the account does not exist.
func (s *PostgresProductAccountStore) FindByID(ctx context.Context, id string) (*domain.ProductAccount, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, state, creation_date
		FROM product_accounts
		WHERE id = $1
	`

	a, err := scanProductAccount(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("product account not found", slog.String("product_account_id", id))
			return nil, store.ErrProductAccountNotFound
		}
		log.Error("failed to get product account",
			slog.String("error", err.Error()),
			slog.String("product_account_id", id))
		return nil, fmt.Errorf("failed to get product account: %w", MapError(err))
	}

	return a, nil
}

// Save implements store.ProductAccountStore.Save.
// It inserts the account or overwrites the row that has the same ID.
func (s *PostgresProductAccountStore) Save(ctx context.Context, account *domain.ProductAccount) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO product_accounts (id, name, state, creation_date)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
			state = EXCLUDED.state,
			creation_date = EXCLUDED.creation_date
	`

	_, err := s.db.ExecContext(
		ctx,
		query,
		account.ID,
		account.Name,
		string(account.State),
		account.CreationDate,
	)
	if err != nil {
		log.Error("failed to save product account",
			slog.String("error", err.Error()),
			slog.String("product_account_id", account.ID))
		return store.NewStoreError(
			"product_account",
			"save",
			"failed to save product account",
			MapError(err),
		)
	}

	log.Info("product account saved",
		slog.String("product_account_id", account.ID),
		slog.String("state", account.State.String()))
	return nil
}
