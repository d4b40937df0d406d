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

const interestRateColumns = `id, name, interest_rate, state, start_date, end_date`

// PostgresInterestRateStore implements the store.InterestRateStore interface
// using a PostgreSQL database as the storage backend.
type PostgresInterestRateStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresInterestRateStore creates a new PostgreSQL implementation of the InterestRateStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresInterestRateStore(db store.DBTX, logger *slog.Logger) *PostgresInterestRateStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresInterestRateStore{
		db:     db,
		logger: logger.With(slog.String("component", "interest_rate_store")),
	}
}

// Ensure PostgresInterestRateStore implements store.InterestRateStore interface
var _ store.InterestRateStore = (*PostgresInterestRateStore)(nil)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanInterestRate(row rowScanner) (*domain.InterestRate, error) {
	var (
		r     domain.InterestRate
		state string
		end   sql.NullTime
	)
	if err := row.Scan(&r.ID, &r.Name, &r.Rate, &state, &r.Start, &end); err != nil {
		return nil, err
	}
	r.State = domain.State(state)
	if end.Valid {
		t := end.Time
		r.End = &t
	}
	return &r, nil
}

// FindAll implements store.InterestRateStore.FindAll.
func (s *PostgresInterestRateStore) FindAll(ctx context.Context) ([]*domain.InterestRate, error) {
	query := `SELECT ` + interestRateColumns + ` FROM interest_rates ORDER BY id ASC`
	return s.list(ctx, query)
}

// FindByState implements store.InterestRateStore.FindByState.
func (s *PostgresInterestRateStore) FindByState(
	ctx context.Context,
	state domain.State,
) ([]*domain.InterestRate, error) {
	query := `SELECT ` + interestRateColumns + ` FROM interest_rates WHERE state = $1 ORDER BY id ASC`
	return s.list(ctx, query, string(state))
}

func (s *PostgresInterestRateStore) list(
	ctx context.Context,
	query string,
	args ...any,
) ([]*domain.InterestRate, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query interest rates", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list interest rates: %w", MapError(err))
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close interest rate rows", slog.String("error", closeErr.Error()))
		}
	}()

	rates := make([]*domain.InterestRate, 0)
	for rows.Next() {
		r, err := scanInterestRate(rows)
		if err != nil {
			log.Error("failed to scan interest rate row", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to scan interest rate: %w", err)
		}
		rates = append(rates, r)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating interest rate rows", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list interest rates: %w", MapError(err))
	}

	log.Debug("interest rates retrieved", slog.Int("count", len(rates)))
	return rates, nil
}

// FindByID implements store.InterestRateStore.FindByID.
// Returns store.ErrInterestRateNotFound if the rate does not exist.
func (s *PostgresInterestRateStore) FindByID(ctx context.Context, id int) (*domain.InterestRate, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + interestRateColumns + ` FROM interest_rates WHERE id = $1`

	r, err := scanInterestRate(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("interest rate not found", slog.Int("interest_rate_id", id))
			return nil, store.ErrInterestRateNotFound
		}
		log.Error("failed to get interest rate",
			slog.String("error", err.Error()),
			slog.Int("interest_rate_id", id))
		return nil, fmt.Errorf("failed to get interest rate: %w", MapError(err))
	}

	return r, nil
}

// Save implements store.InterestRateStore.Save.
// A rate with a zero ID is inserted and receives the identity the database
// assigns. Any other rate overwrites the row with the same ID.
func (s *PostgresInterestRateStore) Save(ctx context.Context, rate *domain.InterestRate) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var err error
	if rate.ID == 0 {
		query := `
			INSERT INTO interest_rates (name, interest_rate, state, start_date, end_date)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`
		err = s.db.QueryRowContext(
			ctx,
			query,
			rate.Name,
			rate.Rate,
			string(rate.State),
			rate.Start,
			rate.End,
		).Scan(&rate.ID)
	} else {
		query := `
			INSERT INTO interest_rates (id, name, interest_rate, state, start_date, end_date)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (id) DO UPDATE
			SET name = EXCLUDED.name,
				interest_rate = EXCLUDED.interest_rate,
				state = EXCLUDED.state,
				start_date = EXCLUDED.start_date,
				end_date = EXCLUDED.end_date
		`
		_, err = s.db.ExecContext(
			ctx,
			query,
			rate.ID,
			rate.Name,
			rate.Rate,
			string(rate.State),
			rate.Start,
			rate.End,
		)
	}
	if err != nil {
		log.Error("failed to save interest rate",
			slog.String("error", err.Error()),
			slog.Int("interest_rate_id", rate.ID))
		return store.NewStoreError("interest_rate", "save", "failed to save interest rate", MapError(err))
	}

	log.Info("interest rate saved",
		slog.Int("interest_rate_id", rate.ID),
		slog.String("state", rate.State.String()))
	return nil
}
