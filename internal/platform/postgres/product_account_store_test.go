package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/banquito/backoffice/internal/domain"
	"github.com/banquito/backoffice/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productAccountRowColumns = []string{"id", "name", "state", "creation_date"}

func TestPostgresProductAccountStore_FindByState(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewPostgresProductAccountStore(db, nil)
	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM product_accounts\s+WHERE state = \$1\s+ORDER BY seq ASC`).
		WithArgs("ACT").
		WillReturnRows(sqlmock.NewRows(productAccountRowColumns).
			AddRow("pa-2", "Checking", "ACT", created).
			AddRow("pa-1", "Savings", "ACT", created))

	accounts, err := s.FindByState(context.Background(), domain.StateActive)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "pa-2", accounts[0].ID)
	assert.Equal(t, "pa-1", accounts[1].ID)
	assert.True(t, created.Equal(accounts[0].CreationDate))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresProductAccountStore_FindAll(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewPostgresProductAccountStore(db, nil)

	mock.ExpectQuery(`FROM product_accounts\s+ORDER BY seq ASC`).
		WillReturnRows(sqlmock.NewRows(productAccountRowColumns).
			AddRow("pa-1", "Savings", "INA", time.Now()))

	accounts, err := s.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, domain.StateInactive, accounts[0].State)
}

func TestPostgresProductAccountStore_FindByID(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewPostgresProductAccountStore(db, nil)

	mock.ExpectQuery(`FROM product_accounts\s+WHERE id = \$1`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	a, err := s.FindByID(context.Background(), "missing")
	assert.Nil(t, a)
	assert.ErrorIs(t, err, store.ErrProductAccountNotFound)
}

func TestPostgresProductAccountStore_Save(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewPostgresProductAccountStore(db, nil)
	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	account := &domain.ProductAccount{
		ID:           "pa-1",
		Name:         "Savings",
		State:        domain.StateActive,
		CreationDate: created,
	}

	mock.ExpectExec(`INSERT INTO product_accounts \(id, name, state, creation_date\)`).
		WithArgs("pa-1", "Savings", "ACT", created).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Save(context.Background(), account))
	assert.NoError(t, mock.ExpectationsWereMet())
}
