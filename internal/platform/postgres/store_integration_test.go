//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/banquito/backoffice/internal/domain"
	"github.com/banquito/backoffice/internal/platform/postgres"
	"github.com/banquito/backoffice/internal/store"
	"github.com/banquito/backoffice/internal/testdb"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBranchStore_Integration(t *testing.T) {
	db := testdb.GetTestDBWithT(t)
	testdb.SetupSchema(t, db, postgres.BranchesMigrations)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		branchStore := postgres.NewPostgresBranchStore(tx, nil)

		first := &domain.Branch{ID: uuid.NewString(), Code: "IT-001", Name: "Quito Norte"}
		second := &domain.Branch{ID: uuid.NewString(), Code: "IT-002", Name: "Quito Sur"}
		require.NoError(t, branchStore.Save(ctx, first))
		require.NoError(t, branchStore.Save(ctx, second))

		got, err := branchStore.FindByCode(ctx, "IT-001")
		require.NoError(t, err)
		assert.Equal(t, first, got)

		got, err = branchStore.FindByID(ctx, second.ID)
		require.NoError(t, err)
		assert.Equal(t, second, got)

		first.Name = "Quito Centro"
		require.NoError(t, branchStore.Save(ctx, first))

		all, err := branchStore.FindAll(ctx)
		require.NoError(t, err)
		var codes []string
		for _, b := range all {
			codes = append(codes, b.Code)
			if b.ID == first.ID {
				assert.Equal(t, "Quito Centro", b.Name)
			}
		}
		assert.Subset(t, codes, []string{"IT-001", "IT-002"})

		_, err = branchStore.FindByCode(ctx, "IT-404")
		assert.ErrorIs(t, err, store.ErrBranchNotFound)

		// Aborts the transaction, so it runs last.
		err = branchStore.Save(ctx, &domain.Branch{ID: uuid.NewString(), Code: "IT-001", Name: "Dup"})
		assert.ErrorIs(t, err, store.ErrBranchCodeExists)
	})
}

func TestInterestRateStore_Integration(t *testing.T) {
	db := testdb.GetTestDBWithT(t)
	testdb.SetupSchema(t, db, postgres.ProductsAccountsMigrations)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		rateStore := postgres.NewPostgresInterestRateStore(tx, nil)
		start := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

		rate := &domain.InterestRate{
			Name:  "Savings",
			Rate:  decimal.RequireFromString("3.2500"),
			State: domain.StateActive,
			Start: start,
		}
		require.NoError(t, rateStore.Save(ctx, rate))
		require.NotZero(t, rate.ID, "insert assigns the identity value")

		got, err := rateStore.FindByID(ctx, rate.ID)
		require.NoError(t, err)
		assert.True(t, rate.Rate.Equal(got.Rate))
		assert.True(t, start.Equal(got.Start))
		assert.Nil(t, got.End)

		end := start.Add(24 * time.Hour)
		rate.State = domain.StateInactive
		rate.End = &end
		require.NoError(t, rateStore.Save(ctx, rate))

		active, err := rateStore.FindByState(ctx, domain.StateActive)
		require.NoError(t, err)
		for _, r := range active {
			assert.NotEqual(t, rate.ID, r.ID)
		}

		got, err = rateStore.FindByID(ctx, rate.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StateInactive, got.State)
		require.NotNil(t, got.End)
		assert.True(t, end.Equal(*got.End))

		_, err = rateStore.FindByID(ctx, -1)
		assert.ErrorIs(t, err, store.ErrInterestRateNotFound)
	})
}

func TestProductAccountStore_Integration(t *testing.T) {
	db := testdb.GetTestDBWithT(t)
	testdb.SetupSchema(t, db, postgres.ProductsAccountsMigrations)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		accountStore := postgres.NewPostgresProductAccountStore(tx, nil)

		account := &domain.ProductAccount{
			ID:           uuid.NewString(),
			Name:         "Ahorro Plus",
			State:        domain.StateActive,
			CreationDate: time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC),
		}
		require.NoError(t, accountStore.Save(ctx, account))

		got, err := accountStore.FindByID(ctx, account.ID)
		require.NoError(t, err)
		assert.Equal(t, account.Name, got.Name)
		assert.True(t, account.CreationDate.Equal(got.CreationDate))

		active, err := accountStore.FindByState(ctx, domain.StateActive)
		require.NoError(t, err)
		var ids []string
		for _, a := range active {
			ids = append(ids, a.ID)
		}
		assert.Contains(t, ids, account.ID)

		account.State = domain.StateInactive
		require.NoError(t, accountStore.Save(ctx, account))

		active, err = accountStore.FindByState(ctx, domain.StateActive)
		require.NoError(t, err)
		for _, a := range active {
			assert.NotEqual(t, account.ID, a.ID)
		}

		_, err = accountStore.FindByID(ctx, uuid.NewString())
		assert.ErrorIs(t, err, store.ErrProductAccountNotFound)
	})
}
