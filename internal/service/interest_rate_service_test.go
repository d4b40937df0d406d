package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/banquito/backoffice/internal/domain"
	"github.com/banquito/backoffice/internal/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 2, 14, 10, 30, 0, 0, time.UTC)

func newTestInterestRateService(t *testing.T, st *MockInterestRateStore) InterestRateService {
	t.Helper()
	svc, err := NewInterestRateService(st, nil, WithClock(func() time.Time { return fixedNow }))
	require.NoError(t, err)
	return svc
}

func activeRate(id int) *domain.InterestRate {
	return &domain.InterestRate{
		ID:    id,
		Name:  "Savings",
		Rate:  decimal.RequireFromString("3.5"),
		State: domain.StateActive,
		Start: fixedNow.Add(-24 * time.Hour),
	}
}

func TestInterestRateService_ListAllActives(t *testing.T) {
	ctx := context.Background()
	st := new(MockInterestRateStore)
	rates := []*domain.InterestRate{activeRate(1), activeRate(2)}
	st.On("FindByState", ctx, domain.StateActive).Return(rates, nil)

	got, err := newTestInterestRateService(t, st).ListAllActives(ctx)
	require.NoError(t, err)
	assert.Equal(t, rates, got)
}

func TestInterestRateService_ObtainByID(t *testing.T) {
	ctx := context.Background()
	st := new(MockInterestRateStore)
	st.On("FindByID", ctx, 9).Return(nil, store.ErrInterestRateNotFound)

	_, err := newTestInterestRateService(t, st).ObtainByID(ctx, 9)
	crudErr := requireCRUDCode(t, err, domain.CodeNotFound)
	assert.Equal(t, "Interest rate not found", crudErr.Message)
}

func TestInterestRateService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults state and start and ignores caller id", func(t *testing.T) {
		st := new(MockInterestRateStore)
		st.On("Save", ctx, mock.MatchedBy(func(r *domain.InterestRate) bool {
			return r.ID == 0 && r.State == domain.StateActive && r.Start.Equal(fixedNow) && r.End == nil
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.InterestRate).ID = 41
		}).Return(nil)

		end := fixedNow
		got, err := newTestInterestRateService(t, st).Create(ctx, &domain.InterestRate{
			ID:   5,
			Name: "Term",
			Rate: decimal.RequireFromString("7.25"),
			End:  &end,
		})
		require.NoError(t, err)
		assert.Equal(t, 41, got.ID)
		assert.Nil(t, got.End)
		st.AssertExpectations(t)
	})

	t.Run("failing save is a 400", func(t *testing.T) {
		st := new(MockInterestRateStore)
		st.On("Save", ctx, mock.Anything).Return(errors.New("insert failed"))

		got, err := newTestInterestRateService(t, st).Create(ctx, &domain.InterestRate{
			Name: "Term",
			Rate: decimal.RequireFromString("7.25"),
		})
		assert.Nil(t, got)
		requireCRUDCode(t, err, domain.CodeBadRequest)
	})

	t.Run("negative rate is rejected", func(t *testing.T) {
		st := new(MockInterestRateStore)

		_, err := newTestInterestRateService(t, st).Create(ctx, &domain.InterestRate{
			Name: "Bad",
			Rate: decimal.RequireFromString("-1"),
		})
		requireCRUDCode(t, err, domain.CodeBadRequest)
		assert.ErrorIs(t, err, domain.ErrValidation)
		st.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rate beyond stored precision is rejected", func(t *testing.T) {
		st := new(MockInterestRateStore)

		_, err := newTestInterestRateService(t, st).Create(ctx, &domain.InterestRate{
			Name: "Too precise",
			Rate: decimal.RequireFromString("0.12345"),
		})
		crudErr := requireCRUDCode(t, err, domain.CodeBadRequest)
		assert.Contains(t, crudErr.Message, "decimal places")
		st.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestInterestRateService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("missing id is a 404 and nothing is saved", func(t *testing.T) {
		st := new(MockInterestRateStore)
		st.On("FindByID", ctx, 3).Return(nil, store.ErrInterestRateNotFound)

		_, err := newTestInterestRateService(t, st).Update(ctx, 3, activeRate(0))
		requireCRUDCode(t, err, domain.CodeNotFound)
		st.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("only name and rate change", func(t *testing.T) {
		st := new(MockInterestRateStore)
		stored := activeRate(3)
		st.On("FindByID", ctx, 3).Return(stored, nil)
		st.On("Save", ctx, stored).Return(nil)

		got, err := newTestInterestRateService(t, st).Update(ctx, 3, &domain.InterestRate{
			ID:    77,
			Name:  "Renamed",
			Rate:  decimal.RequireFromString("4.1"),
			State: domain.StateInactive,
			Start: fixedNow,
		})
		require.NoError(t, err)
		assert.Equal(t, 3, got.ID)
		assert.Equal(t, "Renamed", got.Name)
		assert.True(t, got.Rate.Equal(decimal.RequireFromString("4.1")))
		assert.Equal(t, domain.StateActive, got.State)
		assert.True(t, got.Start.Equal(fixedNow.Add(-24*time.Hour)))
		assert.Nil(t, got.End)
	})
}

func TestInterestRateService_Inactivate(t *testing.T) {
	ctx := context.Background()

	t.Run("active rate becomes inactive with end stamped", func(t *testing.T) {
		st := new(MockInterestRateStore)
		stored := activeRate(1)
		st.On("FindByID", ctx, 1).Return(stored, nil)
		st.On("Save", ctx, stored).Return(nil)

		require.NoError(t, newTestInterestRateService(t, st).Inactivate(ctx, 1))
		assert.Equal(t, domain.StateInactive, stored.State)
		require.NotNil(t, stored.End)
		assert.True(t, stored.End.Equal(fixedNow))
	})

	t.Run("second inactivate is rejected without a write", func(t *testing.T) {
		st := new(MockInterestRateStore)
		stored := activeRate(1)
		require.NoError(t, stored.Inactivate(fixedNow))
		st.On("FindByID", ctx, 1).Return(stored, nil)

		err := newTestInterestRateService(t, st).Inactivate(ctx, 1)
		crudErr := requireCRUDCode(t, err, domain.CodeBadRequest)
		assert.Equal(t, "Interest rate already inactive", crudErr.Message)
		assert.ErrorIs(t, err, domain.ErrAlreadyInactive)
		st.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("missing id is a 404", func(t *testing.T) {
		st := new(MockInterestRateStore)
		st.On("FindByID", ctx, 1).Return(nil, store.ErrInterestRateNotFound)

		err := newTestInterestRateService(t, st).Inactivate(ctx, 1)
		requireCRUDCode(t, err, domain.CodeNotFound)
	})
}
