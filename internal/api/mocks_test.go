package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/banquito/backoffice/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

// MockBranchService is a mock implementation of service.BranchService for testing
type MockBranchService struct {
	GetAllFn     func(ctx context.Context) ([]*domain.Branch, error)
	LookByCodeFn func(ctx context.Context, code string) (*domain.Branch, error)
	LookByIDFn   func(ctx context.Context, id string) (*domain.Branch, error)
	CreateFn     func(ctx context.Context, branch *domain.Branch) (*domain.Branch, error)
	UpdateFn     func(ctx context.Context, code string, branch *domain.Branch) (*domain.Branch, error)
}

func (m *MockBranchService) GetAll(ctx context.Context) ([]*domain.Branch, error) {
	if m.GetAllFn != nil {
		return m.GetAllFn(ctx)
	}
	return nil, nil
}

func (m *MockBranchService) LookByCode(ctx context.Context, code string) (*domain.Branch, error) {
	if m.LookByCodeFn != nil {
		return m.LookByCodeFn(ctx, code)
	}
	return nil, nil
}

func (m *MockBranchService) LookByID(ctx context.Context, id string) (*domain.Branch, error) {
	if m.LookByIDFn != nil {
		return m.LookByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *MockBranchService) Create(ctx context.Context, branch *domain.Branch) (*domain.Branch, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, branch)
	}
	return branch, nil
}

func (m *MockBranchService) Update(
	ctx context.Context,
	code string,
	branch *domain.Branch,
) (*domain.Branch, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, code, branch)
	}
	return branch, nil
}

// MockInterestRateService is a mock implementation of service.InterestRateService for testing
type MockInterestRateService struct {
	ListAllActivesFn func(ctx context.Context) ([]*domain.InterestRate, error)
	ObtainByIDFn     func(ctx context.Context, id int) (*domain.InterestRate, error)
	CreateFn         func(ctx context.Context, rate *domain.InterestRate) (*domain.InterestRate, error)
	UpdateFn         func(ctx context.Context, id int, rate *domain.InterestRate) (*domain.InterestRate, error)
	InactivateFn     func(ctx context.Context, id int) error
}

func (m *MockInterestRateService) ListAllActives(ctx context.Context) ([]*domain.InterestRate, error) {
	if m.ListAllActivesFn != nil {
		return m.ListAllActivesFn(ctx)
	}
	return nil, nil
}

func (m *MockInterestRateService) ObtainByID(ctx context.Context, id int) (*domain.InterestRate, error) {
	if m.ObtainByIDFn != nil {
		return m.ObtainByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *MockInterestRateService) Create(
	ctx context.Context,
	rate *domain.InterestRate,
) (*domain.InterestRate, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, rate)
	}
	return rate, nil
}

func (m *MockInterestRateService) Update(
	ctx context.Context,
	id int,
	rate *domain.InterestRate,
) (*domain.InterestRate, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, rate)
	}
	return rate, nil
}

func (m *MockInterestRateService) Inactivate(ctx context.Context, id int) error {
	if m.InactivateFn != nil {
		return m.InactivateFn(ctx, id)
	}
	return nil
}

// MockProductAccountService is a mock implementation of service.ProductAccountService for testing
type MockProductAccountService struct {
	ListAllActivesFn func(ctx context.Context) ([]*domain.ProductAccount, error)
	ObtainByIDFn     func(ctx context.Context, id string) (*domain.ProductAccount, error)
	CreateFn         func(ctx context.Context, account *domain.ProductAccount) (*domain.ProductAccount, error)
	UpdateFn         func(ctx context.Context, id string, account *domain.ProductAccount) (*domain.ProductAccount, error)
	InactivateFn     func(ctx context.Context, id string) error
}

func (m *MockProductAccountService) ListAllActives(ctx context.Context) ([]*domain.ProductAccount, error) {
	if m.ListAllActivesFn != nil {
		return m.ListAllActivesFn(ctx)
	}
	return nil, nil
}

func (m *MockProductAccountService) ObtainByID(ctx context.Context, id string) (*domain.ProductAccount, error) {
	if m.ObtainByIDFn != nil {
		return m.ObtainByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *MockProductAccountService) Create(
	ctx context.Context,
	account *domain.ProductAccount,
) (*domain.ProductAccount, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, account)
	}
	return account, nil
}

func (m *MockProductAccountService) Update(
	ctx context.Context,
	id string,
	account *domain.ProductAccount,
) (*domain.ProductAccount, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, account)
	}
	return account, nil
}

func (m *MockProductAccountService) Inactivate(ctx context.Context, id string) error {
	if m.InactivateFn != nil {
		return m.InactivateFn(ctx, id)
	}
	return nil
}

// routeRegistrar is implemented by every handler in this package.
type routeRegistrar interface {
	RegisterRoutes(r chi.Router)
}

// serve runs a request through a router carrying only h's routes.
func serve(t *testing.T, h routeRegistrar, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		payload, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewBuffer(payload)
	}

	r := chi.NewRouter()
	h.RegisterRoutes(r)

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
