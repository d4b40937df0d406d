package service

import (
	"context"

	"github.com/banquito/backoffice/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockBranchStore is a mock implementation of store.BranchStore
type MockBranchStore struct {
	mock.Mock
}

func (m *MockBranchStore) FindAll(ctx context.Context) ([]*domain.Branch, error) {
	args := m.Called(ctx)
	branches, _ := args.Get(0).([]*domain.Branch)
	return branches, args.Error(1)
}

func (m *MockBranchStore) FindByCode(ctx context.Context, code string) (*domain.Branch, error) {
	args := m.Called(ctx, code)
	branch, _ := args.Get(0).(*domain.Branch)
	return branch, args.Error(1)
}

func (m *MockBranchStore) FindByID(ctx context.Context, id string) (*domain.Branch, error) {
	args := m.Called(ctx, id)
	branch, _ := args.Get(0).(*domain.Branch)
	return branch, args.Error(1)
}

func (m *MockBranchStore) Save(ctx context.Context, branch *domain.Branch) error {
	args := m.Called(ctx, branch)
	return args.Error(0)
}

// MockInterestRateStore is a mock implementation of store.InterestRateStore
type MockInterestRateStore struct {
	mock.Mock
}

func (m *MockInterestRateStore) FindAll(ctx context.Context) ([]*domain.InterestRate, error) {
	args := m.Called(ctx)
	rates, _ := args.Get(0).([]*domain.InterestRate)
	return rates, args.Error(1)
}

func (m *MockInterestRateStore) FindByState(
	ctx context.Context,
	state domain.State,
) ([]*domain.InterestRate, error) {
	args := m.Called(ctx, state)
	rates, _ := args.Get(0).([]*domain.InterestRate)
	return rates, args.Error(1)
}

func (m *MockInterestRateStore) FindByID(ctx context.Context, id int) (*domain.InterestRate, error) {
	args := m.Called(ctx, id)
	rate, _ := args.Get(0).(*domain.InterestRate)
	return rate, args.Error(1)
}

func (m *MockInterestRateStore) Save(ctx context.Context, rate *domain.InterestRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

// MockProductAccountStore is a mock implementation of store.ProductAccountStore
type MockProductAccountStore struct {
	mock.Mock
}

func (m *MockProductAccountStore) FindAll(ctx context.Context) ([]*domain.ProductAccount, error) {
	args := m.Called(ctx)
	accounts, _ := args.Get(0).([]*domain.ProductAccount)
	return accounts, args.Error(1)
}

func (m *MockProductAccountStore) FindByState(
	ctx context.Context,
	state domain.State,
) ([]*domain.ProductAccount, error) {
	args := m.Called(ctx, state)
	accounts, _ := args.Get(0).([]*domain.ProductAccount)
	return accounts, args.Error(1)
}

func (m *MockProductAccountStore) FindByID(ctx context.Context, id string) (*domain.ProductAccount, error) {
	args := m.Called(ctx, id)
	account, _ := args.Get(0).(*domain.ProductAccount)
	return account, args.Error(1)
}

func (m *MockProductAccountStore) Save(ctx context.Context, account *domain.ProductAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}
