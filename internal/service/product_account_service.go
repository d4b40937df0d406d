package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/banquito/backoffice/internal/domain"
	"github.com/banquito/backoffice/internal/platform/logger"
	"github.com/banquito/backoffice/internal/store"
)

// ProductAccountService provides product account operations.
type ProductAccountService interface {
	// ListAllActives returns the product accounts in the active state.
	ListAllActives(ctx context.Context) ([]*domain.ProductAccount, error)

	// ObtainByID returns the account with the given ID, or a 404 CRUDError.
	ObtainByID(ctx context.Context, id string) (*domain.ProductAccount, error)

	// Create stores a new account stamped with the current time.
	Create(ctx context.Context, account *domain.ProductAccount) (*domain.ProductAccount, error)

	// Update overwrites the name of an existing account.
	Update(ctx context.Context, id string, account *domain.ProductAccount) (*domain.ProductAccount, error)

	// Inactivate moves an active account to the inactive state.
	Inactivate(ctx context.Context, id string) error
}

const (
	msgProductAccountNotFound        = "Product account not found"
	msgProductAccountAlreadyExists   = "Product account already exists"
	msgProductAccountAlreadyInactive = "Product account already inactive"
)

// productAccountServiceImpl implements the ProductAccountService interface
type productAccountServiceImpl struct {
	accountStore store.ProductAccountStore
	logger       *slog.Logger
	opts         options
}

// NewProductAccountService creates a new ProductAccountService.
// It returns an error if the store is nil.
func NewProductAccountService(
	accountStore store.ProductAccountStore,
	logger *slog.Logger,
	opts ...Option,
) (ProductAccountService, error) {
	if accountStore == nil {
		return nil, errors.New("accountStore cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &productAccountServiceImpl{
		accountStore: accountStore,
		logger:       logger.With(slog.String("component", "product_account_service")),
		opts:         applyOptions(opts),
	}, nil
}

// ListAllActives implements ProductAccountService.ListAllActives
func (s *productAccountServiceImpl) ListAllActives(ctx context.Context) ([]*domain.ProductAccount, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	accounts, err := s.accountStore.FindByState(ctx, domain.StateActive)
	if err != nil {
		log.Error("failed to list active product accounts", slog.String("error", err.Error()))
		return nil, readFailure("failed to list product accounts", err)
	}
	return accounts, nil
}

// ObtainByID implements ProductAccountService.ObtainByID
func (s *productAccountServiceImpl) ObtainByID(ctx context.Context, id string) (*domain.ProductAccount, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	account, err := s.accountStore.FindByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("product account not found", slog.String("product_account_id", id))
			return nil, domain.NewNotFoundError(msgProductAccountNotFound)
		}
		log.Error("failed to obtain product account",
			slog.String("error", err.Error()),
			slog.String("product_account_id", id))
		return nil, readFailure("failed to obtain product account", err)
	}
	return account, nil
}

// Create implements ProductAccountService.Create
func (s *productAccountServiceImpl) Create(
	ctx context.Context,
	account *domain.ProductAccount,
) (*domain.ProductAccount, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if account == nil {
		return nil, domain.NewCRUDError(domain.CodeBadRequest, "product account is required", domain.ErrValidation)
	}

	created := *account
	if created.State == "" {
		created.State = domain.StateActive
	}
	created.CreationDate = s.opts.now()

	if err := created.Validate(); err != nil {
		log.Warn("product account validation failed", slog.String("error", err.Error()))
		return nil, invalidEntity(err)
	}

	if created.ID == "" {
		created.ID = s.opts.newID()
	} else {
		_, err := s.accountStore.FindByID(ctx, created.ID)
		switch {
		case err == nil:
			log.Info("product account id already taken", slog.String("product_account_id", created.ID))
			return nil, domain.NewAlreadyExistsError(msgProductAccountAlreadyExists)
		case !store.IsNotFoundError(err):
			log.Error("failed to check product account existence",
				slog.String("error", err.Error()),
				slog.String("product_account_id", created.ID))
			return nil, writeFailure("failed to create product account", err)
		}
	}

	if err := s.accountStore.Save(ctx, &created); err != nil {
		log.Error("failed to create product account",
			slog.String("error", err.Error()),
			slog.String("product_account_id", created.ID))
		return nil, writeFailure("failed to create product account", err)
	}

	log.Info("product account created", slog.String("product_account_id", created.ID))
	return &created, nil
}

// Update implements ProductAccountService.Update
func (s *productAccountServiceImpl) Update(
	ctx context.Context,
	id string,
	account *domain.ProductAccount,
) (*domain.ProductAccount, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if account == nil {
		return nil, domain.NewCRUDError(domain.CodeBadRequest, "product account is required", domain.ErrValidation)
	}

	existing, err := s.ObtainByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.ApplyUpdate(account)
	if err := existing.Validate(); err != nil {
		log.Warn("product account validation failed", slog.String("error", err.Error()))
		return nil, invalidEntity(err)
	}

	if err := s.accountStore.Save(ctx, existing); err != nil {
		log.Error("failed to update product account",
			slog.String("error", err.Error()),
			slog.String("product_account_id", id))
		return nil, writeFailure("failed to update product account", err)
	}

	log.Info("product account updated", slog.String("product_account_id", id))
	return existing, nil
}

// Inactivate implements ProductAccountService.Inactivate
func (s *productAccountServiceImpl) Inactivate(ctx context.Context, id string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	existing, err := s.ObtainByID(ctx, id)
	if err != nil {
		return err
	}

	if err := existing.Inactivate(); err != nil {
		log.Info("product account already inactive", slog.String("product_account_id", id))
		return domain.NewCRUDError(domain.CodeBadRequest, msgProductAccountAlreadyInactive, err)
	}

	if err := s.accountStore.Save(ctx, existing); err != nil {
		log.Error("failed to inactivate product account",
			slog.String("error", err.Error()),
			slog.String("product_account_id", id))
		return writeFailure("failed to inactivate product account", err)
	}

	log.Info("product account inactivated", slog.String("product_account_id", id))
	return nil
}
