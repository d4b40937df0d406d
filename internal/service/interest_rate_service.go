package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/banquito/backoffice/internal/domain"
	"github.com/banquito/backoffice/internal/platform/logger"
	"github.com/banquito/backoffice/internal/store"
)

// InterestRateService provides interest rate operations.
type InterestRateService interface {
	// ListAllActives returns the rates in the active state.
	ListAllActives(ctx context.Context) ([]*domain.InterestRate, error)

	// ObtainByID returns the rate with the given ID, or a 404 CRUDError.
	ObtainByID(ctx context.Context, id int) (*domain.InterestRate, error)

	// Create stores a new rate. The ID is assigned by the store.
	Create(ctx context.Context, rate *domain.InterestRate) (*domain.InterestRate, error)

	// Update overwrites the name and value of an existing rate.
	Update(ctx context.Context, id int, rate *domain.InterestRate) (*domain.InterestRate, error)

	// Inactivate moves an active rate to the inactive state.
	Inactivate(ctx context.Context, id int) error
}

const (
	msgInterestRateNotFound        = "Interest rate not found"
	msgInterestRateAlreadyInactive = "Interest rate already inactive"
)

// interestRateServiceImpl implements the InterestRateService interface
type interestRateServiceImpl struct {
	rateStore store.InterestRateStore
	logger    *slog.Logger
	opts      options
}

// NewInterestRateService creates a new InterestRateService.
// It returns an error if the store is nil.
func NewInterestRateService(
	rateStore store.InterestRateStore,
	logger *slog.Logger,
	opts ...Option,
) (InterestRateService, error) {
	if rateStore == nil {
		return nil, errors.New("rateStore cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &interestRateServiceImpl{
		rateStore: rateStore,
		logger:    logger.With(slog.String("component", "interest_rate_service")),
		opts:      applyOptions(opts),
	}, nil
}

// ListAllActives implements InterestRateService.ListAllActives
func (s *interestRateServiceImpl) ListAllActives(ctx context.Context) ([]*domain.InterestRate, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rates, err := s.rateStore.FindByState(ctx, domain.StateActive)
	if err != nil {
		log.Error("failed to list active interest rates", slog.String("error", err.Error()))
		return nil, readFailure("failed to list interest rates", err)
	}
	return rates, nil
}

// ObtainByID implements InterestRateService.ObtainByID
func (s *interestRateServiceImpl) ObtainByID(ctx context.Context, id int) (*domain.InterestRate, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rate, err := s.rateStore.FindByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("interest rate not found", slog.Int("interest_rate_id", id))
			return nil, domain.NewNotFoundError(msgInterestRateNotFound)
		}
		log.Error("failed to obtain interest rate",
			slog.String("error", err.Error()),
			slog.Int("interest_rate_id", id))
		return nil, readFailure("failed to obtain interest rate", err)
	}
	return rate, nil
}

// Create implements InterestRateService.Create
func (s *interestRateServiceImpl) Create(
	ctx context.Context,
	rate *domain.InterestRate,
) (*domain.InterestRate, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if rate == nil {
		return nil, domain.NewCRUDError(domain.CodeBadRequest, "interest rate is required", domain.ErrValidation)
	}

	created := *rate
	created.ID = 0
	if created.State == "" {
		created.State = domain.StateActive
	}
	if created.Start.IsZero() {
		created.Start = s.opts.now()
	}
	if created.IsActive() {
		created.End = nil
	}

	if err := created.Validate(); err != nil {
		log.Warn("interest rate validation failed", slog.String("error", err.Error()))
		return nil, invalidEntity(err)
	}

	if err := s.rateStore.Save(ctx, &created); err != nil {
		log.Error("failed to create interest rate",
			slog.String("error", err.Error()),
			slog.String("name", created.Name))
		return nil, writeFailure("failed to create interest rate", err)
	}

	log.Info("interest rate created",
		slog.Int("interest_rate_id", created.ID),
		slog.String("rate", created.Rate.String()))
	return &created, nil
}

// Update implements InterestRateService.Update
func (s *interestRateServiceImpl) Update(
	ctx context.Context,
	id int,
	rate *domain.InterestRate,
) (*domain.InterestRate, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if rate == nil {
		return nil, domain.NewCRUDError(domain.CodeBadRequest, "interest rate is required", domain.ErrValidation)
	}

	existing, err := s.ObtainByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.ApplyUpdate(rate)
	if err := existing.Validate(); err != nil {
		log.Warn("interest rate validation failed", slog.String("error", err.Error()))
		return nil, invalidEntity(err)
	}

	if err := s.rateStore.Save(ctx, existing); err != nil {
		log.Error("failed to update interest rate",
			slog.String("error", err.Error()),
			slog.Int("interest_rate_id", id))
		return nil, writeFailure("failed to update interest rate", err)
	}

	log.Info("interest rate updated", slog.Int("interest_rate_id", id))
	return existing, nil
}

// Inactivate implements InterestRateService.Inactivate
func (s *interestRateServiceImpl) Inactivate(ctx context.Context, id int) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	existing, err := s.ObtainByID(ctx, id)
	if err != nil {
		return err
	}

	if err := existing.Inactivate(s.opts.now()); err != nil {
		log.Info("interest rate already inactive", slog.Int("interest_rate_id", id))
		return domain.NewCRUDError(domain.CodeBadRequest, msgInterestRateAlreadyInactive, err)
	}

	if err := s.rateStore.Save(ctx, existing); err != nil {
		log.Error("failed to inactivate interest rate",
			slog.String("error", err.Error()),
			slog.Int("interest_rate_id", id))
		return writeFailure("failed to inactivate interest rate", err)
	}

	log.Info("interest rate inactivated", slog.Int("interest_rate_id", id))
	return nil
}
