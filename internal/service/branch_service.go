package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/banquito/backoffice/internal/domain"
	"github.com/banquito/backoffice/internal/platform/logger"
	"github.com/banquito/backoffice/internal/store"
)

// BranchService provides branch-related operations.
type BranchService interface {
	// GetAll returns every branch in insertion order.
	GetAll(ctx context.Context) ([]*domain.Branch, error)

	// LookByCode returns the branch with the given code, or a 404 CRUDError.
	LookByCode(ctx context.Context, code string) (*domain.Branch, error)

	// LookByID returns the branch with the given ID, or a 404 CRUDError.
	LookByID(ctx context.Context, id string) (*domain.Branch, error)

	// Create stores a new branch. A branch whose code is already taken is
	// rejected with a 400 CRUDError.
	Create(ctx context.Context, branch *domain.Branch) (*domain.Branch, error)

	// Update overwrites the name of the branch identified by code.
	Update(ctx context.Context, code string, branch *domain.Branch) (*domain.Branch, error)
}

const (
	msgBranchNotFound      = "Branch not found"
	msgBranchAlreadyExists = "Branch already exists"
)

// branchServiceImpl implements the BranchService interface
type branchServiceImpl struct {
	branchStore store.BranchStore
	logger      *slog.Logger
	opts        options
}

// NewBranchService creates a new BranchService.
// It returns an error if the store is nil.
func NewBranchService(
	branchStore store.BranchStore,
	logger *slog.Logger,
	opts ...Option,
) (BranchService, error) {
	if branchStore == nil {
		return nil, errors.New("branchStore cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &branchServiceImpl{
		branchStore: branchStore,
		logger:      logger.With(slog.String("component", "branch_service")),
		opts:        applyOptions(opts),
	}, nil
}

// GetAll implements BranchService.GetAll
func (s *branchServiceImpl) GetAll(ctx context.Context) ([]*domain.Branch, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	branches, err := s.branchStore.FindAll(ctx)
	if err != nil {
		log.Error("failed to list branches", slog.String("error", err.Error()))
		return nil, readFailure("failed to list branches", err)
	}
	return branches, nil
}

// LookByCode implements BranchService.LookByCode
func (s *branchServiceImpl) LookByCode(ctx context.Context, code string) (*domain.Branch, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	branch, err := s.branchStore.FindByCode(ctx, code)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("branch not found", slog.String("code", code))
			return nil, domain.NewNotFoundError(msgBranchNotFound)
		}
		log.Error("failed to look up branch by code",
			slog.String("error", err.Error()),
			slog.String("code", code))
		return nil, readFailure("failed to look up branch", err)
	}
	return branch, nil
}

// LookByID implements BranchService.LookByID
func (s *branchServiceImpl) LookByID(ctx context.Context, id string) (*domain.Branch, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	branch, err := s.branchStore.FindByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("branch not found", slog.String("branch_id", id))
			return nil, domain.NewNotFoundError(msgBranchNotFound)
		}
		log.Error("failed to look up branch by id",
			slog.String("error", err.Error()),
			slog.String("branch_id", id))
		return nil, readFailure("failed to look up branch", err)
	}
	return branch, nil
}

// Create implements BranchService.Create
func (s *branchServiceImpl) Create(ctx context.Context, branch *domain.Branch) (*domain.Branch, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if branch == nil {
		return nil, domain.NewCRUDError(domain.CodeBadRequest, "branch is required", domain.ErrValidation)
	}
	if err := branch.Validate(); err != nil {
		log.Warn("branch validation failed", slog.String("error", err.Error()))
		return nil, invalidEntity(err)
	}

	_, err := s.branchStore.FindByCode(ctx, branch.Code)
	switch {
	case err == nil:
		log.Info("branch code already taken", slog.String("code", branch.Code))
		return nil, domain.NewAlreadyExistsError(msgBranchAlreadyExists)
	case !store.IsNotFoundError(err):
		log.Error("failed to check branch existence",
			slog.String("error", err.Error()),
			slog.String("code", branch.Code))
		return nil, writeFailure("failed to create branch", err)
	}

	created := *branch
	if created.ID == "" {
		created.ID = s.opts.newID()
	}

	if err := s.branchStore.Save(ctx, &created); err != nil {
		if store.IsDuplicateError(err) {
			log.Info("branch code taken by a concurrent create", slog.String("code", created.Code))
			return nil, domain.NewAlreadyExistsError(msgBranchAlreadyExists)
		}
		log.Error("failed to create branch",
			slog.String("error", err.Error()),
			slog.String("code", created.Code))
		return nil, writeFailure("failed to create branch", err)
	}

	log.Info("branch created",
		slog.String("branch_id", created.ID),
		slog.String("code", created.Code))
	return &created, nil
}

// Update implements BranchService.Update
func (s *branchServiceImpl) Update(
	ctx context.Context,
	code string,
	branch *domain.Branch,
) (*domain.Branch, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if branch == nil {
		return nil, domain.NewCRUDError(domain.CodeBadRequest, "branch is required", domain.ErrValidation)
	}

	existing, err := s.LookByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	existing.ApplyUpdate(branch)
	if err := existing.Validate(); err != nil {
		log.Warn("branch validation failed", slog.String("error", err.Error()))
		return nil, invalidEntity(err)
	}

	if err := s.branchStore.Save(ctx, existing); err != nil {
		log.Error("failed to update branch",
			slog.String("error", err.Error()),
			slog.String("code", code))
		return nil, writeFailure("failed to update branch", err)
	}

	log.Info("branch updated", slog.String("branch_id", existing.ID), slog.String("code", code))
	return existing, nil
}
