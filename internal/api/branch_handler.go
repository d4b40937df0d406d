package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/banquito/backoffice/internal/api/shared"
	"github.com/banquito/backoffice/internal/domain"
	"github.com/banquito/backoffice/internal/platform/logger"
	"github.com/banquito/backoffice/internal/service"
	"github.com/go-chi/chi/v5"
)

// BranchHandler handles branch-related HTTP requests
type BranchHandler struct {
	branchService service.BranchService
	logger        *slog.Logger
}

// NewBranchHandler creates a new BranchHandler
func NewBranchHandler(branchService service.BranchService, logger *slog.Logger) *BranchHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &BranchHandler{
		branchService: branchService,
		logger:        logger.With(slog.String("component", "branch_handler")),
	}
}

// RegisterRoutes mounts the branch endpoints on r.
func (h *BranchHandler) RegisterRoutes(r chi.Router) {
	r.Route("/branches", func(r chi.Router) {
		r.Get("/", h.ListBranches)
		r.Post("/", h.CreateBranch)
		r.Get("/id/{id}", h.GetBranchByID)
		r.Get("/{code}", h.GetBranchByCode)
		r.Put("/{code}", h.UpdateBranch)
	})
}

// ListBranches handles GET /branches requests
func (h *BranchHandler) ListBranches(w http.ResponseWriter, r *http.Request) {
	branches, err := h.branchService.GetAll(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	response := make([]BranchDTO, 0, len(branches))
	for _, b := range branches {
		response = append(response, fromBranch(b))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// GetBranchByCode handles GET /branches/{code} requests
func (h *BranchHandler) GetBranchByCode(w http.ResponseWriter, r *http.Request) {
	code, err := getPathParam(r, "code")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	branch, err := h.branchService.LookByCode(r.Context(), code)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, fromBranch(branch))
}

// GetBranchByID handles GET /branches/id/{id} requests
func (h *BranchHandler) GetBranchByID(w http.ResponseWriter, r *http.Request) {
	id, err := getPathParam(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	branch, err := h.branchService.LookByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, fromBranch(branch))
}

// CreateBranch handles POST /branches requests
func (h *BranchHandler) CreateBranch(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req BranchDTO
	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	branch, err := h.branchService.Create(r.Context(), toBranch(&req))
	if err != nil {
		respondCreateError(w, r, err)
		return
	}

	log.Debug("branch created via API", slog.String("code", branch.Code))
	shared.RespondWithJSON(w, r, http.StatusOK, fromBranch(branch))
}

// UpdateBranch handles PUT /branches/{code} requests
func (h *BranchHandler) UpdateBranch(w http.ResponseWriter, r *http.Request) {
	code, err := getPathParam(r, "code")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req BranchDTO
	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if err := shared.ValidatePartial(&req, "Name"); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	branch, err := h.branchService.Update(r.Context(), code, toBranch(&req))
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, fromBranch(branch))
}

// respondCreateError answers a failed create. Every domain error is a 400 on
// create; other errors keep their mapped status. Key collisions log at WARN.
func respondCreateError(w http.ResponseWriter, r *http.Request, err error) {
	if _, ok := domain.AsCRUDError(err); ok {
		var opts []shared.ResponseOption
		if errors.Is(err, domain.ErrAlreadyExists) {
			opts = append(opts, shared.WithElevatedLogLevel())
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, GetSafeErrorMessage(err), err, opts...)
		return
	}
	HandleAPIError(w, r, err, "")
}
