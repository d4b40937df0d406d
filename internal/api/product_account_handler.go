package api

import (
	"log/slog"
	"net/http"

	"github.com/banquito/backoffice/internal/api/shared"
	"github.com/banquito/backoffice/internal/platform/logger"
	"github.com/banquito/backoffice/internal/service"
	"github.com/go-chi/chi/v5"
)

// ProductAccountHandler handles product account HTTP requests
type ProductAccountHandler struct {
	accountService service.ProductAccountService
	logger         *slog.Logger
}

// NewProductAccountHandler creates a new ProductAccountHandler
func NewProductAccountHandler(
	accountService service.ProductAccountService,
	logger *slog.Logger,
) *ProductAccountHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProductAccountHandler{
		accountService: accountService,
		logger:         logger.With(slog.String("component", "product_account_handler")),
	}
}

// RegisterRoutes mounts the product account endpoints on r.
func (h *ProductAccountHandler) RegisterRoutes(r chi.Router) {
	r.Route("/product-accounts", func(r chi.Router) {
		r.Get("/", h.ListProductAccounts)
		r.Post("/", h.CreateProductAccount)
		r.Get("/{id}", h.GetProductAccount)
		r.Put("/{id}", h.UpdateProductAccount)
		r.Delete("/{id}", h.InactivateProductAccount)
	})
}

// ListProductAccounts handles GET /product-accounts requests
func (h *ProductAccountHandler) ListProductAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accountService.ListAllActives(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	response := make([]ProductAccountDTO, 0, len(accounts))
	for _, a := range accounts {
		response = append(response, fromProductAccount(a))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// GetProductAccount handles GET /product-accounts/{id} requests
func (h *ProductAccountHandler) GetProductAccount(w http.ResponseWriter, r *http.Request) {
	id, err := getPathParam(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	account, err := h.accountService.ObtainByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, fromProductAccount(account))
}

// CreateProductAccount handles POST /product-accounts requests
func (h *ProductAccountHandler) CreateProductAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req ProductAccountDTO
	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	account, err := h.accountService.Create(r.Context(), toProductAccount(&req))
	if err != nil {
		respondCreateError(w, r, err)
		return
	}

	log.Debug("product account created via API", slog.String("product_account_id", account.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, fromProductAccount(account))
}

// UpdateProductAccount handles PUT /product-accounts/{id} requests
func (h *ProductAccountHandler) UpdateProductAccount(w http.ResponseWriter, r *http.Request) {
	id, err := getPathParam(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req ProductAccountDTO
	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if err := shared.ValidatePartial(&req, "Name"); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	account, err := h.accountService.Update(r.Context(), id, toProductAccount(&req))
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, fromProductAccount(account))
}

// InactivateProductAccount handles DELETE /product-accounts/{id} requests
func (h *ProductAccountHandler) InactivateProductAccount(w http.ResponseWriter, r *http.Request) {
	id, err := getPathParam(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.accountService.Inactivate(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithStatus(w, r, http.StatusOK)
}
