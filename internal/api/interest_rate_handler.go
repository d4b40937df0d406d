package api

import (
	"log/slog"
	"net/http"

	"github.com/banquito/backoffice/internal/api/shared"
	"github.com/banquito/backoffice/internal/platform/logger"
	"github.com/banquito/backoffice/internal/service"
	"github.com/go-chi/chi/v5"
)

// InterestRateHandler handles interest rate HTTP requests
type InterestRateHandler struct {
	rateService service.InterestRateService
	logger      *slog.Logger
}

// NewInterestRateHandler creates a new InterestRateHandler
func NewInterestRateHandler(rateService service.InterestRateService, logger *slog.Logger) *InterestRateHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &InterestRateHandler{
		rateService: rateService,
		logger:      logger.With(slog.String("component", "interest_rate_handler")),
	}
}

// RegisterRoutes mounts the interest rate endpoints on r.
func (h *InterestRateHandler) RegisterRoutes(r chi.Router) {
	r.Route("/interest-rates", func(r chi.Router) {
		r.Get("/", h.ListInterestRates)
		r.Post("/", h.CreateInterestRate)
		r.Get("/{id}", h.GetInterestRate)
		r.Put("/{id}", h.UpdateInterestRate)
		r.Delete("/{id}", h.InactivateInterestRate)
	})
}

// ListInterestRates handles GET /interest-rates requests
func (h *InterestRateHandler) ListInterestRates(w http.ResponseWriter, r *http.Request) {
	rates, err := h.rateService.ListAllActives(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	response := make([]InterestRateDTO, 0, len(rates))
	for _, rate := range rates {
		response = append(response, fromInterestRate(rate))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// GetInterestRate handles GET /interest-rates/{id} requests
func (h *InterestRateHandler) GetInterestRate(w http.ResponseWriter, r *http.Request) {
	id, err := getPathInt(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "Invalid interest rate id")
		return
	}

	rate, err := h.rateService.ObtainByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, fromInterestRate(rate))
}

// CreateInterestRate handles POST /interest-rates requests
func (h *InterestRateHandler) CreateInterestRate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req InterestRateDTO
	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	rate, err := h.rateService.Create(r.Context(), toInterestRate(&req))
	if err != nil {
		respondCreateError(w, r, err)
		return
	}

	log.Debug("interest rate created via API", slog.Int("interest_rate_id", rate.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, fromInterestRate(rate))
}

// UpdateInterestRate handles PUT /interest-rates/{id} requests
func (h *InterestRateHandler) UpdateInterestRate(w http.ResponseWriter, r *http.Request) {
	id, err := getPathInt(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "Invalid interest rate id")
		return
	}

	var req InterestRateDTO
	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	rate, err := h.rateService.Update(r.Context(), id, toInterestRate(&req))
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, fromInterestRate(rate))
}

// InactivateInterestRate handles DELETE /interest-rates/{id} requests
func (h *InterestRateHandler) InactivateInterestRate(w http.ResponseWriter, r *http.Request) {
	id, err := getPathInt(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "Invalid interest rate id")
		return
	}

	if err := h.rateService.Inactivate(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithStatus(w, r, http.StatusOK)
}
