package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/banquito/backoffice/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// APIPrefix is the path prefix of every resource endpoint.
const APIPrefix = "/api/v1"

// healthCheckTimeout bounds the dependency check behind /health.
const healthCheckTimeout = 2 * time.Second

// RouteRegistrar is implemented by the API handlers.
type RouteRegistrar interface {
	RegisterRoutes(r chi.Router)
}

// RouterConfig holds what NewRouter needs to assemble a service's router.
type RouterConfig struct {
	// ServiceName labels the metrics of this service.
	ServiceName string
	Logger      *slog.Logger
	Handlers    []RouteRegistrar
	// HealthCheck, when set, is run by /health; an error answers 503.
	HealthCheck func(ctx context.Context) error
}

// NewRouter creates the router with the standard middleware stack, the
// resource handlers under APIPrefix, /health and /metrics.
func NewRouter(cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	metrics := middleware.NewMetrics(cfg.ServiceName)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.TraceMiddleware(logger))
	r.Use(metrics.Middleware)

	r.Route(APIPrefix, func(r chi.Router) {
		for _, h := range cfg.Handlers {
			h.RegisterRoutes(r)
		}
	})

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		status, body := http.StatusOK, "OK"
		if cfg.HealthCheck != nil {
			ctx, cancel := context.WithTimeout(req.Context(), healthCheckTimeout)
			defer cancel()
			if err := cfg.HealthCheck(ctx); err != nil {
				logger.Warn("health check failed", slog.String("error", err.Error()))
				status, body = http.StatusServiceUnavailable, "UNAVAILABLE"
			}
		}
		w.WriteHeader(status)
		if _, err := w.Write([]byte(body)); err != nil {
			logger.Error("failed to write health check response", slog.String("error", err.Error()))
		}
	})

	r.Handle("/metrics", metrics.Handler())

	return r
}
