// Package rest exposes the analysis pipeline over HTTP/JSON.
package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/moodtune-labs/moodtune/internal/core/domain"
	"github.com/moodtune-labs/moodtune/internal/core/services"
	"github.com/moodtune-labs/moodtune/internal/observability/metrics"
)

const serviceName = "moodtune-api"

// Handler manages the HTTP interface for the application.
type Handler struct {
	svc    *services.Orchestrator
	router chi.Router
	logger *slog.Logger
}

// NewHandler initializes the HTTP adapter and sets up routes. httpMetrics
// may be nil, in which case no /metrics endpoint is exposed.
func NewHandler(svc *services.Orchestrator, httpMetrics *metrics.HTTPMetrics, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Handler{
		svc:    svc,
		router: chi.NewRouter(),
		logger: logger,
	}

	h.router.Use(middleware.RequestID)
	h.router.Use(middleware.Recoverer)
	if httpMetrics != nil {
		h.router.Use(func(next http.Handler) http.Handler {
			return httpMetrics.Middleware(serviceName, next)
		})
		h.router.Method(http.MethodGet, "/metrics", httpMetrics.Handler())
	}

	h.routes()
	return h
}

// ServeHTTP satisfies the http.Handler interface.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) routes() {
	h.router.Get("/health", h.HealthCheck)
	h.router.Route("/api", func(r chi.Router) {
		r.Post("/analyze", h.Analyze)
		r.Get("/history", h.History)
		r.Get("/analysis/{id}", h.GetAnalysis)
		r.Get("/quote/{emotion}", h.Quote)
	})
}

// HealthCheck is a simple endpoint to verify the API is running.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// respondError maps domain errors to HTTP statuses. Validation failures get
// 400, unknown ids get 404, everything else is a generic 500 that never
// leaks internals.
func (h *Handler) respondError(w http.ResponseWriter, err error, message string) {
	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		writeError(w, http.StatusBadRequest, message, validationErr.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "Analysis not found", "")
	default:
		h.logger.Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, message, "internal error")
	}
}
