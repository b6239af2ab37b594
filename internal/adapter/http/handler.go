package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"royale-campaigns/internal/adapter/usecase"
	"royale-campaigns/internal/core/port"
)

// Handler contains dependencies and routes. It is the inbound HTTP adapter:
// checkout and application usecases for the public site, the repositories
// for the admin surface, and a structured logger. Routes are registered on
// a chi.Router for convenient method handling.
type Handler struct {
	checkout      port.CheckoutUseCase
	applications  port.ApplicationUseCase
	campaigns     port.CampaignRepository
	records       port.ApplicationRepository
	adminPassword string
	logger        *slog.Logger
	router        chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(
	checkout port.CheckoutUseCase,
	applications port.ApplicationUseCase,
	campaigns port.CampaignRepository,
	records port.ApplicationRepository,
	adminPassword string,
	logger *slog.Logger,
) *Handler {
	h := &Handler{
		checkout:      checkout,
		applications:  applications,
		campaigns:     campaigns,
		records:       records,
		adminPassword: adminPassword,
		logger:        logger,
	}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/checkout", h.handleCheckoutStart)
		r.Route("/checkout/{session}", func(r chi.Router) {
			r.Get("/", h.handleCheckoutState)
			r.Put("/details", h.handleCheckoutDetails)
			r.Put("/selections", h.handleCheckoutSelections)
			r.Post("/next", h.handleCheckoutNext)
			r.Post("/previous", h.handleCheckoutPrevious)
			r.Post("/pay", h.handleCheckoutPay)
		})

		r.Route("/applications", func(r chi.Router) {
			r.Post("/academy", h.handleAcademyEnrollment)
			r.Post("/models", h.handleModelApplication)
			r.Post("/brands", h.handleBrandApplication)
			r.Post("/inquiries", h.handleServiceInquiry)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(h.requireAdmin)
			r.Get("/stats", h.handleAdminStats)
			r.Get("/campaigns", h.handleAdminCampaigns)
			r.Get("/campaigns/export", h.handleCampaignExportCSV)
			r.Get("/campaigns/export.xlsx", h.handleCampaignExportXLSX)
			r.Get("/campaigns/{id}", h.handleAdminCampaignGet)
			r.Delete("/campaigns/{id}", h.handleAdminCampaignDelete)
			r.Get("/applications/{kind}", h.handleAdminApplications)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps usecase errors onto HTTP statuses. Validation and guard
// violations are client errors; anything unrecognised is logged and hidden
// behind a 500.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var status int
	switch {
	case errors.Is(err, usecase.ErrSessionNotFound), errors.Is(err, port.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, usecase.ErrDetailsIncomplete),
		errors.Is(err, usecase.ErrNoGoalsSelected),
		errors.Is(err, usecase.ErrInvalidSelection),
		errors.Is(err, usecase.ErrValidation):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, usecase.ErrCheckoutCompleted),
		errors.Is(err, usecase.ErrPaymentRequired),
		errors.Is(err, usecase.ErrNotAtReview),
		errors.Is(err, usecase.ErrPaymentInFlight):
		status = http.StatusConflict
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}
	h.writeJSON(w, status, map[string]string{"error": err.Error()})
}
