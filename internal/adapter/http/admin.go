package httpadapter

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"royale-campaigns/internal/core/domain"
	"royale-campaigns/internal/core/port"
	"royale-campaigns/internal/core/pricing"
)

// requireAdmin gates the dashboard routes behind the shared password sent
// in the X-Admin-Password header. This mirrors the site's original gate
// and is not an authentication scheme.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		supplied := r.Header.Get("X-Admin-Password")
		if subtle.ConstantTimeCompare([]byte(supplied), []byte(h.adminPassword)) != 1 {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type adminStatsResponse struct {
	Total            int64  `json:"total"`
	Completed        int64  `json:"completed"`
	Pending          int64  `json:"pending"`
	Failed           int64  `json:"failed"`
	CompletedRevenue int64  `json:"completedRevenue"`
	FormattedRevenue string `json:"formattedRevenue"`
}

// handleAdminStats returns the dashboard overview numbers.
func (h *Handler) handleAdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.campaigns.Stats(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, adminStatsResponse{
		Total:            stats.Total,
		Completed:        stats.Completed,
		Pending:          stats.Pending,
		Failed:           stats.Failed,
		CompletedRevenue: stats.CompletedRevenue,
		FormattedRevenue: pricing.FormatCurrency(stats.CompletedRevenue),
	})
}

type adminCampaign struct {
	ID                 string                     `json:"id"`
	FullName           string                     `json:"fullName"`
	BrandName          string                     `json:"brandName"`
	Email              string                     `json:"email"`
	Phone              string                     `json:"phone"`
	AboutProduct       string                     `json:"aboutProduct"`
	ProductLink        string                     `json:"productLink"`
	UploadedFiles      []string                   `json:"uploadedFiles"`
	CampaignGoals      []domain.CampaignGoal      `json:"campaignGoals"`
	AdvertisementTypes []domain.AdvertisementType `json:"advertisementTypes"`
	TotalPrice         int64                      `json:"totalPrice"`
	ExpectedResults    domain.ExpectedResults     `json:"expectedResults"`
	PaymentStatus      domain.PaymentStatus       `json:"paymentStatus"`
	PaymentReference   string                     `json:"paymentReference,omitempty"`
	CreatedAt          time.Time                  `json:"createdAt"`
	UpdatedAt          time.Time                  `json:"updatedAt"`
}

func toAdminCampaign(c domain.Campaign) adminCampaign {
	return adminCampaign{
		ID:                 c.ID,
		FullName:           c.FullName,
		BrandName:          c.BrandName,
		Email:              c.Email,
		Phone:              c.Phone,
		AboutProduct:       c.AboutProduct,
		ProductLink:        c.ProductLink,
		UploadedFiles:      c.UploadedFiles,
		CampaignGoals:      c.CampaignGoals,
		AdvertisementTypes: c.AdvertisementTypes,
		TotalPrice:         c.TotalPrice,
		ExpectedResults:    c.ExpectedResults,
		PaymentStatus:      c.PaymentStatus,
		PaymentReference:   c.PaymentReference,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

// handleAdminCampaigns lists campaigns, optionally filtered by `status`
// and a free-text `q` over name, brand and email.
func (h *Handler) handleAdminCampaigns(w http.ResponseWriter, r *http.Request) {
	filter, ok := campaignFilterFromQuery(w, r)
	if !ok {
		return
	}
	campaigns, err := h.campaigns.List(r.Context(), filter)
	if err != nil {
		h.writeError(w, err)
		return
	}
	out := make([]adminCampaign, 0, len(campaigns))
	for _, c := range campaigns {
		out = append(out, toAdminCampaign(c))
	}
	h.writeJSON(w, http.StatusOK, out)
}

// handleAdminCampaignGet returns one campaign record for the dashboard
// detail view.
func (h *Handler) handleAdminCampaignGet(w http.ResponseWriter, r *http.Request) {
	c, err := h.campaigns.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toAdminCampaign(*c))
}

// handleAdminCampaignDelete removes a campaign record. Deletion is the
// explicit admin action from the campaign lifecycle.
func (h *Handler) handleAdminCampaignDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.campaigns.Delete(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleAdminApplications lists lead-form records of one kind: academy,
// models, brands or inquiries.
func (h *Handler) handleAdminApplications(w http.ResponseWriter, r *http.Request) {
	var (
		out interface{}
		err error
	)
	switch kind := chi.URLParam(r, "kind"); kind {
	case "academy":
		out, err = h.records.ListAcademyEnrollments(r.Context())
	case "models":
		out, err = h.records.ListModelApplications(r.Context())
	case "brands":
		out, err = h.records.ListBrandApplications(r.Context())
	case "inquiries":
		out, err = h.records.ListServiceInquiries(r.Context())
	default:
		http.Error(w, "unknown application kind", http.StatusBadRequest)
		return
	}
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, out)
}

func campaignFilterFromQuery(w http.ResponseWriter, r *http.Request) (port.CampaignFilter, bool) {
	var filter port.CampaignFilter
	if status := r.URL.Query().Get("status"); status != "" {
		switch domain.PaymentStatus(status) {
		case domain.PaymentPending, domain.PaymentCompleted, domain.PaymentFailed:
			filter.Status = domain.PaymentStatus(status)
		default:
			http.Error(w, "invalid status", http.StatusBadRequest)
			return port.CampaignFilter{}, false
		}
	}
	filter.Search = r.URL.Query().Get("q")
	return filter, true
}
