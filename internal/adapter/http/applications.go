package httpadapter

import (
	"encoding/json"
	"net/http"

	"royale-campaigns/internal/core/domain"
)

type academyEnrollmentReq struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Age        string `json:"age"`
	Experience string `json:"experience"`
	Goals      string `json:"goals"`
}

// handleAcademyEnrollment stores an academy enrollment lead.
func (h *Handler) handleAcademyEnrollment(w http.ResponseWriter, r *http.Request) {
	var req academyEnrollmentReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	err := h.applications.SubmitAcademyEnrollment(r.Context(), domain.AcademyEnrollment{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Age:        req.Age,
		Experience: req.Experience,
		Goals:      req.Goals,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

type modelApplicationReq struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Age          string `json:"age"`
	Location     string `json:"location"`
	Height       string `json:"height"`
	Weight       string `json:"weight"`
	Measurements string `json:"measurements"`
	Experience   string `json:"experience"`
	Portfolio    string `json:"portfolio"`
}

// handleModelApplication stores a model application lead.
func (h *Handler) handleModelApplication(w http.ResponseWriter, r *http.Request) {
	var req modelApplicationReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	err := h.applications.SubmitModelApplication(r.Context(), domain.ModelApplication{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Age:          req.Age,
		Location:     req.Location,
		Height:       req.Height,
		Weight:       req.Weight,
		Measurements: req.Measurements,
		Experience:   req.Experience,
		Portfolio:    req.Portfolio,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

type brandApplicationReq struct {
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	Age               string `json:"age"`
	Location          string `json:"location"`
	CompanyName       string `json:"companyName"`
	Industry          string `json:"industry"`
	Budget            string `json:"budget"`
	Goals             string `json:"goals"`
	Timeline          string `json:"timeline"`
	PreviousCampaigns string `json:"previousCampaigns"`
}

// handleBrandApplication stores a brand partnership lead.
func (h *Handler) handleBrandApplication(w http.ResponseWriter, r *http.Request) {
	var req brandApplicationReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	err := h.applications.SubmitBrandApplication(r.Context(), domain.BrandApplication{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Email:             req.Email,
		Phone:             req.Phone,
		Age:               req.Age,
		Location:          req.Location,
		CompanyName:       req.CompanyName,
		Industry:          req.Industry,
		Budget:            req.Budget,
		Goals:             req.Goals,
		Timeline:          req.Timeline,
		PreviousCampaigns: req.PreviousCampaigns,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

type serviceInquiryReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// handleServiceInquiry stores a contact-form message.
func (h *Handler) handleServiceInquiry(w http.ResponseWriter, r *http.Request) {
	var req serviceInquiryReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	err := h.applications.SubmitServiceInquiry(r.Context(), domain.ServiceInquiry{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}
