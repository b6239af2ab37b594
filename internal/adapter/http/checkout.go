package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"royale-campaigns/internal/core/port"
)

type sessionResponse struct {
	SessionID string `json:"sessionId"`
	Step      string `json:"step"`
}

type stateResponse struct {
	SessionID  string                  `json:"sessionId"`
	Step       string                  `json:"step"`
	Details    port.CampaignDetails    `json:"details"`
	Selections port.CampaignSelections `json:"selections"`
	Quote      port.Quote              `json:"quote"`
	CampaignID string                  `json:"campaignId,omitempty"`
}

type payResponse struct {
	Status     string `json:"status"`
	CampaignID string `json:"campaignId"`
	Reference  string `json:"reference,omitempty"`
	Message    string `json:"message,omitempty"`
	Step       string `json:"step"`
}

// handleCheckoutStart opens a fresh checkout session at the details step.
func (h *Handler) handleCheckoutStart(w http.ResponseWriter, r *http.Request) {
	id := h.checkout.Start()
	h.writeJSON(w, http.StatusCreated, sessionResponse{SessionID: id, Step: port.StepDetails.String()})
}

// handleCheckoutState returns the session snapshot with a live quote. The
// quote is recomputed on every read, so selection edits reprice instantly.
func (h *Handler) handleCheckoutState(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "session")
	view, err := h.checkout.Session(id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, stateResponse{
		SessionID:  id,
		Step:       view.Step.String(),
		Details:    view.Details,
		Selections: view.Selections,
		Quote:      view.Quote,
		CampaignID: view.CampaignID,
	})
}

// handleCheckoutDetails replaces the step-1 form fields.
func (h *Handler) handleCheckoutDetails(w http.ResponseWriter, r *http.Request) {
	var details port.CampaignDetails
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.checkout.UpdateDetails(chi.URLParam(r, "session"), details); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleCheckoutSelections replaces the step-2 goal/ad-type choices.
func (h *Handler) handleCheckoutSelections(w http.ResponseWriter, r *http.Request) {
	var selections port.CampaignSelections
	if err := json.NewDecoder(r.Body).Decode(&selections); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.checkout.UpdateSelections(chi.URLParam(r, "session"), selections); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleCheckoutNext advances the session one step, enforcing the guards.
func (h *Handler) handleCheckoutNext(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "session")
	step, err := h.checkout.Advance(id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, sessionResponse{SessionID: id, Step: step.String()})
}

// handleCheckoutPrevious moves the session one step back, losslessly.
func (h *Handler) handleCheckoutPrevious(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "session")
	step, err := h.checkout.Back(id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, sessionResponse{SessionID: id, Step: step.String()})
}

// handleCheckoutPay runs the payment leg. The request blocks until the
// collector reports a terminal outcome; closing the connection cancels the
// hosted payment wait.
func (h *Handler) handleCheckoutPay(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "session")
	outcome, err := h.checkout.Pay(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	view, err := h.checkout.Session(id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, payResponse{
		Status:     string(outcome.Status),
		CampaignID: outcome.CampaignID,
		Reference:  outcome.Reference,
		Message:    outcome.Message,
		Step:       view.Step.String(),
	})
}
