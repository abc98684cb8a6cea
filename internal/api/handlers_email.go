package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pulsemark/engage/internal/service/campaign"
	"github.com/pulsemark/engage/internal/validate"
)

// CreateEmailTemplate handles POST /api/email/templates.
func (h *Handlers) CreateEmailTemplate(w http.ResponseWriter, r *http.Request) {
	var input campaign.CreateTemplateInput
	if err := validate.Decode(r.Body, &input); err != nil {
		respondServiceError(w, err)
		return
	}

	t, err := h.campaign.CreateTemplate(r.Context(), input)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, t)
}

// GetEmailTemplate handles GET /api/email/templates/{templateID}.
func (h *Handlers) GetEmailTemplate(w http.ResponseWriter, r *http.Request) {
	t, err := h.campaign.GetTemplate(r.Context(), chi.URLParam(r, "templateID"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, t)
}

type previewRequest struct {
	Context map[string]any `json:"context"`
}

type previewResponse struct {
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// PreviewEmailTemplate handles POST /api/email/templates/{templateID}/preview.
// Previews run the full template language with filters, unlike campaign sends
// which substitute declared variables only.
func (h *Handlers) PreviewEmailTemplate(w http.ResponseWriter, r *http.Request) {
	templateID := chi.URLParam(r, "templateID")

	var req previewRequest
	if err := validate.Decode(r.Body, &req); err != nil {
		respondServiceError(w, err)
		return
	}

	t, err := h.campaign.GetTemplate(r.Context(), templateID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	subject, err := h.preview.Preview(t.Subject, req.Context)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	html, err := h.preview.Preview(t.Content, req.Context)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, previewResponse{Subject: subject, HTML: html})
}

// CreateEmailCampaign handles POST /api/email/campaigns.
func (h *Handlers) CreateEmailCampaign(w http.ResponseWriter, r *http.Request) {
	var input campaign.CreateCampaignInput
	if err := validate.Decode(r.Body, &input); err != nil {
		respondServiceError(w, err)
		return
	}

	c, err := h.campaign.CreateCampaign(r.Context(), input)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, c)
}

// GetEmailCampaign handles GET /api/email/campaigns/{campaignID}.
func (h *Handlers) GetEmailCampaign(w http.ResponseWriter, r *http.Request) {
	c, err := h.campaign.GetCampaign(r.Context(), chi.URLParam(r, "campaignID"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

// SendEmailCampaign handles POST /api/email/campaigns/{campaignID}/send.
// The response carries per-recipient outcome counts. A failed status update
// after delivery returns 500 with the outcome attached so the caller can see
// what already went out.
func (h *Handlers) SendEmailCampaign(w http.ResponseWriter, r *http.Request) {
	campaignID := chi.URLParam(r, "campaignID")

	out, err := h.campaign.Send(r.Context(), campaignID)
	if h.analytics != nil && out != nil {
		h.analytics.Invalidate(r.Context(), campaignID)
	}
	if err != nil {
		if out != nil {
			respondJSON(w, http.StatusInternalServerError, map[string]interface{}{
				"error":   err.Error(),
				"outcome": out,
			})
			return
		}
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, out)
}
