package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CampaignAnalytics handles GET /api/email/campaigns/{campaignID}/analytics.
func (h *Handlers) CampaignAnalytics(w http.ResponseWriter, r *http.Request) {
	if h.analytics == nil {
		respondError(w, http.StatusServiceUnavailable, "analytics not configured")
		return
	}
	campaignID := chi.URLParam(r, "campaignID")

	a, err := h.analytics.CampaignPerformance(r.Context(), campaignID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, a)
}
