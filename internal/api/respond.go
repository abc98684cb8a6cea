package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pulsemark/engage/internal/service/campaign"
	"github.com/pulsemark/engage/internal/service/social"
	"github.com/pulsemark/engage/internal/validate"
)

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError maps service-layer errors to HTTP statuses:
// validation failures and missing preconditions are the caller's fault,
// unknown entities are 404, anything else is a store/provider failure.
func respondServiceError(w http.ResponseWriter, err error) {
	if ve, ok := validate.AsError(err); ok {
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":      "validation failed",
			"violations": ve.Violations,
		})
		return
	}

	switch {
	case errors.Is(err, social.ErrNotFound),
		errors.Is(err, campaign.ErrNotFound),
		errors.Is(err, campaign.ErrTemplateNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, social.ErrScheduleRequired),
		errors.Is(err, campaign.ErrScheduleRequired):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, campaign.ErrSendInProgress):
		respondError(w, http.StatusConflict, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, err.Error())
	}
}
