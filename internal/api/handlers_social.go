package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pulsemark/engage/internal/service/social"
	"github.com/pulsemark/engage/internal/validate"
)

// CreateSocialPost handles POST /api/social/posts.
func (h *Handlers) CreateSocialPost(w http.ResponseWriter, r *http.Request) {
	var input social.CreatePostInput
	if err := validate.Decode(r.Body, &input); err != nil {
		respondServiceError(w, err)
		return
	}

	p, err := h.social.CreatePost(r.Context(), input)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, p)
}

// ScheduleSocialPost handles POST /api/social/posts/schedule. The body is the
// same shape as post creation but scheduled_at is mandatory.
func (h *Handlers) ScheduleSocialPost(w http.ResponseWriter, r *http.Request) {
	var input social.CreatePostInput
	if err := validate.Decode(r.Body, &input); err != nil {
		respondServiceError(w, err)
		return
	}

	p, err := h.social.SchedulePost(r.Context(), input)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, p)
}

// TrackSocialInteraction handles POST /api/social/interactions.
func (h *Handlers) TrackSocialInteraction(w http.ResponseWriter, r *http.Request) {
	var input social.TrackInteractionInput
	if err := validate.Decode(r.Body, &input); err != nil {
		respondServiceError(w, err)
		return
	}

	i, err := h.social.TrackInteraction(r.Context(), input)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, i)
}

// GetSocialPost handles GET /api/social/posts/{postID}.
func (h *Handlers) GetSocialPost(w http.ResponseWriter, r *http.Request) {
	p, err := h.social.GetPost(r.Context(), chi.URLParam(r, "postID"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// SocialPostAnalytics handles GET /api/social/posts/{postID}/analytics.
// Unknown post IDs return all-zero counts.
func (h *Handlers) SocialPostAnalytics(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")

	a, err := h.social.PostAnalytics(r.Context(), postID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, a)
}
