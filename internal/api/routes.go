package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// SetupRoutes configures all API routes.
func SetupRoutes(h *Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", h.HealthCheck)

	r.Route("/api", func(r chi.Router) {
		r.Route("/social", func(r chi.Router) {
			r.Post("/posts", h.CreateSocialPost)
			r.Post("/posts/schedule", h.ScheduleSocialPost)
			r.Get("/posts/{postID}", h.GetSocialPost)
			r.Get("/posts/{postID}/analytics", h.SocialPostAnalytics)
			r.Post("/interactions", h.TrackSocialInteraction)
		})

		r.Route("/email", func(r chi.Router) {
			r.Post("/templates", h.CreateEmailTemplate)
			r.Get("/templates/{templateID}", h.GetEmailTemplate)
			r.Post("/templates/{templateID}/preview", h.PreviewEmailTemplate)
			r.Post("/campaigns", h.CreateEmailCampaign)
			r.Get("/campaigns/{campaignID}", h.GetEmailCampaign)
			r.Post("/campaigns/{campaignID}/send", h.SendEmailCampaign)
			r.Get("/campaigns/{campaignID}/analytics", h.CampaignAnalytics)
		})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusNotFound, "route not found")
	})

	return r
}
