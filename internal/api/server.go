// Package api exposes the HTTP surface: social post management, email
// templates and campaigns, and engagement analytics.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pulsemark/engage/internal/service/analytics"
	"github.com/pulsemark/engage/internal/service/campaign"
	"github.com/pulsemark/engage/internal/service/social"
)

// Server represents the API server.
type Server struct {
	handler  http.Handler
	handlers *Handlers
	router   *chi.Mux
	server   *http.Server
}

// NewServer creates a new API server wired to the given services.
func NewServer(socialSvc *social.Service, campaignSvc *campaign.Service, analyticsSvc *analytics.Service) *Server {
	handlers := NewHandlers(socialSvc, campaignSvc, analyticsSvc)
	router := SetupRoutes(handlers)

	return &Server{
		handler:  router,
		handlers: handlers,
		router:   router,
		server: &http.Server{
			Handler: router,
			// Campaign sends fan out inline, so write timeout leaves room
			// for large recipient lists.
			ReadTimeout:       30 * time.Second,
			ReadHeaderTimeout: 15 * time.Second,
			WriteTimeout:      5 * time.Minute,
			IdleTimeout:       120 * time.Second,
		},
	}
}

// ListenAndServe starts the HTTP server on addr.
func (s *Server) ListenAndServe(addr string) error {
	s.server.Addr = addr
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Handler returns the HTTP handler for testing.
func (s *Server) Handler() http.Handler {
	return s.handler
}
