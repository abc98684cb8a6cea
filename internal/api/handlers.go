package api

import (
	"net/http"
	"time"

	"github.com/pulsemark/engage/internal/render"
	"github.com/pulsemark/engage/internal/service/analytics"
	"github.com/pulsemark/engage/internal/service/campaign"
	"github.com/pulsemark/engage/internal/service/social"
)

// Handlers holds the services behind the HTTP surface.
type Handlers struct {
	social    *social.Service
	campaign  *campaign.Service
	analytics *analytics.Service
	preview   *render.PreviewEngine
	startTime time.Time
}

// NewHandlers creates the handler set. analyticsSvc may be nil when the
// deployment runs without campaign analytics.
func NewHandlers(socialSvc *social.Service, campaignSvc *campaign.Service, analyticsSvc *analytics.Service) *Handlers {
	return &Handlers{
		social:    socialSvc,
		campaign:  campaignSvc,
		analytics: analyticsSvc,
		preview:   render.NewPreviewEngine(),
		startTime: time.Now(),
	}
}

// HealthCheck reports service liveness.
func (h *Handlers) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "healthy",
		"uptime": time.Since(h.startTime).String(),
	})
}
