package analytics

import (
	"context"

	"github.com/pulsemark/engage/internal/domain"
)

// Repository defines the aggregate-query contract for campaign events.
type Repository interface {
	// CampaignTotals returns raw counts for a campaign in one aggregate
	// query. A campaign with no events yields all zeros, not an error.
	// Rate fields are left unset; the service derives them.
	CampaignTotals(ctx context.Context, campaignID string) (*domain.CampaignAnalytics, error)
}
