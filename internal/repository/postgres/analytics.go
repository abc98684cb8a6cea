package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pulsemark/engage/internal/domain"
)

// AnalyticsRepo implements analytics.Repository against PostgreSQL.
type AnalyticsRepo struct{ db *sql.DB }

// NewAnalyticsRepo creates a Postgres-backed analytics repository.
func NewAnalyticsRepo(db *sql.DB) *AnalyticsRepo { return &AnalyticsRepo{db: db} }

// CampaignTotals runs the single aggregate query for a campaign. Unknown
// campaign ids simply aggregate over zero rows and return zeros.
func (r *AnalyticsRepo) CampaignTotals(ctx context.Context, campaignID string) (*domain.CampaignAnalytics, error) {
	a := &domain.CampaignAnalytics{CampaignID: campaignID}
	err := r.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COUNT(opened_at),
			COUNT(clicked_at),
			COUNT(converted_at),
			COUNT(unsubscribed_at),
			COALESCE(SUM(conversion_value), 0)
		FROM campaign_analytics
		WHERE campaign_id = $1
	`, campaignID).Scan(
		&a.TotalSent, &a.TotalOpened, &a.TotalClicked,
		&a.TotalConverted, &a.TotalUnsubscribed, &a.TotalRevenue,
	)
	if err != nil {
		return nil, fmt.Errorf("campaign totals: %w", err)
	}
	return a, nil
}
