package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pulsemark/engage/internal/domain"
	"github.com/pulsemark/engage/internal/pkg/logger"
)

// cacheTTL keeps dashboard polling off the database without letting numbers
// go noticeably stale.
const cacheTTL = 30 * time.Second

// Service computes campaign performance metrics, optionally caching results
// in Redis. A nil Redis client disables caching entirely.
type Service struct {
	repo  Repository
	cache *redis.Client
}

// NewService creates an analytics service. rc may be nil to run uncached.
func NewService(repo Repository, rc *redis.Client) *Service {
	return &Service{repo: repo, cache: rc}
}

func cacheKey(campaignID string) string {
	return "analytics:campaign:" + campaignID
}

// CampaignPerformance returns totals and derived rates for a campaign.
// Cache failures are logged and degrade to a direct query; they never fail
// the call.
func (s *Service) CampaignPerformance(ctx context.Context, campaignID string) (*domain.CampaignAnalytics, error) {
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, cacheKey(campaignID)).Bytes(); err == nil {
			var a domain.CampaignAnalytics
			if err := json.Unmarshal(raw, &a); err == nil {
				return &a, nil
			}
		} else if err != redis.Nil {
			logger.Warn("analytics cache read failed", "campaign_id", campaignID, "error", err)
		}
	}

	a, err := s.repo.CampaignTotals(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("campaign totals: %w", err)
	}
	a.CampaignID = campaignID
	a.ComputeRates()

	if s.cache != nil {
		if raw, err := json.Marshal(a); err == nil {
			if err := s.cache.Set(ctx, cacheKey(campaignID), raw, cacheTTL).Err(); err != nil {
				logger.Warn("analytics cache write failed", "campaign_id", campaignID, "error", err)
			}
		}
	}
	return a, nil
}

// Invalidate drops the cached entry for a campaign, used after a send.
func (s *Service) Invalidate(ctx context.Context, campaignID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, cacheKey(campaignID)).Err(); err != nil {
		logger.Warn("analytics cache invalidate failed", "campaign_id", campaignID, "error", err)
	}
}
