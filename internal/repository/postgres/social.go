package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/pulsemark/engage/internal/domain"
	"github.com/pulsemark/engage/internal/service/social"
)

// SocialRepo implements social.Repository against PostgreSQL.
type SocialRepo struct{ db *sql.DB }

// NewSocialRepo creates a Postgres-backed social repository.
func NewSocialRepo(db *sql.DB) *SocialRepo { return &SocialRepo{db: db} }

func (r *SocialRepo) CreatePost(ctx context.Context, p *domain.SocialPost) error {
	location, err := jsonb(p.Location)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO social_posts
			(id, platform, content, media_urls, tags, location, campaign_id,
			 status, scheduled_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7,''), $8, $9, $10, $11)
	`, p.ID, p.Platform, p.Content, pq.Array(p.MediaURLs), pq.Array(p.Tags),
		location, p.CampaignID, p.Status, p.ScheduledAt, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

func (r *SocialRepo) GetPost(ctx context.Context, id string) (*domain.SocialPost, error) {
	p := &domain.SocialPost{}
	var location []byte
	var campaignID sql.NullString
	err := r.db.QueryRowContext(ctx, `
		SELECT id, platform, content, media_urls, tags, location, campaign_id,
		       status, scheduled_at, created_at, updated_at
		FROM social_posts
		WHERE id = $1
	`, id).Scan(
		&p.ID, &p.Platform, &p.Content, pq.Array(&p.MediaURLs), pq.Array(&p.Tags),
		&location, &campaignID, &p.Status, &p.ScheduledAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, social.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	p.CampaignID = campaignID.String
	if err := scanJSONB(location, &p.Location); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *SocialRepo) CreateInteraction(ctx context.Context, i *domain.SocialInteraction) error {
	metadata, err := jsonb(i.Metadata)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO social_interactions
			(id, post_id, type, platform_user_id, platform_username, content,
			 metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, i.ID, i.PostID, i.Type, i.PlatformUserID, i.PlatformUsername,
		i.Content, metadata, i.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert interaction: %w", err)
	}
	return nil
}

func (r *SocialRepo) PostAnalytics(ctx context.Context, postID string) (*domain.SocialAnalytics, error) {
	a := &domain.SocialAnalytics{PostID: postID}
	err := r.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE type = 'like'),
			COUNT(*) FILTER (WHERE type = 'share'),
			COUNT(*) FILTER (WHERE type = 'comment')
		FROM social_interactions
		WHERE post_id = $1
	`, postID).Scan(&a.Likes, &a.Shares, &a.Comments)
	if err != nil {
		return nil, fmt.Errorf("post analytics: %w", err)
	}
	return a, nil
}
