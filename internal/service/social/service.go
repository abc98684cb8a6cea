package social

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pulsemark/engage/internal/domain"
	"github.com/pulsemark/engage/internal/pkg/logger"
	"github.com/pulsemark/engage/internal/validate"
)

// Service implements social post business logic on top of a Repository.
type Service struct {
	repo Repository
}

// NewService creates a social service backed by the given repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreatePostInput holds the validated fields for creating a post.
type CreatePostInput struct {
	Platform    string         `json:"platform" validate:"required"`
	Content     string         `json:"content" validate:"required"`
	MediaURLs   []string       `json:"media_urls" validate:"omitempty,dive,url"`
	Tags        []string       `json:"tags"`
	Location    map[string]any `json:"location"`
	CampaignID  string         `json:"campaign_id"`
	Status      string         `json:"status" validate:"omitempty,oneof=draft scheduled published"`
	ScheduledAt *time.Time     `json:"scheduled_at"`
}

// CreatePost validates and persists a new post. Status defaults to draft.
func (s *Service) CreatePost(ctx context.Context, input CreatePostInput) (*domain.SocialPost, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	p := postFromInput(input)
	if p.Status == "" {
		p.Status = domain.PostDraft
	}
	if err := s.repo.CreatePost(ctx, p); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	logger.Info("post created", "post_id", p.ID, "platform", p.Platform, "status", p.Status)
	return p, nil
}

// SchedulePost validates and persists a post for later publication.
// ScheduledAt is mandatory; the check runs before any write so a rejected
// call leaves no partial state. Status defaults to scheduled when the caller
// does not set one.
func (s *Service) SchedulePost(ctx context.Context, input CreatePostInput) (*domain.SocialPost, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}
	if input.ScheduledAt == nil {
		return nil, ErrScheduleRequired
	}

	p := postFromInput(input)
	if p.Status == "" {
		p.Status = domain.PostScheduled
	}
	if err := s.repo.CreatePost(ctx, p); err != nil {
		return nil, fmt.Errorf("schedule post: %w", err)
	}
	logger.Info("post scheduled", "post_id", p.ID, "platform", p.Platform,
		"scheduled_at", p.ScheduledAt.Format(time.RFC3339))
	return p, nil
}

// GetPost returns a single post.
func (s *Service) GetPost(ctx context.Context, id string) (*domain.SocialPost, error) {
	return s.repo.GetPost(ctx, id)
}

// TrackInteractionInput holds the validated fields for one interaction.
type TrackInteractionInput struct {
	PostID           string         `json:"post_id" validate:"required"`
	Type             string         `json:"type" validate:"required,oneof=like share comment"`
	PlatformUserID   string         `json:"platform_user_id"`
	PlatformUsername string         `json:"platform_username"`
	Content          string         `json:"content"`
	Metadata         map[string]any `json:"metadata"`
}

// TrackInteraction records one engagement event. Rows are immutable once
// written; concurrent calls for the same post never overwrite each other.
func (s *Service) TrackInteraction(ctx context.Context, input TrackInteractionInput) (*domain.SocialInteraction, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	i := &domain.SocialInteraction{
		ID:               uuid.New().String(),
		PostID:           input.PostID,
		Type:             domain.InteractionType(input.Type),
		PlatformUserID:   input.PlatformUserID,
		PlatformUsername: input.PlatformUsername,
		Content:          input.Content,
		Metadata:         input.Metadata,
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.repo.CreateInteraction(ctx, i); err != nil {
		return nil, fmt.Errorf("track interaction: %w", err)
	}
	return i, nil
}

// PostAnalytics returns interaction counts for a post. An id with no
// interactions yields all-zero counts, never an error.
func (s *Service) PostAnalytics(ctx context.Context, postID string) (*domain.SocialAnalytics, error) {
	a, err := s.repo.PostAnalytics(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("post analytics: %w", err)
	}
	a.TotalEngagement = a.Likes + a.Shares + a.Comments
	return a, nil
}

func postFromInput(input CreatePostInput) *domain.SocialPost {
	now := time.Now().UTC()
	return &domain.SocialPost{
		ID:          uuid.New().String(),
		Platform:    input.Platform,
		Content:     input.Content,
		MediaURLs:   input.MediaURLs,
		Tags:        input.Tags,
		Location:    input.Location,
		CampaignID:  input.CampaignID,
		Status:      domain.PostStatus(input.Status),
		ScheduledAt: input.ScheduledAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
