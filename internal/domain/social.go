package domain

import "time"

// PostStatus enumerates the lifecycle states of a social post.
type PostStatus string

const (
	PostDraft     PostStatus = "draft"
	PostScheduled PostStatus = "scheduled"
	PostPublished PostStatus = "published"
)

// SocialPost represents a post on an external social platform, either already
// published or scheduled for a downstream publisher to pick up. Scheduling is
// limited to stamping ScheduledAt; this system runs no publish loop itself.
type SocialPost struct {
	ID          string         `json:"id" db:"id"`
	Platform    string         `json:"platform" db:"platform"`
	Content     string         `json:"content" db:"content"`
	MediaURLs   []string       `json:"media_urls,omitempty" db:"media_urls"`
	Tags        []string       `json:"tags,omitempty" db:"tags"`
	Location    map[string]any `json:"location,omitempty" db:"location"`
	CampaignID  string         `json:"campaign_id,omitempty" db:"campaign_id"`
	Status      PostStatus     `json:"status" db:"status"`
	ScheduledAt *time.Time     `json:"scheduled_at,omitempty" db:"scheduled_at"`
	CreatedAt   time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" db:"updated_at"`
}

// InteractionType enumerates the kinds of social interaction we track.
type InteractionType string

const (
	InteractionLike    InteractionType = "like"
	InteractionShare   InteractionType = "share"
	InteractionComment InteractionType = "comment"
)

// SocialInteraction is one engagement event against a post. Rows are
// insert-only; there is no update path once an interaction is recorded.
type SocialInteraction struct {
	ID               string          `json:"id" db:"id"`
	PostID           string          `json:"post_id" db:"post_id"`
	Type             InteractionType `json:"type" db:"type"`
	PlatformUserID   string          `json:"platform_user_id,omitempty" db:"platform_user_id"`
	PlatformUsername string          `json:"platform_username,omitempty" db:"platform_username"`
	Content          string          `json:"content,omitempty" db:"content"`
	Metadata         map[string]any  `json:"metadata,omitempty" db:"metadata"`
	CreatedAt        time.Time       `json:"created_at" db:"created_at"`
}

// SocialAnalytics holds interaction counts for a single post.
// Derived by aggregate query, never stored.
type SocialAnalytics struct {
	PostID          string `json:"post_id"`
	Likes           int    `json:"likes"`
	Shares          int    `json:"shares"`
	Comments        int    `json:"comments"`
	TotalEngagement int    `json:"total_engagement"`
}
