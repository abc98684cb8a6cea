package social

import (
	"context"

	"github.com/pulsemark/engage/internal/domain"
)

// Repository defines the data access contract for posts and interactions.
// Implementations must be safe for concurrent use.
type Repository interface {
	// CreatePost inserts a new post and returns the stored record.
	CreatePost(ctx context.Context, p *domain.SocialPost) error

	// GetPost returns a single post. Returns ErrNotFound if it doesn't exist.
	GetPost(ctx context.Context, id string) (*domain.SocialPost, error)

	// CreateInteraction inserts one interaction row. Insert-only: concurrent
	// calls for the same post each produce an independent row.
	CreateInteraction(ctx context.Context, i *domain.SocialInteraction) error

	// PostAnalytics returns interaction counts for a post in one aggregate
	// query. A post with no interactions (or an unknown id) yields zeros,
	// not an error.
	PostAnalytics(ctx context.Context, postID string) (*domain.SocialAnalytics, error)
}
