package campaign

import (
	"context"
	"time"

	"github.com/pulsemark/engage/internal/domain"
)

// Repository defines the data access contract for templates, campaigns,
// contacts, and analytics events. Implementations must be safe for
// concurrent use: the send fan-out inserts events from many goroutines.
type Repository interface {
	// CreateTemplate inserts a new template and returns the stored record.
	CreateTemplate(ctx context.Context, t *domain.EmailTemplate) error

	// GetTemplate returns a single template. Returns ErrTemplateNotFound if
	// it doesn't exist.
	GetTemplate(ctx context.Context, id string) (*domain.EmailTemplate, error)

	// CreateCampaign inserts a new campaign.
	CreateCampaign(ctx context.Context, c *domain.EmailCampaign) error

	// GetCampaign returns a single campaign. Returns ErrNotFound if it
	// doesn't exist.
	GetCampaign(ctx context.Context, id string) (*domain.EmailCampaign, error)

	// MarkCampaignSent stamps status="sent" and sent_at on a campaign.
	MarkCampaignSent(ctx context.Context, id string, sentAt time.Time) error

	// ListContacts returns the contacts matching every key-value pair in the
	// audience filter. A nil/empty filter matches all contacts.
	ListContacts(ctx context.Context, audience map[string]any) ([]domain.Contact, error)

	// CreateEvent inserts one per-recipient analytics event.
	CreateEvent(ctx context.Context, e *domain.CampaignAnalyticsEvent) error
}
