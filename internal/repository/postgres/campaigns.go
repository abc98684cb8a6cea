package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/pulsemark/engage/internal/domain"
	"github.com/pulsemark/engage/internal/service/campaign"
)

// CampaignRepo implements campaign.Repository against PostgreSQL.
type CampaignRepo struct{ db *sql.DB }

// NewCampaignRepo creates a Postgres-backed campaign repository.
func NewCampaignRepo(db *sql.DB) *CampaignRepo { return &CampaignRepo{db: db} }

func (r *CampaignRepo) CreateTemplate(ctx context.Context, t *domain.EmailTemplate) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO email_templates
			(id, name, subject, content, variables, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, t.ID, t.Name, t.Subject, t.Content, pq.Array(t.Variables), t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert template: %w", err)
	}
	return nil
}

func (r *CampaignRepo) GetTemplate(ctx context.Context, id string) (*domain.EmailTemplate, error) {
	t := &domain.EmailTemplate{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, subject, content, variables, created_at, updated_at
		FROM email_templates
		WHERE id = $1
	`, id).Scan(&t.ID, &t.Name, &t.Subject, &t.Content, pq.Array(&t.Variables),
		&t.CreatedAt, &t.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, campaign.ErrTemplateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get template: %w", err)
	}
	return t, nil
}

func (r *CampaignRepo) CreateCampaign(ctx context.Context, c *domain.EmailCampaign) error {
	audience, err := jsonb(c.TargetAudience)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO email_campaigns
			(id, name, template_id, status, target_audience, scheduled_at,
			 sent_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, c.ID, c.Name, c.TemplateID, c.Status, audience, c.ScheduledAt,
		c.SentAt, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert campaign: %w", err)
	}
	return nil
}

func (r *CampaignRepo) GetCampaign(ctx context.Context, id string) (*domain.EmailCampaign, error) {
	c := &domain.EmailCampaign{}
	var audience []byte
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, template_id, status, target_audience, scheduled_at,
		       sent_at, created_at, updated_at
		FROM email_campaigns
		WHERE id = $1
	`, id).Scan(&c.ID, &c.Name, &c.TemplateID, &c.Status, &audience,
		&c.ScheduledAt, &c.SentAt, &c.CreatedAt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, campaign.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	if err := scanJSONB(audience, &c.TargetAudience); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CampaignRepo) MarkCampaignSent(ctx context.Context, id string, sentAt time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE email_campaigns
		SET status = 'sent', sent_at = $1, updated_at = $1
		WHERE id = $2
	`, sentAt, id)
	if err != nil {
		return fmt.Errorf("mark campaign sent: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return campaign.ErrNotFound
	}
	return nil
}

// ListContacts filters contacts by audience equality. Known columns (email,
// first_name, last_name) match directly; every other key matches via JSONB
// containment on attributes.
func (r *CampaignRepo) ListContacts(ctx context.Context, audience map[string]any) ([]domain.Contact, error) {
	q := `
		SELECT id, email, first_name, last_name, attributes, created_at
		FROM contacts`
	var (
		clauses []string
		args    []any
		idx     = 1
	)

	attrFilter := map[string]any{}
	for k, v := range audience {
		switch k {
		case "email", "first_name", "last_name":
			clauses = append(clauses, fmt.Sprintf("%s = $%d", k, idx))
			args = append(args, fmt.Sprintf("%v", v))
			idx++
		default:
			attrFilter[k] = v
		}
	}
	if len(attrFilter) > 0 {
		b, err := jsonb(attrFilter)
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, fmt.Sprintf("attributes @> $%d::jsonb", idx))
		args = append(args, b)
	}
	for i, c := range clauses {
		if i == 0 {
			q += " WHERE " + c
		} else {
			q += " AND " + c
		}
	}
	q += " ORDER BY created_at"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	var out []domain.Contact
	for rows.Next() {
		var c domain.Contact
		var attrs []byte
		if err := rows.Scan(&c.ID, &c.Email, &c.FirstName, &c.LastName, &attrs, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		if err := scanJSONB(attrs, &c.Attributes); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CampaignRepo) CreateEvent(ctx context.Context, e *domain.CampaignAnalyticsEvent) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO campaign_analytics
			(id, campaign_id, recipient_id, sent_at)
		VALUES ($1, $2, $3, $4)
	`, e.ID, e.CampaignID, e.RecipientID, e.SentAt)
	if err != nil {
		return fmt.Errorf("insert analytics event: %w", err)
	}
	return nil
}
