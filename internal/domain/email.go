package domain

import "time"

// EmailTemplate is a reusable message body with named `{{variable}}` tokens.
// Variables is the declared substitution list: only tokens named here are
// replaced at send time, in the listed order. Tokens present in Content but
// absent from Variables are intentionally left as-is.
type EmailTemplate struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Subject   string    `json:"subject" db:"subject"`
	Content   string    `json:"content" db:"content"`
	Variables []string  `json:"variables" db:"variables"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// EmailCampaign ties a template to a target audience. TargetAudience is an
// open equality filter matched against contact attributes. Status is
// free-form; the send path stamps it to "sent" after the fan-out completes.
type EmailCampaign struct {
	ID             string         `json:"id" db:"id"`
	Name           string         `json:"name" db:"name"`
	TemplateID     string         `json:"template_id" db:"template_id"`
	Status         string         `json:"status" db:"status"`
	TargetAudience map[string]any `json:"target_audience,omitempty" db:"target_audience"`
	ScheduledAt    *time.Time     `json:"scheduled_at,omitempty" db:"scheduled_at"`
	SentAt         *time.Time     `json:"sent_at,omitempty" db:"sent_at"`
	CreatedAt      time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at" db:"updated_at"`
}

// CampaignSent is the status a campaign carries once its fan-out has run.
const CampaignSent = "sent"

// CampaignAnalyticsEvent is one per-recipient delivery record. SentAt is
// written by the send path; the remaining timestamps are populated by
// downstream tracking processes, never by this system.
type CampaignAnalyticsEvent struct {
	ID              string     `json:"id" db:"id"`
	CampaignID      string     `json:"campaign_id" db:"campaign_id"`
	RecipientID     string     `json:"recipient_id" db:"recipient_id"`
	SentAt          time.Time  `json:"sent_at" db:"sent_at"`
	OpenedAt        *time.Time `json:"opened_at,omitempty" db:"opened_at"`
	ClickedAt       *time.Time `json:"clicked_at,omitempty" db:"clicked_at"`
	ConvertedAt     *time.Time `json:"converted_at,omitempty" db:"converted_at"`
	UnsubscribedAt  *time.Time `json:"unsubscribed_at,omitempty" db:"unsubscribed_at"`
	ConversionValue float64    `json:"conversion_value,omitempty" db:"conversion_value"`
}
