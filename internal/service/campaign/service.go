package campaign

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pulsemark/engage/internal/delivery"
	"github.com/pulsemark/engage/internal/domain"
	"github.com/pulsemark/engage/internal/pkg/distlock"
	"github.com/pulsemark/engage/internal/pkg/logger"
	"github.com/pulsemark/engage/internal/render"
	"github.com/pulsemark/engage/internal/validate"
)

// defaultFanOut bounds how many recipient sends run at once. The provider
// call dominates each attempt, so a small pool keeps throughput without
// hammering the provider.
const defaultFanOut = 8

// Service implements template and campaign business logic, including the
// send orchestrator.
type Service struct {
	repo      Repository
	deliverer delivery.Deliverer
	fromName  string
	fromEmail string
	fanOut    int

	// newLock, when set, creates a per-campaign send lock so two instances
	// never fan out the same campaign at once.
	newLock func(key string) distlock.Lock

	// now is swappable in tests.
	now func() time.Time
}

// NewService creates a campaign service. fromName/fromEmail are the sender
// identity stamped on every outgoing message.
func NewService(repo Repository, d delivery.Deliverer, fromName, fromEmail string) *Service {
	return &Service{
		repo:      repo,
		deliverer: d,
		fromName:  fromName,
		fromEmail: fromEmail,
		fanOut:    defaultFanOut,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// SetFanOut overrides the send concurrency bound. Values < 1 are ignored.
func (s *Service) SetFanOut(n int) {
	if n >= 1 {
		s.fanOut = n
	}
}

// SetLockFactory installs distributed locking for sends. Without one, only
// in-process duplicate sends are possible and nothing guards against them.
func (s *Service) SetLockFactory(f func(key string) distlock.Lock) {
	s.newLock = f
}

// CreateTemplateInput holds the validated fields for a new template.
type CreateTemplateInput struct {
	Name      string   `json:"name" validate:"required"`
	Subject   string   `json:"subject" validate:"required"`
	Content   string   `json:"content" validate:"required"`
	Variables []string `json:"variables"`
}

// CreateTemplate validates and persists a new email template.
func (s *Service) CreateTemplate(ctx context.Context, input CreateTemplateInput) (*domain.EmailTemplate, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	now := s.now()
	t := &domain.EmailTemplate{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Subject:   input.Subject,
		Content:   input.Content,
		Variables: input.Variables,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.CreateTemplate(ctx, t); err != nil {
		return nil, fmt.Errorf("create template: %w", err)
	}
	return t, nil
}

// GetTemplate returns a single template.
func (s *Service) GetTemplate(ctx context.Context, id string) (*domain.EmailTemplate, error) {
	return s.repo.GetTemplate(ctx, id)
}

// CreateCampaignInput holds the validated fields for a new campaign.
type CreateCampaignInput struct {
	Name           string         `json:"name" validate:"required"`
	TemplateID     string         `json:"template_id" validate:"required"`
	Status         string         `json:"status"`
	TargetAudience map[string]any `json:"target_audience"`
	ScheduledAt    *time.Time     `json:"scheduled_at"`
}

// CreateCampaign validates and persists a new campaign in draft status
// unless the caller sets one.
func (s *Service) CreateCampaign(ctx context.Context, input CreateCampaignInput) (*domain.EmailCampaign, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	now := s.now()
	c := &domain.EmailCampaign{
		ID:             uuid.New().String(),
		Name:           input.Name,
		TemplateID:     input.TemplateID,
		Status:         input.Status,
		TargetAudience: input.TargetAudience,
		ScheduledAt:    input.ScheduledAt,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if c.Status == "" {
		c.Status = "draft"
	}
	if err := s.repo.CreateCampaign(ctx, c); err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}
	return c, nil
}

// GetCampaign returns a single campaign.
func (s *Service) GetCampaign(ctx context.Context, id string) (*domain.EmailCampaign, error) {
	return s.repo.GetCampaign(ctx, id)
}

// Send runs the campaign fan-out.
//
// Preconditions (checked before any side effect): the campaign exists and
// carries scheduled_at, and its template exists. A precondition failure
// leaves no partial state.
//
// Each resolved recipient is attempted exactly once: render the template
// against the contact's fields, hand the message to the deliverer, and on
// success record an analytics event with sent_at=now. A failed attempt is
// logged and counted — it never aborts the remaining recipients.
//
// After the join the campaign is stamped status="sent". If that final update
// fails the error is returned even though sends already happened; campaign
// status is eventually consistent with delivery, not transactional.
func (s *Service) Send(ctx context.Context, campaignID string) (*domain.SendOutcome, error) {
	if s.newLock != nil {
		lock := s.newLock("campaign:send:" + campaignID)
		ok, err := lock.Acquire(ctx)
		if err != nil {
			return nil, fmt.Errorf("acquire send lock: %w", err)
		}
		if !ok {
			return nil, ErrSendInProgress
		}
		defer lock.Release(ctx)
	}

	c, err := s.repo.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if c.ScheduledAt == nil {
		return nil, ErrScheduleRequired
	}

	t, err := s.repo.GetTemplate(ctx, c.TemplateID)
	if err != nil {
		return nil, err
	}

	contacts, err := s.repo.ListContacts(ctx, c.TargetAudience)
	if err != nil {
		return nil, fmt.Errorf("resolve recipients: %w", err)
	}

	outcome := &domain.SendOutcome{CampaignID: c.ID, Attempted: len(contacts)}

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		sem = make(chan struct{}, s.fanOut)
	)
	for i := range contacts {
		contact := contacts[i]
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			ok := s.sendOne(ctx, c, t, &contact)
			mu.Lock()
			if ok {
				outcome.Succeeded++
			} else {
				outcome.Failed++
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	if err := s.repo.MarkCampaignSent(ctx, c.ID, s.now()); err != nil {
		logger.Error("campaign status update failed after send", "campaign_id", c.ID, "error", err)
		return outcome, fmt.Errorf("mark campaign sent: %w", err)
	}

	logger.Info("campaign sent", "campaign_id", c.ID,
		"attempted", outcome.Attempted, "succeeded", outcome.Succeeded, "failed", outcome.Failed)
	return outcome, nil
}

// sendOne handles a single recipient: render, deliver, record. Returns false
// on any failure; errors stay inside this function by design.
func (s *Service) sendOne(ctx context.Context, c *domain.EmailCampaign, t *domain.EmailTemplate, contact *domain.Contact) bool {
	fields := contact.Fields()
	msg := &delivery.Message{
		FromName:  s.fromName,
		FromEmail: s.fromEmail,
		To:        contact.Email,
		Subject:   render.Render(t.Subject, t.Variables, fields),
		HTML:      render.RenderHTML(t.Content, t.Variables, fields),
	}

	res, err := s.deliverer.Send(ctx, msg)
	if err != nil || !res.Success {
		if err == nil {
			err = res.Error
		}
		logger.Warn("delivery failed", "campaign_id", c.ID, "recipient", contact.Email, "error", err)
		return false
	}

	event := &domain.CampaignAnalyticsEvent{
		ID:          uuid.New().String(),
		CampaignID:  c.ID,
		RecipientID: contact.ID,
		SentAt:      s.now(),
	}
	if err := s.repo.CreateEvent(ctx, event); err != nil {
		// The email is out; the missing event only skews analytics. Count
		// the recipient as failed so the caller sees the discrepancy.
		logger.Error("analytics event insert failed", "campaign_id", c.ID, "recipient_id", contact.ID, "error", err)
		return false
	}
	return true
}
