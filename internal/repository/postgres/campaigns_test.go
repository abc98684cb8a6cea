package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pulsemark/engage/internal/domain"
	"github.com/pulsemark/engage/internal/service/campaign"
)

func TestGetTemplateNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	repo := NewCampaignRepo(db)

	mock.ExpectQuery("SELECT (.+) FROM email_templates").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = repo.GetTemplate(context.Background(), "missing")
	if err != campaign.ErrTemplateNotFound {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}
}

func TestMarkCampaignSent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	repo := NewCampaignRepo(db)
	sentAt := time.Now().UTC()

	mock.ExpectExec("UPDATE email_campaigns").
		WithArgs(sentAt, "c-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.MarkCampaignSent(context.Background(), "c-1", sentAt); err != nil {
		t.Fatalf("mark sent: %v", err)
	}
}

func TestMarkCampaignSentNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	repo := NewCampaignRepo(db)

	mock.ExpectExec("UPDATE email_campaigns").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.MarkCampaignSent(context.Background(), "missing", time.Now().UTC())
	if err != campaign.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListContactsColumnAndAttributeFilter(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	repo := NewCampaignRepo(db)
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "email", "first_name", "last_name", "attributes", "created_at"}).
		AddRow("ct-1", "ana@example.com", "Ana", "Lima", []byte(`{"plan":"pro"}`), now)

	mock.ExpectQuery("SELECT (.+) FROM contacts").
		WillReturnRows(rows)

	got, err := repo.ListContacts(context.Background(), map[string]any{"plan": "pro"})
	if err != nil {
		t.Fatalf("list contacts: %v", err)
	}
	if len(got) != 1 || got[0].Email != "ana@example.com" {
		t.Fatalf("unexpected contacts: %+v", got)
	}
	if got[0].Attributes["plan"] != "pro" {
		t.Fatalf("attributes not decoded: %+v", got[0].Attributes)
	}
}

func TestCreateEvent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	repo := NewCampaignRepo(db)

	mock.ExpectExec("INSERT INTO campaign_analytics").
		WithArgs("e-1", "c-1", "ct-1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.CreateEvent(context.Background(), &domain.CampaignAnalyticsEvent{
		ID: "e-1", CampaignID: "c-1", RecipientID: "ct-1", SentAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("create event: %v", err)
	}
}
