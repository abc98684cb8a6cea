package social_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pulsemark/engage/internal/domain"
	"github.com/pulsemark/engage/internal/service/social"
	"github.com/pulsemark/engage/internal/validate"
)

// memRepo is an in-memory social repository for unit testing.
type memRepo struct {
	mu           sync.Mutex
	posts        map[string]*domain.SocialPost
	interactions []*domain.SocialInteraction
}

func newMemRepo() *memRepo {
	return &memRepo{posts: make(map[string]*domain.SocialPost)}
}

func (m *memRepo) CreatePost(_ context.Context, p *domain.SocialPost) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *p
	m.posts[cp.ID] = &cp
	return nil
}

func (m *memRepo) GetPost(_ context.Context, id string) (*domain.SocialPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.posts[id]
	if !ok {
		return nil, social.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *memRepo) CreateInteraction(_ context.Context, i *domain.SocialInteraction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *i
	m.interactions = append(m.interactions, &cp)
	return nil
}

func (m *memRepo) PostAnalytics(_ context.Context, postID string) (*domain.SocialAnalytics, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a := &domain.SocialAnalytics{PostID: postID}
	for _, i := range m.interactions {
		if i.PostID != postID {
			continue
		}
		switch i.Type {
		case domain.InteractionLike:
			a.Likes++
		case domain.InteractionShare:
			a.Shares++
		case domain.InteractionComment:
			a.Comments++
		}
	}
	return a, nil
}

func TestCreatePostDefaultsToDraft(t *testing.T) {
	svc := social.NewService(newMemRepo())
	p, err := svc.CreatePost(context.Background(), social.CreatePostInput{
		Platform: "instagram", Content: "hello",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.Status != domain.PostDraft {
		t.Fatalf("expected draft, got %s", p.Status)
	}
}

func TestCreatePostValidation(t *testing.T) {
	svc := social.NewService(newMemRepo())
	_, err := svc.CreatePost(context.Background(), social.CreatePostInput{Content: "no platform"})
	ve, ok := validate.AsError(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(ve.Violations) != 1 || ve.Violations[0].Field != "platform" {
		t.Fatalf("expected platform violation, got %v", ve.Violations)
	}
}

func TestSchedulePostRequiresTimestamp(t *testing.T) {
	repo := newMemRepo()
	svc := social.NewService(repo)

	_, err := svc.SchedulePost(context.Background(), social.CreatePostInput{
		Platform: "instagram", Content: "later",
	})
	if err != social.ErrScheduleRequired {
		t.Fatalf("expected ErrScheduleRequired, got %v", err)
	}
	if len(repo.posts) != 0 {
		t.Fatal("rejected schedule must not write")
	}
}

func TestSchedulePostDefaultsToScheduled(t *testing.T) {
	svc := social.NewService(newMemRepo())
	at := time.Now().UTC().Add(time.Hour)

	p, err := svc.SchedulePost(context.Background(), social.CreatePostInput{
		Platform: "instagram", Content: "later", ScheduledAt: &at,
	})
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if p.Status != domain.PostScheduled {
		t.Fatalf("expected scheduled, got %s", p.Status)
	}
	if p.ScheduledAt == nil || !p.ScheduledAt.Equal(at) {
		t.Fatalf("scheduled_at not stored: %v", p.ScheduledAt)
	}
}

func TestSchedulePostKeepsExplicitStatus(t *testing.T) {
	svc := social.NewService(newMemRepo())
	at := time.Now().UTC().Add(time.Hour)

	p, err := svc.SchedulePost(context.Background(), social.CreatePostInput{
		Platform: "instagram", Content: "later", ScheduledAt: &at, Status: "draft",
	})
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if p.Status != domain.PostDraft {
		t.Fatalf("explicit status overridden: %s", p.Status)
	}
}

func TestTrackInteractionEnum(t *testing.T) {
	svc := social.NewService(newMemRepo())
	_, err := svc.TrackInteraction(context.Background(), social.TrackInteractionInput{
		PostID: "p-1", Type: "retweet",
	})
	if _, ok := validate.AsError(err); !ok {
		t.Fatalf("expected validation error for bad type, got %v", err)
	}
}

func TestTrackInteractionConcurrentInserts(t *testing.T) {
	repo := newMemRepo()
	svc := social.NewService(repo)

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.TrackInteraction(context.Background(), social.TrackInteractionInput{
				PostID: "p-1", Type: "like",
			})
			if err != nil {
				t.Errorf("track: %v", err)
			}
		}()
	}
	wg.Wait()

	if len(repo.interactions) != n {
		t.Fatalf("expected %d independent rows, got %d", n, len(repo.interactions))
	}
	seen := map[string]bool{}
	for _, i := range repo.interactions {
		if seen[i.ID] {
			t.Fatalf("duplicate interaction id %s", i.ID)
		}
		seen[i.ID] = true
	}
}

func TestPostAnalyticsTotals(t *testing.T) {
	repo := newMemRepo()
	svc := social.NewService(repo)

	for _, typ := range []string{"like", "like", "share", "comment"} {
		if _, err := svc.TrackInteraction(context.Background(), social.TrackInteractionInput{
			PostID: "p-1", Type: typ,
		}); err != nil {
			t.Fatalf("track: %v", err)
		}
	}

	a, err := svc.PostAnalytics(context.Background(), "p-1")
	if err != nil {
		t.Fatalf("analytics: %v", err)
	}
	if a.Likes != 2 || a.Shares != 1 || a.Comments != 1 || a.TotalEngagement != 4 {
		t.Fatalf("unexpected analytics: %+v", a)
	}
}

func TestPostAnalyticsUnknownIDIsZero(t *testing.T) {
	svc := social.NewService(newMemRepo())
	a, err := svc.PostAnalytics(context.Background(), "none-existing-id")
	if err != nil {
		t.Fatalf("unknown id must not fail: %v", err)
	}
	if a.TotalEngagement != 0 {
		t.Fatalf("expected zeros, got %+v", a)
	}
}
