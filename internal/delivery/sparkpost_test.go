package delivery

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSparkPostSendSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/transmissions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "test-key" {
			t.Errorf("missing API key header")
		}
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("bad payload: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"results": map[string]string{"id": "msg-123"},
		})
	}))
	defer srv.Close()

	sender := NewSparkPostSender("test-key", srv.URL)
	res, err := sender.Send(context.Background(), &Message{
		FromName:  "Engage",
		FromEmail: "hello@engage.test",
		To:        "ana@example.com",
		Subject:   "Hi",
		HTML:      "<p>Hi</p>",
	})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if !res.Success || res.MessageID != "msg-123" || res.Provider != "sparkpost" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestSparkPostSendRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"errors":[{"message":"invalid recipient"}]}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	sender := NewSparkPostSender("test-key", srv.URL)
	res, err := sender.Send(context.Background(), &Message{To: "bad"})
	if err != nil {
		t.Fatalf("rejection must not be a transport error: %v", err)
	}
	if res.Success || res.Error == nil {
		t.Fatalf("expected unsuccessful result with error, got %+v", res)
	}
}

func TestSparkPostSendRetriesRateLimit(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			http.Error(w, `{"errors":[{"message":"rate limited"}]}`, http.StatusTooManyRequests)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"results": map[string]string{"id": "msg-retry"},
		})
	}))
	defer srv.Close()

	sender := NewSparkPostSender("test-key", srv.URL)
	res, err := sender.Send(context.Background(), &Message{To: "ana@example.com"})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if !res.Success || res.MessageID != "msg-retry" {
		t.Fatalf("unexpected result: %+v", res)
	}
	if calls != 2 {
		t.Fatalf("expected retry after 429, got %d calls", calls)
	}
}

func TestSparkPostSendTransportFailure(t *testing.T) {
	sender := NewSparkPostSender("test-key", "http://127.0.0.1:1")
	_, err := sender.Send(context.Background(), &Message{To: "ana@example.com"})
	if err == nil {
		t.Fatal("expected transport error")
	}
}
