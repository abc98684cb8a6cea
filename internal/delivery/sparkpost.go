package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pulsemark/engage/internal/pkg/httpretry"
)

// SparkPostSender delivers through the SparkPost transmissions API.
type SparkPostSender struct {
	apiKey     string
	baseURL    string
	httpClient httpretry.HTTPDoer
}

// NewSparkPostSender creates a SparkPost deliverer. baseURL is overridable
// for tests; empty selects the production endpoint. Transient provider
// failures (429/5xx) are retried with backoff before the send counts as
// failed.
func NewSparkPostSender(apiKey, baseURL string) *SparkPostSender {
	if baseURL == "" {
		baseURL = "https://api.sparkpost.com"
	}
	return &SparkPostSender{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: httpretry.NewRetryClient(nil, 3),
	}
}

// Send submits one transmission. Provider rejections (4xx/5xx) come back as
// an unsuccessful SendResult, not a transport error.
func (s *SparkPostSender) Send(ctx context.Context, msg *Message) (*SendResult, error) {
	payload := map[string]any{
		"recipients": []map[string]any{
			{"address": map[string]string{"email": msg.To}},
		},
		"content": map[string]any{
			"from":    map[string]string{"name": msg.FromName, "email": msg.FromEmail},
			"subject": msg.Subject,
			"html":    msg.HTML,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal transmission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.baseURL+"/api/v1/transmissions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sparkpost request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &SendResult{
			Success:  false,
			Provider: "sparkpost",
			Error:    fmt.Errorf("sparkpost status %d: %s", resp.StatusCode, raw),
		}, nil
	}

	var out struct {
		Results struct {
			ID string `json:"id"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode sparkpost response: %w", err)
	}

	return &SendResult{Success: true, MessageID: out.Results.ID, Provider: "sparkpost"}, nil
}
