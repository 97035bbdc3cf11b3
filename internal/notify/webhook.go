package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	domain "github.com/manoslocales/marketwatch/pkg/types"
)

// WebhookNotifier implements Notifier by POSTing notifications as JSON to
// a configured webhook endpoint. The mobile gateway consumes these and
// forwards them as device pushes.
type WebhookNotifier struct {
	webhookURL string
	client     *http.Client
	limiter    *RateLimiter
}

// WebhookOption configures a WebhookNotifier.
type WebhookOption func(*WebhookNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) WebhookOption {
	return func(w *WebhookNotifier) {
		w.client = c
	}
}

// WithRateLimiter applies a rate limiter to outgoing pushes.
func WithRateLimiter(rl *RateLimiter) WebhookOption {
	return func(w *WebhookNotifier) {
		w.limiter = rl
	}
}

// NewWebhookNotifier creates a new WebhookNotifier.
func NewWebhookNotifier(webhookURL string, opts ...WebhookOption) *WebhookNotifier {
	w := &WebhookNotifier{
		webhookURL: webhookURL,
		client:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// webhookPayload is the push gateway JSON structure.
type webhookPayload struct {
	UserID   string    `json:"user_id"`
	Title    string    `json:"title"`
	Message  string    `json:"message"`
	EntityID string    `json:"entity_id,omitempty"`
	SentAt   time.Time `json:"sent_at"`
}

// PostNotification sends a single notification to the webhook.
func (w *WebhookNotifier) PostNotification(ctx context.Context, item *domain.NotificationItem) error {
	if w.limiter != nil {
		if err := w.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("push rate limit: %w", err)
		}
	}

	payload := webhookPayload{
		UserID:   item.UserID,
		Title:    item.Title,
		Message:  item.Message,
		EntityID: item.RelatedEntityID,
		SentAt:   time.Now().UTC(),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling push payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		w.webhookURL,
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("creating push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending push webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("push gateway rate limited (429)")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("push gateway returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("push gateway returned %d: %s", resp.StatusCode, respBody)
	}

	return nil
}
