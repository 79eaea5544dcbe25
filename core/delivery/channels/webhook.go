package channels

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// WebhookPayload là body JSON POST cho downstream webhook.
// TraceID lặp lại qua các lần gửi của cùng một lần thông báo để
// downstream tự khử trùng lặp (ngữ nghĩa gửi là at-least-once).
type WebhookPayload struct {
	NotificationID string `json:"notificationId"`
	TraceID        string `json:"traceId"`
	Subject        string `json:"subject"`
	Content        string `json:"content"`
	Timestamp      int64  `json:"timestamp"` // Unix ms lúc gửi
}

// SendWebhook POST payload tới webhookURL, mã 2xx là thành công.
func SendWebhook(ctx context.Context, webhookURL string, payload WebhookPayload, timeout time.Duration) error {
	if webhookURL == "" {
		return fmt.Errorf("webhook: %w", ErrNotConfigured)
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", webhookURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	return nil
}
