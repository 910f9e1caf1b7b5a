package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// PushNotification is the payload forwarded to the external push endpoint.
type PushNotification struct {
	APIKey   string `json:"api_key"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	Priority string `json:"priority,omitempty"`
}

// PushClient forwards notifications to an external push service. Each send
// is a single attempt; upstream failures are returned as errors for the
// caller to surface.
type PushClient struct {
	logger          *slog.Logger
	httpClient      *http.Client
	defaultEndpoint string
}

// NewPushClient creates a push client. defaultEndpoint is used when a
// request does not name its own endpoint.
func NewPushClient(logger *slog.Logger, defaultEndpoint string) *PushClient {
	return &PushClient{
		logger:          logger,
		httpClient:      &http.Client{Timeout: 10 * time.Second},
		defaultEndpoint: defaultEndpoint,
	}
}

// Send posts the notification to the push endpoint. endpoint overrides the
// client default when non-empty.
func (c *PushClient) Send(ctx context.Context, endpoint string, n PushNotification) error {
	if endpoint == "" {
		endpoint = c.defaultEndpoint
	}
	if endpoint == "" {
		return fmt.Errorf("push: no endpoint configured")
	}

	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("push: encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("push: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("push: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("push: status %d: %s", resp.StatusCode, respBody)
	}

	c.logger.Info("push notification sent", "endpoint", endpoint, "title", n.Title)
	return nil
}
