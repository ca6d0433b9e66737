package progression

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vytor/keydrill/internal/logger"
)

// Client posts session summaries to the progression system's webhook.
type Client struct {
	url        string
	httpClient *http.Client
	log        *logger.Logger
}

func New(url string) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		log:        logger.Default().WithPrefix("progression"),
	}
}

// Enabled reports whether a webhook URL is configured.
func (c *Client) Enabled() bool {
	return c.url != ""
}

// Notify delivers one payload. Any non-2xx response is an error; the
// caller decides whether to retry.
func (c *Client) Notify(ctx context.Context, payload Payload) error {
	log := logger.FromContext(ctx).WithPrefix("progression").WithField("session_id", payload.SessionID)
	if !c.Enabled() {
		log.Debug("webhook disabled, dropping notification")
		return nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Error("failed to encode payload: %v", err)
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		log.Error("failed to create request: %v", err)
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	log.Debug("posting session summary to: %s", c.url)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("failed to post session summary: %v", err)
		return err
	}
	defer resp.Body.Close()

	log.Debug("webhook response received in %v, status=%d", time.Since(start), resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.Error("webhook request failed: status=%d, body=%s", resp.StatusCode, string(msg))
		return fmt.Errorf("webhook status %d: %s", resp.StatusCode, string(msg))
	}

	log.Info("delivered summary: reviewed=%d, skipped=%d", payload.Reviewed, payload.Skipped)
	return nil
}
