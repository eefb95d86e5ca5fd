package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/herald-dev/herald/pkg/domain/interfaces"
	"github.com/herald-dev/herald/pkg/domain/model"
)

// maxErrorBody bounds how much of an error response is kept for the
// failure message.
const maxErrorBody = 4096

type embed struct {
	Title       string   `json:"title"`
	URL         string   `json:"url,omitempty"`
	Description string   `json:"description"`
	Footer      struct{} `json:"footer"`
}

type message struct {
	Content string  `json:"content,omitempty"`
	Embeds  []embed `json:"embeds"`
}

// Client posts embed messages to a Discord webhook endpoint
type Client struct {
	webhookURL string
	httpClient *http.Client
}

// NewClient creates a webhook client for the given endpoint URL
func NewClient(webhookURL string) interfaces.Notifier {
	return &Client{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Send posts the payload as a single embed. The wait=true query flag
// asks the endpoint to acknowledge synchronously so delivery failures
// surface as HTTP errors. Non-2xx responses are errors carrying the
// response body; there are no retries.
func (c *Client) Send(ctx context.Context, payload *model.NotificationPayload) error {
	msg := message{
		Content: payload.Content,
		Embeds: []embed{{
			Title:       payload.Title,
			URL:         payload.URL,
			Description: payload.Description,
		}},
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return goerr.Wrap(err, "failed to marshal webhook message")
	}

	endpoint, err := url.Parse(c.webhookURL)
	if err != nil {
		return goerr.Wrap(err, "invalid webhook URL")
	}
	query := endpoint.Query()
	query.Set("wait", "true")
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(data))
	if err != nil {
		return goerr.Wrap(err, "failed to create webhook request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "failed to post webhook")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return goerr.New("webhook endpoint rejected the notification",
			goerr.V("status", resp.StatusCode),
			goerr.V("response", string(respBody)))
	}

	return nil
}
