// Package timerapi implements timersink.Sender for the BLT timer backend.
package timerapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	tbotel "github.com/Strob0t/timerbridge/internal/adapter/otel"
	"github.com/Strob0t/timerbridge/internal/config"
	"github.com/Strob0t/timerbridge/internal/domain/timer"
	"github.com/Strob0t/timerbridge/internal/port/timersink"
)

const (
	// EventHeader marks requests as coming from the timer automation.
	EventHeader = "X-GitHub-Event"
	eventMarker = "timer-automation"

	// TimestampLayout is ISO-8601 UTC with millisecond precision.
	TimestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

// Client posts timer actions to the backend.
type Client struct {
	url        string
	token      string
	httpClient *http.Client
	now        func() time.Time // for testing
}

// NewClient creates a backend client from the resolved backend config.
// A zero timeout leaves the HTTP client without a deadline.
func NewClient(cfg config.Backend) *Client {
	return &Client{
		url:   cfg.URL,
		token: cfg.Token,
		httpClient: &http.Client{
			Transport: tbotel.Transport(nil),
			Timeout:   cfg.Timeout,
		},
		now: time.Now,
	}
}

// envelope is the request body: the action plus the send timestamp.
type envelope struct {
	*timer.Action
	Timestamp string `json:"timestamp"`
}

// Send posts action to the backend. Missing URL or token yields
// timersink.ErrNotConfigured without any network call; non-2xx responses
// yield *timersink.StatusError.
func (c *Client) Send(ctx context.Context, action *timer.Action) (*timersink.Receipt, error) {
	if c.url == "" {
		return nil, fmt.Errorf("%w: missing BLT_API_URL or SIZZLE_API_URL", timersink.ErrNotConfigured)
	}
	if c.token == "" {
		return nil, fmt.Errorf("%w: missing BLT_API_TOKEN or SIZZLE_API_TOKEN", timersink.ErrNotConfigured)
	}

	ctx, span := tbotel.StartDeliverySpan(ctx, string(action.Action), action.RepoFullName, action.IssueNumber)
	receipt, err := c.send(ctx, action)
	tbotel.EndSpan(span, err)
	return receipt, err
}

func (c *Client) send(ctx context.Context, action *timer.Action) (*timersink.Receipt, error) {
	body, err := json.Marshal(envelope{
		Action:    action,
		Timestamp: c.now().UTC().Format(TimestampLayout),
	})
	if err != nil {
		return nil, fmt.Errorf("timer backend marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("timer backend request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(EventHeader, eventMarker)

	resp, err := c.httpClient.Do(req) //nolint:gosec // backend URL from trusted config
	if err != nil {
		return nil, fmt.Errorf("timer backend send: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("timer backend read response: %w", err)
	}
	text := strings.TrimSpace(string(respBody))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &timersink.StatusError{StatusCode: resp.StatusCode, Body: text}
	}

	return &timersink.Receipt{StatusCode: resp.StatusCode, Body: text}, nil
}
