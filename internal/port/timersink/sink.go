// Package timersink defines the port for delivering timer actions to the
// time-tracking backend.
package timersink

import (
	"context"
	"errors"
	"fmt"

	"github.com/Strob0t/timerbridge/internal/domain/timer"
)

// ErrNotConfigured is returned when the backend URL or token is missing.
// No network call is made in that case.
var ErrNotConfigured = errors.New("timersink: not configured")

// Receipt describes a backend response.
type Receipt struct {
	StatusCode int    `json:"status_code"`
	Body       string `json:"body"`
}

// StatusError is returned for non-2xx backend responses.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("timer backend %d: %s", e.StatusCode, e.Body)
}

// Sender delivers a single action. Implementations attach the send
// timestamp and credentials.
type Sender interface {
	Send(ctx context.Context, action *timer.Action) (*Receipt, error)
}
