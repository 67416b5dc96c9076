package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/Strob0t/timerbridge/internal/domain/timer"
)

// Dispatcher routes a GitHub event to its timer handler.
type Dispatcher interface {
	Dispatch(ctx context.Context, event string, payload []byte) timer.Result
}

// Handlers holds the HTTP handlers of the webhook listener.
type Handlers struct {
	Timer Dispatcher
}

const eventHeader = "X-GitHub-Event"

// HandleGitHubWebhook handles POST /webhooks/github
func (h *Handlers) HandleGitHubWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read body")
		return
	}

	event := r.Header.Get(eventHeader)
	if event == "" {
		writeError(w, http.StatusBadRequest, eventHeader+" header is required")
		return
	}
	if event == "ping" {
		writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
		return
	}

	// GitHub drops the connection after about ten seconds; an accepted
	// event is still handled to the end.
	res := h.Timer.Dispatch(context.WithoutCancel(r.Context()), event, body)
	if res.Err != nil {
		slog.WarnContext(r.Context(), "webhook handled with error", "event", event, "error", res.Err)
	}

	writeJSON(w, http.StatusAccepted, newWebhookResponse(event, res))
}

// HandleHealth handles GET /health
func (h *Handlers) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
