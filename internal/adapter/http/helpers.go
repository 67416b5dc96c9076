package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Strob0t/timerbridge/internal/domain/timer"
)

// webhookResponse reports how an event was handled. Delivery failures are
// reported here but never turn into an error status.
type webhookResponse struct {
	Event   string        `json:"event"`
	Outcome timer.Outcome `json:"outcome"`
	Reason  string        `json:"reason,omitempty"`
	Action  *timer.Action `json:"action,omitempty"`
	Error   string        `json:"error,omitempty"`
}

func newWebhookResponse(event string, res timer.Result) webhookResponse {
	out := webhookResponse{
		Event:   event,
		Outcome: res.Outcome,
		Reason:  res.Reason,
		Action:  res.Action,
	}
	if res.Err != nil {
		out.Error = res.Err.Error()
	}
	return out
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
