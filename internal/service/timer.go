// Package service implements the timer bridge: event dispatch and the
// project item and issue handlers.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	tbotel "github.com/Strob0t/timerbridge/internal/adapter/otel"
	"github.com/Strob0t/timerbridge/internal/domain/timer"
	"github.com/Strob0t/timerbridge/internal/domain/webhook"
	"github.com/Strob0t/timerbridge/internal/port/projectboard"
	"github.com/Strob0t/timerbridge/internal/port/timersink"
)

// TimerService turns GitHub events into timer actions and forwards them to
// the backend. Handlers never return errors: every failure is logged and
// reported through the returned timer.Result.
type TimerService struct {
	items   projectboard.ItemLookup
	sink    timersink.Sender
	metrics *tbotel.Metrics
}

// NewTimerService creates a timer service.
func NewTimerService(items projectboard.ItemLookup, sink timersink.Sender) *TimerService {
	return &TimerService{items: items, sink: sink}
}

// SetMetrics enables metric recording. A nil value disables it.
func (s *TimerService) SetMetrics(m *tbotel.Metrics) { s.metrics = m }

// Dispatch routes an event by kind. Unknown kinds are skipped.
func (s *TimerService) Dispatch(ctx context.Context, event string, payload []byte) timer.Result {
	ctx, span := tbotel.StartDispatchSpan(ctx, event)
	defer span.End()

	slog.InfoContext(ctx, "processing event", "event", event)

	var res timer.Result
	switch webhook.EventKind(event) {
	case webhook.EventProjectItem:
		res = s.HandleProjectItemEvent(ctx, payload)
	case webhook.EventIssues:
		res = s.HandleIssueEvent(ctx, payload)
	default:
		slog.InfoContext(ctx, "event not handled", "event", event)
		res = timer.Skipped("unhandled event " + event)
	}

	span.SetAttributes(attribute.String("timer.outcome", string(res.Outcome)))
	s.record(ctx, event, res)
	return res
}

// deliver sends a to the backend and converts the outcome into a Result.
func (s *TimerService) deliver(ctx context.Context, a *timer.Action) timer.Result {
	if !a.Action.Valid() {
		err := fmt.Errorf("%w %q", timer.ErrUnknownAction, a.Action)
		slog.ErrorContext(ctx, "refusing to send timer action", "error", err)
		return timer.Failed("invalid action", a, err)
	}

	receipt, err := s.sink.Send(ctx, a)
	if err != nil {
		var statusErr *timersink.StatusError
		switch {
		case errors.Is(err, timersink.ErrNotConfigured):
			slog.ErrorContext(ctx, "cannot send to timer backend", "error", err)
			return timer.Failed("backend not configured", a, err)
		case errors.As(err, &statusErr):
			slog.ErrorContext(ctx, "timer backend error",
				"status", statusErr.StatusCode,
				"body", statusErr.Body,
			)
			return timer.Failed("backend rejected action", a, err)
		default:
			slog.ErrorContext(ctx, "failed to send to timer backend", "error", err)
			return timer.Failed("backend unreachable", a, err)
		}
	}

	slog.InfoContext(ctx, "sent to timer backend",
		"action", a.Action,
		"issue", a.IssueNumber,
		"repo", a.RepoFullName,
		"status", receipt.StatusCode,
		"response", receipt.Body,
	)
	return timer.Sent(a)
}

func (s *TimerService) record(ctx context.Context, event string, res timer.Result) {
	if s.metrics == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.String("event", event)}
	if res.Action != nil {
		attrs = append(attrs, attribute.String("action", string(res.Action.Action)))
	}
	opt := metric.WithAttributes(attrs...)

	s.metrics.EventsReceived.Add(ctx, 1, opt)
	switch res.Outcome {
	case timer.OutcomeSent:
		s.metrics.DeliveriesSent.Add(ctx, 1, opt)
	case timer.OutcomeSkipped:
		s.metrics.EventsSkipped.Add(ctx, 1, opt)
	case timer.OutcomeFailed:
		s.metrics.DeliveriesFailed.Add(ctx, 1, opt)
	}
}
