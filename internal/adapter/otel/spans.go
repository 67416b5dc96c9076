package otel

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "timerbridge"

// StartDispatchSpan starts a span covering the handling of one event.
func StartDispatchSpan(ctx context.Context, event string) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, "timer.dispatch",
		trace.WithAttributes(attribute.String("github.event", event)),
	)
}

// StartLookupSpan starts a span for a project item GraphQL lookup.
func StartLookupSpan(ctx context.Context, nodeID string) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, "github.project_item.lookup",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("github.node_id", nodeID)),
	)
}

// StartDeliverySpan starts a span for a backend delivery.
func StartDeliverySpan(ctx context.Context, action, repo string, issue int) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, "timer.delivery",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("timer.action", action),
			attribute.String("github.repository", repo),
			attribute.Int("github.issue", issue),
		),
	)
}

// EndSpan records err (if any) on span and ends it.
func EndSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
