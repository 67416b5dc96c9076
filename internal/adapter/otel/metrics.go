package otel

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "timerbridge"

// Metrics holds the timerbridge metric instruments.
type Metrics struct {
	EventsReceived   metric.Int64Counter
	EventsSkipped    metric.Int64Counter
	DeliveriesSent   metric.Int64Counter
	DeliveriesFailed metric.Int64Counter
}

// NewMetrics creates all metric instruments on the global meter provider.
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(meterName)
	m := &Metrics{}
	var err error

	m.EventsReceived, err = meter.Int64Counter("timerbridge.events.received",
		metric.WithDescription("Number of GitHub events received"))
	if err != nil {
		return nil, err
	}

	m.EventsSkipped, err = meter.Int64Counter("timerbridge.events.skipped",
		metric.WithDescription("Number of events that produced no timer action"))
	if err != nil {
		return nil, err
	}

	m.DeliveriesSent, err = meter.Int64Counter("timerbridge.deliveries.sent",
		metric.WithDescription("Number of timer actions accepted by the backend"))
	if err != nil {
		return nil, err
	}

	m.DeliveriesFailed, err = meter.Int64Counter("timerbridge.deliveries.failed",
		metric.WithDescription("Number of events whose handling failed"))
	if err != nil {
		return nil, err
	}

	return m, nil
}
