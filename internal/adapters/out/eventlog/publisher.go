// Package eventlog provides an EventPublisher that writes domain events to
// a structured logger. The application wires it in so lifecycle, payment,
// and shipment events show up in the process log.
package eventlog

import (
	"context"
	"log/slog"

	"storefront/internal/core/domain/events"
)

// Publisher logs every published event at info level with its machine name
// and display message.
type Publisher struct {
	logger *slog.Logger
}

// NewPublisher creates a publisher writing to the given logger.
func NewPublisher(logger *slog.Logger) *Publisher {
	return &Publisher{
		logger: logger.With("component", "event_publisher"),
	}
}

// Publish logs the event. Never fails.
func (p *Publisher) Publish(ctx context.Context, event events.Event) error {
	p.logger.InfoContext(ctx, event.Message(), "event", event.Name())
	return nil
}
