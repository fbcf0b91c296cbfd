package ports

import (
	"context"

	"storefront/internal/core/domain/events"
)

// EventPublisher delivers domain events to external collaborators for
// display. The lifecycle workflow publishes state-entered, payment, and
// shipment events through this port and never reacts to them itself.
type EventPublisher interface {
	// Publish delivers a single event. Implementations must not block the
	// workflow beyond what delivery requires.
	Publish(ctx context.Context, event events.Event) error
}
