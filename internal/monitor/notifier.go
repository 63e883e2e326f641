package monitor

import (
	"context"
	"time"
)

// Notifier delivers human-readable notifications to the messaging channel.
//
// Delivery is fire-and-forget from the monitor's perspective: both outcomes
// of a send are terminal, the monitor never retries, and a failed delivery
// does not un-admit an event.
type Notifier interface {
	// NotifyMonitorStarted announces that monitoring has begun for the given
	// wallet, polled at the given interval.
	NotifyMonitorStarted(ctx context.Context, wallet string, interval time.Duration) error

	// NotifyEvent renders the event and hands it to the messaging channel.
	// Rendering must succeed structurally for any well-formed Event, and
	// degrade to a minimal one-line message if the metadata cannot be
	// rendered.
	NotifyEvent(ctx context.Context, event Event) error
}
