package postgres

import (
	"context"
	"time"

	"github.com/gabapcia/tronwatch/internal/monitor"
)

// RecordAdmitted implements the monitor.EventJournal interface, appending one
// admitted event to the audit table. Re-recording an event id that is already
// journaled is a no-op.
func (c *client) RecordAdmitted(ctx context.Context, cycleID string, event monitor.Event) error {
	var occurredAt *time.Time
	if !event.OccurredAt.IsZero() {
		occurredAt = &event.OccurredAt
	}

	_, err := c.pool.Exec(ctx, `
		INSERT INTO admitted_events (event_id, cycle_id, wallet, kind, direction, amount, token, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (event_id) DO NOTHING
	`,
		event.ID,
		cycleID,
		c.wallet,
		string(event.Kind),
		string(event.Direction),
		event.Amount.String(),
		event.Metadata.TokenSymbol,
		occurredAt,
	)

	return err
}

// Compile-time assertion to ensure *client satisfies the monitor.EventJournal interface
var _ monitor.EventJournal = new(client)
