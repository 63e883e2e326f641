package monitor

import "context"

// EventJournal records every admitted event for auditing. It is strictly an
// observer of the admission stream: journal failures are logged by the
// monitor and never affect admission or notification.
type EventJournal interface {
	// RecordAdmitted persists one admitted event together with the id of the
	// cycle that admitted it. Implementations should be idempotent on the
	// event id.
	RecordAdmitted(ctx context.Context, cycleID string, event Event) error
}

// nopEventJournal is the default EventJournal. It drops every record and is
// used when no audit storage is configured.
type nopEventJournal struct{}

var _ EventJournal = (*nopEventJournal)(nil)

func (nopEventJournal) RecordAdmitted(ctx context.Context, cycleID string, event Event) error {
	return nil
}
