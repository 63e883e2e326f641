// Package postgres provides a PostgreSQL backed audit journal of admitted
// wallet activity events, implementing the monitor.EventJournal interface.
package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// admittedEventsSchema creates the audit table if it does not exist yet.
// event_id carries a uniqueness constraint so replays of the same event
// never produce duplicate rows.
const admittedEventsSchema = `
CREATE TABLE IF NOT EXISTS admitted_events (
	event_id    TEXT PRIMARY KEY,
	cycle_id    TEXT        NOT NULL,
	wallet      TEXT        NOT NULL,
	kind        TEXT        NOT NULL,
	direction   TEXT        NOT NULL,
	amount      NUMERIC     NOT NULL,
	token       TEXT        NOT NULL,
	occurred_at TIMESTAMPTZ,
	admitted_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

type client struct {
	pool   *pgxpool.Pool
	wallet string
}

// Close releases the underlying connection pool.
func (c *client) Close() {
	c.pool.Close()
}

// NewClient connects to PostgreSQL using the given DSN, ensures the audit
// schema exists and returns a journal scoped to the given wallet address.
func NewClient(ctx context.Context, dsn, wallet string) (*client, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	if _, err := pool.Exec(ctx, admittedEventsSchema); err != nil {
		pool.Close()
		return nil, err
	}

	return &client{
		pool:   pool,
		wallet: wallet,
	}, nil
}
