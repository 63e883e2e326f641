package monitor

import "context"

// Source supplies one kind of wallet activity from the upstream explorer:
// native coin transfers, or the transfers of a single tracked token.
//
// Implementations are pure I/O boundaries with no state of their own; the
// monitor owns all change-detection state.
type Source interface {
	// Name identifies the source in logs and cycle summaries
	// (e.g. "trx", "trc20:USDT").
	Name() string

	// FetchRecent returns up to one page of the most recent events for this
	// source, normalized into the canonical Event form. The upstream claims
	// most-recent-first ordering but that is not relied upon.
	//
	// Implementations must tolerate being called once per cycle for the
	// lifetime of the process. Any transport or payload error is returned
	// as-is; the monitor accounts the source as empty for that cycle.
	FetchRecent(ctx context.Context) ([]Event, error)
}
