package monitor

import (
	"time"

	"github.com/gabapcia/tronwatch/internal/pkg/types"
)

const (
	// defaultGracePeriod is subtracted from the first cycle's start time to
	// form the initial watermark, so events that occurred shortly before the
	// process started are still eligible once.
	defaultGracePeriod = 10 * time.Minute

	// seenHighWaterMark is the size at which the seen set is compacted.
	seenHighWaterMark = 1000

	// seenRetainCount is how many of the most recently admitted ids survive
	// a compaction.
	seenRetainCount = 500
)

// tracker owns the deduplication state of one monitor instance: the set of
// previously admitted event ids and the watermark time before which all
// relevant events are assumed already processed.
//
// It is not safe for concurrent use; the monitor service only touches it from
// its single processing loop.
type tracker struct {
	seen          *types.OrderedSet[string]
	watermark     time.Time
	highWaterMark int
	retainCount   int
}

// newTracker creates a tracker whose watermark starts grace before startedAt.
func newTracker(startedAt time.Time, grace time.Duration) *tracker {
	return &tracker{
		seen:          types.NewOrderedSet[string](),
		watermark:     startedAt.Add(-grace),
		highWaterMark: seenHighWaterMark,
		retainCount:   seenRetainCount,
	}
}

// admit filters the normalized events of one cycle down to those seen for the
// first time, in the order presented.
//
// An event is rejected when its id was already admitted, or when its
// timestamp is known and not after the watermark. Events with an unknown
// (zero) timestamp skip the watermark test entirely so they are never starved
// by it. Ids are recorded in the seen set immediately on admission, which
// keeps the predicate correct even when the same id appears twice within a
// single batch.
//
// After classifying the whole batch, the watermark advances to cycleStartedAt
// (never backwards), and the seen set is compacted down to its most recently
// inserted entries once it grows past the high-water mark. Upstream
// pagination only ever returns a bounded recent window, so ids older than
// that window need not be remembered.
func (t *tracker) admit(cycleStartedAt time.Time, events []Event) []Event {
	admitted := make([]Event, 0, len(events))
	for _, event := range events {
		// Records the upstream returned without a hash cannot be
		// deduplicated and are never reported.
		if event.ID == "" {
			continue
		}

		if t.seen.Contains(event.ID) {
			continue
		}

		if !event.OccurredAt.IsZero() && !event.OccurredAt.After(t.watermark) {
			continue
		}

		t.seen.Add(event.ID)
		admitted = append(admitted, event)
	}

	if cycleStartedAt.After(t.watermark) {
		t.watermark = cycleStartedAt
	}

	if t.seen.Len() > t.highWaterMark {
		t.seen.TrimOldest(t.retainCount)
	}

	return admitted
}
