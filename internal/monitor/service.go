// Package monitor implements wallet activity monitoring: it polls a set of
// event sources on a fixed interval, decides which observed transactions are
// new, and forwards a notification for each admitted event exactly once per
// process lifetime.
package monitor

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gabapcia/tronwatch/internal/pkg/logger"
	"github.com/gabapcia/tronwatch/internal/pkg/resilience/retry"
	"github.com/gabapcia/tronwatch/internal/pkg/x/chflow"

	"github.com/google/uuid"
)

// ErrServiceAlreadyStarted is returned if Start is called more than once.
var ErrServiceAlreadyStarted = errors.New("service already started")

const (
	defaultPollInterval  = 30 * time.Second
	defaultFetchSpacing  = 500 * time.Millisecond
	defaultNotifySpacing = time.Second
)

// Service drives the fetch, admit and notify loop for one monitored wallet.
type Service interface {
	// Start launches the monitoring loop in the background. It announces the
	// monitor via the Notifier and then runs one cycle per poll interval
	// until the context is canceled or Close is called.
	//
	// Returns ErrServiceAlreadyStarted if called more than once.
	Start(ctx context.Context) error

	// Close stops the monitoring loop and waits for the in-flight cycle to
	// wind down. It is safe to call Close even if the service was never
	// started.
	Close()
}

type closeFunc func()

type service struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc closeFunc

	wallet        string
	pollInterval  time.Duration
	fetchSpacing  time.Duration
	notifySpacing time.Duration
	gracePeriod   time.Duration
	nowFunc       func() time.Time

	sources  []Source
	notifier Notifier
	journal  EventJournal
	retry    retry.Retry

	tracker *tracker
}

var _ Service = (*service)(nil)

type config struct {
	pollInterval  time.Duration
	fetchSpacing  time.Duration
	notifySpacing time.Duration
	gracePeriod   time.Duration
	nowFunc       func() time.Time
	journal       EventJournal
	retry         retry.Retry
}

// Option configures the monitor service.
type Option func(*config)

// New creates a monitor service for the given wallet, sources and notifier.
func New(wallet string, sources []Source, notifier Notifier, opts ...Option) *service {
	cfg := config{
		pollInterval:  defaultPollInterval,
		fetchSpacing:  defaultFetchSpacing,
		notifySpacing: defaultNotifySpacing,
		gracePeriod:   defaultGracePeriod,
		nowFunc:       time.Now,
		journal:       nopEventJournal{},
		retry:         nil,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		wallet:        wallet,
		pollInterval:  cfg.pollInterval,
		fetchSpacing:  cfg.fetchSpacing,
		notifySpacing: cfg.notifySpacing,
		gracePeriod:   cfg.gracePeriod,
		nowFunc:       cfg.nowFunc,
		sources:       sources,
		notifier:      notifier,
		journal:       cfg.journal,
		retry:         cfg.retry,
	}
}

// WithPollInterval sets the time between cycle starts. Default: 30s.
func WithPollInterval(d time.Duration) Option {
	return func(c *config) {
		c.pollInterval = d
	}
}

// WithFetchSpacing sets the minimum spacing between successive upstream
// fetch calls within one cycle. Default: 500ms.
func WithFetchSpacing(d time.Duration) Option {
	return func(c *config) {
		c.fetchSpacing = d
	}
}

// WithNotifySpacing sets the minimum spacing between successive notification
// sends within one cycle. Default: 1s.
func WithNotifySpacing(d time.Duration) Option {
	return func(c *config) {
		c.notifySpacing = d
	}
}

// WithGracePeriod sets how far before process start the initial watermark is
// placed. Default: 10m.
func WithGracePeriod(d time.Duration) Option {
	return func(c *config) {
		c.gracePeriod = d
	}
}

// WithNowFunc replaces the clock used for cycle start times and the initial
// watermark. Intended for tests.
func WithNowFunc(now func() time.Time) Option {
	return func(c *config) {
		c.nowFunc = now
	}
}

// WithEventJournal sets the audit journal for admitted events.
func WithEventJournal(j EventJournal) Option {
	return func(c *config) {
		c.journal = j
	}
}

// WithRetry enables re-fetching a failed source within the same cycle before
// it is accounted as empty.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// Start implements Service.
func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	s.closeFunc = func() {
		cancel()
		<-done
	}

	s.tracker = newTracker(s.nowFunc(), s.gracePeriod)

	if err := s.notifier.NotifyMonitorStarted(ctx, s.wallet, s.pollInterval); err != nil {
		logger.Error(ctx, "failed to send startup notification", "error", err)
	}

	go s.run(ctx, done)

	s.isStarted = true
	return nil
}

// Close implements Service.
func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}
	s.isStarted = false
	s.closeFunc = nil
}

// run executes cycles back to back, separated by the poll interval, until the
// context is canceled.
func (s *service) run(ctx context.Context, done chan<- struct{}) {
	defer close(done)

	for {
		if ctx.Err() != nil {
			return
		}

		s.runCycle(ctx)

		if !s.wait(ctx, s.pollInterval) {
			return
		}
	}
}

// runCycle performs one full fetch, admit and notify pass. Any panic inside
// the cycle is recovered here so a single bad cycle never takes the loop
// down.
func (s *service) runCycle(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error(ctx, "monitor cycle aborted", "panic", r)
		}
	}()

	cycleID := uuid.Must(uuid.NewV7()).String()
	ctx = logger.Derive(ctx, "cycle.id", cycleID)

	startedAt := s.nowFunc()

	events := s.collectEvents(ctx)
	admitted := s.tracker.admit(startedAt, events)
	s.dispatch(ctx, cycleID, admitted)

	logger.Info(ctx, "monitor cycle finished",
		"events.fetched", len(events),
		"events.admitted", len(admitted),
	)
}

// collectEvents fetches every source sequentially, keeping the configured
// spacing between upstream calls. A failing source degrades to an empty
// result; the cycle proceeds with whatever the remaining sources return.
func (s *service) collectEvents(ctx context.Context) []Event {
	var collected []Event
	for i, source := range s.sources {
		if i > 0 && !s.wait(ctx, s.fetchSpacing) {
			return collected
		}

		events, err := s.fetchSource(ctx, source)
		if err != nil {
			logger.Warn(ctx, "source fetch failed, treating as empty",
				"source", source.Name(),
				"error", err,
			)
			continue
		}

		collected = append(collected, events...)
	}

	return collected
}

// fetchSource retrieves one source's page, re-fetching through the configured
// retry policy when one is set.
func (s *service) fetchSource(ctx context.Context, source Source) ([]Event, error) {
	if s.retry == nil {
		return source.FetchRecent(ctx)
	}

	var events []Event
	err := s.retry.Execute(ctx, func() error {
		fetched, err := source.FetchRecent(ctx)
		if err != nil {
			return err
		}
		events = fetched
		return nil
	})
	return events, err
}

// dispatch journals and notifies each admitted event, pacing successive
// sends. Delivery and journal failures are logged and the event remains
// handled; it is never re-admitted.
func (s *service) dispatch(ctx context.Context, cycleID string, admitted []Event) {
	for i, event := range admitted {
		if i > 0 && !s.wait(ctx, s.notifySpacing) {
			logger.Warn(ctx, "dispatch interrupted by shutdown",
				"events.pending", len(admitted)-i,
			)
			return
		}

		if err := s.journal.RecordAdmitted(ctx, cycleID, event); err != nil {
			logger.Error(ctx, "failed to journal admitted event",
				"event.id", event.ID,
				"error", err,
			)
		}

		if err := s.notifier.NotifyEvent(ctx, event); err != nil {
			logger.Error(ctx, "event notification delivery failed",
				"event.id", event.ID,
				"error", err,
			)
		}
	}
}

// wait sleeps for d unless the context is canceled first. It returns false
// when the wait was interrupted.
func (s *service) wait(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	_, ok := chflow.Receive(ctx, timer.C)
	return ok
}
