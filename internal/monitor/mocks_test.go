package monitor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
)

// SourceMock is a testify mock for the Source interface.
type SourceMock struct {
	mock.Mock
	name string
}

func NewSourceMock(t *testing.T, name string) *SourceMock {
	m := &SourceMock{name: name}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *SourceMock) Name() string {
	return m.name
}

func (m *SourceMock) FetchRecent(ctx context.Context) ([]Event, error) {
	args := m.Called(ctx)
	if events := args.Get(0); events != nil {
		return events.([]Event), args.Error(1)
	}
	return nil, args.Error(1)
}

// NotifierMock is a testify mock for the Notifier interface.
type NotifierMock struct {
	mock.Mock
}

func NewNotifierMock(t *testing.T) *NotifierMock {
	m := new(NotifierMock)
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *NotifierMock) NotifyMonitorStarted(ctx context.Context, wallet string, interval time.Duration) error {
	return m.Called(ctx, wallet, interval).Error(0)
}

func (m *NotifierMock) NotifyEvent(ctx context.Context, event Event) error {
	return m.Called(ctx, event).Error(0)
}

// EventJournalMock is a testify mock for the EventJournal interface.
type EventJournalMock struct {
	mock.Mock
}

func NewEventJournalMock(t *testing.T) *EventJournalMock {
	m := new(EventJournalMock)
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *EventJournalMock) RecordAdmitted(ctx context.Context, cycleID string, event Event) error {
	return m.Called(ctx, cycleID, event).Error(0)
}
