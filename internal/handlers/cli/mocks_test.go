package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/gabapcia/tronwatch/internal/tokenregistry"
)

// TokenRegistryServiceMock is a testify mock for the tokenregistry.Service interface.
type TokenRegistryServiceMock struct {
	mock.Mock
}

func NewTokenRegistryServiceMock(t *testing.T) *TokenRegistryServiceMock {
	t.Helper()

	m := new(TokenRegistryServiceMock)
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *TokenRegistryServiceMock) StartTracking(ctx context.Context, wallet, contractAddress, symbol string) error {
	args := m.Called(ctx, wallet, contractAddress, symbol)
	return args.Error(0)
}

func (m *TokenRegistryServiceMock) StopTracking(ctx context.Context, wallet, contractAddress string) error {
	args := m.Called(ctx, wallet, contractAddress)
	return args.Error(0)
}

func (m *TokenRegistryServiceMock) TrackedTokens(ctx context.Context, wallet string) ([]tokenregistry.TrackedToken, error) {
	args := m.Called(ctx, wallet)

	var tokens []tokenregistry.TrackedToken
	if v := args.Get(0); v != nil {
		tokens = v.([]tokenregistry.TrackedToken)
	}

	return tokens, args.Error(1)
}

// MonitorServiceMock is a testify mock for the monitor.Service interface.
type MonitorServiceMock struct {
	mock.Mock
}

func NewMonitorServiceMock(t *testing.T) *MonitorServiceMock {
	t.Helper()

	m := new(MonitorServiceMock)
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MonitorServiceMock) Start(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MonitorServiceMock) Close() {
	m.Called()
}
