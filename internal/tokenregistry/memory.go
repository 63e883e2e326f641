package tokenregistry

import (
	"context"
	"sync"
)

// memoryStorage is a process-local TokenStorage. It backs the registry when
// no durable storage is configured; tracked tokens last only for the
// lifetime of the process.
type memoryStorage struct {
	mu     sync.RWMutex
	tokens map[string]map[string]string // wallet -> contract address -> symbol
}

var _ TokenStorage = (*memoryStorage)(nil)

// NewInMemoryStorage creates an empty in-memory TokenStorage.
func NewInMemoryStorage() *memoryStorage {
	return &memoryStorage{
		tokens: make(map[string]map[string]string),
	}
}

func (m *memoryStorage) RegisterToken(ctx context.Context, wallet string, token TrackedToken) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.tokens[wallet] == nil {
		m.tokens[wallet] = make(map[string]string)
	}
	m.tokens[wallet][token.ContractAddress] = token.Symbol

	return nil
}

func (m *memoryStorage) UnregisterToken(ctx context.Context, wallet, contractAddress string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.tokens[wallet], contractAddress)

	return nil
}

func (m *memoryStorage) ListTokens(ctx context.Context, wallet string) ([]TrackedToken, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	tokens := make([]TrackedToken, 0, len(m.tokens[wallet]))
	for contract, symbol := range m.tokens[wallet] {
		tokens = append(tokens, TrackedToken{ContractAddress: contract, Symbol: symbol})
	}

	return tokens, nil
}
