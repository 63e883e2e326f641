// Package tokenregistry manages the set of TRC-20 token contracts tracked
// for the monitored wallet. It validates token identifiers and delegates
// persistence to a pluggable TokenStorage backend.
package tokenregistry

import "context"

// Service defines the interface for managing which token contracts are
// monitored for transfer activity.
type Service interface {
	// StartTracking registers a token contract for transfer monitoring.
	//
	// Returns an error if validation fails or the registration cannot be
	// completed.
	StartTracking(ctx context.Context, wallet, contractAddress, symbol string) error

	// StopTracking unregisters a token contract from transfer monitoring.
	StopTracking(ctx context.Context, wallet, contractAddress string) error

	// TrackedTokens returns the tokens currently tracked for the wallet,
	// falling back to the built-in default set when the registry is empty.
	TrackedTokens(ctx context.Context, wallet string) ([]TrackedToken, error)
}

// service is the concrete implementation of the Service interface.
type service struct {
	tokenStorage TokenStorage
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// New creates a new tokenregistry service using the provided TokenStorage
// implementation.
func New(ts TokenStorage) *service {
	return &service{
		tokenStorage: ts,
	}
}

// StartTracking implements Service.
func (s *service) StartTracking(ctx context.Context, wallet, contractAddress, symbol string) error {
	token, err := buildTrackedToken(contractAddress, symbol)
	if err != nil {
		return err
	}

	return s.tokenStorage.RegisterToken(ctx, wallet, token)
}

// StopTracking implements Service.
func (s *service) StopTracking(ctx context.Context, wallet, contractAddress string) error {
	return s.tokenStorage.UnregisterToken(ctx, wallet, contractAddress)
}

// TrackedTokens implements Service.
func (s *service) TrackedTokens(ctx context.Context, wallet string) ([]TrackedToken, error) {
	tokens, err := s.tokenStorage.ListTokens(ctx, wallet)
	if err != nil {
		return nil, err
	}

	if len(tokens) == 0 {
		return DefaultTokens(), nil
	}

	return tokens, nil
}
