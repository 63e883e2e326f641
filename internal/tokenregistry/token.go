package tokenregistry

import (
	"context"

	"github.com/gabapcia/tronwatch/internal/pkg/validator"
)

// usdtContractAddress is the TRC-20 contract of Tether USD, tracked by
// default when no tokens have been registered.
const usdtContractAddress = "TR7NHqjeKQxGTCi8q8ZY4pL8otSzgjLj6t"

// TrackedToken identifies one TRC-20 token whose transfers are monitored for
// the wallet, pairing the contract address with a display symbol.
//
// Both fields are required and validated upon creation.
type TrackedToken struct {
	ContractAddress string `validate:"required"` // TRC-20 contract address
	Symbol          string `validate:"required"` // short ticker used in notifications (e.g. "USDT")
}

// DefaultTokens returns the built-in token set used when the registry is
// empty or no registry storage is configured.
func DefaultTokens() []TrackedToken {
	return []TrackedToken{
		{ContractAddress: usdtContractAddress, Symbol: "USDT"},
	}
}

// TokenStorage defines the persistence interface for the set of tokens
// tracked for a given wallet.
type TokenStorage interface {
	// RegisterToken adds the given token to the wallet's tracked set.
	//
	// This method should be idempotent and safe to call multiple times with
	// the same token; re-registering a contract overwrites its symbol.
	RegisterToken(ctx context.Context, wallet string, token TrackedToken) error

	// UnregisterToken removes the token with the given contract address from
	// the wallet's tracked set.
	UnregisterToken(ctx context.Context, wallet, contractAddress string) error

	// ListTokens returns every token currently tracked for the wallet.
	ListTokens(ctx context.Context, wallet string) ([]TrackedToken, error)
}

// buildTrackedToken constructs and validates a TrackedToken from the given
// contract address and symbol.
func buildTrackedToken(contractAddress, symbol string) (TrackedToken, error) {
	token := TrackedToken{
		ContractAddress: contractAddress,
		Symbol:          symbol,
	}

	return token, validator.Validate(token)
}
