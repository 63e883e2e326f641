package redis

import (
	"context"
	"fmt"

	"github.com/gabapcia/tronwatch/internal/tokenregistry"
)

// tokenRegistryPrefix defines the base key prefix used for storing tracked
// token contracts in Redis.
const tokenRegistryPrefix = "tokenregistry"

// tokenRegistryKey returns the Redis key under which tracked token contracts
// are stored for the specified wallet address.
//
// Format: "tokenregistry:tokens:{wallet}"
func tokenRegistryKey(wallet string) string {
	return fmt.Sprintf("%s:tokens:%s", tokenRegistryPrefix, wallet)
}

// RegisterToken implements the tokenregistry.TokenStorage interface using a
// Redis hash keyed by contract address. Registering an already tracked
// contract overwrites its symbol.
func (c *client) RegisterToken(ctx context.Context, wallet string, token tokenregistry.TrackedToken) error {
	return c.conn.HSet(ctx, tokenRegistryKey(wallet), token.ContractAddress, token.Symbol).Err()
}

// UnregisterToken implements the tokenregistry.TokenStorage interface.
// Removing a contract that is not tracked is a no-op.
func (c *client) UnregisterToken(ctx context.Context, wallet, contractAddress string) error {
	return c.conn.HDel(ctx, tokenRegistryKey(wallet), contractAddress).Err()
}

// ListTokens implements the tokenregistry.TokenStorage interface, returning
// every token contract tracked for the wallet.
func (c *client) ListTokens(ctx context.Context, wallet string) ([]tokenregistry.TrackedToken, error) {
	entries, err := c.conn.HGetAll(ctx, tokenRegistryKey(wallet)).Result()
	if err != nil {
		return nil, err
	}

	tokens := make([]tokenregistry.TrackedToken, 0, len(entries))
	for contractAddress, symbol := range entries {
		tokens = append(tokens, tokenregistry.TrackedToken{
			ContractAddress: contractAddress,
			Symbol:          symbol,
		})
	}

	return tokens, nil
}

// Compile-time assertion to ensure *client satisfies the tokenregistry.TokenStorage interface
var _ tokenregistry.TokenStorage = new(client)
