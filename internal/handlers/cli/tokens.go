package cli

import (
	"context"

	"github.com/gabapcia/tronwatch/internal/tokenregistry"

	"github.com/urfave/cli/v3"
)

// startTrackingTokenCommand returns a CLI command that allows users to register
// a TRC-20 token contract whose transfers should be monitored for the
// configured wallet.
//
// Usage example:
//
//	tronwatch track --contract TR7NHqjeKQxGTCi8q8ZY4pL8otSzgjLj6t --symbol USDT
func startTrackingTokenCommand(tr tokenregistry.Service, wallet string) *cli.Command {
	return &cli.Command{
		Name:        "track",
		Description: "Register a TRC-20 token contract to be monitored for transfer activity.",
		Usage:       "Registers a token contract for tracking. Must provide both contract and symbol.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "contract",
				Usage:    "TRC-20 token contract address (e.g., TR7NHqjeKQxGTCi8q8ZY4pL8otSzgjLj6t)",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "symbol",
				Usage:    "Token symbol used in alerts (e.g., USDT)",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			var (
				contract = c.String("contract")
				symbol   = c.String("symbol")
			)

			return tr.StartTracking(ctx, wallet, contract, symbol)
		},
	}
}

// stopTrackingTokenCommand returns a CLI command that allows users to
// unregister a TRC-20 token contract from being monitored for the configured
// wallet.
//
// Usage example:
//
//	tronwatch untrack --contract TR7NHqjeKQxGTCi8q8ZY4pL8otSzgjLj6t
func stopTrackingTokenCommand(tr tokenregistry.Service, wallet string) *cli.Command {
	return &cli.Command{
		Name:        "untrack",
		Description: "Unregister a TRC-20 token contract from being monitored.",
		Usage:       "Stops tracking a token contract. Must provide the contract address.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "contract",
				Usage:    "TRC-20 token contract address to stop tracking",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return tr.StopTracking(ctx, wallet, c.String("contract"))
		},
	}
}
