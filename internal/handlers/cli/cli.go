// Package cli wires the tronwatch services into a command-line application.
package cli

import (
	"context"
	"os"

	"github.com/gabapcia/tronwatch/internal/monitor"
	"github.com/gabapcia/tronwatch/internal/tokenregistry"

	"github.com/urfave/cli/v3"
)

// Run initializes and executes the tronwatch CLI application.
//
// It registers all available commands, including:
//
//   - `start`: Starts the wallet activity monitor.
//   - `track`: Registers a TRC-20 token contract for monitoring.
//   - `untrack`: Unregisters a TRC-20 token contract from monitoring.
//
// Parameters:
//   - ctx: Context used to control the lifecycle of the CLI application.
//   - tr: The tokenregistry service implementation used by token commands.
//   - mon: The monitor service implementation used by the start command.
//   - wallet: The wallet address the application is configured to watch.
//
// This function sets up shell completion and invokes the CLI framework to parse and run commands.
func Run(ctx context.Context, tr tokenregistry.Service, mon monitor.Service, wallet string) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "tronwatch",
		Description:           "Command-line interface for running and managing the Tron wallet activity monitor.",
		Usage:                 "tronwatch [command] [flags]",
		Commands: []*cli.Command{
			startMonitorCommand(mon),
			startTrackingTokenCommand(tr, wallet),
			stopTrackingTokenCommand(tr, wallet),
		},
	}

	return app.Run(ctx, os.Args)
}
