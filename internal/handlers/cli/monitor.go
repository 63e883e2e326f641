package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/tronwatch/internal/monitor"

	"github.com/urfave/cli/v3"
)

// startMonitorCommand returns a CLI command that starts the wallet activity
// monitor, polling the explorer on a fixed interval and delivering alerts for
// newly observed transactions.
//
// Usage example:
//
//	tronwatch start
//
// The process runs indefinitely until it receives an interrupt (SIGINT or SIGTERM).
func startMonitorCommand(mon monitor.Service) *cli.Command {
	return &cli.Command{
		Name:        "start",
		Description: "Starts the wallet activity monitor including explorer polling and alert delivery.",
		Usage:       "Initializes and runs the monitor. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			quit := make(chan os.Signal, 1)
			defer close(quit)

			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			if err := mon.Start(ctx); err != nil {
				return err
			}
			defer mon.Close()

			<-quit
			return nil
		},
	}
}
