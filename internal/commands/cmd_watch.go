package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/aldente/internal/tui"
)

type WatchCmd struct {
	flags *Flags

	stay bool
}

// NewWatchCmd creates a new watch command
func NewWatchCmd(flags *Flags) *WatchCmd {
	return &WatchCmd{flags: flags}
}

// Flags returns the watch flags for registration on the root command,
// since watch is also the default action.
func (cmd *WatchCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "stay",
			Usage:       "keep the watch view open after all timers finish",
			Destination: &cmd.stay,
		},
	}
}

// Run opens the live watch view over the current timer registry.
func (cmd *WatchCmd) Run(ctx context.Context, c *cli.Command) error {
	return tui.Run(ctx, cmd.flags.Manager, tui.Options{
		RefreshInterval: cmd.flags.Config.Watch.RefreshInterval,
		Stay:            cmd.stay,
	})
}
