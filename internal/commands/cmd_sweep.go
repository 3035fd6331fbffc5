package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/aldente/internal/core/styles"
)

type SweepCmd struct {
	flags *Flags
}

// NewSweepCmd creates a new sweep command
func NewSweepCmd(flags *Flags) *SweepCmd {
	return &SweepCmd{flags: flags}
}

// Register adds the sweep command to the application
func (cmd *SweepCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "sweep",
		Usage:     "Remove all finished, cancelled, and errored timers",
		UsageText: "aldente sweep",
		Description: `Deletes every timer in a terminal state from the registry.

Created, running, and paused timers are not affected.`,
		Action: cmd.run,
	})

	return app
}

func (cmd *SweepCmd) run(ctx context.Context, c *cli.Command) error {
	count := cmd.flags.Manager.Sweep()

	if count == 0 {
		fmt.Fprintln(c.Root().Writer, "No finished timers to sweep")
		return nil
	}

	fmt.Fprintln(c.Root().Writer, styles.Success.Render(fmt.Sprintf("Swept %d timer(s)", count)))
	return nil
}
