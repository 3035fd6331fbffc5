package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/aldente/pkg/iojson"
)

type LsCmd struct {
	flags *Flags

	// flags
	jsonOutput bool
	match      string
}

// NewLsCmd creates a new ls command
func NewLsCmd(flags *Flags) *LsCmd {
	return &LsCmd{flags: flags}
}

// Register adds the ls command to the application
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Usage:     "List all timers",
		UsageText: "aldente ls [--json] [--match GLOB]",
		Description: `Displays a table of all timers with their id, label, status, and
remaining time.

Use --json for machine-readable output as JSON lines.
Use --match to filter timer labels with a glob pattern, e.g. 'spag*'.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
			&cli.StringFlag{
				Name:        "match",
				Aliases:     []string{"m"},
				Usage:       "filter labels by glob pattern",
				Destination: &cmd.match,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *LsCmd) run(ctx context.Context, c *cli.Command) error {
	views := cmd.flags.Manager.Snapshot()

	if cmd.match != "" {
		if !doublestar.ValidatePattern(cmd.match) {
			return fmt.Errorf("invalid glob pattern %q", cmd.match)
		}
		filtered := views[:0]
		for _, v := range views {
			if ok, _ := doublestar.Match(cmd.match, v.Label); ok {
				filtered = append(filtered, v)
			}
		}
		views = filtered
	}

	if len(views) == 0 {
		if !cmd.jsonOutput {
			fmt.Fprintf(os.Stderr, "No timers found\n")
		}
		return nil
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, v := range views {
			if err := iojson.WriteLine(out, v); err != nil {
				return fmt.Errorf("encode timer: %w", err)
			}
		}
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tLABEL\tSTATUS\tREMAINING\tTOTAL")

	for _, v := range views {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			v.ID, v.Label, v.Status, formatSeconds(v.Remaining), formatSeconds(v.Total))
	}

	return w.Flush()
}

// formatSeconds renders whole seconds as m:ss.
func formatSeconds(s int) string {
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}
