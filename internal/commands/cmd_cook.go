package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/aldente/internal/core/catalog"
	"github.com/colonyops/aldente/internal/core/styles"
	"github.com/colonyops/aldente/internal/core/timer"
	"github.com/colonyops/aldente/internal/tui"
)

type CookCmd struct {
	flags *Flags

	// Command-specific flags
	minutes float64
	label   string
	debug   bool
	noWatch bool
	stay    bool
}

// NewCookCmd creates a new cook command
func NewCookCmd(flags *Flags) *CookCmd {
	return &CookCmd{flags: flags}
}

// Register adds the cook command to the application
func (cmd *CookCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "cook",
		Usage:     "Start one or more pasta timers",
		UsageText: "aldente cook [options] [pasta...]",
		Description: `Registers and starts a countdown timer for each named pasta shape.

The cooking time defaults to the middle of the shape's recommended range.
Use --minutes to override; times outside the recommended range ask for
confirmation.

With no arguments an interactive form selects the shape and minutes.

Once started, the live watch view opens so timers can be paused, resumed,
or cancelled. Use --no-watch to wait without the interactive view.`,
		Flags: []cli.Flag{
			&cli.FloatFlag{
				Name:        "minutes",
				Aliases:     []string{"m"},
				Usage:       "cooking time in minutes (overrides the recommended time)",
				Destination: &cmd.minutes,
			},
			&cli.StringFlag{
				Name:        "label",
				Aliases:     []string{"l"},
				Usage:       "timer label (defaults to the pasta name)",
				Destination: &cmd.label,
			},
			&cli.BoolFlag{
				Name:        "debug",
				Usage:       "shorten every timer to a few seconds",
				Destination: &cmd.debug,
			},
			&cli.BoolFlag{
				Name:        "no-watch",
				Usage:       "wait for completion without the interactive view",
				Destination: &cmd.noWatch,
			},
			&cli.BoolFlag{
				Name:        "stay",
				Usage:       "keep the watch view open after all timers finish",
				Destination: &cmd.stay,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *CookCmd) run(ctx context.Context, c *cli.Command) error {
	shapes := c.Args().Slice()

	if len(shapes) == 0 {
		shape, minutes, err := cmd.runForm()
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("form: %w", err)
		}
		shapes = []string{shape}
		cmd.minutes = minutes
	}

	if cmd.label != "" && len(shapes) > 1 {
		return fmt.Errorf("--label requires a single pasta argument")
	}

	debug := cmd.debug || cmd.flags.Config.Timer.Debug
	out := c.Root().Writer

	var ids []string
	for _, shape := range shapes {
		p, err := cmd.flags.Catalog.Get(shape)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				return fmt.Errorf("unknown pasta %q. Run 'aldente pasta ls' to see available shapes", shape)
			}
			return err
		}

		minutes := cmd.minutes
		if minutes == 0 {
			minutes = recommendedMinutes(p)
		}
		if minutes <= 0 {
			return fmt.Errorf("cooking time must be positive, got %v", minutes)
		}

		if !p.ValidTime(minutes) && !cmd.confirmOffRange(p, minutes) {
			continue
		}

		label := cmd.label
		if label == "" {
			label = p.Name
		}

		id := cmd.flags.Manager.Register(label, minutes, debug)
		cmd.flags.Manager.Start(id, cmd.finishObserver(p.Name))
		ids = append(ids, id)

		fmt.Fprintf(out, "%s %s (%s)\n",
			styles.Success.Render("Started"),
			label,
			formatMinutes(minutes),
		)
	}

	if len(ids) == 0 {
		return nil
	}

	fmt.Fprintln(out, styles.Subtle.Render(cmd.flags.Catalog.RandomFact()))

	if cmd.noWatch {
		return cmd.wait(ctx, out, ids)
	}

	return tui.Run(ctx, cmd.flags.Manager, tui.Options{
		RefreshInterval: cmd.flags.Config.Watch.RefreshInterval,
		Stay:            cmd.stay,
	})
}

// finishObserver notifies and bumps usage when a timer for name finishes.
func (cmd *CookCmd) finishObserver(name string) timer.Observer {
	return timer.FuncObserver{
		Finished: func(e timer.Event) {
			cmd.flags.Notifier.TimerFinished(e.Label)
			if err := cmd.flags.Catalog.IncrementUsage(name); err != nil {
				fmt.Fprintln(os.Stderr, styles.Warning.Render("could not record pasta usage: "+err.Error()))
			}
		},
	}
}

func (cmd *CookCmd) runForm() (string, float64, error) {
	var (
		shape      string
		minutesStr string
	)

	names := cmd.flags.Catalog.Names()
	options := make([]huh.Option[string], len(names))
	for i, n := range names {
		options[i] = huh.NewOption(n, n)
	}

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Pasta").
				Options(options...).
				Value(&shape),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Minutes").
				DescriptionFunc(func() string {
					p, err := cmd.flags.Catalog.Get(shape)
					if err != nil {
						return ""
					}
					return fmt.Sprintf("Recommended: %d-%d minutes (blank uses %s)",
						p.MinTime, p.MaxTime, formatMinutes(recommendedMinutes(p)))
				}, &shape).
				Validate(validateMinutes).
				Value(&minutesStr),
		),
	).Run()
	if err != nil {
		return "", 0, err
	}

	if minutesStr == "" {
		return shape, 0, nil
	}
	minutes, err := strconv.ParseFloat(minutesStr, 64)
	if err != nil {
		return "", 0, fmt.Errorf("parse minutes: %w", err)
	}
	return shape, minutes, nil
}

func (cmd *CookCmd) confirmOffRange(p catalog.Pasta, minutes float64) bool {
	proceed := false
	err := huh.NewConfirm().
		Title(fmt.Sprintf("%v minutes is outside the recommended %d-%d range for %s",
			minutes, p.MinTime, p.MaxTime, p.Name)).
		Affirmative("Cook anyway").
		Negative("Skip").
		Value(&proceed).
		Run()
	if err != nil {
		return false
	}
	return proceed
}

// wait blocks until every started timer reaches a terminal status,
// printing a line per outcome.
func (cmd *CookCmd) wait(ctx context.Context, out io.Writer, ids []string) error {
	pending := make(map[string]bool, len(ids))
	for _, id := range ids {
		pending[id] = true
	}

	interval := cmd.flags.Config.Watch.RefreshInterval
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for len(pending) > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		for id := range pending {
			view, ok := cmd.flags.Manager.Get(id)
			if !ok {
				delete(pending, id)
				continue
			}
			if !view.Status.Terminal() {
				continue
			}
			delete(pending, id)

			switch view.Status {
			case timer.StatusFinished:
				fmt.Fprintf(out, "%s %s is ready!\n", styles.Success.Render("Done"), view.Label)
			case timer.StatusCancelled:
				fmt.Fprintf(out, "%s %s cancelled\n", styles.Subtle.Render("Stopped"), view.Label)
			case timer.StatusError:
				fmt.Fprintf(out, "%s %s failed: %s\n", styles.ErrorMsg.Render("Error"), view.Label, view.Err)
			}
		}
	}

	return nil
}

// recommendedMinutes is the midpoint of the shape's recommended range.
func recommendedMinutes(p catalog.Pasta) float64 {
	return float64(p.MinTime+p.MaxTime) / 2
}

func formatMinutes(minutes float64) string {
	if minutes == float64(int(minutes)) {
		return fmt.Sprintf("%d min", int(minutes))
	}
	return fmt.Sprintf("%.1f min", minutes)
}

func validateMinutes(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("not a number")
	}
	if v <= 0 || v > 180 {
		return fmt.Errorf("minutes must be between 0 and 180")
	}
	return nil
}
