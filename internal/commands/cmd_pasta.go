package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/aldente/internal/core/styles"
)

type PastaCmd struct {
	flags *Flags

	// add flags
	name string
	min  int
	max  int
}

// NewPastaCmd creates a new pasta command
func NewPastaCmd(flags *Flags) *PastaCmd {
	return &PastaCmd{flags: flags}
}

// Register adds the pasta command to the application
func (cmd *PastaCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "pasta",
		Usage: "Manage custom pasta shapes",
		Description: `Add, remove, and list pasta shapes.

Custom shapes are persisted in the data directory and shadow built-in
shapes with the same name.`,
		Commands: []*cli.Command{
			cmd.addCmd(),
			cmd.rmCmd(),
			cmd.lsCmd(),
		},
	})

	return app
}

func (cmd *PastaCmd) addCmd() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Add a custom pasta shape",
		UsageText: "aldente pasta add [--name NAME --min MIN --max MAX]",
		Description: `Adds a custom pasta shape with its recommended cooking range.

When --name is omitted, an interactive form prompts for input.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "name",
				Aliases:     []string{"n"},
				Usage:       "pasta name",
				Destination: &cmd.name,
			},
			&cli.IntFlag{
				Name:        "min",
				Usage:       "minimum recommended cooking minutes",
				Destination: &cmd.min,
			},
			&cli.IntFlag{
				Name:        "max",
				Usage:       "maximum recommended cooking minutes",
				Destination: &cmd.max,
			},
		},
		Action: cmd.runAdd,
	}
}

func (cmd *PastaCmd) runAdd(ctx context.Context, c *cli.Command) error {
	if cmd.name == "" {
		if err := cmd.runAddForm(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("form: %w", err)
		}
	}

	if err := cmd.flags.Catalog.AddCustom(cmd.name, cmd.min, cmd.max); err != nil {
		return fmt.Errorf("add pasta: %w", err)
	}

	fmt.Fprintln(c.Root().Writer, styles.Success.Render(
		fmt.Sprintf("Added %s (%d-%d minutes)", cmd.name, cmd.min, cmd.max)))
	return nil
}

func (cmd *PastaCmd) runAddForm() error {
	var minStr, maxStr string

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Description("2-50 characters; letters, spaces, hyphens, apostrophes").
				Value(&cmd.name),
			huh.NewInput().
				Title("Min minutes").
				Validate(validateWholeMinutes).
				Value(&minStr),
			huh.NewInput().
				Title("Max minutes").
				Validate(validateWholeMinutes).
				Value(&maxStr),
		),
	).Run()
	if err != nil {
		return err
	}

	cmd.min, err = strconv.Atoi(minStr)
	if err != nil {
		return fmt.Errorf("parse min minutes: %w", err)
	}
	cmd.max, err = strconv.Atoi(maxStr)
	if err != nil {
		return fmt.Errorf("parse max minutes: %w", err)
	}
	return nil
}

func (cmd *PastaCmd) rmCmd() *cli.Command {
	return &cli.Command{
		Name:      "rm",
		Usage:     "Remove a custom pasta shape",
		UsageText: "aldente pasta rm NAME",
		Action:    cmd.runRm,
	}
}

func (cmd *PastaCmd) runRm(ctx context.Context, c *cli.Command) error {
	name := c.Args().First()
	if name == "" {
		return fmt.Errorf("usage: aldente pasta rm NAME")
	}

	removed, err := cmd.flags.Catalog.RemoveCustom(name)
	if err != nil {
		return fmt.Errorf("remove pasta: %w", err)
	}
	if !removed {
		if _, getErr := cmd.flags.Catalog.Get(name); getErr == nil {
			return fmt.Errorf("%q is a built-in shape and cannot be removed", name)
		}
		return fmt.Errorf("no custom pasta named %q", name)
	}

	fmt.Fprintln(c.Root().Writer, styles.Success.Render("Removed "+name))
	return nil
}

func (cmd *PastaCmd) lsCmd() *cli.Command {
	return &cli.Command{
		Name:      "ls",
		Usage:     "List all pasta shapes",
		UsageText: "aldente pasta ls",
		Action:    cmd.runLs,
	}
}

func (cmd *PastaCmd) runLs(ctx context.Context, c *cli.Command) error {
	w := tabwriter.NewWriter(c.Root().Writer, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tRANGE\tTYPE\tUSES")

	for _, p := range cmd.flags.Catalog.All() {
		kind := "built-in"
		uses := "-"
		if p.Custom {
			kind = "custom"
			uses = strconv.Itoa(p.UsageCount)
		}
		_, _ = fmt.Fprintf(w, "%s\t%d-%d min\t%s\t%s\n", p.Name, p.MinTime, p.MaxTime, kind, uses)
	}

	return w.Flush()
}

func validateWholeMinutes(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("whole minutes required")
	}
	if v < 1 || v > 60 {
		return fmt.Errorf("minutes must be between 1 and 60")
	}
	return nil
}
