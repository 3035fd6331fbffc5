package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/aldente/internal/core/styles"
	"github.com/colonyops/aldente/pkg/iojson"
)

type ConfigCmd struct {
	flags *Flags

	jsonOutput bool
}

// NewConfigCmd creates a new config command.
func NewConfigCmd(flags *Flags) *ConfigCmd {
	return &ConfigCmd{flags: flags}
}

// Register adds the config command to the application.
func (cmd *ConfigCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:      "validate",
				Usage:     "Validate configuration file",
				UsageText: "aldente config validate [--json]",
				Description: `Validates the configuration file beyond the structural checks done at
startup: config file accessibility, data directory, and that configured
notification commands resolve to executables.`,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:        "json",
						Usage:       "output result as JSON",
						Destination: &cmd.jsonOutput,
					},
				},
				Action: cmd.runValidate,
			},
		},
	})

	return app
}

func (cmd *ConfigCmd) runValidate(ctx context.Context, c *cli.Command) error {
	err := cmd.flags.Config.ValidateDeep(cmd.flags.ConfigPath)
	out := c.Root().Writer

	if cmd.jsonOutput {
		result := struct {
			Valid bool   `json:"valid"`
			Error string `json:"error,omitempty"`
		}{Valid: err == nil}
		if err != nil {
			result.Error = err.Error()
		}
		return iojson.WriteWith(out, os.Stderr, result)
	}

	if err != nil {
		fmt.Fprintln(out, styles.ErrorMsg.Render("Configuration is invalid"))
		fmt.Fprintln(out, err.Error())
		return cli.Exit("", 1)
	}

	fmt.Fprintln(out, styles.Success.Render("Configuration is valid"))
	return nil
}
