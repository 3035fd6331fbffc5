package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/aldente/internal/commands"
	"github.com/colonyops/aldente/internal/core/catalog"
	"github.com/colonyops/aldente/internal/core/config"
	"github.com/colonyops/aldente/internal/core/notify"
	"github.com/colonyops/aldente/internal/core/timer"
	"github.com/colonyops/aldente/internal/store/jsonfile"
	"github.com/colonyops/aldente/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, init() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	// When installed via `go install module@version`, ldflags aren't set
	// so version remains "dev". Fall back to runtime/debug.BuildInfo which
	// Go populates automatically with the module version and VCS metadata.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var logCloser func()

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "aldente",
		Usage:     "Cook pasta with concurrent countdown timers",
		UsageText: "aldente [global options] command [command options]",
		Description: `Aldente runs multiple pasta timers side by side, each with its own
pause, resume, and cancel controls.

Run 'aldente cook spaghetti' to start a timer for a known shape.
Run 'aldente' with no arguments to open the live watch view.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("ALDENTE_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file",
				Sources:     cli.EnvVars("ALDENTE_LOG_FILE"),
				Value:       commands.DefaultLogFile(),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("ALDENTE_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("ALDENTE_DATA_DIR"),
				Value:       commands.DefaultDataDir(),
				Destination: &flags.DataDir,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// Always log to a file; stdout belongs to tables and the watch view.
			logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			store := jsonfile.New(cfg.PastaFile())
			flags.Catalog = catalog.New(store, log.With().Str("component", "catalog").Logger())
			flags.Manager = timer.NewManager(log.With().Str("component", "timer").Logger())
			flags.Notifier = notify.New(cfg.Notifications, log.With().Str("component", "notify").Logger())

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	watchCmd := commands.NewWatchCmd(flags)

	app = commands.NewCookCmd(flags).Register(app)
	app = commands.NewLsCmd(flags).Register(app)
	app = commands.NewSweepCmd(flags).Register(app)
	app = commands.NewPastaCmd(flags).Register(app)
	app = commands.NewGuideCmd(flags).Register(app)
	app = commands.NewConfigCmd(flags).Register(app)

	// Register watch flags on root command
	app.Flags = append(app.Flags, watchCmd.Flags()...)

	// Set the watch view as default action when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'aldente --help' for usage", c.Args().First())
		}
		return watchCmd.Run(ctx, c)
	}

	exitCode := 0
	runErr := app.Run(ctx, os.Args)
	if runErr != nil {
		fmt.Println()
		fmt.Println(runErr.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
