// Package notify announces finished timers through user-configured
// shell commands.
package notify

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/aldente/internal/core/config"
	"github.com/colonyops/aldente/pkg/executil"
)

const commandTimeout = 10 * time.Second

// Notifier fires sound and desktop notifications. Delivery is best
// effort; failures are logged and never surfaced to the caller, so a
// missing notify binary cannot break a finished timer.
type Notifier struct {
	cfg config.NotificationConfig
	log zerolog.Logger
}

// New creates a Notifier from the notification config.
func New(cfg config.NotificationConfig, log zerolog.Logger) *Notifier {
	return &Notifier{cfg: cfg, log: log}
}

// TimerFinished announces that the timer for label is done.
func (n *Notifier) TimerFinished(label string) {
	if n.cfg.Enabled != nil && !*n.cfg.Enabled {
		return
	}

	n.run("sound", n.cfg.SoundCommand, label)
	n.run("desktop", n.cfg.DesktopCommand, label)
}

// run executes one notification command in the background. The literal
// {label} in the command is replaced with the timer label.
func (n *Notifier) run(channel, cmd, label string) {
	if cmd == "" {
		return
	}
	cmd = strings.ReplaceAll(cmd, "{label}", shellQuote(label))

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()

		if err := executil.RunSh(ctx, "", cmd); err != nil {
			n.log.Debug().
				Err(err).
				Str("channel", channel).
				Str("label", label).
				Msg("notification command failed")
		}
	}()
}

// shellQuote single-quotes s for safe use inside an sh command line.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
