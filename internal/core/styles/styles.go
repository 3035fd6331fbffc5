// Package styles provides shared lipgloss styles for CLI and TUI
// components.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/aldente/internal/core/timer"
)

// Semantic colors.
var (
	ColorPrimary    = lipgloss.Color("#7aa2f7")
	ColorSecondary  = lipgloss.Color("#7dcfff")
	ColorForeground = lipgloss.Color("#c0caf5")
	ColorMuted      = lipgloss.Color("#565f89")
	ColorSuccess    = lipgloss.Color("#9ece6a")
	ColorWarning    = lipgloss.Color("#e0af68")
	ColorError      = lipgloss.Color("#f7768e")
)

var (
	Title    = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	Subtle   = lipgloss.NewStyle().Foreground(ColorMuted)
	Bold     = lipgloss.NewStyle().Bold(true)
	ErrorMsg = lipgloss.NewStyle().Foreground(ColorError)
	Success  = lipgloss.NewStyle().Foreground(ColorSuccess)
	Warning  = lipgloss.NewStyle().Foreground(ColorWarning)

	Selected = lipgloss.NewStyle().Bold(true).Foreground(ColorSecondary)
)

// statusStyles maps timer statuses to their display styles.
var statusStyles = map[timer.Status]lipgloss.Style{
	timer.StatusCreated:   Subtle,
	timer.StatusRunning:   lipgloss.NewStyle().Foreground(ColorPrimary),
	timer.StatusPaused:    Warning,
	timer.StatusFinished:  Success,
	timer.StatusCancelled: Subtle,
	timer.StatusError:     ErrorMsg,
}

// StatusStyle returns the style for a timer status.
func StatusStyle(s timer.Status) lipgloss.Style {
	if style, ok := statusStyles[s]; ok {
		return style
	}
	return lipgloss.NewStyle()
}
