// Package tui implements the live watch view over the timer registry.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/aldente/internal/core/styles"
	"github.com/colonyops/aldente/internal/core/timer"
)

// Options configures the watch view.
type Options struct {
	RefreshInterval time.Duration
	Stay            bool
}

// Run opens the watch view and blocks until it exits. Quitting never
// cancels timers; they keep running for as long as the process lives.
func Run(ctx context.Context, mgr *timer.Manager, opts Options) error {
	p := tea.NewProgram(NewModel(mgr, opts), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

type tickMsg time.Time

// Model is the bubbletea model for the watch view.
type Model struct {
	mgr  *timer.Manager
	opts Options

	views  []timer.EntryView
	cursor int

	bar  progress.Model
	keys keyMap
	help help.Model

	// sawActive flips once any non-terminal timer has been observed, so
	// the view doesn't auto-quit before the first timer starts.
	sawActive bool
}

// NewModel creates the watch model.
func NewModel(mgr *timer.Manager, opts Options) Model {
	if opts.RefreshInterval <= 0 {
		opts.RefreshInterval = time.Second
	}

	bar := progress.New(
		progress.WithGradient("#7aa2f7", "#9ece6a"),
		progress.WithWidth(30),
		progress.WithoutPercentage(),
	)

	m := Model{
		mgr:  mgr,
		opts: opts,
		bar:  bar,
		keys: defaultKeyMap(),
		help: help.New(),
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.opts.RefreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.refresh()
		if m.shouldQuit() {
			return m, tea.Quit
		}
		return m, m.tick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.views)-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Pause):
			if v, ok := m.selected(); ok {
				m.mgr.Pause(v.ID)
				m.refresh()
			}

		case key.Matches(msg, m.keys.Resume):
			if v, ok := m.selected(); ok {
				m.mgr.Resume(v.ID)
				m.refresh()
			}

		case key.Matches(msg, m.keys.Cancel):
			if v, ok := m.selected(); ok {
				m.mgr.Cancel(v.ID)
				m.refresh()
			}

		case key.Matches(msg, m.keys.Sweep):
			m.mgr.Sweep()
			m.refresh()

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}

	return m, nil
}

// refresh pulls a fresh snapshot and clamps the cursor.
func (m *Model) refresh() {
	m.views = m.mgr.Snapshot()
	if m.cursor >= len(m.views) {
		m.cursor = len(m.views) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	for _, v := range m.views {
		if !v.Status.Terminal() {
			m.sawActive = true
			break
		}
	}
}

// shouldQuit reports whether the view should close on its own: every
// timer reached a terminal state after at least one was seen active.
func (m *Model) shouldQuit() bool {
	if m.opts.Stay || !m.sawActive {
		return false
	}
	for _, v := range m.views {
		if !v.Status.Terminal() {
			return false
		}
	}
	return true
}

func (m *Model) selected() (timer.EntryView, bool) {
	if len(m.views) == 0 || m.cursor >= len(m.views) {
		return timer.EntryView{}, false
	}
	return m.views[m.cursor], true
}

func (m Model) View() string {
	var rows []string

	rows = append(rows, styles.Title.Render("aldente")+styles.Subtle.Render("  pasta timers"), "")

	if len(m.views) == 0 {
		rows = append(rows, styles.Subtle.Render("No timers. Run 'aldente cook' to start one."))
	}

	for i, v := range m.views {
		rows = append(rows, m.renderRow(v, i == m.cursor))
	}

	rows = append(rows, "", m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderRow(v timer.EntryView, selected bool) string {
	marker := "  "
	label := v.Label
	if selected {
		marker = styles.Selected.Render("> ")
		label = styles.Selected.Render(label)
	}

	pct := 1.0
	if v.Total > 0 && !v.Status.Terminal() {
		pct = 1 - float64(v.Remaining)/float64(v.Total)
	}
	if v.Status == timer.StatusCancelled || v.Status == timer.StatusError {
		pct = 0
	}

	status := styles.StatusStyle(v.Status).Render(fmt.Sprintf("%-9s", v.Status))
	clock := fmt.Sprintf("%d:%02d", v.Remaining/60, v.Remaining%60)
	if v.Status == timer.StatusFinished {
		clock = "done"
	}

	row := fmt.Sprintf("%s%-20s %s %s %5s", marker, truncate(label, 20), status, m.bar.ViewAs(pct), clock)
	if v.Err != "" {
		row += "  " + styles.ErrorMsg.Render(v.Err)
	}
	return row
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
