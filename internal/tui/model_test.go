package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/aldente/internal/core/timer"
)

func newTestModel(t *testing.T) (Model, *timer.Manager) {
	t.Helper()
	mgr := timer.NewManager(zerolog.Nop(), timer.WithTickInterval(2*time.Millisecond))
	return NewModel(mgr, Options{RefreshInterval: time.Millisecond}), mgr
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	nm, cmd := m.Update(msg)
	model, ok := nm.(Model)
	require.True(t, ok)
	return model, cmd
}

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModel_EmptyRegistry(t *testing.T) {
	m, _ := newTestModel(t)

	assert.Contains(t, m.View(), "No timers")
	assert.False(t, m.shouldQuit(), "never auto-quits before a timer was active")
}

func TestModel_RendersTimers(t *testing.T) {
	m, mgr := newTestModel(t)
	mgr.Register("spaghetti", 9, false)
	mgr.Register("penne", 12, false)

	m, _ = update(t, m, tickMsg(time.Now()))

	view := m.View()
	assert.Contains(t, view, "spaghetti")
	assert.Contains(t, view, "penne")
	assert.Contains(t, view, string(timer.StatusCreated))
}

func TestModel_CursorMovement(t *testing.T) {
	m, mgr := newTestModel(t)
	mgr.Register("spaghetti", 9, false)
	mgr.Register("penne", 12, false)
	m, _ = update(t, m, tickMsg(time.Now()))

	assert.Equal(t, 0, m.cursor)

	m, _ = update(t, m, keyMsg('j'))
	assert.Equal(t, 1, m.cursor)

	m, _ = update(t, m, keyMsg('j'))
	assert.Equal(t, 1, m.cursor, "cursor clamps at the last row")

	m, _ = update(t, m, keyMsg('k'))
	assert.Equal(t, 0, m.cursor)
}

func TestModel_PauseResumeCancelKeys(t *testing.T) {
	m, mgr := newTestModel(t)
	id := mgr.Register("spaghetti", 9, false)
	require.True(t, mgr.Start(id, timer.FuncObserver{}))
	m, _ = update(t, m, tickMsg(time.Now()))

	m, _ = update(t, m, keyMsg('p'))
	v, ok := mgr.Get(id)
	require.True(t, ok)
	assert.Equal(t, timer.StatusPaused, v.Status)

	m, _ = update(t, m, keyMsg('r'))
	v, _ = mgr.Get(id)
	assert.Equal(t, timer.StatusRunning, v.Status)

	m, _ = update(t, m, keyMsg('c'))
	v, _ = mgr.Get(id)
	assert.Equal(t, timer.StatusCancelled, v.Status)
	_ = m
}

func TestModel_SweepKey(t *testing.T) {
	m, mgr := newTestModel(t)
	id := mgr.Register("spaghetti", 9, false)
	require.True(t, mgr.Start(id, timer.FuncObserver{}))
	require.True(t, mgr.Cancel(id))
	mgr.Register("penne", 12, false)

	m, _ = update(t, m, tickMsg(time.Now()))
	m, _ = update(t, m, keyMsg('s'))

	assert.Len(t, mgr.Snapshot(), 1, "terminal entries swept, created entry kept")
	assert.Len(t, m.views, 1)
}

func TestModel_AutoQuitWhenAllTerminal(t *testing.T) {
	m, mgr := newTestModel(t)
	id := mgr.Register("spaghetti", 9, false)
	require.True(t, mgr.Start(id, timer.FuncObserver{}))

	m, _ = update(t, m, tickMsg(time.Now()))
	assert.False(t, m.shouldQuit())

	require.True(t, mgr.Cancel(id))
	m.refresh()
	assert.True(t, m.shouldQuit())
}

func TestModel_StayPreventsAutoQuit(t *testing.T) {
	mgr := timer.NewManager(zerolog.Nop(), timer.WithTickInterval(2*time.Millisecond))
	m := NewModel(mgr, Options{RefreshInterval: time.Millisecond, Stay: true})

	id := mgr.Register("spaghetti", 9, false)
	require.True(t, mgr.Start(id, timer.FuncObserver{}))
	require.True(t, mgr.Cancel(id))

	m.refresh()
	assert.False(t, m.shouldQuit())
}

func TestModel_QuitKey(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := update(t, m, keyMsg('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 20))
	assert.Equal(t, "a-very-long-pasta-n…", truncate("a-very-long-pasta-name-here", 20))
}
