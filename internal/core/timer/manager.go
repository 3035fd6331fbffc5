package timer

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Status is the registry-level status of a managed timer. It mirrors, but
// is not identical to, the primitive's internal state: a freshly
// registered entry is "created" rather than idle, and a driving-goroutine
// failure is surfaced as "error".
type Status string

const (
	StatusCreated   Status = "created"
	StatusRunning   Status = "running"
	StatusPaused    Status = "paused"
	StatusFinished  Status = "finished"
	StatusCancelled Status = "cancelled"
	StatusError     Status = "error"
)

// Terminal reports whether the status is one of the sweepable end states.
func (s Status) Terminal() bool {
	return s == StatusFinished || s == StatusCancelled || s == StatusError
}

// EntryView is a consistent point-in-time view of one registry entry, as
// returned by Snapshot.
type EntryView struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	Remaining int       `json:"remaining_seconds"`
	Total     int       `json:"total_seconds"`
	Err       string    `json:"error,omitempty"`
}

// entry is the Manager's bookkeeping record. It exclusively owns its Timer.
type entry struct {
	id        string
	timer     *Timer
	createdAt time.Time
	status    Status
	errDetail string
}

// ManagerOption configures a Manager at construction.
type ManagerOption func(*Manager)

// WithTickInterval overrides the one-second tick interval for every timer
// the Manager creates. Used by tests to run full lifecycles quickly.
func WithTickInterval(d time.Duration) ManagerOption {
	return func(m *Manager) {
		if d > 0 {
			m.interval = d
		}
	}
}

// Manager owns a registry of timers, runs each started timer on its own
// goroutine, and serializes registry mutations through a single mutex. The
// mutex is held only for the minimal mutation, never across the tick
// loop's sleep, so no registry operation can be blocked by a running
// timer.
type Manager struct {
	interval time.Duration
	log      zerolog.Logger

	mu      sync.Mutex
	seq     uint64
	entries map[string]*entry
}

// NewManager creates an empty Manager.
func NewManager(log zerolog.Logger, opts ...ManagerOption) *Manager {
	m := &Manager{
		interval: time.Second,
		log:      log,
		entries:  make(map[string]*entry),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Register creates a new entry wrapping a fresh idle timer and returns its
// identifier. Identifiers come from a monotonically increasing counter
// scoped to this Manager and are never reused within a process lifetime.
func (m *Manager) Register(label string, minutes float64, debug bool) string {
	t := New(label, minutes, debug, WithInterval(m.interval), WithLogger(m.log))

	m.mu.Lock()
	m.seq++
	id := fmt.Sprintf("t%06d", m.seq)
	m.entries[id] = &entry{
		id:        id,
		timer:     t,
		createdAt: time.Now(),
		status:    StatusCreated,
	}
	m.mu.Unlock()

	m.log.Debug().Str("id", id).Str("label", label).Int("total_seconds", t.TotalSeconds()).Msg("timer registered")
	return id
}

// Start attaches the observer and launches the driving goroutine for the
// entry. Returns false if the id is unknown or the entry was already
// started.
func (m *Manager) Start(id string, obs Observer) bool {
	m.mu.Lock()
	e, ok := m.entries[id]
	if !ok || e.status != StatusCreated {
		m.mu.Unlock()
		return false
	}
	e.timer.AddObserver(obs)
	if err := e.timer.Start(); err != nil {
		m.mu.Unlock()
		return false
	}
	e.status = StatusRunning
	m.mu.Unlock()

	go m.drive(e)
	return true
}

// drive runs the timer to its terminal state and records the outcome on
// the entry. A failure here is isolated: it marks this entry as errored
// and never affects other timers or the Manager's own bookkeeping.
func (m *Manager) drive(e *entry) {
	var runErr error
	func() {
		defer func() {
			if r := recover(); r != nil {
				runErr = fmt.Errorf("driving goroutine panicked: %v", r)
			}
		}()
		runErr = e.timer.Run()
	}()

	m.mu.Lock()
	defer m.mu.Unlock()

	if runErr != nil {
		e.status = StatusError
		e.errDetail = runErr.Error()
		m.log.Error().Str("id", e.id).Err(runErr).Msg("timer driving goroutine failed")
		return
	}

	switch e.timer.State() {
	case StateFinished:
		e.status = StatusFinished
	case StateCancelled:
		e.status = StatusCancelled
	case StatePaused:
		e.status = StatusPaused
	}
}

// Pause suspends a running entry. Returns false if the id is unknown or
// the entry is not running.
func (m *Manager) Pause(id string) bool {
	e, ok := m.lookup(id, StatusRunning)
	if !ok {
		return false
	}
	if !e.timer.Pause() {
		return false
	}
	m.setStatus(e, StatusRunning, StatusPaused)
	return true
}

// Resume unpauses a paused entry. Returns false if the id is unknown or
// the entry is not paused.
func (m *Manager) Resume(id string) bool {
	e, ok := m.lookup(id, StatusPaused)
	if !ok {
		return false
	}
	if !e.timer.Resume() {
		return false
	}
	m.setStatus(e, StatusPaused, StatusRunning)
	return true
}

// Cancel cancels a running or paused entry. Returns false if the id is
// unknown or the entry is not active.
func (m *Manager) Cancel(id string) bool {
	m.mu.Lock()
	e, ok := m.entries[id]
	if !ok || (e.status != StatusRunning && e.status != StatusPaused) {
		m.mu.Unlock()
		return false
	}
	m.mu.Unlock()

	if !e.timer.Cancel() {
		return false
	}

	m.mu.Lock()
	e.status = StatusCancelled
	m.mu.Unlock()
	return true
}

// Remove deletes an entry from the registry, cancelling it first if it is
// still active. Returns false if the id is unknown.
func (m *Manager) Remove(id string) bool {
	m.mu.Lock()
	e, ok := m.entries[id]
	if !ok {
		m.mu.Unlock()
		return false
	}
	active := e.status == StatusRunning || e.status == StatusPaused
	m.mu.Unlock()

	if active {
		e.timer.Cancel()
	}

	m.mu.Lock()
	delete(m.entries, id)
	m.mu.Unlock()
	return true
}

// Get returns the view for a single entry.
func (m *Manager) Get(id string) (EntryView, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[id]
	if !ok {
		return EntryView{}, false
	}
	return m.viewLocked(e), true
}

// Snapshot returns one view per entry, atomically with respect to
// concurrent registry mutation, ordered by identifier (which is creation
// order). Remaining seconds report the timer's true value for created,
// running, and paused entries, and zero for terminal statuses.
func (m *Manager) Snapshot() []EntryView {
	m.mu.Lock()
	views := make([]EntryView, 0, len(m.entries))
	for _, e := range m.entries {
		views = append(views, m.viewLocked(e))
	}
	m.mu.Unlock()

	sort.Slice(views, func(i, j int) bool { return views[i].ID < views[j].ID })
	return views
}

// Sweep deletes every entry whose status is terminal (finished, cancelled,
// or error) and returns the number removed.
func (m *Manager) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	count := 0
	for id, e := range m.entries {
		if e.status.Terminal() {
			delete(m.entries, id)
			count++
		}
	}
	if count > 0 {
		m.log.Debug().Int("count", count).Msg("swept terminal timers")
	}
	return count
}

func (m *Manager) viewLocked(e *entry) EntryView {
	remaining := 0
	if !e.status.Terminal() {
		remaining = e.timer.Remaining()
	}
	return EntryView{
		ID:        e.id,
		Label:     e.timer.Label(),
		Status:    e.status,
		CreatedAt: e.createdAt,
		Remaining: remaining,
		Total:     e.timer.TotalSeconds(),
		Err:       e.errDetail,
	}
}

// lookup fetches an entry if it currently has the wanted status. The
// status can change before the caller acts on the timer; the primitive's
// own state machine is the final arbiter.
func (m *Manager) lookup(id string, want Status) (*entry, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[id]
	if !ok || e.status != want {
		return nil, false
	}
	return e, true
}

// setStatus applies a status transition only if the entry still holds the
// expected previous status.
func (m *Manager) setStatus(e *entry, from, to Status) {
	m.mu.Lock()
	if e.status == from {
		e.status = to
	}
	m.mu.Unlock()
}
