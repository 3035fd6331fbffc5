// Package timer implements the concurrent countdown engine: a single-timer
// state machine driven by a per-second tick loop, and a Manager that
// supervises many timers at once.
package timer

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// State represents the lifecycle state of a Timer.
type State string

const (
	StateIdle      State = "idle"
	StateRunning   State = "running"
	StatePaused    State = "paused"
	StateFinished  State = "finished"
	StateCancelled State = "cancelled"
)

// ErrInvalidState is returned by Start and Run when the timer is not in a
// state that permits the operation.
var ErrInvalidState = errors.New("invalid timer state")

// debugSeconds is the fixed total duration used in debug mode, so a full
// lifecycle can be exercised quickly.
const debugSeconds = 6

// Option configures a Timer at construction.
type Option func(*Timer)

// WithInterval overrides the one-second tick interval.
func WithInterval(d time.Duration) Option {
	return func(t *Timer) {
		if d > 0 {
			t.interval = d
		}
	}
}

// WithLogger sets the logger used for observer failure reporting.
func WithLogger(log zerolog.Logger) Option {
	return func(t *Timer) {
		t.log = log
	}
}

// Timer is a single countdown instance. Its mutable fields are touched by
// exactly one driving goroutine (Run) plus synchronous Pause/Resume/Cancel
// calls; all of them synchronize on the internal mutex. The paused wait
// gate is a condition variable that Cancel always forces open, so a
// paused-then-cancelled timer can never deadlock.
type Timer struct {
	label    string
	total    int
	interval time.Duration
	log      zerolog.Logger

	mu        sync.Mutex
	cond      *sync.Cond
	state     State
	remaining int
	observers []Observer
}

// New creates an idle Timer for the given label. The total duration
// resolves to round(minutes*60) seconds, clamped to a minimum of one
// second so the remaining counter can never go negative, or a fixed
// 6 seconds in debug mode. Minutes must be positive; that is validated
// by callers against the pasta catalog, not enforced here.
func New(label string, minutes float64, debug bool, opts ...Option) *Timer {
	total := int(math.Round(minutes * 60))
	if total < 1 {
		total = 1
	}
	if debug {
		total = debugSeconds
	}

	t := &Timer{
		label:     label,
		total:     total,
		interval:  time.Second,
		log:       zerolog.Nop(),
		state:     StateIdle,
		remaining: total,
	}
	t.cond = sync.NewCond(&t.mu)

	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Label returns the free-form text identifying what is being timed.
func (t *Timer) Label() string { return t.label }

// TotalSeconds returns the configured total duration in whole seconds.
func (t *Timer) TotalSeconds() int { return t.total }

// Remaining returns the current remaining-seconds counter.
func (t *Timer) Remaining() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remaining
}

// State returns the current lifecycle state.
func (t *Timer) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// AddObserver subscribes an observer to this timer's events.
func (t *Timer) AddObserver(o Observer) {
	if o == nil {
		return
	}
	t.mu.Lock()
	t.observers = append(t.observers, o)
	t.mu.Unlock()
}

// RemoveObserver unsubscribes a previously added observer.
func (t *Timer) RemoveObserver(o Observer) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i, existing := range t.observers {
		if existing == o {
			t.observers = append(t.observers[:i], t.observers[i+1:]...)
			return
		}
	}
}

// Start transitions the timer into the running state. It is valid from
// Idle, and from Paused with resume semantics (the driving loop re-enters
// its tick cycle). Any other state returns ErrInvalidState.
func (t *Timer) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != StateIdle && t.state != StatePaused {
		return fmt.Errorf("%w: cannot start from %q", ErrInvalidState, t.state)
	}

	t.state = StateRunning
	t.cond.Broadcast()
	return nil
}

// Pause suspends a running timer and emits a paused event. Returns false
// without effect if the timer is not running.
func (t *Timer) Pause() bool {
	t.mu.Lock()
	if t.state != StateRunning {
		t.mu.Unlock()
		return false
	}
	t.state = StatePaused
	ev, obs := t.eventLocked(EventPaused)
	t.mu.Unlock()

	t.deliver(obs, ev)
	return true
}

// Resume reopens the wait gate of a paused timer and emits a resumed
// event. Returns false without effect if the timer is not paused.
func (t *Timer) Resume() bool {
	t.mu.Lock()
	if t.state != StatePaused {
		t.mu.Unlock()
		return false
	}
	t.state = StateRunning
	t.cond.Broadcast()
	ev, obs := t.eventLocked(EventResumed)
	t.mu.Unlock()

	t.deliver(obs, ev)
	return true
}

// Cancel moves the timer to the cancelled terminal state and emits a
// cancelled event. Valid from Idle, Running, and Paused; a paused driving
// loop is unblocked immediately rather than waiting for a resume. Returns
// false if the timer is already terminal.
func (t *Timer) Cancel() bool {
	t.mu.Lock()
	if t.state == StateFinished || t.state == StateCancelled {
		t.mu.Unlock()
		return false
	}
	t.state = StateCancelled
	t.cond.Broadcast()
	ev, obs := t.eventLocked(EventCancelled)
	t.mu.Unlock()

	t.deliver(obs, ev)
	return true
}

// Reset returns the timer to Idle with the remaining counter restored to
// the total. Valid from any state; calling it on an already idle timer is
// a no-op producing the same state.
func (t *Timer) Reset() {
	t.mu.Lock()
	t.state = StateIdle
	t.remaining = t.total
	t.cond.Broadcast()
	t.mu.Unlock()
}

// Run drives the countdown to completion, cancellation, or reset. It must
// be called exactly once after a successful Start, normally on its own
// goroutine; calling it in any other state returns ErrInvalidState.
//
// While running, once per interval the loop decrements the remaining
// counter and emits a tick carrying the new value, so a full run delivers
// exactly TotalSeconds ticks counting down to zero, then one finished
// event. While paused, the loop blocks on the wait gate without ticking
// or decrementing until resumed, cancelled, or reset.
func (t *Timer) Run() error {
	t.mu.Lock()
	if t.state != StateRunning {
		state := t.state
		t.mu.Unlock()
		return fmt.Errorf("%w: run requires a started timer, got %q", ErrInvalidState, state)
	}
	interval := t.interval
	t.mu.Unlock()

	for {
		time.Sleep(interval)

		t.mu.Lock()
		for t.state == StatePaused {
			t.cond.Wait()
		}
		if t.state != StateRunning {
			// Cancelled (event already emitted by Cancel) or reset.
			t.mu.Unlock()
			return nil
		}

		t.remaining--
		done := t.remaining <= 0
		if done {
			t.state = StateFinished
		}
		tick, obs := t.eventLocked(EventTick)
		t.mu.Unlock()

		t.deliver(obs, tick)

		if done {
			t.mu.Lock()
			fin, obs := t.eventLocked(EventFinished)
			t.mu.Unlock()
			t.deliver(obs, fin)
			return nil
		}
	}
}

// eventLocked builds an event from current state and snapshots the
// observer list. Callers must hold t.mu; delivery happens after release so
// observer callbacks can safely call back into the timer.
func (t *Timer) eventLocked(kind EventKind) (Event, []Observer) {
	obs := make([]Observer, len(t.observers))
	copy(obs, t.observers)
	return Event{Kind: kind, Remaining: t.remaining, Label: t.label}, obs
}

func (t *Timer) deliver(observers []Observer, ev Event) {
	for _, o := range observers {
		t.deliverOne(o, ev)
	}
}

func (t *Timer) deliverOne(o Observer, ev Event) {
	defer func() {
		if r := recover(); r != nil {
			t.log.Error().
				Str("label", t.label).
				Str("event", string(ev.Kind)).
				Str("panic", fmt.Sprint(r)).
				Msg("observer panicked")
		}
	}()

	switch ev.Kind {
	case EventTick:
		o.OnTick(ev)
	case EventFinished:
		o.OnFinished(ev)
	case EventCancelled:
		o.OnCancelled(ev)
	case EventPaused:
		o.OnPaused(ev)
	case EventResumed:
		o.OnResumed(ev)
	}
}
