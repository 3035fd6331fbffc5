package timer

// EventKind identifies a lifecycle event emitted by a Timer.
type EventKind string

// Event kinds, one per Observer callback.
const (
	EventTick      EventKind = "tick"
	EventFinished  EventKind = "finished"
	EventCancelled EventKind = "cancelled"
	EventPaused    EventKind = "paused"
	EventResumed   EventKind = "resumed"
)

// Event is the value delivered to observers. Events are constructed fresh
// for each notification and never stored.
type Event struct {
	Kind      EventKind
	Remaining int    // remaining whole seconds at time of emission
	Label     string // label of the originating timer
	Data      map[string]any
}

// Minutes returns the whole-minute component of the remaining time.
func (e Event) Minutes() int {
	return e.Remaining / 60
}

// Seconds returns the second component of the remaining time.
func (e Event) Seconds() int {
	return e.Remaining % 60
}
