package timer

// Observer receives lifecycle events from a Timer. Implementations are
// provided by presentation layers (console renderer, TUI session state,
// test recorders); the engine has no opinion about what they do.
//
// Callbacks are invoked synchronously from the goroutine that produced the
// event. A panicking observer is recovered and logged; it never interrupts
// delivery to the remaining observers or the tick loop.
type Observer interface {
	OnTick(Event)
	OnFinished(Event)
	OnCancelled(Event)
	OnPaused(Event)
	OnResumed(Event)
}

// FuncObserver adapts plain functions to the Observer interface. Nil
// fields are skipped, so callers can subscribe to a subset of events.
type FuncObserver struct {
	Tick      func(Event)
	Finished  func(Event)
	Cancelled func(Event)
	Paused    func(Event)
	Resumed   func(Event)
}

func (f FuncObserver) OnTick(e Event) {
	if f.Tick != nil {
		f.Tick(e)
	}
}

func (f FuncObserver) OnFinished(e Event) {
	if f.Finished != nil {
		f.Finished(e)
	}
}

func (f FuncObserver) OnCancelled(e Event) {
	if f.Cancelled != nil {
		f.Cancelled(e)
	}
}

func (f FuncObserver) OnPaused(e Event) {
	if f.Paused != nil {
		f.Paused(e)
	}
}

func (f FuncObserver) OnResumed(e Event) {
	if f.Resumed != nil {
		f.Resumed(e)
	}
}
