package subagent

import "context"

// Engine starts delegated conversations. Implementations live outside this
// package; the invocation task consumes only this surface.
type Engine interface {
	// StartOneShot begins a single bounded delegated run. The supplied
	// context is the run's cancellation scope: cancelling it tears down the
	// underlying work and ends the handle's event stream. A non-nil error
	// means the run never started.
	StartOneShot(ctx context.Context, cfg *Config, input []Input, source Source) (Handle, error)
}

// Handle is the event feed of one delegated run.
type Handle interface {
	// Events yields the run's lifecycle events in order. The channel is
	// closed when the run ends or the stream breaks.
	Events() <-chan Event
}

// EventSink receives lifecycle notifications for observers of an invocation.
// Publish is fire-and-forget; delivery is the sink's concern.
type EventSink interface {
	Publish(ctx context.Context, ev Event)
}
