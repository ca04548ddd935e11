// Package timing provides the discrete event engine that drives a
// simulation forward step by step.
package timing

import "github.com/rs/xid"

// VTimeInStep defines the time in the simulated space in the unit of one
// discrete simulation step.
type VTimeInStep uint64

// An Event is something going to happen in the future.
type Event interface {
	// Time returns the step at which the event should happen
	Time() VTimeInStep

	// Handler returns the handler that should handle the event
	Handler() Handler

	// IsSecondary tells if the event is a secondary event. Secondary events
	// are handled after all same-time primary events are handled.
	IsSecondary() bool
}

// EventBase provides the basic fields and getters for other events
type EventBase struct {
	ID        string
	time      VTimeInStep
	handler   Handler
	secondary bool
}

// NewEventBase creates a new EventBase
func NewEventBase(t VTimeInStep, handler Handler) *EventBase {
	e := new(EventBase)
	e.ID = xid.New().String()
	e.time = t
	e.handler = handler
	return e
}

// Time returns the step at which the event is going to happen
func (e EventBase) Time() VTimeInStep {
	return e.time
}

// Handler returns the handler to handle the event.
func (e EventBase) Handler() Handler {
	return e.handler
}

// IsSecondary returns true if the event is a secondary event.
func (e EventBase) IsSecondary() bool {
	return e.secondary
}

// A Handler defines a domain for the events.
//
// One event is always constrained to one Handler, which means the event can
// only be scheduled by one handler and can only directly modify that handler.
type Handler interface {
	Handle(e Event) error
}
