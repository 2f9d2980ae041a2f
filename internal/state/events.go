package state

import "github.com/rileyhilliard/crmdash/internal/crm"

// EventKind identifies what changed in the store.
type EventKind int

const (
	// EventDataChanged fires after a successful refresh.
	EventDataChanged EventKind = iota
	// EventErrorChanged fires after a failed refresh set the alert.
	EventErrorChanged
	// EventFieldEdited fires after a manual SetField.
	EventFieldEdited
)

// String returns a human-readable kind.
func (k EventKind) String() string {
	switch k {
	case EventDataChanged:
		return "data-changed"
	case EventErrorChanged:
		return "error-changed"
	case EventFieldEdited:
		return "field-edited"
	default:
		return "unknown"
	}
}

// Event is published to observers after the store has committed a change.
type Event struct {
	Kind     EventKind
	Snapshot *crm.Snapshot // committed snapshot at publish time
	Message  string        // live alert message, empty when none
	Seq      uint64        // store revision, increments per event
}

// Observer receives store events.
type Observer interface {
	Notify(Event)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(Event)

// Notify calls f.
func (f ObserverFunc) Notify(ev Event) {
	f(ev)
}
