package liteemit

// WildcardName is how the wildcard key shows up in logs and metrics.
// It is never used for routing: an event may be called "*" without clashing with Any.
const WildcardName Name = "*"

type (
	// Name identifies an event. Events sharing a Name share their listeners.
	Name string

	// Event is a typed event key. T is the payload every emission of this event carries;
	// use a struct when the payload has several parts.
	Event[T any] struct {
		name Name
	}

	// Wildcard is the type of Any, the key that observes every event.
	Wildcard struct{}

	// Binding pairs a key with an optional listener. Built with Event.Bind, Event.Key,
	// Wildcard.Bind and Wildcard.Key, it is what On, Once and Off act upon.
	Binding struct {
		name     Name
		wildcard bool
		h        *handler
	}

	// Emission is an event name together with its payload, ready to be emitted.
	Emission struct {
		name    Name
		payload any
	}
)

// Any is the wildcard key.
var Any Wildcard

// NewEvent declares an event named name whose payload is a T.
func NewEvent[T any](name Name) Event[T] {
	return Event[T]{name: name}
}

func (e Event[T]) Name() Name { return e.name }

// Bind pairs the event with l.
func (e Event[T]) Bind(l *Listener[T]) Binding {
	b := Binding{name: e.name}
	if l != nil {
		b.h = &l.h
	}
	return b
}

// Key refers to the event as a whole, e.g. to clear all its listeners.
func (e Event[T]) Key() Binding {
	return Binding{name: e.name}
}

// With builds an emission of this event carrying payload.
func (e Event[T]) With(payload T) Emission {
	return Emission{name: e.name, payload: payload}
}

// Bind pairs the wildcard key with w.
func (Wildcard) Bind(w *WildcardListener) Binding {
	b := Binding{name: WildcardName, wildcard: true}
	if w != nil {
		b.h = &w.h
	}
	return b
}

// Key refers to the whole wildcard set.
func (Wildcard) Key() Binding {
	return Binding{name: WildcardName, wildcard: true}
}

func (b Binding) Name() Name { return b.name }

func (b Binding) IsWildcard() bool { return b.wildcard }

// HasListener reports whether the binding targets a single listener rather than a whole key.
func (b Binding) HasListener() bool { return b.h != nil }

func (m Emission) Name() Name { return m.name }

func (m Emission) Payload() any { return m.payload }
