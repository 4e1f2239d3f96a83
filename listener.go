package liteemit

import "sync/atomic"

type (
	// invoker is the type-erased form every listener is reduced to.
	// A nil Completion means the listener finished synchronously.
	invoker func(event Name, payload any) (Completion, error)

	handler struct {
		call invoker
		// origin is set on once-wrappers and points at the listener they forward to.
		origin *handler
		fired  atomic.Bool
	}

	// Listener is a callback for events carrying a T.
	// Listeners are compared by pointer: registering the same *Listener twice under
	// one event keeps a single entry, and Off removes it by that same pointer.
	Listener[T any] struct {
		h handler
	}

	// WildcardListener observes every emitted event. It receives the event name
	// followed by the payload.
	WildcardListener struct {
		h handler
	}
)

// Listen wraps fn as a synchronous listener. A returned error, as well as a panic,
// is forwarded to the dispatcher's ErrorHandler.
func Listen[T any](fn func(T) error) *Listener[T] {
	return &Listener[T]{h: handler{call: func(event Name, payload any) (Completion, error) {
		v, ok := cast[T](payload)
		if !ok {
			return nil, payloadTypeErr[T](event, payload)
		}
		return nil, fn(v)
	}}}
}

// ListenAsync wraps fn as a listener that finishes later. The dispatcher does not
// wait for the Completion; its failure is forwarded to the ErrorHandler once known.
// fn may return nil when there is nothing left to wait for.
func ListenAsync[T any](fn func(T) Completion) *Listener[T] {
	return &Listener[T]{h: handler{call: func(event Name, payload any) (Completion, error) {
		v, ok := cast[T](payload)
		if !ok {
			return nil, payloadTypeErr[T](event, payload)
		}
		return fn(v), nil
	}}}
}

// ListenAll wraps fn as a synchronous wildcard listener.
func ListenAll(fn func(event Name, payload any) error) *WildcardListener {
	return &WildcardListener{h: handler{call: func(event Name, payload any) (Completion, error) {
		return nil, fn(event, payload)
	}}}
}

// ListenAllAsync wraps fn as a wildcard listener that finishes later.
func ListenAllAsync(fn func(event Name, payload any) Completion) *WildcardListener {
	return &WildcardListener{h: handler{call: func(event Name, payload any) (Completion, error) {
		return fn(event, payload), nil
	}}}
}

func cast[T any](payload any) (T, bool) {
	if payload == nil {
		// nil interface payloads, e.g. a nil error emitted on an Event[error]
		var zero T
		return zero, true
	}
	v, ok := payload.(T)
	return v, ok
}

// once wraps h so that it deregisters itself through off before forwarding,
// and forwards at most one call.
func once(h *handler, off func(*handler)) *handler {
	w := &handler{origin: h}
	w.call = func(event Name, payload any) (Completion, error) {
		off(w)
		if !w.fired.CompareAndSwap(false, true) {
			return nil, nil
		}
		return h.call(event, payload)
	}
	return w
}

// matches reports whether h is target itself or a once-wrapper around it.
func (h *handler) matches(target *handler) bool {
	return h == target || h.origin == target
}
