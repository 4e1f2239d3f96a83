package liteemit

import "context"

// Emitter is the behaviour shared by anything that registers listeners and emits events.
type Emitter interface {
	// On registers a listener and returns the function that removes it.
	On(b Binding) (off func())

	// Once registers a listener that is removed before its first call.
	Once(b Binding) (off func())

	// Off removes listeners; with no arguments it removes all of them.
	Off(targets ...Binding)

	// Emit calls the wildcard listeners, then the listeners of the event.
	Emit(m Emission)

	// EmitWait emits and waits for the listeners that finish asynchronously.
	EmitWait(ctx context.Context, m Emission) error
}

var _ Emitter = (*Dispatcher)(nil)
