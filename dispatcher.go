// Package liteemit is a small, typed, in-process event dispatcher.
//
// Events are declared once with their payload type and listeners are bound to them:
//
//	var userCreated = liteemit.NewEvent[User]("user.created")
//
//	d := liteemit.New(liteemit.WithErrorHandler(func(err error) { log.Println(err) }))
//	off := d.On(userCreated.Bind(liteemit.Listen(func(u User) error {
//		return sendWelcome(u)
//	})))
//	d.Emit(userCreated.With(User{Name: "gopher"}))
//	off()
//
// liteemit.Any observes every event. Listener failures, panics included, never reach
// the caller of Emit: they are handed to the ErrorHandler, or dropped when there is none.
package liteemit

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Dispatcher maps event names to listeners and dispatches emissions to them.
// The zero value is not usable; create one with New. It is safe for concurrent use,
// and listeners may register, deregister or emit from within a dispatch.
type Dispatcher struct {
	mu       sync.RWMutex
	events   map[Name]*listenerSet
	wildcard *listenerSet

	errorHandler ErrorHandler
	logger       Logger
}

// New creates a Dispatcher with no listeners.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		events:   make(map[Name]*listenerSet),
		wildcard: newListenerSet(),
		logger:   noopLogger{},
	}
	for _, opt := range opts {
		opt(d)
	}
	d.logger = d.logger.WithField("component", "dispatcher")
	return d
}

// On registers the binding's listener and returns a function that removes that
// registration again. Pending Once registrations of the same listener are left alone.
// Registering a listener already present under the same key changes nothing.
// A binding without listener registers nothing.
func (d *Dispatcher) On(b Binding) (off func()) {
	if b.h == nil {
		return func() {}
	}

	d.add(b.name, b.wildcard, b.h)

	return func() { d.remove(b.name, b.wildcard, b.h, true) }
}

// Once registers the binding's listener for a single call. The listener is removed
// right before it runs, so it fires at most once even when it fails or panics.
// Off with the same listener, or the returned function, cancels it while still pending.
func (d *Dispatcher) Once(b Binding) (off func()) {
	if b.h == nil {
		return func() {}
	}

	w := once(b.h, func(w *handler) {
		d.remove(b.name, b.wildcard, w, true)
	})

	return d.On(Binding{name: b.name, wildcard: b.wildcard, h: w})
}

// Off removes listeners according to what each target refers to:
//
//	Off()              every listener, wildcard included
//	Off(Any.Key())     every wildcard listener
//	Off(Any.Bind(w))   the wildcard listener w
//	Off(ev.Key())      every listener of ev
//	Off(ev.Bind(l))    the listener l of ev, pending Once registrations of l included
//
// Unknown events and unregistered listeners are ignored.
func (d *Dispatcher) Off(targets ...Binding) {
	if len(targets) == 0 {
		d.clear()
		return
	}

	for _, b := range targets {
		if b.h != nil {
			d.remove(b.name, b.wildcard, b.h, false)
			continue
		}
		d.clearKey(b.name, b.wildcard)
	}
}

// Emit calls every wildcard listener and then every listener of m's event, each group
// in registration order. Listeners are invoked synchronously; those returning a
// Completion may finish later and are not waited for.
func (d *Dispatcher) Emit(m Emission) {
	d.dispatch(m)
}

// EmitWait emits m like Emit and then waits until every Completion returned by the
// invoked listeners is over and its failure, if any, was handed to the ErrorHandler.
// Listener errors are never returned; only ctx's error is, if it ends first.
func (d *Dispatcher) EmitWait(ctx context.Context, m Emission) error {
	pending := d.dispatch(m)
	if len(pending) == 0 {
		return ctx.Err()
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, handled := range pending {
		g.Go(func() error {
			select {
			case <-handled:
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		})
	}

	return g.Wait()
}

// ListenerCount returns how many listeners are registered under the binding's key.
func (d *Dispatcher) ListenerCount(b Binding) int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if b.wildcard {
		return d.wildcard.len()
	}
	if set, ok := d.events[b.name]; ok {
		return set.len()
	}
	return 0
}

func (d *Dispatcher) add(name Name, wildcard bool, h *handler) {
	d.mu.Lock()
	defer d.mu.Unlock()

	set := d.wildcard
	if !wildcard {
		var ok bool
		if set, ok = d.events[name]; !ok {
			set = newListenerSet()
			d.events[name] = set
		}
	}

	if set.add(h) {
		d.logger.Debugf("listener added to %q", name)
	}
}

// remove drops h from the key. Unless exact, once-wrappers around h go too.
func (d *Dispatcher) remove(name Name, wildcard bool, h *handler, exact bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	set := d.wildcard
	if !wildcard {
		var ok bool
		if set, ok = d.events[name]; !ok {
			return
		}
	}

	var removed int
	if exact {
		removed = set.removeExact(h)
	} else {
		removed = set.remove(h)
	}
	if removed > 0 {
		d.logger.Debugf("listener removed from %q", name)
	}
	if !wildcard && set.len() == 0 {
		delete(d.events, name)
	}
}

func (d *Dispatcher) clearKey(name Name, wildcard bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if wildcard {
		d.wildcard = newListenerSet()
	} else {
		delete(d.events, name)
	}
	d.logger.Debugf("listeners of %q cleared", name)
}

func (d *Dispatcher) clear() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.events = make(map[Name]*listenerSet)
	d.wildcard = newListenerSet()
	d.logger.Infof("all listeners cleared")
}

func (d *Dispatcher) snapshot(wildcard bool, name Name) []*handler {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if wildcard {
		return d.wildcard.snapshot()
	}
	if set, ok := d.events[name]; ok {
		return set.snapshot()
	}
	return nil
}

// dispatch runs both passes and returns one channel per Completion it started
// watching, closed once that Completion was handled.
func (d *Dispatcher) dispatch(m Emission) []<-chan struct{} {
	var pending []<-chan struct{}

	for _, wildcard := range [...]bool{true, false} {
		for _, h := range d.snapshot(wildcard, m.name) {
			if c := d.invoke(h, m); c != nil {
				pending = append(pending, d.watch(m.name, c))
			}
		}
	}

	return pending
}

func (d *Dispatcher) invoke(h *handler, m Emission) (c Completion) {
	defer func() {
		if r := recover(); r != nil {
			c = nil
			d.logger.Errorf("listener on %q panicked: %v", m.name, r)
			d.fail(newListenerError(m.name, false, recoverErr(r)))
		}
	}()

	c, err := h.call(m.name, m.payload)
	if err != nil {
		d.fail(newListenerError(m.name, false, err))
		return nil
	}
	return c
}

func (d *Dispatcher) watch(name Name, c Completion) <-chan struct{} {
	handled := make(chan struct{})

	go func() {
		defer close(handled)
		defer func() {
			if r := recover(); r != nil {
				d.logger.Errorf("async listener on %q panicked: %v", name, r)
				d.fail(newListenerError(name, true, recoverErr(r)))
			}
		}()

		// a nil Done channel counts as already over
		if done := c.Done(); done != nil {
			<-done
		}
		if err := c.Err(); err != nil {
			d.fail(newListenerError(name, true, err))
		}
	}()

	return handled
}

func (d *Dispatcher) fail(err *ListenerError) {
	if d.errorHandler == nil {
		d.logger.Warnf("dropping %s listener error on %q: %s", err.Mode(), err.Event, err)
		return
	}
	d.errorHandler(err)
}
