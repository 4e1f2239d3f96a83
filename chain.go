package liteemit

// Chained wraps a Dispatcher so that calls can be chained:
//
//	liteemit.Chain(d).
//		On(foo.Bind(l)).
//		Once(bar.Bind(l2)).
//		Emit(foo.With("hi")).
//		Off()
type Chained struct {
	d *Dispatcher
}

// Chain wraps d. The wrapper and d share the same listeners.
func Chain(d *Dispatcher) *Chained {
	return &Chained{d: d}
}

// On registers the binding's listener. The removal function is discarded; use Off.
func (c *Chained) On(b Binding) *Chained {
	c.d.On(b)
	return c
}

func (c *Chained) Once(b Binding) *Chained {
	c.d.Once(b)
	return c
}

func (c *Chained) Off(targets ...Binding) *Chained {
	c.d.Off(targets...)
	return c
}

// Emit does not wait for asynchronous listeners. Use Unwrap().EmitWait for that.
func (c *Chained) Emit(m Emission) *Chained {
	c.d.Emit(m)
	return c
}

// Unwrap returns the wrapped Dispatcher itself.
func (c *Chained) Unwrap() *Dispatcher {
	return c.d
}
