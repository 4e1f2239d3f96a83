package liteemit

type (
	// ErrorHandler receives every listener failure, synchronous or not.
	// It may be called from several goroutines at once and must not panic.
	ErrorHandler func(err error)

	// Option configures a Dispatcher.
	Option func(*Dispatcher)
)

// WithErrorHandler routes listener failures to h. Without it they are dropped.
func WithErrorHandler(h ErrorHandler) Option {
	return func(d *Dispatcher) {
		d.errorHandler = h
	}
}

// WithLogger sets the logger used for debug traces. Defaults to a logger that discards everything.
func WithLogger(l Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}
