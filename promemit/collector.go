// Package promemit exposes liteemit activity as Prometheus metrics.
//
//	c, err := promemit.New(prometheus.DefaultRegisterer, promemit.WithNamespace("shop"))
//	if err != nil {
//		return err
//	}
//	d := liteemit.New(liteemit.WithErrorHandler(c.ErrorHandler(nil)))
//	detach := c.Attach(d)
//	defer detach()
package promemit

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/sonirico/liteemit"
)

const (
	labelEvent = "event"
	labelMode  = "mode"

	// modeUnknown labels failures that did not come through a liteemit.ListenerError
	modeUnknown = "unknown"
)

type (
	// Collector counts emitted events and listener failures.
	Collector struct {
		emitted  *prometheus.CounterVec
		failures *prometheus.CounterVec
		listener *liteemit.WildcardListener
	}

	config struct {
		namespace string
		subsystem string
	}

	Option func(*config)
)

// WithNamespace prefixes every metric name.
func WithNamespace(ns string) Option {
	return func(c *config) {
		c.namespace = ns
	}
}

// WithSubsystem sets the metric subsystem. Defaults to "liteemit".
func WithSubsystem(ss string) Option {
	return func(c *config) {
		c.subsystem = ss
	}
}

// New builds a Collector and registers its metrics on reg.
func New(reg prometheus.Registerer, opts ...Option) (*Collector, error) {
	cfg := config{subsystem: "liteemit"}
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &Collector{
		emitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.namespace,
			Subsystem: cfg.subsystem,
			Name:      "events_emitted_total",
			Help:      "Number of events emitted, by event name.",
		}, []string{labelEvent}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.namespace,
			Subsystem: cfg.subsystem,
			Name:      "listener_failures_total",
			Help:      "Number of listener failures, by event name and mode (sync or async).",
		}, []string{labelEvent, labelMode}),
	}

	if err := reg.Register(c.emitted); err != nil {
		return nil, errors.Wrap(err, "cannot register emitted events counter")
	}
	if err := reg.Register(c.failures); err != nil {
		reg.Unregister(c.emitted)
		return nil, errors.Wrap(err, "cannot register listener failures counter")
	}

	c.listener = liteemit.ListenAll(func(event liteemit.Name, _ any) error {
		c.emitted.WithLabelValues(string(event)).Inc()
		return nil
	})

	return c, nil
}

// Listener returns the wildcard listener that counts emissions.
// It is the same pointer on every call, so registering it twice counts once.
func (c *Collector) Listener() *liteemit.WildcardListener {
	return c.listener
}

// ErrorHandler returns an ErrorHandler that counts the failure and then passes it to next, if any.
func (c *Collector) ErrorHandler(next liteemit.ErrorHandler) liteemit.ErrorHandler {
	return func(err error) {
		event, mode := "", modeUnknown

		var le *liteemit.ListenerError
		if errors.As(err, &le) {
			event, mode = string(le.Event), le.Mode()
		}
		c.failures.WithLabelValues(event, mode).Inc()

		if next != nil {
			next(err)
		}
	}
}

// Attach registers the counting listener on e and returns the function that removes it.
func (c *Collector) Attach(e liteemit.Emitter) (detach func()) {
	return e.On(liteemit.Any.Bind(c.listener))
}
