package liteemit

// Logger is the logging surface the dispatcher writes to.
type Logger interface {
	WithField(key string, value any) Logger
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

type noopLogger struct{}

func (l noopLogger) WithField(string, any) Logger { return l }

func (noopLogger) Debugf(string, ...any) {}

func (noopLogger) Infof(string, ...any) {}

func (noopLogger) Warnf(string, ...any) {}

func (noopLogger) Errorf(string, ...any) {}
