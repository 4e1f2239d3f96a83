package liteemit

import (
	"context"
	"fmt"
	"log/slog"
)

type slogLogger struct {
	l *slog.Logger
}

// NewSlogLogger adapts a *slog.Logger. Fields become slog attributes.
func NewSlogLogger(l *slog.Logger) Logger {
	if l == nil {
		l = slog.Default()
	}
	return slogLogger{l: l}
}

func (s slogLogger) WithField(key string, value any) Logger {
	return slogLogger{l: s.l.With(key, value)}
}

func (s slogLogger) logf(level slog.Level, format string, args ...any) {
	ctx := context.Background()
	if !s.l.Enabled(ctx, level) {
		return
	}
	s.l.Log(ctx, level, fmt.Sprintf(format, args...))
}

func (s slogLogger) Debugf(format string, args ...any) { s.logf(slog.LevelDebug, format, args...) }

func (s slogLogger) Infof(format string, args ...any) { s.logf(slog.LevelInfo, format, args...) }

func (s slogLogger) Warnf(format string, args ...any) { s.logf(slog.LevelWarn, format, args...) }

func (s slogLogger) Errorf(format string, args ...any) { s.logf(slog.LevelError, format, args...) }
