package liteemit

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(&buf).(*writerLogger)
	l.now = func() time.Time { return time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC) }

	scoped := l.WithField("b", 2).WithField("a", "x")
	scoped.Infof("hello %s", "world")
	l.Errorf("plain")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "[2024-03-01 10:20:30] INFO [a=x, b=2]: hello world", lines[0])
	assert.Equal(t, "[2024-03-01 10:20:30] ERROR: plain", lines[1])
}

func TestWriterLoggerWithFieldDoesNotLeak(t *testing.T) {
	var buf bytes.Buffer
	base := NewWriterLogger(&buf)

	_ = base.WithField("scoped", true)
	base.Warnf("w")
	base.Debugf("d")

	assert.NotContains(t, buf.String(), "scoped")
	assert.Contains(t, buf.String(), "WARN: w")
	assert.Contains(t, buf.String(), "DEBUG: d")
}

func TestSlogLogger(t *testing.T) {
	var buf bytes.Buffer
	sl := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	l := NewSlogLogger(sl).WithField("component", "dispatcher")
	l.Debugf("hidden %d", 1)
	l.Infof("shown %d", 2)
	l.Errorf("bad")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `msg="shown 2"`)
	assert.Contains(t, out, "component=dispatcher")
	assert.Contains(t, out, "level=ERROR")
}

func TestNoopLogger(t *testing.T) {
	var l Logger = noopLogger{}

	assert.NotPanics(t, func() {
		l.WithField("k", "v").Debugf("x")
		l.Infof("x")
		l.Warnf("x")
		l.Errorf("x")
	})
}
