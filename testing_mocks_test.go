package liteemit

import (
	"sync"

	"github.com/stretchr/testify/mock"
)

type mockErrorHandler struct {
	mock.Mock

	mu       sync.Mutex
	received []error
}

func newMockErrorHandler() *mockErrorHandler {
	m := &mockErrorHandler{}
	m.On("Handle", mock.Anything).Return()
	return m
}

func (m *mockErrorHandler) Handle(err error) {
	m.mu.Lock()
	m.received = append(m.received, err)
	m.mu.Unlock()

	m.Called(err)
}

// errs returns the errors received so far, in call order.
func (m *mockErrorHandler) errs() []error {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]error, len(m.received))
	copy(out, m.received)
	return out
}

// recorder collects labelled calls from listeners, in order.
type recorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *recorder) record(s string) {
	r.mu.Lock()
	r.calls = append(r.calls, s)
	r.mu.Unlock()
}

func (r *recorder) got() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, len(r.calls))
	copy(out, r.calls)
	return out
}

// brokenCompletion panics from Done or Err, or returns a nil Done channel.
type brokenCompletion struct {
	panicDone bool
	panicErr  bool
	err       error
}

func (b brokenCompletion) Done() <-chan struct{} {
	if b.panicDone {
		panic("boom from Done")
	}
	return nil
}

func (b brokenCompletion) Err() error {
	if b.panicErr {
		panic("boom from Err")
	}
	return b.err
}
