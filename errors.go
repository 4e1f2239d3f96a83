package liteemit

import (
	"reflect"

	"github.com/pkg/errors"
)

var (
	// ErrPayloadType is reported when a payload reaches a listener declared for another type.
	// It happens when two events with different payload types share a Name.
	ErrPayloadType = errors.New("payload type does not match listener")
)

// ListenerError carries a listener failure to the ErrorHandler.
// Error returns the underlying message untouched; Event and Async tell where it came from.
type ListenerError struct {
	Event Name
	Async bool
	Err   error
}

func (e *ListenerError) Error() string {
	return e.Err.Error()
}

func (e *ListenerError) Unwrap() error { return e.Err }

// Cause makes ListenerError play along with errors.Cause.
func (e *ListenerError) Cause() error { return e.Err }

// Mode is "async" for failed completions and "sync" otherwise.
func (e *ListenerError) Mode() string {
	if e.Async {
		return "async"
	}
	return "sync"
}

func newListenerError(event Name, async bool, err error) *ListenerError {
	return &ListenerError{Event: event, Async: async, Err: err}
}

// recoverErr turns a recovered panic value into an error with a stack trace.
func recoverErr(r any) error {
	switch v := r.(type) {
	case error:
		return errors.WithStack(v)
	case string:
		return errors.New(v)
	default:
		return errors.Errorf("panic: %v", v)
	}
}

func payloadTypeErr[T any](event Name, payload any) error {
	return errors.Wrapf(
		ErrPayloadType,
		"event %q: want %s, got %T",
		event, reflect.TypeFor[T](), payload,
	)
}
