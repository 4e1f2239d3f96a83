package liteemit

type (
	// Completion is the outcome of a listener that finishes after returning.
	// Done is closed once the work is over; Err then reports its failure, if any.
	// A nil Done channel means the work is already over.
	Completion interface {
		Done() <-chan struct{}
		Err() error
	}

	future struct {
		done chan struct{}
		err  error
	}
)

func (f *future) Done() <-chan struct{} { return f.done }

// Err is only meaningful after Done is closed.
func (f *future) Err() error {
	select {
	case <-f.done:
		return f.err
	default:
		return nil
	}
}

// Go runs fn on its own goroutine and returns its Completion.
// A panic inside fn becomes the Completion's error.
func Go(fn func() error) Completion {
	f := &future{done: make(chan struct{})}

	go func() {
		defer close(f.done)
		defer func() {
			if r := recover(); r != nil {
				f.err = recoverErr(r)
			}
		}()

		f.err = fn()
	}()

	return f
}

// Resolved returns a Completion that is already over, failing with err if non-nil.
func Resolved(err error) Completion {
	f := &future{done: make(chan struct{}), err: err}
	close(f.done)
	return f
}
