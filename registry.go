package liteemit

import (
	"github.com/elliotchance/orderedmap/v3"
)

// listenerSet keeps listeners unique by identity, in registration order.
type listenerSet struct {
	entries *orderedmap.OrderedMap[*handler, struct{}]
}

func newListenerSet() *listenerSet {
	return &listenerSet{entries: orderedmap.NewOrderedMap[*handler, struct{}]()}
}

// add reports whether h was not registered yet.
func (s *listenerSet) add(h *handler) bool {
	if s.entries.Has(h) {
		return false
	}
	s.entries.Set(h, struct{}{})
	return true
}

// remove drops h and any once-wrapper around it. It reports how many entries went away.
func (s *listenerSet) remove(h *handler) int {
	var doomed []*handler
	for el := s.entries.Front(); el != nil; el = el.Next() {
		if el.Key.matches(h) {
			doomed = append(doomed, el.Key)
		}
	}
	for _, d := range doomed {
		s.entries.Delete(d)
	}
	return len(doomed)
}

// removeExact drops h itself and leaves once-wrappers around it in place.
func (s *listenerSet) removeExact(h *handler) int {
	if !s.entries.Delete(h) {
		return 0
	}
	return 1
}

// snapshot copies the listeners so callers can iterate without holding any lock.
func (s *listenerSet) snapshot() []*handler {
	out := make([]*handler, 0, s.entries.Len())
	for h := range s.entries.Keys() {
		out = append(out, h)
	}
	return out
}

func (s *listenerSet) len() int {
	return s.entries.Len()
}
