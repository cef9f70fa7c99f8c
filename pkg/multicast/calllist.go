package multicast

import "github.com/dmitrymomot/eventkit/pkg/bounded"

// callList holds the delegates of a dispatcher. The zero value holds up to
// DefaultCapacity delegates.
//
// Invoke iterates over a copy taken by begin, so callbacks may subscribe,
// unsubscribe or clear the dispatcher while it is being invoked. The copy
// lives in scratch, which is allocated once with the list's capacity.
type callList[D comparable] struct {
	handlers *bounded.Collection[D]
	scratch  []D
	busy     bool
}

func newCallList[D comparable](capacity int) callList[D] {
	return callList[D]{
		handlers: bounded.NewCollection[D](capacity),
		scratch:  make([]D, 0, capacity),
	}
}

func (l *callList[D]) lazyInit() {
	if l.handlers == nil {
		*l = newCallList[D](DefaultCapacity)
	}
}

func (l *callList[D]) add(d D) {
	l.lazyInit()
	_ = l.handlers.Insert(d) // overflow drops the delegate
}

func (l *callList[D]) remove(d D) bool {
	if l.handlers == nil {
		return false
	}
	return bounded.Remove(l.handlers, d)
}

func (l *callList[D]) count() int {
	if l.handlers == nil {
		return 0
	}
	return l.handlers.Len()
}

func (l *callList[D]) capacity() int {
	l.lazyInit()
	return l.handlers.Cap()
}

func (l *callList[D]) reset() {
	if l.handlers != nil {
		l.handlers.Clear()
	}
}

// begin returns the delegates to call. A nested Invoke from inside a callback
// gets a fresh copy because scratch is still in use by the outer call.
func (l *callList[D]) begin() (calls []D, owned bool) {
	if l.handlers == nil || l.handlers.Len() == 0 {
		return nil, false
	}
	if l.busy {
		return l.handlers.AppendTo(make([]D, 0, l.handlers.Len())), false
	}
	l.busy = true
	l.scratch = l.handlers.AppendTo(l.scratch[:0])
	return l.scratch, true
}

// end releases scratch taken by begin. It runs deferred so a panicking
// callback leaves the list usable.
func (l *callList[D]) end(owned bool) {
	if !owned {
		return
	}
	clear(l.scratch)
	l.scratch = l.scratch[:0]
	l.busy = false
}
