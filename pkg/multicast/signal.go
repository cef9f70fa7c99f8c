package multicast

import "github.com/dmitrymomot/eventkit/pkg/delegate"

// Signal is the argument-less counterpart of Event.
// The zero value is ready to use and holds up to DefaultCapacity delegates.
type Signal struct {
	noCopy noCopy

	calls callList[delegate.Delegate]
}

// NewSignal creates a Signal configured by opts.
func NewSignal(opts ...Option) *Signal {
	o := buildOptions(opts)
	return &Signal{calls: newCallList[delegate.Delegate](o.capacity)}
}

// Subscribe adds d to the end of the call list; see Event.Subscribe.
func (s *Signal) Subscribe(d delegate.Delegate) *Signal {
	s.calls.lazyInit()
	if d == nil {
		return s
	}
	s.calls.add(d)
	return s
}

// SubscribeFunc wraps fn with delegate.Func and subscribes it.
func (s *Signal) SubscribeFunc(fn func()) *Signal {
	if fn == nil {
		return s
	}
	return s.Subscribe(delegate.Func(fn))
}

// Unsubscribe removes the first subscription holding handle d.
// Reports whether a subscription was removed.
func (s *Signal) Unsubscribe(d delegate.Delegate) bool {
	if d == nil {
		return false
	}
	return s.calls.remove(d)
}

// Invoke calls every delegate subscribed at the moment of the call, in
// subscription order; see Event.Invoke.
func (s *Signal) Invoke() {
	calls, owned := s.calls.begin()
	defer s.calls.end(owned)
	for _, h := range calls {
		h.Call()
	}
}

// Len returns the number of subscribed delegates.
func (s *Signal) Len() int { return s.calls.count() }

// Cap returns the maximum number of subscribers.
func (s *Signal) Cap() int { return s.calls.capacity() }

// Clear drops every subscription.
func (s *Signal) Clear() { s.calls.reset() }
