package multicast

import "github.com/dmitrymomot/eventkit/pkg/delegate"

// Event dispatches a value of type T to its subscribers.
// The zero value is ready to use and holds up to DefaultCapacity delegates.
type Event[T any] struct {
	noCopy noCopy

	calls callList[delegate.ArgDelegate[T]]
}

// New creates an Event configured by opts.
func New[T any](opts ...Option) *Event[T] {
	o := buildOptions(opts)
	return &Event[T]{calls: newCallList[delegate.ArgDelegate[T]](o.capacity)}
}

// Subscribe adds d to the end of the call list. When the event is full, d is
// discarded. Nil delegates are ignored. Returns e to allow chaining.
func (e *Event[T]) Subscribe(d delegate.ArgDelegate[T]) *Event[T] {
	e.calls.lazyInit()
	if d == nil {
		return e
	}
	e.calls.add(d)
	return e
}

// SubscribeFunc wraps fn with delegate.FuncArg and subscribes it.
// The wrapper is not returned, so the subscription cannot be removed individually.
func (e *Event[T]) SubscribeFunc(fn func(T)) *Event[T] {
	if fn == nil {
		return e
	}
	return e.Subscribe(delegate.FuncArg(fn))
}

// Unsubscribe removes the first subscription holding handle d.
// Reports whether a subscription was removed.
func (e *Event[T]) Unsubscribe(d delegate.ArgDelegate[T]) bool {
	if d == nil {
		return false
	}
	return e.calls.remove(d)
}

// Invoke calls every delegate subscribed at the moment of the call with arg,
// in subscription order. Changes made by the callbacks take effect on the
// next Invoke.
func (e *Event[T]) Invoke(arg T) {
	calls, owned := e.calls.begin()
	defer e.calls.end(owned)
	for _, h := range calls {
		h.Call(arg)
	}
}

// Len returns the number of subscribed delegates.
func (e *Event[T]) Len() int { return e.calls.count() }

// Cap returns the maximum number of subscribers.
func (e *Event[T]) Cap() int { return e.calls.capacity() }

// Clear drops every subscription.
func (e *Event[T]) Clear() { e.calls.reset() }
