// Package multicast implements a synchronous, bounded fan-out of one call to
// many registered callbacks.
//
// Event[T] delivers a value of type T; Signal delivers nothing. Both hold at
// most a fixed number of delegates (DefaultCapacity unless overridden with
// WithCapacity) and call them in subscription order on the caller's goroutine:
//
//	onReading := multicast.New[float64](multicast.WithCapacity(8))
//	onReading.SubscribeFunc(func(v float64) { display.Show(v) })
//	onReading.Subscribe(delegate.MethodArg(logger, (*Logger).Record))
//
//	onReading.Invoke(21.5)
//
// # Overflow
//
// Subscribing to a full dispatcher silently discards the delegate. Len never
// exceeds Cap and Invoke calls exactly Len delegates.
//
// # Ownership
//
// A dispatcher owns the delegates it holds. Removing one requires the handle
// that was subscribed; closures passed to SubscribeFunc have no handle and
// stay registered until Clear.
//
// # Failure and concurrency
//
// A panic raised by a callback is not recovered: it aborts the remaining calls
// and propagates to the caller of Invoke. Callers that need isolation must
// guard their own callback bodies.
//
// Callbacks may subscribe, unsubscribe or clear the dispatcher they are called
// from; Invoke works on the subscribers present when it started.
//
// Dispatchers perform no locking. Concurrent use of one instance must be
// serialized by the caller. Dispatchers must not be copied after first use;
// go vet reports copies.
package multicast
