package bounded

import "iter"

// Policy decides what Ring.Push does when the ring is full.
type Policy uint8

const (
	// RejectWhenFull leaves the ring untouched and returns ErrCapacityExceeded.
	RejectWhenFull Policy = iota
	// OverwriteOldest drops the oldest element to make room for the new one.
	OverwriteOldest
)

func (p Policy) String() string {
	switch p {
	case RejectWhenFull:
		return "reject"
	case OverwriteOldest:
		return "overwrite"
	default:
		return "unknown"
	}
}

// RingOption configures a Ring.
type RingOption func(*ringConfig)

type ringConfig struct {
	policy Policy
}

// WithPolicy sets the overflow policy. Unknown policies are ignored.
func WithPolicy(p Policy) RingOption {
	return func(c *ringConfig) {
		if p == RejectWhenFull || p == OverwriteOldest {
			c.policy = p
		}
	}
}

// WithOverwrite is shorthand for WithPolicy(OverwriteOldest).
func WithOverwrite() RingOption {
	return WithPolicy(OverwriteOldest)
}

// Ring is a fixed-capacity FIFO circular buffer.
type Ring[T any] struct {
	buf    []T
	head   int // index of the oldest element
	size   int
	policy Policy
}

// NewRing creates a ring holding up to capacity elements. The default policy
// is RejectWhenFull. The capacity must be positive, otherwise it panics.
func NewRing[T any](capacity int, opts ...RingOption) *Ring[T] {
	if capacity <= 0 {
		panic("bounded: ring capacity must be positive")
	}
	cfg := ringConfig{policy: RejectWhenFull}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Ring[T]{
		buf:    make([]T, capacity),
		policy: cfg.policy,
	}
}

// Push appends v at the tail.
//
// When the ring is full, a RejectWhenFull ring returns ErrCapacityExceeded
// and keeps its contents; an OverwriteOldest ring discards the head element
// and reports overwritten as true.
func (r *Ring[T]) Push(v T) (overwritten bool, err error) {
	if r.size == len(r.buf) {
		if r.policy != OverwriteOldest {
			return false, ErrCapacityExceeded
		}
		r.buf[r.head] = v
		r.head = (r.head + 1) % len(r.buf)
		return true, nil
	}
	r.buf[(r.head+r.size)%len(r.buf)] = v
	r.size++
	return false, nil
}

// Pop removes and returns the oldest element.
// The boolean is false when the ring is empty.
func (r *Ring[T]) Pop() (T, bool) {
	var zero T
	if r.size == 0 {
		return zero, false
	}
	v := r.buf[r.head]
	r.buf[r.head] = zero
	r.head = (r.head + 1) % len(r.buf)
	r.size--
	return v, true
}

// Peek returns the oldest element without removing it.
func (r *Ring[T]) Peek() (T, bool) {
	if r.size == 0 {
		var zero T
		return zero, false
	}
	return r.buf[r.head], true
}

func (r *Ring[T]) Len() int { return r.size }

func (r *Ring[T]) Cap() int { return len(r.buf) }

func (r *Ring[T]) Full() bool { return r.size == len(r.buf) }

func (r *Ring[T]) Policy() Policy { return r.policy }

// Clear drops every element.
func (r *Ring[T]) Clear() {
	clear(r.buf)
	r.head = 0
	r.size = 0
}

// All yields the elements from oldest to newest without consuming them.
func (r *Ring[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range r.size {
			if !yield(r.buf[(r.head+i)%len(r.buf)]) {
				return
			}
		}
	}
}
