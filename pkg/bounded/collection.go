package bounded

import "iter"

// Collection is an insertion-ordered container holding at most Cap() values.
// Removing an element shifts the remaining ones left, so iteration order always
// matches the order in which the surviving elements were inserted.
type Collection[T any] struct {
	items []T
}

// NewCollection creates a collection able to hold capacity values.
// The capacity must be positive, otherwise it panics.
func NewCollection[T any](capacity int) *Collection[T] {
	if capacity <= 0 {
		panic("bounded: collection capacity must be positive")
	}
	return &Collection[T]{items: make([]T, 0, capacity)}
}

// Insert appends v. Returns ErrCapacityExceeded when the collection is full.
func (c *Collection[T]) Insert(v T) error {
	if len(c.items) == cap(c.items) {
		return ErrCapacityExceeded
	}
	c.items = append(c.items, v)
	return nil
}

// RemoveFunc removes the first element for which match returns true.
// Reports whether an element was removed.
func (c *Collection[T]) RemoveFunc(match func(T) bool) bool {
	i := c.IndexFunc(match)
	if i < 0 {
		return false
	}
	c.removeAt(i)
	return true
}

// DeleteFunc removes every element for which match returns true and returns
// how many were removed.
func (c *Collection[T]) DeleteFunc(match func(T) bool) int {
	kept := c.items[:0]
	for _, v := range c.items {
		if !match(v) {
			kept = append(kept, v)
		}
	}
	removed := len(c.items) - len(kept)
	clear(c.items[len(kept):])
	c.items = kept
	return removed
}

// IndexFunc returns the index of the first element satisfying match, or -1.
func (c *Collection[T]) IndexFunc(match func(T) bool) int {
	for i, v := range c.items {
		if match(v) {
			return i
		}
	}
	return -1
}

// At returns the element at index i. It panics if i is out of range.
func (c *Collection[T]) At(i int) T {
	return c.items[i]
}

func (c *Collection[T]) Len() int { return len(c.items) }

func (c *Collection[T]) Cap() int { return cap(c.items) }

// Full reports whether another Insert would fail.
func (c *Collection[T]) Full() bool { return len(c.items) == cap(c.items) }

// Clear removes all elements, keeping the allocated storage.
func (c *Collection[T]) Clear() {
	clear(c.items)
	c.items = c.items[:0]
}

// All yields the elements in insertion order. The sequence can be ranged over
// any number of times; mutating the collection during iteration is not supported.
func (c *Collection[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range c.items {
			if !yield(v) {
				return
			}
		}
	}
}

// AppendTo appends the elements to dst in insertion order and returns the
// extended slice. Passing a dst with spare capacity avoids allocation.
func (c *Collection[T]) AppendTo(dst []T) []T {
	return append(dst, c.items...)
}

// Must be called with a valid index.
func (c *Collection[T]) removeAt(i int) {
	copy(c.items[i:], c.items[i+1:])
	var zero T
	c.items[len(c.items)-1] = zero
	c.items = c.items[:len(c.items)-1]
}

// Remove removes the first element of c equal to v.
// Reports whether an element was removed.
func Remove[T comparable](c *Collection[T], v T) bool {
	return c.RemoveFunc(func(item T) bool { return item == v })
}

// Contains reports whether c holds an element equal to v.
func Contains[T comparable](c *Collection[T], v T) bool {
	return c.IndexFunc(func(item T) bool { return item == v }) >= 0
}
