package bounded

import "errors"

var (
	// ErrCapacityExceeded is returned when an insertion would grow a container past its capacity.
	ErrCapacityExceeded = errors.New("bounded: capacity exceeded")

	// ErrNotFound is returned when a lookup or removal target is absent.
	ErrNotFound = errors.New("bounded: not found")
)
