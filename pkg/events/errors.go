package events

import (
	"errors"

	"github.com/dmitrymomot/eventkit/pkg/bounded"
)

var (
	// ErrCapacityExceeded is returned when a topic, subscriber set or queue buffer is full.
	ErrCapacityExceeded = bounded.ErrCapacityExceeded

	// ErrNotFound is returned when a topic, subscription, queue or message is absent.
	ErrNotFound = bounded.ErrNotFound

	// ErrRejected is returned when a queue cannot be created because the live-queue limit is reached.
	ErrRejected = errors.New("events: queue creation rejected")

	// ErrInvalidTopic is returned for an empty topic name.
	ErrInvalidTopic = errors.New("events: topic name must not be empty")

	// ErrInvalidConfig is returned when a limit in Config is not positive.
	ErrInvalidConfig = errors.New("events: invalid configuration")

	// ErrEmpty is returned by Queue.Receive when no event is pending.
	ErrEmpty = errors.New("events: queue is empty")

	// ErrClosed is returned when a closed queue is used.
	ErrClosed = errors.New("events: queue closed")

	// ErrStaleQueue is returned when a queue outlived the registry epoch it was created in.
	ErrStaleQueue = errors.New("events: queue belongs to a previous registry epoch")
)
