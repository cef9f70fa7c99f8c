package events

import (
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/eventkit/pkg/bounded"
)

// Queue buffers the IDs of events published to the topics it subscribes to.
//
// The registry only holds a weak reference to a Queue: once the caller drops
// its last reference, or calls Close, the registry stops delivering to it.
// A Queue is safe for concurrent use.
type Queue struct {
	name     string
	id       uint32
	epoch    uuid.UUID
	registry *Registry

	mu     sync.Mutex
	buf    *bounded.Ring[uint32]
	closed bool
	stale  bool
}

func newQueue(name string, id uint32, epoch uuid.UUID, r *Registry, capacity int) *Queue {
	return &Queue{
		name:     name,
		id:       id,
		epoch:    epoch,
		registry: r,
		buf:      bounded.NewRing[uint32](capacity),
	}
}

// Name returns the label given at creation.
func (q *Queue) Name() string { return q.name }

// ID returns the identifier assigned by the registry.
func (q *Queue) ID() uint32 { return q.id }

// Pop removes and returns the oldest pending event ID. It returns false once
// the queue is closed or stale, since IDs from a previous epoch would resolve
// to unrelated messages.
func (q *Queue) Pop() (uint32, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed || q.stale {
		return 0, false
	}
	return q.buf.Pop()
}

// Len returns the number of pending event IDs.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.buf.Len()
}

// Cap returns the buffer capacity.
func (q *Queue) Cap() int { return q.buf.Cap() }

// Receive pops the oldest pending event and resolves it to its Message.
//
// It returns ErrEmpty when nothing is pending, ErrClosed after Close,
// ErrStaleQueue when the registry was re-initialized after the queue was
// created, and ErrNotFound when the message was already evicted from the store.
func (q *Queue) Receive() (Message, error) {
	id, err := q.popOrErr()
	if err != nil {
		return Message{}, err
	}
	return q.registry.messageFor(q.epoch, id)
}

func (q *Queue) popOrErr() (uint32, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return 0, ErrClosed
	}
	if q.stale {
		return 0, ErrStaleQueue
	}
	id, ok := q.buf.Pop()
	if !ok {
		return 0, ErrEmpty
	}
	return id, nil
}

// Close releases the queue. Pending IDs are discarded and the registry
// treats the queue as expired from now on. Close is idempotent.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
	q.buf.Clear()
}

// Closed reports whether Close was called.
func (q *Queue) Closed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed
}

// Stale reports whether the registry was re-initialized after the queue was created.
func (q *Queue) Stale() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.stale
}

// markStale discards pending IDs; called by Initialize with the registry lock held.
func (q *Queue) markStale() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.stale = true
	q.buf.Clear()
}

// deliver appends id, failing when the queue is closed or full.
func (q *Queue) deliver(id uint32) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return ErrClosed
	}
	if q.stale {
		return ErrStaleQueue
	}
	_, err := q.buf.Push(id)
	return err
}
