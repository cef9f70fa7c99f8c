package events

import (
	"time"

	"github.com/dmitrymomot/eventkit/pkg/bounded"
)

// Message is a published event as retained by the registry.
type Message struct {
	ID          uint32
	Topic       string
	Payload     any
	PublishedAt time.Time
}

// messageStore retains the most recent published messages.
// order holds IDs oldest first and always mirrors the keys of messages.
type messageStore struct {
	messages *bounded.Dict[uint32, Message]
	order    *bounded.Ring[uint32]
}

func newMessageStore(capacity int) *messageStore {
	return &messageStore{
		messages: bounded.NewDict[uint32, Message](capacity),
		order:    bounded.NewRing[uint32](capacity),
	}
}

// put stores m, evicting the oldest message when the store is full.
func (s *messageStore) put(m Message) (evicted uint32, ok bool) {
	if s.messages.Full() {
		if evicted, ok = s.order.Pop(); ok {
			s.messages.Remove(evicted)
		}
	}
	_ = s.messages.Set(m.ID, m)
	_, _ = s.order.Push(m.ID)
	return evicted, ok
}

func (s *messageStore) get(id uint32) (Message, bool) {
	return s.messages.Get(id)
}

func (s *messageStore) len() int { return s.messages.Len() }

func (s *messageStore) clear() {
	s.messages.Clear()
	s.order.Clear()
}
