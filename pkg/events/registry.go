package events

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"weak"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"

	"github.com/dmitrymomot/eventkit/pkg/bounded"
	"github.com/dmitrymomot/eventkit/pkg/logger"
)

// dropLogInterval throttles the queue-full warning to one record per interval drops.
const dropLogInterval = 100

type queueRef struct {
	id  uint32
	ptr weak.Pointer[Queue]
}

// Registry routes published events to the queues subscribed to their topic.
//
// Every container is allocated at construction or topic creation with a fixed
// capacity taken from Config, so memory use is bounded regardless of traffic.
// All methods are safe for concurrent use; a single mutex serializes them.
type Registry struct {
	cfg     Config
	log     *slog.Logger
	metrics *Metrics
	clock   clock.Clock

	mu          sync.Mutex
	epoch       uuid.UUID
	nextQueueID uint32
	nextEventID uint32
	topics      *bounded.Dict[string, *bounded.Collection[uint32]]
	queues      *bounded.Collection[queueRef]
	store       *messageStore
	dropped     uint64
}

// Stats is a point-in-time snapshot of a Registry.
type Stats struct {
	Epoch          uuid.UUID
	Queues         int // tracked references, including expired ones not yet pruned
	LiveQueues     int
	Topics         int
	StoredMessages int
	NextQueueID    uint32
	NextEventID    uint32
	Dropped        uint64
}

// NewRegistry creates an empty registry with the limits in cfg.
func NewRegistry(cfg Config, opts ...Option) (*Registry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &Registry{
		cfg:    cfg,
		log:    slog.Default(),
		clock:  clock.New(),
		topics: bounded.NewDict[string, *bounded.Collection[uint32]](cfg.MaxTopics),
		queues: bounded.NewCollection[queueRef](cfg.MaxQueues),
		store:  newMessageStore(cfg.MaxEvents),
		epoch:  uuid.New(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.log = r.log.With(logger.Component("events"))

	return r, nil
}

// Config returns the limits the registry was created with.
func (r *Registry) Config() Config { return r.cfg }

// Initialize resets the registry to its empty state: no topics, no
// subscriptions, no stored messages and both ID counters at zero.
// Queues created before the call lose their pending IDs and stop receiving
// events: Pop reports nothing and Receive reports ErrStaleQueue.
func (r *Registry) Initialize() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for ref := range r.queues.All() {
		if q := ref.ptr.Value(); q != nil {
			q.markStale()
		}
	}
	r.topics.Clear()
	r.queues.Clear()
	r.store.clear()
	r.nextQueueID = 0
	r.nextEventID = 0
	r.dropped = 0
	r.epoch = uuid.New()
	r.metrics.setSizes(0, 0)

	r.log.Debug("registry initialized", logger.Epoch(r.epoch))
}

// CreateQueue creates a queue and tracks it by weak reference.
//
// When the reference table is full, expired entries are pruned first.
// If it is still full, ErrRejected is returned and no ID is consumed.
func (r *Registry) CreateQueue(name string) (*Queue, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.queues.Full() {
		r.pruneLocked()
	}
	if r.queues.Full() {
		err := fmt.Errorf("%w: %d queues in use", ErrRejected, r.queues.Len())
		r.metrics.incQueuesRejected()
		r.log.Warn("queue limit reached",
			logger.QueueName(name),
			logger.Capacity(r.queues.Cap()),
			logger.Error(err),
		)
		return nil, err
	}

	q := newQueue(name, r.nextQueueID, r.epoch, r, r.cfg.QueueCapacity)
	if err := r.queues.Insert(queueRef{id: q.id, ptr: weak.Make(q)}); err != nil {
		return nil, err
	}
	r.nextQueueID++
	r.metrics.setSizes(r.queues.Len(), r.topics.Len())

	r.log.Debug("queue created", logger.QueueID(q.id), logger.QueueName(name))
	return q, nil
}

// Subscribe adds queueID to topic's subscriber set, creating the topic on
// first use. Subscribing twice is a no-op.
//
// It returns ErrInvalidTopic for an empty topic, ErrNotFound for an ID that
// was never issued in the current epoch or whose queue is closed or
// collected, and ErrCapacityExceeded when the topic table or the topic's
// subscriber set is full.
func (r *Registry) Subscribe(topic string, queueID uint32) error {
	if topic == "" {
		return ErrInvalidTopic
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if queueID >= r.nextQueueID {
		return fmt.Errorf("%w: queue %d", ErrNotFound, queueID)
	}
	if r.resolveLocked(queueID) == nil {
		return fmt.Errorf("%w: queue %d is closed or collected", ErrNotFound, queueID)
	}

	subs, ok := r.topics.Get(topic)
	if !ok {
		if r.topics.Full() {
			return r.rejectSubscription(topic, queueID, "topic limit reached", r.topics.Cap())
		}
		subs = bounded.NewCollection[uint32](r.cfg.MaxQueuesPerTopic)
		if err := r.topics.Set(topic, subs); err != nil {
			return err
		}
	}

	if bounded.Contains(subs, queueID) {
		return nil
	}
	if err := subs.Insert(queueID); err != nil {
		return r.rejectSubscription(topic, queueID, "subscriber limit reached", subs.Cap())
	}
	r.metrics.setSizes(r.queues.Len(), r.topics.Len())

	return nil
}

func (r *Registry) rejectSubscription(topic string, queueID uint32, reason string, capacity int) error {
	err := fmt.Errorf("%w: %s for topic %q", ErrCapacityExceeded, reason, topic)
	r.metrics.incSubscriptionsRejected()
	r.log.Warn(reason,
		logger.Topic(topic),
		logger.QueueID(queueID),
		logger.Capacity(capacity),
		logger.Error(err),
	)
	return err
}

// Unsubscribe removes queueID from topic. A topic left without subscribers
// is dropped so its slot can be reused.
func (r *Registry) Unsubscribe(topic string, queueID uint32) error {
	if topic == "" {
		return ErrInvalidTopic
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	subs, ok := r.topics.Get(topic)
	if !ok {
		return fmt.Errorf("%w: topic %q", ErrNotFound, topic)
	}
	if !bounded.Remove(subs, queueID) {
		return fmt.Errorf("%w: queue %d on topic %q", ErrNotFound, queueID, topic)
	}
	if subs.Len() == 0 {
		r.topics.Remove(topic)
	}
	r.metrics.setSizes(r.queues.Len(), r.topics.Len())

	return nil
}

// Publish stores payload under a new event ID and appends that ID to every
// live queue subscribed to topic, in subscription order.
//
// Full queues miss the event; this is counted but not reported as an error.
// Queues that were closed or garbage collected are skipped and keep their
// subscription until PruneExpired runs. Publishing to a topic without
// subscribers succeeds.
func (r *Registry) Publish(topic string, payload any) (uint32, error) {
	if topic == "" {
		return 0, ErrInvalidTopic
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextEventID
	r.nextEventID++

	msg := Message{
		ID:          id,
		Topic:       topic,
		Payload:     payload,
		PublishedAt: r.clock.Now(),
	}
	if evicted, ok := r.store.put(msg); ok {
		r.metrics.incEvicted()
		r.log.Debug("message evicted", logger.EventID(evicted))
	}
	r.metrics.incPublished()

	subs, ok := r.topics.Get(topic)
	if !ok {
		return id, nil
	}

	for queueID := range subs.All() {
		q := r.resolveLocked(queueID)
		if q == nil {
			r.metrics.incDropped(DropExpired)
			continue
		}
		if err := q.deliver(id); err != nil {
			r.dropped++
			r.metrics.incDropped(DropQueueFull)
			if r.dropped%dropLogInterval == 1 {
				r.log.Warn("queue full, event dropped",
					logger.Topic(topic),
					logger.EventID(id),
					logger.Group("queue",
						slog.Uint64("id", uint64(queueID)),
						slog.String("name", q.name),
						logger.Capacity(q.Cap()),
					),
					slog.Uint64("total_dropped", r.dropped),
				)
			}
			continue
		}
		r.metrics.incDelivered()
	}

	return id, nil
}

// Message returns the stored message for id.
func (r *Registry) Message(id uint32) (Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.messageLocked(id)
}

func (r *Registry) messageFor(epoch uuid.UUID, id uint32) (Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if epoch != r.epoch {
		return Message{}, ErrStaleQueue
	}
	return r.messageLocked(id)
}

func (r *Registry) messageLocked(id uint32) (Message, error) {
	msg, ok := r.store.get(id)
	if !ok {
		return Message{}, fmt.Errorf("%w: event %d", ErrNotFound, id)
	}
	return msg, nil
}

// Subscribers returns the queue IDs subscribed to topic in subscription order.
func (r *Registry) Subscribers(topic string) []uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	subs, ok := r.topics.Get(topic)
	if !ok {
		return nil
	}
	return slices.Collect(subs.All())
}

// Topics returns the topics with at least one subscriber in creation order.
func (r *Registry) Topics() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Collect(r.topics.Keys())
}

// Stats returns a snapshot of the registry's counters.
func (r *Registry) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()

	live := 0
	for ref := range r.queues.All() {
		if isLive(ref) {
			live++
		}
	}

	return Stats{
		Epoch:          r.epoch,
		Queues:         r.queues.Len(),
		LiveQueues:     live,
		Topics:         r.topics.Len(),
		StoredMessages: r.store.len(),
		NextQueueID:    r.nextQueueID,
		NextEventID:    r.nextEventID,
		Dropped:        r.dropped,
	}
}

// PruneExpired forgets queues that were closed or garbage collected and
// removes their subscriptions. It returns the number of queues pruned.
func (r *Registry) PruneExpired() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pruneLocked()
}

func (r *Registry) pruneLocked() int {
	var expired []uint32
	for ref := range r.queues.All() {
		if !isLive(ref) {
			expired = append(expired, ref.id)
		}
	}
	if len(expired) == 0 {
		return 0
	}

	r.queues.DeleteFunc(func(ref queueRef) bool {
		return slices.Contains(expired, ref.id)
	})

	var emptied []string
	for topic, subs := range r.topics.All() {
		subs.DeleteFunc(func(id uint32) bool {
			return slices.Contains(expired, id)
		})
		if subs.Len() == 0 {
			emptied = append(emptied, topic)
		}
	}
	for _, topic := range emptied {
		r.topics.Remove(topic)
	}

	r.metrics.setSizes(r.queues.Len(), r.topics.Len())
	r.log.Debug("expired queues pruned", logger.Count(len(expired)))

	return len(expired)
}

// resolveLocked returns the live queue for id, or nil when it is unknown,
// closed or collected.
func (r *Registry) resolveLocked(id uint32) *Queue {
	i := r.queues.IndexFunc(func(ref queueRef) bool { return ref.id == id })
	if i < 0 {
		return nil
	}
	q := r.queues.At(i).ptr.Value()
	if q == nil || q.Closed() {
		return nil
	}
	return q
}

func isLive(ref queueRef) bool {
	q := ref.ptr.Value()
	return q != nil && !q.Closed()
}
