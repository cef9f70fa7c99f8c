// Package events implements a topic registry with fixed-capacity event queues.
//
// A Registry maps topic names to the queues subscribed to them. Publishing
// stores the payload under a monotonically increasing event ID and appends
// that ID to every subscribed queue. Consumers pop IDs from their Queue and
// resolve them to messages with Queue.Receive or Registry.Message.
//
// Every container inside the registry has a fixed capacity taken from Config:
// the number of queues, topics, subscribers per topic, retained messages and
// pending IDs per queue. Full containers reject new entries, with two
// exceptions: the message store evicts its oldest message, and a full queue
// simply misses the event.
//
// # Ownership
//
// The caller owns each Queue returned by CreateQueue. The registry keeps only
// a weak reference, so a queue that is closed or garbage collected stops
// receiving events. Its subscriptions stay in place until PruneExpired runs,
// or until CreateQueue needs the slot.
//
// # Usage
//
//	cfg, err := events.LoadConfig()
//	if err != nil {
//		// handle error
//	}
//	reg, err := events.NewRegistry(cfg, events.WithLogger(log))
//	if err != nil {
//		// handle error
//	}
//
//	q, _ := reg.CreateQueue("ui")
//	_ = reg.Subscribe("sensor.temp", q.ID())
//	_, _ = reg.Publish("sensor.temp", 21.5)
//
//	msg, err := q.Receive()
//
// Package-level functions such as Publish and Subscribe operate on a default
// registry, see Default and SetDefault.
package events
