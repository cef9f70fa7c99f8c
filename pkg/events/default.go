package events

import "sync"

var (
	defaultMu       sync.RWMutex
	defaultRegistry *Registry
)

// Default returns the process-wide registry, creating it with DefaultConfig
// on first use.
func Default() *Registry {
	defaultMu.RLock()
	r := defaultRegistry
	defaultMu.RUnlock()
	if r != nil {
		return r
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultRegistry == nil {
		reg, err := NewRegistry(DefaultConfig())
		if err != nil {
			panic(err)
		}
		defaultRegistry = reg
	}
	return defaultRegistry
}

// SetDefault replaces the process-wide registry. A nil r is ignored.
func SetDefault(r *Registry) {
	if r == nil {
		return
	}
	defaultMu.Lock()
	defaultRegistry = r
	defaultMu.Unlock()
}

// Initialize resets the default registry.
func Initialize() { Default().Initialize() }

// CreateQueue creates a queue on the default registry.
func CreateQueue(name string) (*Queue, error) { return Default().CreateQueue(name) }

// Subscribe subscribes a queue to topic on the default registry.
func Subscribe(topic string, queueID uint32) error { return Default().Subscribe(topic, queueID) }

// Unsubscribe removes a subscription from the default registry.
func Unsubscribe(topic string, queueID uint32) error { return Default().Unsubscribe(topic, queueID) }

// Publish publishes payload to topic on the default registry.
func Publish(topic string, payload any) (uint32, error) { return Default().Publish(topic, payload) }

// GetMessage looks up a stored message on the default registry.
func GetMessage(id uint32) (Message, error) { return Default().Message(id) }
