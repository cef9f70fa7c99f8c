package events

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/eventkit/pkg/config"
)

// EnvPrefix namespaces the environment variables read by LoadConfig.
const EnvPrefix = "EVENTS_"

// Config holds the fixed limits of a Registry.
type Config struct {
	// MaxQueues is the number of queue references the registry tracks.
	MaxQueues int `env:"MAX_QUEUES" yaml:"max_queues"`
	// MaxTopics is the number of distinct topics with at least one subscriber.
	MaxTopics int `env:"MAX_TOPICS" yaml:"max_topics"`
	// MaxQueuesPerTopic bounds each topic's subscriber set.
	MaxQueuesPerTopic int `env:"MAX_QUEUES_PER_TOPIC" yaml:"max_queues_per_topic"`
	// MaxEvents is the number of published messages retained for lookup.
	MaxEvents int `env:"MAX_EVENTS" yaml:"max_events"`
	// QueueCapacity is the number of pending event IDs each queue buffers.
	QueueCapacity int `env:"QUEUE_CAPACITY" yaml:"queue_capacity"`
}

// DefaultConfig returns the stock limits.
func DefaultConfig() Config {
	return Config{
		MaxQueues:         25,
		MaxTopics:         50,
		MaxQueuesPerTopic: 25,
		MaxEvents:         50,
		QueueCapacity:     10,
	}
}

// Validate reports every non-positive limit.
func (c Config) Validate() error {
	var errs []error
	check := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, v))
		}
	}
	check("max_queues", c.MaxQueues)
	check("max_topics", c.MaxTopics)
	check("max_queues_per_topic", c.MaxQueuesPerTopic)
	check("max_events", c.MaxEvents)
	check("queue_capacity", c.QueueCapacity)

	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidConfig}, errs...)...)
	}
	return nil
}

// LoadConfig starts from DefaultConfig and applies the sources given by opts,
// reading environment variables prefixed with EnvPrefix.
func LoadConfig(opts ...config.Option) (Config, error) {
	cfg := DefaultConfig()
	opts = append([]config.Option{config.WithPrefix(EnvPrefix)}, opts...)
	if err := config.Load(&cfg, opts...); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
