package events_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/eventkit/pkg/config"
	"github.com/dmitrymomot/eventkit/pkg/events"
)

func TestDefaultConfig(t *testing.T) {
	cfg := events.DefaultConfig()
	assert.Equal(t, 25, cfg.MaxQueues)
	assert.Equal(t, 50, cfg.MaxTopics)
	assert.Equal(t, 25, cfg.MaxQueuesPerTopic)
	assert.Equal(t, 50, cfg.MaxEvents)
	assert.Equal(t, 10, cfg.QueueCapacity)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	cfg := events.DefaultConfig()
	cfg.MaxTopics = 0
	cfg.QueueCapacity = -1

	err := cfg.Validate()
	require.ErrorIs(t, err, events.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "max_topics")
	assert.Contains(t, err.Error(), "queue_capacity")
	assert.NotContains(t, err.Error(), "max_events")
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := events.LoadConfig(config.WithEnvironment(map[string]string{}))
		require.NoError(t, err)
		assert.Equal(t, events.DefaultConfig(), cfg)
	})

	t.Run("environment overrides", func(t *testing.T) {
		cfg, err := events.LoadConfig(config.WithEnvironment(map[string]string{
			"EVENTS_MAX_QUEUES":     "4",
			"EVENTS_QUEUE_CAPACITY": "64",
		}))
		require.NoError(t, err)
		assert.Equal(t, 4, cfg.MaxQueues)
		assert.Equal(t, 64, cfg.QueueCapacity)
		assert.Equal(t, 50, cfg.MaxTopics)
	})

	t.Run("yaml then environment", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "events.yaml")
		require.NoError(t, os.WriteFile(path, []byte("max_topics: 7\nmax_events: 9\n"), 0o600))

		cfg, err := events.LoadConfig(
			config.WithYAMLFile(path),
			config.WithEnvironment(map[string]string{"EVENTS_MAX_EVENTS": "11"}),
		)
		require.NoError(t, err)
		assert.Equal(t, 7, cfg.MaxTopics)
		assert.Equal(t, 11, cfg.MaxEvents)
		assert.Equal(t, 25, cfg.MaxQueues)
	})

	t.Run("invalid limit", func(t *testing.T) {
		_, err := events.LoadConfig(config.WithEnvironment(map[string]string{
			"EVENTS_MAX_QUEUES": "0",
		}))
		assert.ErrorIs(t, err, events.ErrInvalidConfig)
	})

	t.Run("unparsable value", func(t *testing.T) {
		_, err := events.LoadConfig(config.WithEnvironment(map[string]string{
			"EVENTS_MAX_QUEUES": "lots",
		}))
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})
}
