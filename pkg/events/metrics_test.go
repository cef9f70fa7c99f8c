package events_test

import (
	"runtime"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/eventkit/pkg/events"
	"github.com/dmitrymomot/eventkit/pkg/logger"
)

// metricValue returns the value of the first sample of name whose labels
// include the given name/value pairs.
func metricValue(t *testing.T, g prometheus.Gatherer, name string, labels ...string) float64 {
	t.Helper()
	families, err := g.Gather()
	require.NoError(t, err)

	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
	samples:
		for _, m := range mf.GetMetric() {
			for i := 0; i+1 < len(labels); i += 2 {
				found := false
				for _, lp := range m.GetLabel() {
					if lp.GetName() == labels[i] && lp.GetValue() == labels[i+1] {
						found = true
						break
					}
				}
				if !found {
					continue samples
				}
			}
			if m.GetCounter() != nil {
				return m.GetCounter().GetValue()
			}
			return m.GetGauge().GetValue()
		}
	}
	t.Fatalf("metric %s %v not found", name, labels)
	return 0
}

func TestMetrics(t *testing.T) {
	promReg := prometheus.NewRegistry()
	m, err := events.NewMetrics(promReg)
	require.NoError(t, err)

	cfg := events.DefaultConfig()
	cfg.MaxQueues = 2
	cfg.MaxTopics = 1
	cfg.MaxEvents = 2
	cfg.QueueCapacity = 1

	reg, err := events.NewRegistry(cfg, events.WithLogger(logger.Discard()), events.WithMetrics(m))
	require.NoError(t, err)

	full := newQueue(t, reg, "full", "t")
	closed := newQueue(t, reg, "closed", "t")
	closed.Close()

	third, err := reg.CreateQueue("third")
	require.NoError(t, err, "closed queue is pruned to make room")
	_, err = reg.CreateQueue("fourth")
	require.ErrorIs(t, err, events.ErrRejected)

	require.ErrorIs(t, reg.Subscribe("other", full.ID()), events.ErrCapacityExceeded)

	for range 3 {
		_, err := reg.Publish("t", nil)
		require.NoError(t, err)
	}

	assert.Equal(t, 3.0, metricValue(t, promReg, "eventkit_events_published_total"))
	assert.Equal(t, 1.0, metricValue(t, promReg, "eventkit_events_delivered_total"))
	assert.NoError(t, testutil.GatherAndCompare(promReg, strings.NewReader(`
# HELP eventkit_events_dropped_total Deliveries skipped, by reason.
# TYPE eventkit_events_dropped_total counter
eventkit_events_dropped_total{reason="queue_full"} 2
`), "eventkit_events_dropped_total"))
	assert.Equal(t, 1.0, metricValue(t, promReg, "eventkit_events_evicted_total"))
	assert.Equal(t, 1.0, metricValue(t, promReg, "eventkit_queues_rejected_total"))
	assert.Equal(t, 1.0, metricValue(t, promReg, "eventkit_subscriptions_rejected_total"))
	assert.Equal(t, 2.0, metricValue(t, promReg, "eventkit_queues"))
	assert.Equal(t, 1.0, metricValue(t, promReg, "eventkit_topics"))
	runtime.KeepAlive([]*events.Queue{full, third})

	reg.Initialize()
	assert.Equal(t, 0.0, metricValue(t, promReg, "eventkit_queues"))
	assert.Equal(t, 0.0, metricValue(t, promReg, "eventkit_topics"))
}

func TestMetrics_ExpiredDrops(t *testing.T) {
	promReg := prometheus.NewRegistry()
	m, err := events.NewMetrics(promReg)
	require.NoError(t, err)

	reg, err := events.NewRegistry(events.DefaultConfig(), events.WithLogger(logger.Discard()), events.WithMetrics(m))
	require.NoError(t, err)

	q := newQueue(t, reg, "q", "t")
	q.Close()
	_, err = reg.Publish("t", nil)
	require.NoError(t, err)

	assert.Equal(t, 1.0, metricValue(t, promReg, "eventkit_events_dropped_total", "reason", events.DropExpired))
}

func TestNewMetrics(t *testing.T) {
	t.Run("nil registerer", func(t *testing.T) {
		m, err := events.NewMetrics(nil)
		require.NoError(t, err)
		assert.NotNil(t, m)
	})

	t.Run("duplicate registration", func(t *testing.T) {
		promReg := prometheus.NewRegistry()
		_, err := events.NewMetrics(promReg)
		require.NoError(t, err)

		count, err := testutil.GatherAndCount(promReg)
		require.NoError(t, err)

		_, err = events.NewMetrics(promReg)
		assert.Error(t, err)

		after, err := testutil.GatherAndCount(promReg)
		require.NoError(t, err)
		assert.Equal(t, count, after)
	})

	t.Run("nil metrics are a no-op", func(t *testing.T) {
		reg, err := events.NewRegistry(events.DefaultConfig(), events.WithLogger(logger.Discard()), events.WithMetrics(nil))
		require.NoError(t, err)
		assert.NotPanics(t, func() {
			q := newQueue(t, reg, "q", "t")
			_, _ = reg.Publish("t", nil)
			q.Close()
			reg.PruneExpired()
		})
	})
}
