package events

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "eventkit"

// Drop reasons used as the "reason" label of the dropped counter.
const (
	DropQueueFull = "queue_full"
	DropExpired   = "expired"
)

// Metrics holds the registry's Prometheus collectors.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	published             prometheus.Counter
	delivered             prometheus.Counter
	dropped               *prometheus.CounterVec
	evicted               prometheus.Counter
	queuesRejected        prometheus.Counter
	subscriptionsRejected prometheus.Counter
	queues                prometheus.Gauge
	topics                prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		published: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "events_published_total",
			Help:      "Events published to the registry.",
		}),
		delivered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "events_delivered_total",
			Help:      "Event IDs pushed into subscriber queues.",
		}),
		dropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "events_dropped_total",
			Help:      "Deliveries skipped, by reason.",
		}, []string{"reason"}),
		evicted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "events_evicted_total",
			Help:      "Stored messages evicted to make room for newer ones.",
		}),
		queuesRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "queues_rejected_total",
			Help:      "Queue creations refused at the live-queue limit.",
		}),
		subscriptionsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "subscriptions_rejected_total",
			Help:      "Subscriptions refused at a topic or subscriber limit.",
		}),
		queues: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "queues",
			Help:      "Queue references tracked by the registry.",
		}),
		topics: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "topics",
			Help:      "Topics with at least one subscriber.",
		}),
	}

	if reg != nil {
		for _, c := range []prometheus.Collector{
			m.published, m.delivered, m.dropped, m.evicted,
			m.queuesRejected, m.subscriptionsRejected, m.queues, m.topics,
		} {
			if err := reg.Register(c); err != nil {
				return nil, fmt.Errorf("events: register metrics: %w", err)
			}
		}
	}

	return m, nil
}

func (m *Metrics) incPublished() {
	if m != nil {
		m.published.Inc()
	}
}

func (m *Metrics) incDelivered() {
	if m != nil {
		m.delivered.Inc()
	}
}

func (m *Metrics) incDropped(reason string) {
	if m != nil {
		m.dropped.WithLabelValues(reason).Inc()
	}
}

func (m *Metrics) incEvicted() {
	if m != nil {
		m.evicted.Inc()
	}
}

func (m *Metrics) incQueuesRejected() {
	if m != nil {
		m.queuesRejected.Inc()
	}
}

func (m *Metrics) incSubscriptionsRejected() {
	if m != nil {
		m.subscriptionsRejected.Inc()
	}
}

func (m *Metrics) setSizes(queues, topics int) {
	if m != nil {
		m.queues.Set(float64(queues))
		m.topics.Set(float64(topics))
	}
}
