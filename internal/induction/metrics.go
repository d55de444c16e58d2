package induction

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	"github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

const (
	// MetricsSubsystem is a subsystem shared by all metrics exposed by this
	// package.
	MetricsSubsystem = "induction"
)

// Metrics contains metrics exposed by this package.
type Metrics struct {
	// Number of messages pushed into canister queues, by kind.
	InductedMessages metrics.Counter
	// Number of messages rejected before or while being pushed, by reason.
	RejectedMessages metrics.Counter
	// Number of input messages executed.
	ExecutedMessages metrics.Counter
	// Number of messages routed from output queues into streams.
	RoutedMessages metrics.Counter
	// Number of output queues excluded from routing because the stream to
	// their destination was full.
	ExcludedQueues metrics.Counter
	// Memory available to canister queues on the subnet, in bytes.
	AvailableMemory metrics.Gauge
	// Memory used by canister queues on the subnet, in bytes.
	MemoryUsage metrics.Gauge
	// Number of messages in outbound streams.
	StreamMessages metrics.Gauge
	// Histogram of inducted message sizes, in bytes.
	MessageSizeBytes metrics.Histogram
}

// PrometheusMetrics returns Metrics build using Prometheus client library.
// Optionally, labels can be provided along with their values ("foo",
// "fooValue").
func PrometheusMetrics(namespace string, labelsAndValues ...string) *Metrics {
	labels := []string{}
	for i := 0; i < len(labelsAndValues); i += 2 {
		labels = append(labels, labelsAndValues[i])
	}
	return &Metrics{
		InductedMessages: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "inducted_messages",
			Help:      "Number of messages pushed into canister queues.",
		}, withLabel(labels, "kind")).With(labelsAndValues...),
		RejectedMessages: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "rejected_messages",
			Help:      "Number of messages rejected before or while being pushed.",
		}, withLabel(labels, "reason")).With(labelsAndValues...),
		ExecutedMessages: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "executed_messages",
			Help:      "Number of input messages executed.",
		}, labels).With(labelsAndValues...),
		RoutedMessages: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "routed_messages",
			Help:      "Number of messages routed from output queues into streams.",
		}, labels).With(labelsAndValues...),
		ExcludedQueues: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "excluded_queues",
			Help:      "Number of output queues excluded from routing because their stream was full.",
		}, labels).With(labelsAndValues...),
		AvailableMemory: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "available_memory_bytes",
			Help:      "Memory available to canister queues on the subnet.",
		}, labels).With(labelsAndValues...),
		MemoryUsage: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "memory_usage_bytes",
			Help:      "Memory used by canister queues on the subnet.",
		}, labels).With(labelsAndValues...),
		StreamMessages: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "stream_messages",
			Help:      "Number of messages in outbound streams.",
		}, labels).With(labelsAndValues...),
		MessageSizeBytes: prometheus.NewHistogramFrom(stdprometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "message_size_bytes",
			Help:      "Inducted message sizes in bytes.",
			Buckets:   stdprometheus.ExponentialBuckets(64, 4, 11),
		}, labels).With(labelsAndValues...),
	}
}

// NopMetrics returns no-op Metrics.
func NopMetrics() *Metrics {
	return &Metrics{
		InductedMessages: discard.NewCounter(),
		RejectedMessages: discard.NewCounter(),
		ExecutedMessages: discard.NewCounter(),
		RoutedMessages:   discard.NewCounter(),
		ExcludedQueues:   discard.NewCounter(),
		AvailableMemory:  discard.NewGauge(),
		MemoryUsage:      discard.NewGauge(),
		StreamMessages:   discard.NewGauge(),
		MessageSizeBytes: discard.NewHistogram(),
	}
}

// With returns Metrics whose every metric carries the given label values in
// addition to those of m. Used to derive per subnet metrics from metrics
// registered once.
func (m *Metrics) With(labelsAndValues ...string) *Metrics {
	return &Metrics{
		InductedMessages: m.InductedMessages.With(labelsAndValues...),
		RejectedMessages: m.RejectedMessages.With(labelsAndValues...),
		ExecutedMessages: m.ExecutedMessages.With(labelsAndValues...),
		RoutedMessages:   m.RoutedMessages.With(labelsAndValues...),
		ExcludedQueues:   m.ExcludedQueues.With(labelsAndValues...),
		AvailableMemory:  m.AvailableMemory.With(labelsAndValues...),
		MemoryUsage:      m.MemoryUsage.With(labelsAndValues...),
		StreamMessages:   m.StreamMessages.With(labelsAndValues...),
		MessageSizeBytes: m.MessageSizeBytes.With(labelsAndValues...),
	}
}

func withLabel(labels []string, label string) []string {
	return append(append(make([]string, 0, len(labels)+1), labels...), label)
}
