package prometheus

import (
	"github.com/marmos91/upcall/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// fridgeMetrics is the Prometheus implementation of metrics.FridgeMetrics.
type fridgeMetrics struct {
	queued     prometheus.Counter
	rejected   *prometheus.CounterVec
	done       prometheus.Counter
	queueDepth prometheus.Gauge
	workers    prometheus.Gauge
}

// NewFridgeMetrics creates a new Prometheus-backed worker pool metrics
// instance.
//
// Returns nil if metrics are not enabled (InitRegistry not called).
func NewFridgeMetrics() *fridgeMetrics {
	if !metrics.IsEnabled() {
		return nil
	}

	reg := metrics.GetRegistry()

	return &fridgeMetrics{
		queued: promauto.With(reg).NewCounter(
			prometheus.CounterOpts{
				Name: "upcall_fridge_tasks_queued_total",
				Help: "Total number of tasks accepted into the worker pool queue",
			},
		),
		rejected: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "upcall_fridge_tasks_rejected_total",
				Help: "Total number of tasks the worker pool refused, by reason",
			},
			[]string{"reason"}, // "queue_full", "not_running"
		),
		done: promauto.With(reg).NewCounter(
			prometheus.CounterOpts{
				Name: "upcall_fridge_tasks_done_total",
				Help: "Total number of tasks the worker pool finished running",
			},
		),
		queueDepth: promauto.With(reg).NewGauge(
			prometheus.GaugeOpts{
				Name: "upcall_fridge_queue_depth",
				Help: "Current number of tasks waiting in the worker pool queue",
			},
		),
		workers: promauto.With(reg).NewGauge(
			prometheus.GaugeOpts{
				Name: "upcall_fridge_workers",
				Help: "Current number of worker goroutines",
			},
		),
	}
}

// RecordTaskQueued increments the accepted-task counter.
func (m *fridgeMetrics) RecordTaskQueued() {
	if m == nil {
		return
	}
	m.queued.Inc()
}

// RecordTaskRejected increments the rejected-task counter for a reason.
func (m *fridgeMetrics) RecordTaskRejected(reason string) {
	if m == nil {
		return
	}
	m.rejected.WithLabelValues(reason).Inc()
}

// RecordTaskDone records a task the pool finished running.
func (m *fridgeMetrics) RecordTaskDone() {
	if m == nil {
		return
	}
	m.done.Inc()
}

// SetQueueDepth updates the current queue depth gauge.
func (m *fridgeMetrics) SetQueueDepth(depth int) {
	if m == nil {
		return
	}
	m.queueDepth.Set(float64(depth))
}

// SetWorkers updates the worker count gauge.
func (m *fridgeMetrics) SetWorkers(count int) {
	if m == nil {
		return
	}
	m.workers.Set(float64(count))
}
