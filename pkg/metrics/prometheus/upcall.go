// Package prometheus provides Prometheus-backed implementations of the
// metrics interfaces in pkg/metrics.
package prometheus

import (
	"time"

	"github.com/marmos91/upcall/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// upcallMetrics is the Prometheus implementation of metrics.UpcallMetrics.
type upcallMetrics struct {
	submitted *prometheus.CounterVec
	rejected  *prometheus.CounterVec
	executed  *prometheus.CounterVec
	duration  *prometheus.HistogramVec
}

// NewUpcallMetrics creates a new Prometheus-backed upcall metrics instance.
//
// Returns nil if metrics are not enabled (InitRegistry not called).
func NewUpcallMetrics() *upcallMetrics {
	if !metrics.IsEnabled() {
		return nil
	}

	reg := metrics.GetRegistry()

	return &upcallMetrics{
		submitted: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "upcall_submitted_total",
				Help: "Total number of upcalls accepted by the worker pool, by kind",
			},
			[]string{"kind"},
		),
		rejected: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "upcall_rejected_total",
				Help: "Total number of upcalls the worker pool refused, by kind and reason",
			},
			[]string{"kind", "reason"},
		),
		executed: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "upcall_executed_total",
				Help: "Total number of executed upcalls, by kind and error code (empty = success)",
			},
			[]string{"kind", "error_code"},
		),
		duration: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "upcall_execution_duration_seconds",
				Help:    "Duration of dispatched upcall operations",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"kind"},
		),
	}
}

// RecordSubmitted records an upcall accepted by the worker pool.
func (m *upcallMetrics) RecordSubmitted(kind string) {
	if m == nil {
		return
	}
	m.submitted.WithLabelValues(kind).Inc()
}

// RecordRejected records an upcall the worker pool refused.
func (m *upcallMetrics) RecordRejected(kind string, reason string) {
	if m == nil {
		return
	}
	m.rejected.WithLabelValues(kind, reason).Inc()
}

// RecordExecuted records a completed upcall execution.
func (m *upcallMetrics) RecordExecuted(kind string, duration time.Duration, errorCode string) {
	if m == nil {
		return
	}
	m.executed.WithLabelValues(kind, errorCode).Inc()
	m.duration.WithLabelValues(kind).Observe(duration.Seconds())
}
