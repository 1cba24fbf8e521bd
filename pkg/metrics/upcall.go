package metrics

import (
	"time"
)

// UpcallMetrics provides observability for asynchronous upcall dispatch.
//
// Implementations collect metrics about upcall submissions, executions, and
// outcomes. This interface is optional - pass nil to disable metrics
// collection with zero overhead.
//
// Example usage:
//
//	// With metrics enabled
//	metrics.InitRegistry()
//	upcall.SetMetrics(prometheus.NewUpcallMetrics())
//
//	// Without metrics (default)
//	// nothing to do; the dispatch path skips nil metrics
type UpcallMetrics interface {
	// RecordSubmitted records an upcall accepted by the worker pool.
	//
	// Parameters:
	//   - kind: Upcall kind name (e.g., "invalidate", "layoutrecall")
	RecordSubmitted(kind string)

	// RecordRejected records an upcall the worker pool refused.
	//
	// Parameters:
	//   - kind: Upcall kind name
	//   - reason: Rejection reason (e.g., "queue_full", "pool_stopped")
	RecordRejected(kind string, reason string)

	// RecordExecuted records a completed upcall execution with its duration
	// and outcome.
	//
	// Parameters:
	//   - kind: Upcall kind name
	//   - duration: Time the dispatched operation took
	//   - errorCode: Error code name if the operation failed, empty if successful
	RecordExecuted(kind string, duration time.Duration, errorCode string)
}

// FridgeMetrics provides observability for the upcall worker pool.
//
// Pass nil to disable metrics collection with zero overhead.
type FridgeMetrics interface {
	// RecordTaskQueued increments the accepted-task counter.
	RecordTaskQueued()

	// RecordTaskRejected increments the rejected-task counter.
	//
	// Parameters:
	//   - reason: Rejection reason ("queue_full" or "not_running")
	RecordTaskRejected(reason string)

	// RecordTaskDone records a task the pool finished running.
	RecordTaskDone()

	// SetQueueDepth updates the current queue depth gauge.
	SetQueueDepth(depth int)

	// SetWorkers updates the worker count gauge.
	SetWorkers(count int)
}
