// Package fridge implements the bounded worker pool that runs queued upcall
// tasks. A backend expecting to raise lots of upcalls can build one holding
// several workers wide.
package fridge

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/marmos91/upcall/internal/logger"
	"github.com/marmos91/upcall/pkg/metrics"
)

// Task is one unit of queued work. Every task accepted by Submit is executed
// exactly once on a worker goroutine; rejected tasks are never executed.
type Task interface {
	Execute()
}

var (
	// ErrQueueFull is returned by Submit when the queue is at capacity.
	ErrQueueFull = errors.New("fridge: task queue full")

	// ErrNotRunning is returned by Submit after Stop has been called.
	ErrNotRunning = errors.New("fridge: not running")
)

// Config holds configuration for the worker pool.
type Config struct {
	// Workers is the number of concurrent worker goroutines.
	// Default: 4
	Workers int

	// QueueSize is the maximum number of pending tasks.
	// Default: 1000
	QueueSize int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Workers:   4,
		QueueSize: 1000,
	}
}

// Fridge is a fixed-size worker pool with a bounded task queue.
//
// Tasks may be submitted as soon as the Fridge is constructed; they start
// running once Start is called. Submission is non-blocking: a full queue
// rejects the task instead of blocking the caller.
type Fridge struct {
	queue chan Task

	workers   int
	wg        sync.WaitGroup
	stopCh    chan struct{}
	stoppedCh chan struct{}

	mu      sync.Mutex
	started bool
	stopped bool
	queued  int
	done    int

	metrics metrics.FridgeMetrics
}

// New creates a new worker pool. Pass nil metrics to disable metrics
// collection.
func New(cfg Config, m metrics.FridgeMetrics) *Fridge {
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 1000
	}

	return &Fridge{
		queue:     make(chan Task, cfg.QueueSize),
		workers:   cfg.Workers,
		stopCh:    make(chan struct{}),
		stoppedCh: make(chan struct{}),
		metrics:   m,
	}
}

// Start begins running queued tasks.
func (f *Fridge) Start(ctx context.Context) {
	f.mu.Lock()
	if f.started {
		f.mu.Unlock()
		return
	}
	f.started = true
	f.mu.Unlock()

	logger.Info("Starting upcall fridge", "workers", f.workers)
	if f.metrics != nil {
		f.metrics.SetWorkers(f.workers)
	}

	for i := 0; i < f.workers; i++ {
		f.wg.Add(1)
		go f.worker(ctx, i)
	}

	// Monitor goroutine to close stoppedCh when all workers exit
	go func() {
		f.wg.Wait()
		close(f.stoppedCh)
	}()
}

// Stop gracefully shuts down the pool. Workers drain the queue before
// exiting; Stop waits up to timeout for that to finish. Submissions after
// Stop fail with ErrNotRunning.
func (f *Fridge) Stop(timeout time.Duration) {
	f.mu.Lock()
	if f.stopped {
		f.mu.Unlock()
		return
	}
	f.stopped = true
	started := f.started
	f.mu.Unlock()

	logger.Info("Stopping upcall fridge", "pending", f.Pending())

	close(f.stopCh)

	if !started {
		// No workers were ever launched; run anything already accepted
		// on this goroutine so accepted tasks still execute.
		f.drainQueue()
		return
	}

	select {
	case <-f.stoppedCh:
		logger.Info("Upcall fridge stopped gracefully")
	case <-time.After(timeout):
		logger.Warn("Upcall fridge stop timed out", "pending", f.Pending())
	}

	if f.metrics != nil {
		f.metrics.SetWorkers(0)
	}
}

// Submit queues a task for execution. It never blocks: a full queue returns
// ErrQueueFull and a stopped pool returns ErrNotRunning, and in both cases
// the task will never run.
//
// The stopped check and the enqueue happen under one lock acquisition.
// Stopping the pool takes the same lock before it refuses new tasks, so a
// task accepted here is always in the queue before workers begin their
// final drain: accepted means it runs.
func (f *Fridge) Submit(t Task) error {
	f.mu.Lock()
	if f.stopped {
		f.mu.Unlock()
		if f.metrics != nil {
			f.metrics.RecordTaskRejected("not_running")
		}
		return ErrNotRunning
	}

	select {
	case f.queue <- t:
		f.queued++
		f.mu.Unlock()
		if f.metrics != nil {
			f.metrics.RecordTaskQueued()
			f.metrics.SetQueueDepth(len(f.queue))
		}
		return nil
	default:
		f.mu.Unlock()
		logger.Warn("Upcall fridge queue full, rejecting task")
		if f.metrics != nil {
			f.metrics.RecordTaskRejected("queue_full")
		}
		return ErrQueueFull
	}
}

// Pending returns the number of tasks waiting in the queue.
func (f *Fridge) Pending() int {
	return len(f.queue)
}

// Stats returns the number of tasks accepted and finished so far.
func (f *Fridge) Stats() (queued, done int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queued, f.done
}

// worker runs tasks from the queue.
func (f *Fridge) worker(ctx context.Context, id int) {
	defer f.wg.Done()

	for {
		select {
		case <-f.stopCh:
			// Drain remaining tasks before exiting
			f.drainQueue()
			return

		case <-ctx.Done():
			// Context cancellation shuts the pool down the same way
			// Stop does: refuse new tasks first, then run everything
			// already accepted.
			f.markStopped()
			f.drainQueue()
			return

		case t, ok := <-f.queue:
			if !ok {
				return
			}
			f.runTask(t)
		}
	}
}

// markStopped flips the pool to stopped so Submit refuses further tasks.
func (f *Fridge) markStopped() {
	f.mu.Lock()
	f.stopped = true
	f.mu.Unlock()
}

// drainQueue runs remaining tasks during shutdown.
func (f *Fridge) drainQueue() {
	for {
		select {
		case t, ok := <-f.queue:
			if !ok {
				return
			}
			f.runTask(t)
		default:
			return
		}
	}
}

// runTask executes a single task and updates counters.
func (f *Fridge) runTask(t Task) {
	t.Execute()

	f.mu.Lock()
	f.done++
	f.mu.Unlock()

	if f.metrics != nil {
		f.metrics.RecordTaskDone()
		f.metrics.SetQueueDepth(len(f.queue))
	}
}
