// Package upcall implements asynchronous upcall dispatch from storage
// backends to the coordinating layer.
//
// A backend that discovers an event (stale cached attributes, a lock that
// became grantable, a layout that must be recalled) packages it into a
// self-contained task and queues it on a worker pool instead of acting on
// its own thread. The pool is a parameter, so a backend expecting to raise
// lots of upcalls can build one holding several workers wide.
//
// Every async call copies the object key it is given, takes a reference on
// the export for the task's lifetime, and accepts an optional completion
// callback for the operation's result. The callback may be nil if the
// caller doesn't care. Submission returns a typed error only for failures
// on the submission path itself; execution results flow solely through the
// callback.
package upcall

import (
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/marmos91/upcall/internal/logger"
	"github.com/marmos91/upcall/pkg/fridge"
	"github.com/marmos91/upcall/pkg/metrics"
)

// Pool is the worker pool upcall tasks are queued on. It must run every
// accepted task exactly once and never run a rejected one. *fridge.Fridge
// satisfies it.
type Pool interface {
	Submit(t fridge.Task) error
}

// Callback receives the result of an executed upcall on a worker goroutine.
// It is invoked exactly once per successfully submitted task, after the
// dispatched operation has returned; a nil result means success.
type Callback func(arg any, result error)

// Ops is the upcall capability interface the coordinator implements. One
// implementation serves a backend class; the instance is selected per
// export. Each operation returns nil on success.
//
// Implementations run on worker goroutines and may be called concurrently.
type Ops interface {
	// Invalidate drops cached state for the object identified by obj.
	Invalidate(export *Export, obj Handle, flags InvalidateFlags) error

	// Update pushes fresh attributes for the object identified by obj.
	Update(export *Export, obj Handle, attr Attr, flags UpdateFlags) error

	// LockGrant announces that a blocked lock was granted to owner.
	LockGrant(export *Export, file Handle, owner LockOwner, param LockParam) error

	// LockAvail announces that a contended lock became available.
	LockAvail(export *Export, file Handle, owner LockOwner, param LockParam) error

	// LayoutRecall recalls a pNFS layout segment. spec is nil when the
	// recall is not narrowed to particular clients.
	LayoutRecall(export *Export, handle Handle, layoutType LayoutType,
		changed bool, segment Segment, cookie any, spec *RecallSpec) error

	// NotifyDevice announces a device mapping change or deletion. Devices
	// are not scoped to a single file, so no key accompanies this upcall.
	NotifyDevice(notifyType DeviceNotifyType, layoutType LayoutType,
		device uuid.UUID, immediate bool) error

	// DelegRecall recalls a delegation on the object identified by handle.
	DelegRecall(export *Export, handle Handle) error
}

// Export is the originating context an upcall acts on behalf of. It binds
// a name to the Ops instance that handles its upcalls and carries a
// reference count pinning it across the asynchronous boundary: every queued
// task holds a reference until its callback has run, so tearing down an
// export cannot race a task that still names it.
type Export struct {
	// ID uniquely identifies this export.
	ID uuid.UUID

	// Name is the export path (e.g. "/export").
	Name string

	// OnRelease, if set before the export is shared, runs when the
	// reference count drops to zero.
	OnRelease func()

	ops  Ops
	refs atomic.Int64
}

// NewExport creates an export dispatching its upcalls through ops. The
// creator holds the initial reference.
func NewExport(name string, ops Ops) *Export {
	e := &Export{
		ID:   uuid.New(),
		Name: name,
		ops:  ops,
	}
	e.refs.Store(1)
	return e
}

// Ops returns the operation table bound to this export.
func (e *Export) Ops() Ops {
	return e.ops
}

// Ref takes a reference on the export.
func (e *Export) Ref() {
	e.refs.Add(1)
}

// Unref returns a reference taken with Ref or held since NewExport. When
// the count reaches zero, OnRelease runs.
func (e *Export) Unref() {
	n := e.refs.Add(-1)
	if n < 0 {
		logger.Error("Export reference count underflow", "export", e.Name)
		return
	}
	if n == 0 && e.OnRelease != nil {
		e.OnRelease()
	}
}

// Refs returns the current reference count.
func (e *Export) Refs() int64 {
	return e.refs.Load()
}

// mtr collects dispatch metrics for the whole package; nil disables them.
var mtr metrics.UpcallMetrics

// SetMetrics installs the metrics sink for upcall dispatch. Call once
// during startup, before any submissions; pass nil to disable.
func SetMetrics(m metrics.UpcallMetrics) {
	mtr = m
}
