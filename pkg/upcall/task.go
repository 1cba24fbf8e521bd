package upcall

import (
	"time"

	"github.com/google/uuid"
)

// Kind identifies an upcall variant.
type Kind int

const (
	KindInvalidate Kind = iota
	KindUpdate
	KindLockGrant
	KindLockAvail
	KindLayoutRecall
	KindNotifyDevice
	KindDelegRecall
)

// String returns the variant name used in logs and metric labels.
func (k Kind) String() string {
	switch k {
	case KindInvalidate:
		return "invalidate"
	case KindUpdate:
		return "update"
	case KindLockGrant:
		return "lock_grant"
	case KindLockAvail:
		return "lock_avail"
	case KindLayoutRecall:
		return "layoutrecall"
	case KindNotifyDevice:
		return "notify_device"
	case KindDelegRecall:
		return "delegrecall"
	default:
		return "unknown"
	}
}

// request is one upcall variant's payload. Each variant knows how to
// dispatch itself through the export's operation table.
type request interface {
	kind() Kind
	dispatch(ops Ops, export *Export) error
}

type invalidateRequest struct {
	obj   Handle
	flags InvalidateFlags
}

func (r *invalidateRequest) kind() Kind { return KindInvalidate }

func (r *invalidateRequest) dispatch(ops Ops, export *Export) error {
	return ops.Invalidate(export, r.obj, r.flags)
}

type updateRequest struct {
	obj   Handle
	attr  Attr
	flags UpdateFlags
}

func (r *updateRequest) kind() Kind { return KindUpdate }

func (r *updateRequest) dispatch(ops Ops, export *Export) error {
	return ops.Update(export, r.obj, r.attr, r.flags)
}

type lockGrantRequest struct {
	file  Handle
	owner LockOwner
	param LockParam
}

func (r *lockGrantRequest) kind() Kind { return KindLockGrant }

func (r *lockGrantRequest) dispatch(ops Ops, export *Export) error {
	return ops.LockGrant(export, r.file, r.owner, r.param)
}

type lockAvailRequest struct {
	file  Handle
	owner LockOwner
	param LockParam
}

func (r *lockAvailRequest) kind() Kind { return KindLockAvail }

func (r *lockAvailRequest) dispatch(ops Ops, export *Export) error {
	return ops.LockAvail(export, r.file, r.owner, r.param)
}

type layoutRecallRequest struct {
	handle     Handle
	layoutType LayoutType
	changed    bool
	segment    Segment
	cookie     any

	// spec is stored by value; How == RecallSpecNone is the sentinel for
	// "no specification" and is handed to the operation table as nil.
	spec RecallSpec
}

func (r *layoutRecallRequest) kind() Kind { return KindLayoutRecall }

func (r *layoutRecallRequest) dispatch(ops Ops, export *Export) error {
	var spec *RecallSpec
	if r.spec.How != RecallSpecNone {
		s := r.spec
		spec = &s
	}
	return ops.LayoutRecall(export, r.handle, r.layoutType, r.changed,
		r.segment, r.cookie, spec)
}

type notifyDeviceRequest struct {
	notifyType DeviceNotifyType
	layoutType LayoutType
	device     uuid.UUID
	immediate  bool
}

func (r *notifyDeviceRequest) kind() Kind { return KindNotifyDevice }

func (r *notifyDeviceRequest) dispatch(ops Ops, _ *Export) error {
	return ops.NotifyDevice(r.notifyType, r.layoutType, r.device, r.immediate)
}

type delegRecallRequest struct {
	handle Handle
}

func (r *delegRecallRequest) kind() Kind { return KindDelegRecall }

func (r *delegRecallRequest) dispatch(ops Ops, export *Export) error {
	return ops.DelegRecall(export, r.handle)
}

// task is the unit queued on the worker pool: one request, the export it
// acts on, and the optional completion callback. A task is owned by exactly
// one goroutine at a time, so it needs no locking of its own.
type task struct {
	export *Export
	req    request
	cb     Callback
	cbArg  any
}

// Execute runs once per successfully submitted task, on a worker
// goroutine: dispatch the request through the export's operation table,
// hand the result to the callback, then return the export reference.
func (t *task) Execute() {
	start := time.Now()
	result := t.req.dispatch(t.export.Ops(), t.export)

	if t.cb != nil {
		t.cb(t.cbArg, result)
	}

	t.export.Unref()

	if mtr != nil {
		mtr.RecordExecuted(t.req.kind().String(), time.Since(start), errCodeLabel(result))
	}
}

// submit packages req into a task holding an export reference and queues
// it. On rejection the task is discarded without side effects: the
// reference is returned, no operation runs, and no callback fires.
func submit(pool Pool, export *Export, req request, cb Callback, cbArg any) error {
	export.Ref()

	t := &task{
		export: export,
		req:    req,
		cb:     cb,
		cbArg:  cbArg,
	}

	if err := pool.Submit(t); err != nil {
		export.Unref()
		uerr := translateSubmitError(err)
		if mtr != nil {
			mtr.RecordRejected(req.kind().String(), rejectReason(uerr.Code))
		}
		return uerr
	}

	if mtr != nil {
		mtr.RecordSubmitted(req.kind().String())
	}
	return nil
}
