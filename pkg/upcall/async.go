package upcall

import (
	"github.com/google/uuid"
)

// AsyncInvalidate queues a cache invalidation upcall for the object
// identified by obj. The key bytes are copied; the caller may reuse its
// buffer as soon as the call returns. cb, if non-nil, later receives the
// operation's result on a worker goroutine.
//
// A nil error means the upcall is pending; a non-nil *Error means it was
// never queued and will never run.
func AsyncInvalidate(pool Pool, export *Export, obj Handle, flags InvalidateFlags,
	cb Callback, cbArg any) error {
	return submit(pool, export, &invalidateRequest{
		obj:   obj.Clone(),
		flags: flags,
	}, cb, cbArg)
}

// AsyncUpdate queues an attribute update upcall for the object identified
// by obj. attr is copied by value into the task.
func AsyncUpdate(pool Pool, export *Export, obj Handle, attr Attr, flags UpdateFlags,
	cb Callback, cbArg any) error {
	return submit(pool, export, &updateRequest{
		obj:   obj.Clone(),
		attr:  attr,
		flags: flags,
	}, cb, cbArg)
}

// AsyncLockGrant queues an upcall announcing that owner's blocked lock on
// file was granted.
func AsyncLockGrant(pool Pool, export *Export, file Handle, owner LockOwner,
	param LockParam, cb Callback, cbArg any) error {
	return submit(pool, export, &lockGrantRequest{
		file:  file.Clone(),
		owner: owner,
		param: param,
	}, cb, cbArg)
}

// AsyncLockAvail queues an upcall announcing that a contended lock on file
// became available to owner.
func AsyncLockAvail(pool Pool, export *Export, file Handle, owner LockOwner,
	param LockParam, cb Callback, cbArg any) error {
	return submit(pool, export, &lockAvailRequest{
		file:  file.Clone(),
		owner: owner,
		param: param,
	}, cb, cbArg)
}

// AsyncLayoutRecall queues a layout recall upcall for the object identified
// by handle. A nil spec means the recall is not narrowed to particular
// clients; the operation table sees nil again at dispatch.
func AsyncLayoutRecall(pool Pool, export *Export, handle Handle, layoutType LayoutType,
	changed bool, segment Segment, cookie any, spec *RecallSpec,
	cb Callback, cbArg any) error {
	r := &layoutRecallRequest{
		handle:     handle.Clone(),
		layoutType: layoutType,
		changed:    changed,
		segment:    segment,
		cookie:     cookie,
	}
	if spec != nil {
		r.spec = *spec
	} else {
		r.spec = RecallSpec{How: RecallSpecNone}
	}
	return submit(pool, export, r, cb, cbArg)
}

// AsyncNotifyDevice queues a device notification upcall. Devices are not
// scoped to a file, so there is no key; the export is still pinned for the
// task's lifetime.
func AsyncNotifyDevice(pool Pool, export *Export, notifyType DeviceNotifyType,
	layoutType LayoutType, device uuid.UUID, immediate bool,
	cb Callback, cbArg any) error {
	return submit(pool, export, &notifyDeviceRequest{
		notifyType: notifyType,
		layoutType: layoutType,
		device:     device,
		immediate:  immediate,
	}, cb, cbArg)
}

// AsyncDelegRecall queues a delegation recall upcall for the object
// identified by handle.
func AsyncDelegRecall(pool Pool, export *Export, handle Handle,
	cb Callback, cbArg any) error {
	return submit(pool, export, &delegRecallRequest{
		handle: handle.Clone(),
	}, cb, cbArg)
}
