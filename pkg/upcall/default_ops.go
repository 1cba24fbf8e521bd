package upcall

import (
	"github.com/google/uuid"
)

// NotSupportedOps is a stock Ops implementation failing every upcall with
// ErrNotSupported. Coordinators embed it to opt into upcalls incrementally,
// overriding only the operations they handle.
type NotSupportedOps struct{}

var _ Ops = NotSupportedOps{}

func (NotSupportedOps) Invalidate(*Export, Handle, InvalidateFlags) error {
	return NewError(ErrNotSupported, "invalidate upcall not supported")
}

func (NotSupportedOps) Update(*Export, Handle, Attr, UpdateFlags) error {
	return NewError(ErrNotSupported, "update upcall not supported")
}

func (NotSupportedOps) LockGrant(*Export, Handle, LockOwner, LockParam) error {
	return NewError(ErrNotSupported, "lock grant upcall not supported")
}

func (NotSupportedOps) LockAvail(*Export, Handle, LockOwner, LockParam) error {
	return NewError(ErrNotSupported, "lock avail upcall not supported")
}

func (NotSupportedOps) LayoutRecall(*Export, Handle, LayoutType, bool, Segment, any, *RecallSpec) error {
	return NewError(ErrNotSupported, "layout recall upcall not supported")
}

func (NotSupportedOps) NotifyDevice(DeviceNotifyType, LayoutType, uuid.UUID, bool) error {
	return NewError(ErrNotSupported, "device notify upcall not supported")
}

func (NotSupportedOps) DelegRecall(*Export, Handle) error {
	return NewError(ErrNotSupported, "delegation recall upcall not supported")
}
