package upcall

import (
	"time"
)

// Handle is an opaque, variable-length key identifying a file or object
// within an export. The submission path stores an independent copy, so a
// caller may free or reuse its buffer as soon as the call returns.
type Handle []byte

// Clone returns an independent copy of the handle bytes.
func (h Handle) Clone() Handle {
	if h == nil {
		return nil
	}
	return append(Handle(nil), h...)
}

// InvalidateFlags selects which cached state an invalidate upcall drops.
type InvalidateFlags uint32

const (
	// InvalidateAttrs drops cached attributes.
	InvalidateAttrs InvalidateFlags = 1 << iota

	// InvalidateContent drops cached file content.
	InvalidateContent

	// InvalidateACL drops cached access control state.
	InvalidateACL

	// InvalidateDirChunks drops cached directory listings.
	InvalidateDirChunks
)

// UpdateFlags qualifies how an attribute update is applied by the
// coordinator.
type UpdateFlags uint32

const (
	// UpdateAtimeIfLarger applies the access time only when it moves forward.
	UpdateAtimeIfLarger UpdateFlags = 1 << iota

	// UpdateMtimeIfLarger applies the modification time only when it moves
	// forward.
	UpdateMtimeIfLarger

	// UpdateCtimeIfLarger applies the change time only when it moves forward.
	UpdateCtimeIfLarger

	// UpdateSizeIfLarger applies the size only when it grows.
	UpdateSizeIfLarger

	// UpdateNlink signals a hard link count change.
	UpdateNlink
)

// AttrMask marks which Attr fields carry valid values.
type AttrMask uint32

const (
	AttrSize AttrMask = 1 << iota
	AttrMode
	AttrOwner
	AttrGroup
	AttrNumLinks
	AttrAtime
	AttrMtime
	AttrCtime
)

// Attr carries the attributes an update upcall pushes to the coordinator.
// Only fields whose bit is set in Valid are meaningful. Attr is copied by
// value into the queued task.
type Attr struct {
	Valid AttrMask
	Size  uint64
	Mode  uint32
	UID   uint32
	GID   uint32
	Nlink uint32
	Atime time.Time
	Mtime time.Time
	Ctime time.Time
}

// LockType represents the type of lock (shared or exclusive).
type LockType int

const (
	// LockTypeShared is a shared (read) lock.
	LockTypeShared LockType = iota

	// LockTypeExclusive is an exclusive (write) lock.
	LockTypeExclusive
)

// String returns a human-readable name for the lock type.
func (lt LockType) String() string {
	switch lt {
	case LockTypeShared:
		return "shared"
	case LockTypeExclusive:
		return "exclusive"
	default:
		return "unknown"
	}
}

// LockOwner identifies the owner of a lock in a protocol-agnostic way.
// The OwnerID is an opaque string the dispatch layer never parses.
type LockOwner struct {
	OwnerID  string
	ClientID string
}

// LockParam describes the lock a grant or availability upcall refers to.
// Copied by value into the queued task.
type LockParam struct {
	Type    LockType
	Offset  uint64
	Length  uint64
	Reclaim bool
}

// LengthWholeFile as a LockParam or Segment length covers everything from
// the offset to end of file.
const LengthWholeFile = ^uint64(0)

// LayoutType identifies a pNFS layout class.
type LayoutType uint32

const (
	LayoutFiles       LayoutType = 1
	LayoutOSD2Objects LayoutType = 2
	LayoutBlockVolume LayoutType = 3
)

// String returns a human-readable name for the layout type.
func (lt LayoutType) String() string {
	switch lt {
	case LayoutFiles:
		return "files"
	case LayoutOSD2Objects:
		return "osd2-objects"
	case LayoutBlockVolume:
		return "block-volume"
	default:
		return "unknown"
	}
}

// IOMode is the I/O mode a layout segment covers.
type IOMode uint32

const (
	IOModeRead      IOMode = 1
	IOModeReadWrite IOMode = 2
	IOModeAny       IOMode = 3
)

// String returns a human-readable name for the I/O mode.
func (m IOMode) String() string {
	switch m {
	case IOModeRead:
		return "read"
	case IOModeReadWrite:
		return "rw"
	case IOModeAny:
		return "any"
	default:
		return "unknown"
	}
}

// Segment is the byte range and I/O mode a layout recall covers. Copied by
// value into the queued task.
type Segment struct {
	IOMode IOMode
	Offset uint64
	Length uint64
}

// DeviceNotifyType is the kind of device notification.
type DeviceNotifyType uint32

const (
	// DeviceNotifyChange announces a changed device mapping.
	DeviceNotifyChange DeviceNotifyType = 1

	// DeviceNotifyDelete announces a deleted device.
	DeviceNotifyDelete DeviceNotifyType = 2
)

// String returns a human-readable name for the notify type.
func (nt DeviceNotifyType) String() string {
	switch nt {
	case DeviceNotifyChange:
		return "change"
	case DeviceNotifyDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// RecallSpecHow says how a RecallSpec narrows a layout recall.
type RecallSpecHow int

const (
	// RecallSpecNone means no recall specification was given. Stored inside
	// a queued task in place of a nil RecallSpec, and translated back to nil
	// before dispatch.
	RecallSpecNone RecallSpecHow = iota

	// RecallSpecExactly limits the recall to one client.
	RecallSpecExactly

	// RecallSpecComplement recalls from every client except one.
	RecallSpecComplement
)

// RecallSpec narrows which clients a layout recall applies to.
type RecallSpec struct {
	How      RecallSpecHow
	ClientID uint64
}
