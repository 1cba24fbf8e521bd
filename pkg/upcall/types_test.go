package upcall

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandle_CloneIndependence(t *testing.T) {
	t.Parallel()

	original := Handle("obj-42")
	clone := original.Clone()

	assert.Equal(t, original, clone)

	original[0] = 'X'
	assert.Equal(t, Handle("obj-42"), clone)
}

func TestHandle_CloneNil(t *testing.T) {
	t.Parallel()

	var h Handle
	assert.Nil(t, h.Clone())
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "invalidate", KindInvalidate.String())
	assert.Equal(t, "update", KindUpdate.String())
	assert.Equal(t, "lock_grant", KindLockGrant.String())
	assert.Equal(t, "lock_avail", KindLockAvail.String())
	assert.Equal(t, "layoutrecall", KindLayoutRecall.String())
	assert.Equal(t, "notify_device", KindNotifyDevice.String())
	assert.Equal(t, "delegrecall", KindDelegRecall.String())
	assert.Equal(t, "unknown", Kind(42).String())
}

func TestEnumStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "shared", LockTypeShared.String())
	assert.Equal(t, "exclusive", LockTypeExclusive.String())
	assert.Equal(t, "unknown", LockType(9).String())

	assert.Equal(t, "files", LayoutFiles.String())
	assert.Equal(t, "osd2-objects", LayoutOSD2Objects.String())
	assert.Equal(t, "block-volume", LayoutBlockVolume.String())
	assert.Equal(t, "unknown", LayoutType(9).String())

	assert.Equal(t, "read", IOModeRead.String())
	assert.Equal(t, "rw", IOModeReadWrite.String())
	assert.Equal(t, "any", IOModeAny.String())

	assert.Equal(t, "change", DeviceNotifyChange.String())
	assert.Equal(t, "delete", DeviceNotifyDelete.String())
}

func TestRecallSpec_SentinelIsZeroValue(t *testing.T) {
	t.Parallel()

	// The zero value must read as "no specification" so a forgotten spec
	// never looks like a real one.
	var spec RecallSpec
	assert.Equal(t, RecallSpecNone, spec.How)
}
