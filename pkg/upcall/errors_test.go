package upcall

import (
	"errors"
	"syscall"
	"testing"

	"github.com/marmos91/upcall/pkg/fridge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCode_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "QueueFull", ErrQueueFull.String())
	assert.Equal(t, "PoolStopped", ErrPoolStopped.String())
	assert.Equal(t, "NotSupported", ErrNotSupported.String())
	assert.Equal(t, "InvalidArgument", ErrInvalidArgument.String())
	assert.Equal(t, "IOError", ErrIOError.String())
	assert.Equal(t, "Unknown(99)", ErrorCode(99).String())
}

func TestErrorCode_Errno(t *testing.T) {
	t.Parallel()

	assert.Equal(t, syscall.EAGAIN, ErrQueueFull.Errno())
	assert.Equal(t, syscall.EPIPE, ErrPoolStopped.Errno())
	assert.Equal(t, syscall.ENOTSUP, ErrNotSupported.Errno())
	assert.Equal(t, syscall.EINVAL, ErrInvalidArgument.Errno())
	assert.Equal(t, syscall.EIO, ErrIOError.Errno())
	assert.Equal(t, syscall.EIO, ErrorCode(99).Errno())
}

func TestError_FormatAndUnwrap(t *testing.T) {
	t.Parallel()

	plain := NewError(ErrNotSupported, "no handler")
	assert.Equal(t, "upcall: NotSupported: no handler", plain.Error())
	assert.Nil(t, plain.Unwrap())

	wrapped := &Error{Code: ErrQueueFull, Message: "worker pool queue full", Err: fridge.ErrQueueFull}
	assert.Contains(t, wrapped.Error(), "QueueFull")
	assert.ErrorIs(t, wrapped, fridge.ErrQueueFull)
}

func TestCodeOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ErrorCode(0), CodeOf(nil))
	assert.Equal(t, ErrNotSupported, CodeOf(NewError(ErrNotSupported, "x")))
	assert.Equal(t, ErrIOError, CodeOf(errors.New("foreign error")))
}

func TestTranslateSubmitError(t *testing.T) {
	t.Parallel()

	full := translateSubmitError(fridge.ErrQueueFull)
	require.NotNil(t, full)
	assert.Equal(t, ErrQueueFull, full.Code)
	assert.ErrorIs(t, full, fridge.ErrQueueFull)

	stopped := translateSubmitError(fridge.ErrNotRunning)
	assert.Equal(t, ErrPoolStopped, stopped.Code)

	other := translateSubmitError(errors.New("boom"))
	assert.Equal(t, ErrIOError, other.Code)
}

func TestRejectReason(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "queue_full", rejectReason(ErrQueueFull))
	assert.Equal(t, "pool_stopped", rejectReason(ErrPoolStopped))
	assert.Equal(t, "error", rejectReason(ErrIOError))
}

func TestErrCodeLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", errCodeLabel(nil))
	assert.Equal(t, "NotSupported", errCodeLabel(NewError(ErrNotSupported, "x")))
}
