package upcall

import (
	"errors"
	"fmt"
	"syscall"

	"github.com/marmos91/upcall/pkg/fridge"
)

// ErrorCode represents the type of upcall error that occurred.
type ErrorCode int

const (
	// ErrQueueFull indicates the worker pool queue was at capacity.
	ErrQueueFull ErrorCode = iota + 1

	// ErrPoolStopped indicates the worker pool is no longer accepting tasks.
	ErrPoolStopped

	// ErrNotSupported indicates the export's operation table does not
	// implement the requested upcall.
	ErrNotSupported

	// ErrInvalidArgument indicates an invalid argument was provided.
	ErrInvalidArgument

	// ErrIOError indicates an unclassified failure.
	ErrIOError
)

// String returns a human-readable name for the error code.
func (e ErrorCode) String() string {
	switch e {
	case ErrQueueFull:
		return "QueueFull"
	case ErrPoolStopped:
		return "PoolStopped"
	case ErrNotSupported:
		return "NotSupported"
	case ErrInvalidArgument:
		return "InvalidArgument"
	case ErrIOError:
		return "IOError"
	default:
		return fmt.Sprintf("Unknown(%d)", int(e))
	}
}

// Errno returns the closest POSIX errno for the code, for callers that
// surface upcall failures through filesystem status values.
func (e ErrorCode) Errno() syscall.Errno {
	switch e {
	case ErrQueueFull:
		return syscall.EAGAIN
	case ErrPoolStopped:
		return syscall.EPIPE
	case ErrNotSupported:
		return syscall.ENOTSUP
	case ErrInvalidArgument:
		return syscall.EINVAL
	default:
		return syscall.EIO
	}
}

// Error is the status type for upcall failures. The submission path returns
// it synchronously; stock operation tables return it through the completion
// callback.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error // underlying cause, may be nil
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("upcall: %s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("upcall: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates an Error with the given code and message.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// CodeOf extracts the ErrorCode from err. It returns 0 for nil and
// ErrIOError for errors that carry no code.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return 0
	}
	var ue *Error
	if errors.As(err, &ue) {
		return ue.Code
	}
	return ErrIOError
}

// translateSubmitError maps a worker pool rejection to a typed status.
func translateSubmitError(err error) *Error {
	switch {
	case errors.Is(err, fridge.ErrQueueFull):
		return &Error{Code: ErrQueueFull, Message: "worker pool queue full", Err: err}
	case errors.Is(err, fridge.ErrNotRunning):
		return &Error{Code: ErrPoolStopped, Message: "worker pool stopped", Err: err}
	default:
		return &Error{Code: ErrIOError, Message: "submission failed", Err: err}
	}
}

// errCodeLabel renders an execution result as a metrics label. Success is
// the empty string.
func errCodeLabel(err error) string {
	if err == nil {
		return ""
	}
	return CodeOf(err).String()
}

// rejectReason renders a submission error code as a metrics label.
func rejectReason(code ErrorCode) string {
	switch code {
	case ErrQueueFull:
		return "queue_full"
	case ErrPoolStopped:
		return "pool_stopped"
	default:
		return "error"
	}
}
