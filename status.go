package accessor

import (
	"errors"
	"fmt"
)

// Status is the result of an accessor operation, mirroring the
// taxonomy a caller needs to distinguish "bad input" from "ran out of
// data" from "the host refused".
type Status int

const (
	// Ok indicates success.
	Ok Status = iota

	// InvalidParameter indicates a pre-condition violation caught by
	// this package: bad whence, width beyond the maximum, a sub-view
	// requested over a write-enabled accessor, popping an empty cursor
	// stack, a Pascal string payload over 255 bytes, a zero-length
	// delimiter.
	InvalidParameter

	// BeyondEnd indicates an attempted read or seek past the window
	// end, a delimiter that was never found, or a requested offset
	// beyond the end of a file.
	BeyondEnd

	// OutOfMemory indicates an allocation failure.
	OutOfMemory

	// HostError indicates an underlying OS call failed.
	HostError

	// OpenError indicates a file could not be opened.
	OpenError

	// InvalidReadData indicates malformed content, such as a varint
	// that never terminates within its maximum byte count.
	InvalidReadData

	// WriteError indicates a short write or a failure flushing a
	// write-accessor to its output file.
	WriteError

	// ReadOnlyError indicates a write was attempted on an accessor
	// whose base is not write-enabled, or on a sub-view (sub-views
	// are always read-only).
	ReadOnlyError
)

var statusText = map[Status]string{
	Ok:               "ok",
	InvalidParameter: "invalid parameter",
	BeyondEnd:        "beyond end",
	OutOfMemory:      "out of memory",
	HostError:        "host error",
	OpenError:        "open error",
	InvalidReadData:  "invalid read data",
	WriteError:       "write error",
	ReadOnlyError:    "read-only accessor",
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if text, ok := statusText[s]; ok {
		return text
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// Error is the concrete error type returned by this package. Every
// error it returns can be unwrapped to an *Error to recover the
// Status.
type Error struct {
	Status  Status
	Message string
	Err     error // wrapped cause, if any
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("accessor: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("accessor: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// newError creates an *Error with the status's default message.
func newError(status Status) *Error {
	return &Error{Status: status, Message: status.String()}
}

// newErrorf creates an *Error with a custom message.
func newErrorf(status Status, format string, args ...any) *Error {
	return &Error{Status: status, Message: fmt.Sprintf(format, args...)}
}

// wrapError creates an *Error wrapping another error.
func wrapError(status Status, err error) *Error {
	return &Error{Status: status, Message: status.String(), Err: err}
}

// StatusOf returns the Status carried by err, or Ok if err is nil, or
// HostError if err is a non-nil error this package did not produce.
func StatusOf(err error) Status {
	if err == nil {
		return Ok
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return HostError
}

// IsBeyondEnd reports whether err carries BeyondEnd.
func IsBeyondEnd(err error) bool { return StatusOf(err) == BeyondEnd }

// IsReadOnlyError reports whether err carries ReadOnlyError.
func IsReadOnlyError(err error) bool { return StatusOf(err) == ReadOnlyError }

// IsInvalidParameter reports whether err carries InvalidParameter.
func IsInvalidParameter(err error) bool { return StatusOf(err) == InvalidParameter }
