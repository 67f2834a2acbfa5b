package sdk

import (
	"errors"
	"fmt"
)

// Status is a video-effects runtime status code.
type Status int

const (
	// StatusSuccess indicates the operation completed.
	StatusSuccess Status = iota

	// StatusErrGeneral is an unspecified runtime failure.
	StatusErrGeneral

	// StatusErrResolution means the current resolution and settings
	// combination is unsupported by the effect being loaded.
	StatusErrResolution

	// StatusErrGPU means a GPU execution failure occurred while running
	// an effect. Transient: a soft reset usually recovers.
	StatusErrGPU

	// StatusErrLibrary means the runtime's libraries could not be loaded.
	StatusErrLibrary

	// StatusErrUnsupportedGPU means the GPU or driver cannot run the
	// runtime at all.
	StatusErrUnsupportedGPU

	// StatusErrParameter means an effect parameter was rejected.
	StatusErrParameter

	// StatusErrMemory means GPU memory allocation failed.
	StatusErrMemory

	// StatusErrPixelFormat means a transfer was requested between
	// incompatible image formats.
	StatusErrPixelFormat
)

// String returns the string representation of the status code.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "Success"
	case StatusErrGeneral:
		return "General"
	case StatusErrResolution:
		return "Resolution"
	case StatusErrGPU:
		return "GPU"
	case StatusErrLibrary:
		return "Library"
	case StatusErrUnsupportedGPU:
		return "UnsupportedGPU"
	case StatusErrParameter:
		return "Parameter"
	case StatusErrMemory:
		return "Memory"
	case StatusErrPixelFormat:
		return "PixelFormat"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// Ok reports whether the status indicates success.
func (s Status) Ok() bool {
	return s == StatusSuccess
}

// ErrStatus is the sentinel wrapped by every non-success Status error.
var ErrStatus = errors.New("sdk: runtime status")

// statusError attaches a Status to the ErrStatus sentinel.
type statusError struct {
	status Status
}

func (e *statusError) Error() string {
	return fmt.Sprintf("sdk: runtime status %d (%s)", int(e.status), e.status)
}

func (e *statusError) Unwrap() error {
	return ErrStatus
}

// Err returns nil for StatusSuccess and an error wrapping ErrStatus
// otherwise. The returned error formats the numeric code and its name.
func (s Status) Err() error {
	if s.Ok() {
		return nil
	}
	return &statusError{status: s}
}
