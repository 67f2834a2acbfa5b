package vfx

import (
	"errors"
	"fmt"
)

// Package errors for vfx.
var (
	// ErrStopped is returned when operating on a stopped pipeline.
	ErrStopped = errors.New("vfx: pipeline stopped")

	// ErrClosed is returned when operating on a closed pipeline.
	ErrClosed = errors.New("vfx: pipeline closed")

	// ErrNilSource is returned when a pipeline is created without a source.
	ErrNilSource = errors.New("vfx: source is nil")

	// ErrNilRuntime is returned when a pipeline is created without a runtime.
	ErrNilRuntime = errors.New("vfx: runtime is nil")

	// ErrRuntimeUnavailable is returned when the video-effects runtime
	// cannot be loaded on this system.
	ErrRuntimeUnavailable = errors.New("vfx: video effects runtime unavailable")
)

// ErrorClass classifies a pipeline failure and determines the recovery
// action the pipeline takes.
type ErrorClass int

const (
	// ClassFatal destroys the entire pipeline instance. The host sees a
	// disabled source; no recovery is attempted.
	ClassFatal ErrorClass = iota

	// ClassStageInvalid disables a single stage and raises its warning;
	// the pipeline continues without that stage.
	ClassStageInvalid

	// ClassTransient triggers a soft reset: the compute stream and stage
	// handles are recreated, buffer shapes are preserved, and the
	// current frame is dropped.
	ClassTransient

	// ClassValidation marks a resolution/aspect validation failure. Not
	// an SDK error: output size freezes and the tick handler keeps
	// polling for recovery.
	ClassValidation
)

// String returns a human-readable name for the error class.
func (c ErrorClass) String() string {
	switch c {
	case ClassFatal:
		return "Fatal"
	case ClassStageInvalid:
		return "StageInvalid"
	case ClassTransient:
		return "Transient"
	case ClassValidation:
		return "Validation"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// PipelineError is a classified pipeline failure. The orchestrator is
// the single interpreter of the Class field; lower layers only attach
// classification and context, never act on it.
type PipelineError struct {
	// Class determines the recovery action.
	Class ErrorClass

	// Op names the operation that failed, e.g. "stage/load" or
	// "buffer/ensure".
	Op string

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *PipelineError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("vfx: %s: %s", e.Op, e.Class)
	}
	return fmt.Sprintf("vfx: %s: %s: %v", e.Op, e.Class, e.Err)
}

// Unwrap returns the underlying cause.
func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Fatal reports whether err is a PipelineError with ClassFatal.
func Fatal(err error) bool {
	var pe *PipelineError
	return errors.As(err, &pe) && pe.Class == ClassFatal
}

// ClassOf returns the class of err, or ClassFatal when err carries no
// classification: an unclassified failure must never be retried against
// live GPU state.
func ClassOf(err error) ErrorClass {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Class
	}
	return ClassFatal
}
