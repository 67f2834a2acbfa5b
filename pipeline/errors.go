package pipeline

import (
	"errors"

	"github.com/gogpu/vfx"
	"github.com/gogpu/vfx/sdk"
)

// errNoModelDir is returned when a neural stage is requested without a
// model directory to load from.
var errNoModelDir = errors.New("pipeline: model directory not set")

// errNoTextureFactory is returned when the pipeline needs an output
// texture but the host did not provide a factory.
var errNoTextureFactory = errors.New("pipeline: no texture factory")

// classify maps a runtime status to the error class that drives
// recovery. Unknown statuses classify as fatal; an unrecognized failure
// must never be retried against live GPU state.
func classify(st sdk.Status) vfx.ErrorClass {
	switch st {
	case sdk.StatusErrResolution:
		return vfx.ClassStageInvalid
	case sdk.StatusErrGPU:
		return vfx.ClassTransient
	default:
		return vfx.ClassFatal
	}
}

// statusErr wraps a non-success runtime status in a classified
// PipelineError.
func statusErr(op string, st sdk.Status) error {
	return &vfx.PipelineError{Class: classify(st), Op: op, Err: st.Err()}
}

// fatalErr wraps err as a fatal pipeline failure.
func fatalErr(op string, err error) error {
	return &vfx.PipelineError{Class: vfx.ClassFatal, Op: op, Err: err}
}
