package pipeline

import (
	"errors"
	"testing"

	"github.com/gogpu/vfx"
	"github.com/gogpu/vfx/sdk"
)

// TestClassify tests the status-to-class mapping that drives recovery.
func TestClassify(t *testing.T) {
	tests := []struct {
		status sdk.Status
		want   vfx.ErrorClass
	}{
		{sdk.StatusErrResolution, vfx.ClassStageInvalid},
		{sdk.StatusErrGPU, vfx.ClassTransient},
		{sdk.StatusErrGeneral, vfx.ClassFatal},
		{sdk.StatusErrMemory, vfx.ClassFatal},
		{sdk.StatusErrParameter, vfx.ClassFatal},
		{sdk.Status(42), vfx.ClassFatal},
	}

	for _, tt := range tests {
		if got := classify(tt.status); got != tt.want {
			t.Errorf("classify(%v) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

// TestStatusErr tests that wrapped statuses stay inspectable.
func TestStatusErr(t *testing.T) {
	err := statusErr("stage/run", sdk.StatusErrGPU)

	if vfx.ClassOf(err) != vfx.ClassTransient {
		t.Errorf("ClassOf = %v, want Transient", vfx.ClassOf(err))
	}
	if !errors.Is(err, sdk.ErrStatus) {
		t.Error("wrapped status lost the ErrStatus sentinel")
	}

	var pe *vfx.PipelineError
	if !errors.As(err, &pe) {
		t.Fatal("statusErr did not produce a PipelineError")
	}
	if pe.Op != "stage/run" {
		t.Errorf("Op = %q, want stage/run", pe.Op)
	}
}

// TestFatalErr tests the fatal wrapper.
func TestFatalErr(t *testing.T) {
	err := fatalErr("texture/create", errNoTextureFactory)
	if !vfx.Fatal(err) {
		t.Error("fatalErr did not classify as fatal")
	}
	if !errors.Is(err, errNoTextureFactory) {
		t.Error("cause not unwrappable")
	}
}
