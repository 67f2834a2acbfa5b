package pipeline

import (
	"testing"

	"github.com/gogpu/vfx"
	"github.com/gogpu/vfx/sdk"
	"github.com/gogpu/vfx/sdk/sdktest"
)

func newTestStage() *stage {
	return &stage{sel: sdk.EffectSuperRes, warning: vfx.WarningSRResolution, model: true}
}

// TestStageLifecycle walks a stage through its full state machine.
func TestStageLifecycle(t *testing.T) {
	rt := sdktest.New()
	stream, _ := rt.CreateStream()
	s := newTestStage()

	if s.state != stateAbsent {
		t.Fatalf("initial state = %v, want Absent", s.state)
	}

	if err := s.ensureCreated(rt, stream, "/models"); err != nil {
		t.Fatalf("ensureCreated() error = %v", err)
	}
	if s.state != stateCreated {
		t.Errorf("state = %v after create, want Created", s.state)
	}
	if rt.Effects[0].ModelDir != "/models" {
		t.Errorf("ModelDir = %q, want /models", rt.Effects[0].ModelDir)
	}
	if rt.Effects[0].Stream != stream {
		t.Error("stream not bound on create")
	}

	// Creating again is a no-op.
	if err := s.ensureCreated(rt, stream, "/models"); err != nil {
		t.Fatalf("second ensureCreated() error = %v", err)
	}
	if len(rt.Effects) != 1 {
		t.Fatalf("effects created = %d, want 1", len(rt.Effects))
	}

	if err := s.applyParams(stageParams{mode: 1, hasMode: true}); err != nil {
		t.Fatalf("applyParams() error = %v", err)
	}
	if s.state != stateParameterized {
		t.Errorf("state = %v after params, want Parameterized", s.state)
	}

	in, _ := rt.CreateImage(sdk.ImageDesc{Width: 160, Height: 90})
	out, _ := rt.CreateImage(sdk.ImageDesc{Width: 240, Height: 135})
	if err := s.bind(in, out); err != nil {
		t.Fatalf("bind() error = %v", err)
	}
	if err := s.load(); err != nil {
		t.Fatalf("load() error = %v", err)
	}
	if !s.loaded() {
		t.Errorf("state = %v after load, want Loaded", s.state)
	}

	if err := s.run(); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	s.invalidate()
	if s.state != stateCreated {
		t.Errorf("state = %v after invalidate, want Created", s.state)
	}

	s.reset()
	if s.state != stateAbsent {
		t.Errorf("state = %v after reset, want Absent", s.state)
	}
	if rt.Effects[0].Destroyed != 1 {
		t.Errorf("handle Destroyed = %d, want 1", rt.Effects[0].Destroyed)
	}
}

// TestStageResolutionRejection tests the disable and retry path.
func TestStageResolutionRejection(t *testing.T) {
	rt := sdktest.New()
	stream, _ := rt.CreateStream()
	s := newTestStage()

	if err := s.ensureCreated(rt, stream, "/models"); err != nil {
		t.Fatalf("ensureCreated() error = %v", err)
	}
	rt.Effects[0].LoadStatus = sdk.StatusErrResolution
	s.applyParams(stageParams{hasMode: true})

	err := s.load()
	if err == nil {
		t.Fatal("load() succeeded with injected resolution rejection")
	}
	if vfx.ClassOf(err) != vfx.ClassStageInvalid {
		t.Errorf("class = %v, want StageInvalid", vfx.ClassOf(err))
	}
	if !s.disabled() {
		t.Fatalf("state = %v, want Disabled", s.state)
	}

	// invalidate leaves a disabled stage alone; retry re-arms it with
	// the same handle.
	s.invalidate()
	if !s.disabled() {
		t.Error("invalidate cleared Disabled")
	}
	s.retry()
	if s.state != stateCreated {
		t.Errorf("state = %v after retry, want Created", s.state)
	}
	if len(rt.Effects) != 1 {
		t.Errorf("retry created a new handle")
	}
}

// TestStageModelDirRequired tests the missing-model guard.
func TestStageModelDirRequired(t *testing.T) {
	rt := sdktest.New()
	stream, _ := rt.CreateStream()

	s := newTestStage()
	if err := s.ensureCreated(rt, stream, ""); err == nil || !vfx.Fatal(err) {
		t.Errorf("ensureCreated() without model dir = %v, want fatal error", err)
	}

	// Non-neural stages have no model dependency.
	up := &stage{sel: sdk.EffectUpscale, warning: vfx.WarningSRResolution}
	if err := up.ensureCreated(rt, stream, ""); err != nil {
		t.Errorf("upscale ensureCreated() error = %v", err)
	}
	if rt.Effects[0].ModelDir != "" {
		t.Errorf("model dir bound on a non-neural stage")
	}
}

// TestStageStateString tests state naming.
func TestStageStateString(t *testing.T) {
	tests := []struct {
		state stageState
		want  string
	}{
		{stateAbsent, "Absent"},
		{stateCreated, "Created"},
		{stateParameterized, "Parameterized"},
		{stateLoaded, "Loaded"},
		{stateDisabled, "Disabled"},
		{stageState(9), "Unknown(9)"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
