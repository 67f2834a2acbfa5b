package pipeline

import (
	"fmt"

	"github.com/gogpu/vfx"
	"github.com/gogpu/vfx/sdk"
)

// stageState tracks an effect stage through its handle lifecycle. The
// states are strictly ordered except for stateDisabled, which a stage
// enters when the runtime rejects its resolution and leaves only through
// retry.
type stageState int

const (
	// stateAbsent means no effect handle exists yet.
	stateAbsent stageState = iota

	// stateCreated means the handle exists with its stream and model
	// directory bound, but parameters have changed since the last load.
	stateCreated

	// stateParameterized means mode and strength are applied; images
	// still need binding and the model needs loading.
	stateParameterized

	// stateLoaded means the stage is ready to run for the currently
	// bound images and parameters.
	stateLoaded

	// stateDisabled means the runtime rejected the current resolution.
	// The stage sits out until a size or settings change retries it.
	stateDisabled
)

// String returns a human-readable name for the stage state.
func (s stageState) String() string {
	switch s {
	case stateAbsent:
		return "Absent"
	case stateCreated:
		return "Created"
	case stateParameterized:
		return "Parameterized"
	case stateLoaded:
		return "Loaded"
	case stateDisabled:
		return "Disabled"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// stageParams is the parameter snapshot applied before a load. Stages
// ignore the fields their effect has no use for.
type stageParams struct {
	mode        uint32
	hasMode     bool
	strength    float32
	hasStrength bool
}

// stage is one effect slot in the pipeline. The zero value with sel and
// warning set is ready for use; the handle is created lazily on the
// render thread.
type stage struct {
	sel     sdk.Selector
	warning vfx.Warning

	// model marks stages that load neural models and need a model
	// directory bound before Load.
	model bool

	state  stageState
	handle sdk.Effect
}

// disabled reports whether the stage rejected the current resolution.
func (s *stage) disabled() bool {
	return s.state == stateDisabled
}

// loaded reports whether the stage is ready to run.
func (s *stage) loaded() bool {
	return s.state == stateLoaded
}

// ensureCreated instantiates the effect handle and binds its stream and
// model directory. No-op once a handle exists.
func (s *stage) ensureCreated(rt sdk.Runtime, stream sdk.Stream, modelDir string) error {
	if s.state != stateAbsent {
		return nil
	}

	if s.model && modelDir == "" {
		return fatalErr("stage/create", errNoModelDir)
	}

	h, st := rt.CreateEffect(s.sel)
	if !st.Ok() {
		return statusErr("stage/create", st)
	}

	if s.model {
		if st := h.SetModelDir(modelDir); !st.Ok() {
			h.Destroy()
			return statusErr("stage/create", st)
		}
	}
	if st := h.SetStream(stream); !st.Ok() {
		h.Destroy()
		return statusErr("stage/create", st)
	}

	s.handle = h
	s.state = stateCreated

	vfx.Logger().Debug("effect stage created", "effect", string(s.sel))
	return nil
}

// applyParams binds mode and strength and moves the stage to
// stateParameterized.
func (s *stage) applyParams(params stageParams) error {
	if params.hasMode {
		if st := s.handle.SetMode(params.mode); !st.Ok() {
			return statusErr("stage/params", st)
		}
	}
	if params.hasStrength {
		if st := s.handle.SetStrength(params.strength); !st.Ok() {
			return statusErr("stage/params", st)
		}
	}
	s.state = stateParameterized
	return nil
}

// bind points the effect at its input and output images.
func (s *stage) bind(in, out sdk.Image) error {
	if st := s.handle.SetInput(in); !st.Ok() {
		return statusErr("stage/bind", st)
	}
	if st := s.handle.SetOutput(out); !st.Ok() {
		return statusErr("stage/bind", st)
	}
	return nil
}

// load compiles the effect for the bound images and parameters. A
// resolution rejection moves the stage to stateDisabled and returns a
// ClassStageInvalid error; any other failure is fatal.
func (s *stage) load() error {
	st := s.handle.Load()
	if st == sdk.StatusErrResolution {
		s.state = stateDisabled
		return statusErr("stage/load", st)
	}
	if !st.Ok() {
		return statusErr("stage/load", st)
	}
	s.state = stateLoaded
	return nil
}

// run executes one frame through the stage.
func (s *stage) run() error {
	if st := s.handle.Run(); !st.Ok() {
		return statusErr("stage/run", st)
	}
	return nil
}

// invalidate forces a reparameterize and reload before the next run.
// Disabled stages stay disabled; see retry.
func (s *stage) invalidate() {
	if s.state == stateParameterized || s.state == stateLoaded {
		s.state = stateCreated
	}
}

// retry gives a disabled stage another chance after a size or settings
// change. The existing handle is reused.
func (s *stage) retry() {
	if s.state != stateDisabled {
		return
	}
	if s.handle != nil {
		s.state = stateCreated
	} else {
		s.state = stateAbsent
	}
}

// reset destroys the effect handle, returning the stage to stateAbsent.
// Used by the soft reset path; the next frame recreates and reloads.
func (s *stage) reset() {
	if s.handle != nil {
		s.handle.Destroy()
		s.handle = nil
	}
	s.state = stateAbsent
}
