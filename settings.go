package vfx

import "fmt"

// StageType selects which resolution-enhancement stage the pipeline runs.
type StageType int

const (
	// StageNone disables resolution enhancement. The pipeline may still
	// run artifact reduction at the source resolution.
	StageNone StageType = iota

	// StageSuperRes is the neural super-resolution stage. Higher quality,
	// consumes planar 32-bit BGR.
	StageSuperRes

	// StageUpscale is the fast upscaling stage. Operates directly on
	// interleaved 8-bit RGBA.
	StageUpscale
)

// String returns a human-readable name for the stage type.
func (t StageType) String() string {
	switch t {
	case StageNone:
		return "None"
	case StageSuperRes:
		return "SuperRes"
	case StageUpscale:
		return "Upscale"
	default:
		return fmt.Sprintf("Unknown(%d)", int(t))
	}
}

// Mode selects the processing intensity of a stage.
type Mode int

const (
	// ModeWeak applies conservative enhancement.
	ModeWeak Mode = iota

	// ModeStrong applies aggressive enhancement.
	ModeStrong
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeWeak:
		return "Weak"
	case ModeStrong:
		return "Strong"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// DefaultStrength is the default upscaling strength.
const DefaultStrength = 0.4

// Settings is the flat snapshot of user-facing pipeline configuration.
//
// The host UI writes a new snapshot via Pipeline.Update; the pipeline
// never mutates it. Fields gated off by Capabilities are ignored.
type Settings struct {
	// Stage selects the resolution-enhancement stage.
	Stage StageType

	// Scale is the requested output scale factor. Ignored when Stage
	// is StageNone.
	Scale ScaleFactor

	// AREnabled runs the artifact reduction stage before enhancement.
	AREnabled bool

	// ARMode is the artifact reduction intensity.
	ARMode Mode

	// SRMode is the super-resolution intensity. Ignored for StageUpscale.
	SRMode Mode

	// Strength is the upscaling sharpening strength in [0, 1].
	// Ignored for StageSuperRes.
	Strength float32
}

// DefaultSettings returns the default settings for the given capabilities:
// super-resolution when supported, otherwise upscaling, otherwise none,
// at 1.5x scale with weak modes.
func DefaultSettings(caps Capabilities) Settings {
	stage := StageNone
	switch {
	case caps.SuperRes:
		stage = StageSuperRes
	case caps.Upscale:
		stage = StageUpscale
	}

	return Settings{
		Stage:     stage,
		Scale:     Scale15x,
		AREnabled: false,
		ARMode:    ModeWeak,
		SRMode:    ModeWeak,
		Strength:  DefaultStrength,
	}
}
