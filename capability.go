package vfx

// Capabilities describes which effect stages the video-effects runtime
// supports on the current GPU and driver.
//
// Capabilities is computed once at startup (see sdk.Probe) and passed by
// value into every pipeline instance. It gates which Settings fields are
// meaningful: a stage that is not supported is never created, and its
// settings are ignored.
type Capabilities struct {
	// ArtifactReduction reports whether the artifact reduction stage
	// is available.
	ArtifactReduction bool

	// SuperRes reports whether the super-resolution stage is available.
	SuperRes bool

	// Upscale reports whether the fast upscaling stage is available.
	Upscale bool
}

// Any reports whether at least one effect stage is supported.
func (c Capabilities) Any() bool {
	return c.ArtifactReduction || c.SuperRes || c.Upscale
}

// Supports reports whether the given stage type is available.
// StageNone is always supported.
func (c Capabilities) Supports(t StageType) bool {
	switch t {
	case StageNone:
		return true
	case StageSuperRes:
		return c.SuperRes
	case StageUpscale:
		return c.Upscale
	default:
		return false
	}
}
