package sdk

import (
	"fmt"
	"strings"

	"github.com/gogpu/vfx"
)

// Probe queries the runtime once at startup and reports which effect
// stages it supports. The result is passed by value into every pipeline
// instance instead of being read from process globals.
//
// A non-nil error means the runtime is unusable on this system and no
// pipeline should be created. The common operator mistakes (missing
// runtime libraries, unsupported GPU) are logged at info level with
// actionable wording.
func Probe(rt Runtime) (vfx.Capabilities, error) {
	if rt == nil {
		return vfx.Capabilities{}, vfx.ErrNilRuntime
	}

	info, status := rt.Info()
	if !status.Ok() {
		log := vfx.Logger()
		switch status {
		case StatusErrLibrary:
			log.Info("video effects runtime libraries not found; install the vendor video effects SDK")
		case StatusErrUnsupportedGPU:
			log.Info("video effects runtime does not support this GPU")
		default:
			log.Info("video effects runtime probe failed", "status", status.String())
		}
		return vfx.Capabilities{}, fmt.Errorf("%w: %v", vfx.ErrRuntimeUnavailable, status.Err())
	}

	caps := vfx.Capabilities{
		ArtifactReduction: strings.Contains(info, string(EffectArtifactReduction)),
		SuperRes:          strings.Contains(info, string(EffectSuperRes)),
		Upscale:           strings.Contains(info, string(EffectUpscale)),
	}

	vfx.Logger().Info("video effects runtime probed",
		"ar", caps.ArtifactReduction,
		"superres", caps.SuperRes,
		"upscale", caps.Upscale)

	return caps, nil
}
