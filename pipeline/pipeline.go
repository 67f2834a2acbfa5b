package pipeline

import (
	"fmt"

	"github.com/gogpu/vfx"
	"github.com/gogpu/vfx/host"
	"github.com/gogpu/vfx/sdk"
	"github.com/gogpu/vfx/shader"
)

// DefaultSDRWhiteLevel is the assumed SDR white level in nits when the
// host does not provide one.
const DefaultSDRWhiteLevel = 300

// strengthEpsilon is the smallest strength change treated as a real
// settings change. Anything below it is UI jitter and must not trigger
// a model reload.
const strengthEpsilon = 1e-6

// Config configures a pipeline instance. Source and Runtime are
// required; everything else has a usable default.
type Config struct {
	// Source is the video source this pipeline enhances.
	Source host.Source

	// Runtime is the shared video-effects runtime.
	Runtime sdk.Runtime

	// Device is the host's GPU device provider. Optional; used only for
	// diagnostics, since all GPU work goes through Runtime and the host's
	// textures.
	Device host.DeviceHandle

	// Textures creates the pipeline's output textures on the host's
	// graphics context. Required once frames are processed.
	Textures host.TextureFactory

	// Caps gates which stages may be created. See sdk.Probe.
	Caps vfx.Capabilities

	// Settings is the initial settings snapshot. Fields the capabilities
	// cannot honor are dropped.
	Settings vfx.Settings

	// ModelDir is the directory holding the neural model assets.
	// Required for the artifact reduction and super resolution stages.
	ModelDir string

	// SDRWhiteLevel is the host's SDR white level in nits. Zero selects
	// DefaultSDRWhiteLevel.
	SDRWhiteLevel float32
}

// Pipeline is one source's enhancement pipeline. Create with New, drive
// with Tick and Render, release with Close. Not safe for concurrent
// use; owned by the host's render thread.
type Pipeline struct {
	cfg      Config
	source   host.Source
	rt       sdk.Runtime
	settings vfx.Settings

	stream sdk.Stream
	ar     stage
	sr     stage
	up     stage
	chain  chain

	warnings vfx.Warnings
	tasks    taskQueue

	// inW/inH and outW/outH are the last validated sizes; baseW/baseH is
	// the raw source size from the last tick, valid or not.
	inW, inH     uint32
	outW, outH   uint32
	baseW, baseH uint32
	sizeValid    bool

	// active is the stage set the chain is currently shaped for.
	active       chainSet
	buffersValid bool

	space     host.ColorSpace
	outTex    host.Texture
	processed bool
	inFrame   bool
	stopped   bool
	closed    bool
}

// New creates a pipeline. No GPU work happens here; streams, effects and
// buffers are created lazily on the render thread.
func New(cfg Config) (*Pipeline, error) {
	if cfg.Source == nil {
		return nil, vfx.ErrNilSource
	}
	if cfg.Runtime == nil {
		return nil, vfx.ErrNilRuntime
	}
	if cfg.SDRWhiteLevel == 0 {
		cfg.SDRWhiteLevel = DefaultSDRWhiteLevel
	}

	p := &Pipeline{
		cfg:    cfg,
		source: cfg.Source,
		rt:     cfg.Runtime,
		ar:     stage{sel: sdk.EffectArtifactReduction, warning: vfx.WarningARResolution, model: true},
		sr:     stage{sel: sdk.EffectSuperRes, warning: vfx.WarningSRResolution, model: true},
		up:     stage{sel: sdk.EffectUpscale, warning: vfx.WarningSRResolution},
	}
	p.settings = clampSettings(cfg.Settings, cfg.Caps)

	if cfg.Device != nil && cfg.Device.Device() == nil {
		vfx.Logger().Info("host has no GPU device, enhancement depends on the runtime's own device")
	}
	if !cfg.Caps.Any() {
		vfx.Logger().Info("no effect stages supported, pipeline will pass frames through")
	}

	return p, nil
}

// clampSettings drops settings the capabilities cannot honor and pins
// out-of-range values.
func clampSettings(s vfx.Settings, caps vfx.Capabilities) vfx.Settings {
	if !caps.Supports(s.Stage) {
		s.Stage = vfx.StageNone
	}
	if !caps.ArtifactReduction {
		s.AREnabled = false
	}
	if !s.Scale.Valid() {
		s.Scale = vfx.Scale15x
	}
	if s.Strength < 0 {
		s.Strength = 0
	}
	if s.Strength > 1 {
		s.Strength = 1
	}
	return s
}

// Update applies a new settings snapshot. Changes that affect loaded
// models mark the affected stages for reload on the next frame; the
// strength comparison ignores sub-epsilon jitter.
func (p *Pipeline) Update(s vfx.Settings) {
	if p.closed {
		return
	}

	s = clampSettings(s, p.cfg.Caps)
	old := p.settings
	p.settings = s

	if s.Stage != old.Stage || s.Scale != old.Scale || s.AREnabled != old.AREnabled {
		p.buffersValid = false
		p.processed = false
		p.ar.invalidate()
		p.sr.invalidate()
		p.up.invalidate()
		p.ar.retry()
		p.sr.retry()
		p.up.retry()
		return
	}

	if s.ARMode != old.ARMode {
		p.ar.invalidate()
		p.ar.retry()
	}
	if s.SRMode != old.SRMode {
		p.sr.invalidate()
		p.sr.retry()
	}
	if d := s.Strength - old.Strength; d > strengthEpsilon || d < -strengthEpsilon {
		p.up.invalidate()
		p.up.retry()
	}
}

// Settings returns the currently applied settings snapshot.
func (p *Pipeline) Settings() vfx.Settings {
	return p.settings
}

// effectiveScale is the scale factor actually in force: identity when no
// enhancement stage is selected.
func (p *Pipeline) effectiveScale() vfx.ScaleFactor {
	if p.settings.Stage == vfx.StageNone {
		return vfx.ScaleNone
	}
	return p.settings.Scale
}

// Tick runs the per-frame bookkeeping: size tracking and validation. It
// never touches GPU state, so hosts may call it from the video thread;
// all allocation happens later in Render.
//
// When validation fails the output size freezes at its last valid value
// and WarningSizeInvalid raises until the source recovers.
func (p *Pipeline) Tick() {
	if p.closed || p.stopped {
		return
	}

	baseW, baseH := p.source.BaseSize()
	p.baseW, p.baseH = baseW, baseH
	if baseW == 0 || baseH == 0 {
		return
	}

	scale := p.effectiveScale()
	outW, outH := vfx.ScaleOutput(scale, baseW, baseH)

	if !vfx.ValidateSize(scale, baseW, baseH, outW, outH) {
		p.sizeValid = false
		if p.warnings.Raise(vfx.WarningSizeInvalid) {
			vfx.Logger().Warn("source size unsupported, output frozen",
				"size", fmt.Sprintf("%dx%d", baseW, baseH),
				"scale", scale.String())
		}
		return
	}
	if p.warnings.Clear(vfx.WarningSizeInvalid) {
		vfx.Logger().Info("source size supported again",
			"size", fmt.Sprintf("%dx%d", baseW, baseH))
	}
	p.sizeValid = true

	if baseW != p.inW || baseH != p.inH || outW != p.outW || outH != p.outH {
		p.inW, p.inH = baseW, baseH
		p.outW, p.outH = outW, outH
		p.buffersValid = false
		p.processed = false
		p.ar.invalidate()
		p.sr.invalidate()
		p.up.invalidate()
		p.ar.retry()
		p.sr.retry()
		p.up.retry()
	}
}

// Width returns the pipeline's output width. While the source size is
// invalid or the pipeline has stopped, it falls back to the raw source
// width so the host's layout stays stable.
func (p *Pipeline) Width() uint32 {
	if !p.sizeValid || p.stopped {
		return p.baseW
	}
	return p.outW
}

// Height returns the pipeline's output height, with the same fallback
// as Width.
func (p *Pipeline) Height() uint32 {
	if !p.sizeValid || p.stopped {
		return p.baseH
	}
	return p.outH
}

// OutputTexture returns the texture holding the last processed frame,
// or nil before the first frame completes.
func (p *Pipeline) OutputTexture() host.Texture {
	return p.outTex
}

// Warnings returns the currently active warning flags.
func (p *Pipeline) Warnings() vfx.Warning {
	return p.warnings.All()
}

// Stopped reports whether a fatal failure has stopped the pipeline.
func (p *Pipeline) Stopped() bool {
	return p.stopped
}

// DrawTechnique returns the shader technique and multiplier for drawing
// the processed output into the host's current color space.
func (p *Pipeline) DrawTechnique(current host.ColorSpace) (string, float32) {
	return shader.DrawTechnique(current, p.space, p.cfg.SDRWhiteLevel)
}

// ConvertTechnique returns the shader technique and multiplier for
// flattening the source frame into the 8-bit ingress texture.
func (p *Pipeline) ConvertTechnique() (string, float32) {
	return shader.ConvertTechnique(p.space, p.cfg.SDRWhiteLevel)
}

// Close releases every GPU object the pipeline owns. Safe to call from
// inside a frame callback: the release is then deferred to the task
// queue and runs when the frame finishes. Idempotent.
func (p *Pipeline) Close() {
	if p.closed {
		return
	}
	p.closed = true

	if p.inFrame {
		p.tasks.push(p.release)
		return
	}
	p.release()
}

// release tears down all GPU state. Runs on the render thread, outside
// any frame.
func (p *Pipeline) release() {
	p.ar.reset()
	p.sr.reset()
	p.up.reset()
	p.chain.destroy()
	if p.stream != nil {
		p.stream.Destroy()
		p.stream = nil
	}
	p.outTex = nil
	p.buffersValid = false
	p.processed = false

	vfx.Logger().Debug("pipeline released")
}
