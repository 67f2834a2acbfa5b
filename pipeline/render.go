package pipeline

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/vfx"
	"github.com/gogpu/vfx/host"
	"github.com/gogpu/vfx/internal/imgbuf"
)

// Render processes one frame. Must run on the host's render thread. On
// success the host draws OutputTexture; when the pipeline cannot or
// should not process, it tells the source to pass through instead.
//
// The returned error is nil for every recoverable condition; a non-nil
// error means the pipeline has stopped and will not process again.
func (p *Pipeline) Render() error {
	p.tasks.drain()

	if p.closed {
		return vfx.ErrClosed
	}
	if p.stopped {
		p.source.SkipOutput()
		return vfx.ErrStopped
	}

	enhance := p.settings.Stage != vfx.StageNone || p.settings.AREnabled
	if !p.cfg.Caps.Any() || !enhance || !p.sizeValid {
		p.source.SkipOutput()
		return nil
	}

	// Async sources only reprocess on a fresh frame; the host keeps
	// presenting the previous output in between.
	newFrame := p.source.NewFrame()
	if p.source.Async() && p.processed && !newFrame {
		return nil
	}

	p.inFrame = true
	defer func() {
		p.inFrame = false
		p.tasks.drain()
	}()

	// A working-space change means the ingress contents change meaning;
	// reshape the chain and reload the stages before processing in it.
	space := p.source.ColorSpace(host.PreferredSpaces())
	if space != p.space {
		p.space = space
		p.buffersValid = false
		p.processed = false
	}

	proceed, err := p.prepare()
	if err != nil {
		return p.recover(err)
	}
	if !proceed {
		p.source.SkipOutput()
		return nil
	}

	tex := p.source.RenderFrame(p.space)
	if tex == nil {
		p.source.SkipOutput()
		return nil
	}

	if err := p.bindFrame(tex); err != nil {
		return p.recover(err)
	}
	if err := p.process(); err != nil {
		return p.recover(err)
	}

	p.processed = true
	return nil
}

// prepare brings the stream, buffers and stages up to date for the
// current sizes and settings. It returns false when the frame should
// pass through: no stage is runnable, or the selected enhancement stage
// rejected the current resolution.
//
// Resolution rejections are absorbed here: the stage disables itself,
// the matching warning raises on its edge, and artifact reduction drops
// out of the chain while an enhancement rejection skips the whole frame.
func (p *Pipeline) prepare() (bool, error) {
	if p.stream == nil {
		s, st := p.rt.CreateStream()
		if !st.Ok() {
			return false, statusErr("stream/create", st)
		}
		p.stream = s
	}

	want := chainSet{
		ar: p.settings.AREnabled && p.cfg.Caps.ArtifactReduction && !p.ar.disabled(),
		sr: p.settings.Stage == vfx.StageSuperRes && !p.sr.disabled(),
		up: p.settings.Stage == vfx.StageUpscale && !p.up.disabled(),
	}

	// A disabled enhancement stage takes the whole frame out; artifact
	// reduction alone continues without it.
	if p.settings.Stage == vfx.StageSuperRes && !want.sr {
		return false, nil
	}
	if p.settings.Stage == vfx.StageUpscale && !want.up {
		return false, nil
	}
	if !want.any() {
		return false, nil
	}

	if err := p.ensureChain(want); err != nil {
		return false, err
	}

	if want.ar {
		params := stageParams{mode: uint32(p.settings.ARMode), hasMode: true}
		if err := p.prepareStage(&p.ar, params, &p.chain.arSrc, &p.chain.arDst); err != nil {
			if vfx.ClassOf(err) != vfx.ClassStageInvalid {
				return false, err
			}
			if p.warnings.Raise(vfx.WarningARResolution) {
				vfx.Logger().Warn("artifact reduction rejected resolution, continuing without it",
					"err", err)
			}
			want.ar = false
			p.buffersValid = false
		}
	}

	if want.sr {
		params := stageParams{mode: uint32(p.settings.SRMode), hasMode: true}
		if err := p.prepareStage(&p.sr, params, &p.chain.srSrc, &p.chain.srDst); err != nil {
			if vfx.ClassOf(err) != vfx.ClassStageInvalid {
				return false, err
			}
			if p.warnings.Raise(vfx.WarningSRResolution) {
				vfx.Logger().Warn("super resolution rejected resolution, passing through", "err", err)
			}
			p.buffersValid = false
			return false, nil
		}
	}

	if want.up {
		params := stageParams{strength: p.settings.Strength, hasStrength: true}
		if err := p.prepareStage(&p.up, params, &p.chain.upSrc, &p.chain.upDst); err != nil {
			if vfx.ClassOf(err) != vfx.ClassStageInvalid {
				return false, err
			}
			if p.warnings.Raise(vfx.WarningSRResolution) {
				vfx.Logger().Warn("upscaler rejected resolution, passing through", "err", err)
			}
			p.buffersValid = false
			return false, nil
		}
	}

	p.active = want
	return true, nil
}

// ensureChain reshapes the image chain for the wanted stage set. A
// reshape invalidates every loaded model, since the effects hold
// references to the reallocated images.
func (p *Pipeline) ensureChain(want chainSet) error {
	if p.buffersValid && want == p.active {
		return nil
	}

	scale := p.effectiveScale()
	maxInW, maxInH := vfx.MaxInput(scale)
	maxOutW, maxOutH := vfx.ScaleOutput(scale, maxInW, maxInH)

	shape := chainShape{
		inW: p.inW, inH: p.inH,
		outW: p.outW, outH: p.outH,
		maxInW: maxInW, maxInH: maxInH,
		maxOutW: maxOutW, maxOutH: maxOutH,
		set: want,
	}
	if err := p.chain.ensure(p.rt, shape); err != nil {
		return fatalErr("buffer/ensure", err)
	}

	p.active = want
	p.buffersValid = true
	p.ar.invalidate()
	p.sr.invalidate()
	p.up.invalidate()
	return nil
}

// prepareStage walks one stage to stateLoaded: create, parameterize,
// bind images, load. Loaded stages return immediately.
func (p *Pipeline) prepareStage(s *stage, params stageParams, in, out *imgbuf.Buffer) error {
	if err := s.ensureCreated(p.rt, p.stream, p.cfg.ModelDir); err != nil {
		return err
	}
	if s.loaded() {
		return nil
	}

	if err := s.applyParams(params); err != nil {
		return err
	}
	if err := s.bind(in.Image(), out.Image()); err != nil {
		return err
	}
	if err := s.load(); err != nil {
		return err
	}

	if p.warnings.Clear(s.warning) {
		vfx.Logger().Info("effect stage recovered", "effect", string(s.sel))
	}
	return nil
}

// bindFrame points the chain's ingress view at the source texture and
// keeps the output texture matched to the output size, recreating it
// through the host's factory when the size changes.
func (p *Pipeline) bindFrame(tex host.Texture) error {
	if tex != p.chain.src.BoundTexture() {
		if err := p.chain.bindSource(p.rt, tex); err != nil {
			return fatalErr("source/bind", err)
		}
	}

	if p.outTex == nil || p.outTex.Width() != p.outW || p.outTex.Height() != p.outH {
		if p.cfg.Textures == nil {
			return fatalErr("texture/create", errNoTextureFactory)
		}
		t, err := p.cfg.Textures.CreateTexture(p.outW, p.outH, gputypes.TextureFormatRGBA8Unorm)
		if err != nil {
			return fatalErr("texture/create", err)
		}
		p.outTex = t
		if err := p.chain.bindOutput(p.rt, t); err != nil {
			return fatalErr("output/bind", err)
		}
	}
	return nil
}

// process maps the texture-bound endpoints and runs the transfer/effect
// sequence for the active stage set.
func (p *Pipeline) process() error {
	ch := &p.chain

	if err := ch.src.Map(p.stream); err != nil {
		return fatalErr("source/map", err)
	}
	if err := ch.dst.Map(p.stream); err != nil {
		ch.src.Unmap(p.stream)
		return fatalErr("output/map", err)
	}

	err := p.runChain()

	if e := ch.dst.Unmap(p.stream); e != nil && err == nil {
		err = fatalErr("output/unmap", e)
	}
	if e := ch.src.Unmap(p.stream); e != nil && err == nil {
		err = fatalErr("source/unmap", e)
	}
	return err
}

// runChain executes the per-frame hop sequence. The value-range
// multipliers are part of the effect contract: the neural stages consume
// normalized [0,1] floats after artifact reduction and unnormalized
// [0,255] floats otherwise, and the upscaler works on 8-bit values
// throughout.
func (p *Pipeline) runChain() error {
	ch := &p.chain

	switch {
	case p.active.ar && p.active.sr:
		if err := p.transfer(&ch.src, &ch.arSrc, 1.0/255); err != nil {
			return err
		}
		if err := p.ar.run(); err != nil {
			return err
		}
		if err := p.transfer(&ch.arDst, &ch.srSrc, 255); err != nil {
			return err
		}
		if err := p.sr.run(); err != nil {
			return err
		}
		if err := p.transfer(&ch.srDst, &ch.dstTmp, 255); err != nil {
			return err
		}

	case p.active.ar && p.active.up:
		if err := p.transfer(&ch.src, &ch.arSrc, 1.0/255); err != nil {
			return err
		}
		if err := p.ar.run(); err != nil {
			return err
		}
		if err := p.transfer(&ch.arDst, &ch.upSrc, 255); err != nil {
			return err
		}
		if err := p.up.run(); err != nil {
			return err
		}
		if err := p.transfer(&ch.upDst, &ch.dstTmp, 1); err != nil {
			return err
		}

	case p.active.ar:
		if err := p.transfer(&ch.src, &ch.arSrc, 1.0/255); err != nil {
			return err
		}
		if err := p.ar.run(); err != nil {
			return err
		}
		if err := p.transfer(&ch.arDst, &ch.dstTmp, 255); err != nil {
			return err
		}

	case p.active.sr:
		if err := p.transfer(&ch.src, &ch.srSrc, 1); err != nil {
			return err
		}
		if err := p.sr.run(); err != nil {
			return err
		}
		if err := p.transfer(&ch.srDst, &ch.dstTmp, 255); err != nil {
			return err
		}

	case p.active.up:
		if err := p.transfer(&ch.src, &ch.upSrc, 1); err != nil {
			return err
		}
		if err := p.up.run(); err != nil {
			return err
		}
		if err := p.transfer(&ch.upDst, &ch.dstTmp, 1); err != nil {
			return err
		}
	}

	return p.transfer(&ch.dstTmp, &ch.dst, 1)
}

// transfer copies one hop through the runtime, routing cross-format
// conversions through the chain's staging buffer.
func (p *Pipeline) transfer(src, dst *imgbuf.Buffer, scale float32) error {
	st := p.rt.Transfer(src.Image(), dst.Image(), scale, p.stream, p.chain.staging.Image())
	if !st.Ok() {
		return statusErr("transfer", st)
	}
	return nil
}

// recover is the single interpreter of error classes. Transient
// failures soft-reset and drop the frame; everything else stops the
// pipeline for good.
func (p *Pipeline) recover(err error) error {
	if vfx.ClassOf(err) == vfx.ClassTransient {
		vfx.Logger().Warn("transient GPU failure, resetting pipeline", "err", err)
		p.softReset()
		p.source.SkipOutput()
		return nil
	}

	vfx.Logger().Error("pipeline failure, stopping", "err", err)
	p.stopped = true
	p.source.SkipOutput()
	return err
}

// softReset recovers from a transient GPU failure: the compute stream
// and every effect handle are recreated, while buffer shapes and
// contents are preserved. The next frame recreates and reloads the
// stages lazily.
func (p *Pipeline) softReset() {
	if p.stream != nil {
		p.stream.Destroy()
		p.stream = nil
	}
	p.ar.reset()
	p.sr.reset()
	p.up.reset()
	p.processed = false
}
