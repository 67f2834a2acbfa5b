package pipeline

import (
	"github.com/gogpu/vfx/host"
	"github.com/gogpu/vfx/internal/imgbuf"
	"github.com/gogpu/vfx/sdk"
)

// chainSet selects which stages the image chain serves.
type chainSet struct {
	ar bool
	sr bool
	up bool
}

// any reports whether at least one stage is selected.
func (s chainSet) any() bool {
	return s.ar || s.sr || s.up
}

// chainShape is the full geometry of one chain configuration. The max
// dimensions come from the scale factor's bound table and size the
// maximal-footprint first allocation; later resizes inside the bounds
// then reallocate in place without growing storage.
type chainShape struct {
	inW, inH         uint32
	outW, outH       uint32
	maxInW, maxInH   uint32
	maxOutW, maxOutH uint32
	set              chainSet
}

// planarDesc is the normalized planar BGR float layout the neural
// stages consume.
func planarDesc(w, h uint32) sdk.ImageDesc {
	return sdk.ImageDesc{
		Width:     w,
		Height:    h,
		Format:    sdk.FormatBGR,
		Component: sdk.ComponentF32,
		Layout:    sdk.LayoutPlanar,
		Alignment: 1,
	}
}

// chunkyDesc is interleaved 8-bit RGBA matching the host texture layout.
func chunkyDesc(w, h, align uint32) sdk.ImageDesc {
	return sdk.ImageDesc{
		Width:     w,
		Height:    h,
		Format:    sdk.FormatRGBA,
		Component: sdk.ComponentU8,
		Layout:    sdk.LayoutChunky,
		Alignment: align,
	}
}

// chain is the GPU image set connecting the source texture to the output
// texture through the active stages. src and dst are views over
// host-owned textures; everything else is runtime-owned storage that
// survives resizes via in-place reallocation.
type chain struct {
	src imgbuf.Buffer

	arSrc imgbuf.Buffer
	arDst imgbuf.Buffer

	srSrc imgbuf.Buffer
	srDst imgbuf.Buffer

	upSrc imgbuf.Buffer
	upDst imgbuf.Buffer

	// dstTmp collects the final stage output before the egress copy into
	// the bound output texture.
	dstTmp imgbuf.Buffer

	// staging is scratch space for cross-format transfers, sized to the
	// largest endpoint in the chain.
	staging imgbuf.Buffer

	dst imgbuf.Buffer
}

// ensure sizes the chain for the given shape, allocating stage buffers
// on first use and reallocating in place on resize. Buffers for stages
// outside the set are released.
func (c *chain) ensure(rt sdk.Runtime, shape chainShape) error {
	type slot struct {
		buf        *imgbuf.Buffer
		desc       sdk.ImageDesc
		maxW, maxH uint32
		want       bool
	}

	slots := []slot{
		{&c.arSrc, planarDesc(shape.inW, shape.inH), shape.maxInW, shape.maxInH, shape.set.ar},
		{&c.arDst, planarDesc(shape.inW, shape.inH), shape.maxInW, shape.maxInH, shape.set.ar},
		{&c.srSrc, planarDesc(shape.inW, shape.inH), shape.maxInW, shape.maxInH, shape.set.sr},
		{&c.srDst, planarDesc(shape.outW, shape.outH), shape.maxOutW, shape.maxOutH, shape.set.sr},
		{&c.upSrc, chunkyDesc(shape.inW, shape.inH, 32), shape.maxInW, shape.maxInH, shape.set.up},
		{&c.upDst, chunkyDesc(shape.outW, shape.outH, 32), shape.maxOutW, shape.maxOutH, shape.set.up},
		{&c.dstTmp, chunkyDesc(shape.outW, shape.outH, 0), shape.maxOutW, shape.maxOutH, true},
		{&c.staging, planarDesc(shape.outW, shape.outH), shape.maxOutW, shape.maxOutH, true},
	}

	for _, s := range slots {
		if !s.want {
			s.buf.Destroy()
			continue
		}
		if err := s.buf.Ensure(rt, s.desc, s.maxW, s.maxH); err != nil {
			return err
		}
	}
	return nil
}

// bindSource re-associates the chain's ingress view with the host's
// current source texture.
func (c *chain) bindSource(rt sdk.Runtime, tex host.Texture) error {
	return c.src.BindTexture(rt, chunkyDesc(0, 0, 1), tex)
}

// bindOutput re-associates the chain's egress view with the output
// texture.
func (c *chain) bindOutput(rt sdk.Runtime, tex host.Texture) error {
	return c.dst.BindTexture(rt, chunkyDesc(0, 0, 0), tex)
}

// destroy releases every buffer in the chain. Bound host textures are
// not destroyed.
func (c *chain) destroy() {
	c.src.Destroy()
	c.arSrc.Destroy()
	c.arDst.Destroy()
	c.srSrc.Destroy()
	c.srDst.Destroy()
	c.upSrc.Destroy()
	c.upDst.Destroy()
	c.dstTmp.Destroy()
	c.staging.Destroy()
	c.dst.Destroy()
}
