// Package shader selects draw/convert techniques for the pipeline's
// ingress and egress passes and compiles the conversion shader.
//
// The neural stages consume unnormalized 8-bit RGBA, so every source
// frame is first rendered through a conversion pass that flattens the
// negotiated color space down to sRGB-encoded UNORM; the processed
// output is then drawn back into the host's current space. Both passes
// are plain shader work owned by the host's graphics stack; this package
// only decides which technique variant runs and with what multiplier.
package shader

import "github.com/gogpu/vfx/host"

// Technique names. The host's effect file implements one entry point
// per name.
const (
	TechDraw                = "Draw"
	TechDrawTonemap         = "DrawTonemap"
	TechDrawMultiply        = "DrawMultiply"
	TechDrawMultiplyTonemap = "DrawMultiplyTonemap"
	TechConvert             = "ConvertUnorm"
	TechConvertTonemap      = "ConvertUnormTonemap"
	TechConvertScaleTonemap = "ConvertUnormMultiplyTonemap"
)

// refWhite is the scRGB reference white level in nits.
const refWhite = 80.0

// DrawTechnique selects the technique and multiplier for drawing the
// processed output, given the space the host is currently rendering in
// and the space the frame was produced in. sdrWhiteLevel is the host's
// SDR white level in nits (used only for scRGB conversions).
func DrawTechnique(current, source host.ColorSpace, sdrWhiteLevel float32) (string, float32) {
	tech := TechDraw
	multiplier := float32(1)

	switch source {
	case host.SpaceSRGB, host.SpaceSRGB16F:
		if current == host.SpaceRec709SCRGB {
			tech = TechDrawMultiply
			multiplier = sdrWhiteLevel / refWhite
		}

	case host.SpaceRec709Extended:
		switch current {
		case host.SpaceSRGB, host.SpaceSRGB16F:
			tech = TechDrawTonemap
		case host.SpaceRec709SCRGB:
			tech = TechDrawMultiply
			multiplier = sdrWhiteLevel / refWhite
		}

	case host.SpaceRec709SCRGB:
		switch current {
		case host.SpaceSRGB, host.SpaceSRGB16F:
			tech = TechDrawMultiplyTonemap
			multiplier = refWhite / sdrWhiteLevel
		case host.SpaceRec709Extended:
			tech = TechDrawMultiply
			multiplier = refWhite / sdrWhiteLevel
		}
	}

	return tech, multiplier
}

// ConvertTechnique selects the technique and multiplier for flattening a
// source frame into the 8-bit UNORM ingress texture.
func ConvertTechnique(source host.ColorSpace, sdrWhiteLevel float32) (string, float32) {
	switch source {
	case host.SpaceRec709Extended:
		return TechConvertTonemap, 1
	case host.SpaceRec709SCRGB:
		return TechConvertScaleTonemap, refWhite / sdrWhiteLevel
	default:
		return TechConvert, 1
	}
}
