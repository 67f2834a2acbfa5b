package shader

import (
	"testing"

	"github.com/gogpu/vfx/host"
)

const testWhiteLevel = 200.0

// TestDrawTechnique tests the draw technique table over every
// source/current space pairing that matters.
func TestDrawTechnique(t *testing.T) {
	tests := []struct {
		name     string
		current  host.ColorSpace
		source   host.ColorSpace
		wantTech string
		wantMult float32
	}{
		{"srgb to srgb", host.SpaceSRGB, host.SpaceSRGB, TechDraw, 1},
		{"srgb to 16f", host.SpaceSRGB16F, host.SpaceSRGB, TechDraw, 1},
		{"srgb to scrgb", host.SpaceRec709SCRGB, host.SpaceSRGB, TechDrawMultiply, testWhiteLevel / refWhite},
		{"16f to scrgb", host.SpaceRec709SCRGB, host.SpaceSRGB16F, TechDrawMultiply, testWhiteLevel / refWhite},
		{"extended to srgb", host.SpaceSRGB, host.SpaceRec709Extended, TechDrawTonemap, 1},
		{"extended to 16f", host.SpaceSRGB16F, host.SpaceRec709Extended, TechDrawTonemap, 1},
		{"extended to scrgb", host.SpaceRec709SCRGB, host.SpaceRec709Extended, TechDrawMultiply, testWhiteLevel / refWhite},
		{"extended to extended", host.SpaceRec709Extended, host.SpaceRec709Extended, TechDraw, 1},
		{"scrgb to srgb", host.SpaceSRGB, host.SpaceRec709SCRGB, TechDrawMultiplyTonemap, refWhite / testWhiteLevel},
		{"scrgb to extended", host.SpaceRec709Extended, host.SpaceRec709SCRGB, TechDrawMultiply, refWhite / testWhiteLevel},
		{"scrgb to scrgb", host.SpaceRec709SCRGB, host.SpaceRec709SCRGB, TechDraw, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tech, mult := DrawTechnique(tt.current, tt.source, testWhiteLevel)
			if tech != tt.wantTech {
				t.Errorf("technique = %q, want %q", tech, tt.wantTech)
			}
			if mult != tt.wantMult {
				t.Errorf("multiplier = %v, want %v", mult, tt.wantMult)
			}
		})
	}
}

// TestConvertTechnique tests ingress conversion selection.
func TestConvertTechnique(t *testing.T) {
	tests := []struct {
		source   host.ColorSpace
		wantTech string
		wantMult float32
	}{
		{host.SpaceSRGB, TechConvert, 1},
		{host.SpaceSRGB16F, TechConvert, 1},
		{host.SpaceRec709Extended, TechConvertTonemap, 1},
		{host.SpaceRec709SCRGB, TechConvertScaleTonemap, refWhite / testWhiteLevel},
	}

	for _, tt := range tests {
		t.Run(tt.source.String(), func(t *testing.T) {
			tech, mult := ConvertTechnique(tt.source, testWhiteLevel)
			if tech != tt.wantTech {
				t.Errorf("technique = %q, want %q", tech, tt.wantTech)
			}
			if mult != tt.wantMult {
				t.Errorf("multiplier = %v, want %v", mult, tt.wantMult)
			}
		})
	}
}
