package sdktest

import "github.com/gogpu/gputypes"

// Texture is a fake host texture for binding tests.
type Texture struct {
	W, H uint32
	Fmt  gputypes.TextureFormat
}

// NewTexture creates an RGBA8 fake texture.
func NewTexture(w, h uint32) *Texture {
	return &Texture{W: w, H: h, Fmt: gputypes.TextureFormatRGBA8Unorm}
}

// Width implements host.Texture.
func (t *Texture) Width() uint32 { return t.W }

// Height implements host.Texture.
func (t *Texture) Height() uint32 { return t.H }

// Format implements host.Texture.
func (t *Texture) Format() gputypes.TextureFormat { return t.Fmt }

// Native implements host.Texture.
func (t *Texture) Native() any { return t }
