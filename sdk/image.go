package sdk

import "fmt"

// PixelFormat is the channel ordering of a runtime image.
type PixelFormat uint8

const (
	// FormatBGR is three-channel BGR, used by the neural stages.
	FormatBGR PixelFormat = iota

	// FormatRGBA is four-channel RGBA, the host interchange format.
	FormatRGBA
)

// String returns a human-readable name for the format.
func (f PixelFormat) String() string {
	switch f {
	case FormatBGR:
		return "BGR"
	case FormatRGBA:
		return "RGBA"
	default:
		return fmt.Sprintf("Unknown(%d)", f)
	}
}

// Channels returns the number of channels per pixel.
func (f PixelFormat) Channels() int {
	switch f {
	case FormatBGR:
		return 3
	case FormatRGBA:
		return 4
	default:
		return 0
	}
}

// ComponentType is the storage type of one image component.
type ComponentType uint8

const (
	// ComponentU8 is an unnormalized 8-bit component.
	ComponentU8 ComponentType = iota

	// ComponentF32 is a 32-bit float component, typically in [0, 1].
	ComponentF32
)

// String returns a human-readable name for the component type.
func (c ComponentType) String() string {
	switch c {
	case ComponentU8:
		return "U8"
	case ComponentF32:
		return "F32"
	default:
		return fmt.Sprintf("Unknown(%d)", c)
	}
}

// Size returns the component size in bytes.
func (c ComponentType) Size() int {
	switch c {
	case ComponentU8:
		return 1
	case ComponentF32:
		return 4
	default:
		return 0
	}
}

// Layout is the memory arrangement of image components.
type Layout uint8

const (
	// LayoutChunky interleaves components per pixel (RGBARGBA...).
	LayoutChunky Layout = iota

	// LayoutPlanar stores each channel as a contiguous plane.
	LayoutPlanar
)

// String returns a human-readable name for the layout.
func (l Layout) String() string {
	switch l {
	case LayoutChunky:
		return "Chunky"
	case LayoutPlanar:
		return "Planar"
	default:
		return fmt.Sprintf("Unknown(%d)", l)
	}
}

// ImageDesc describes the shape and format of a runtime image.
type ImageDesc struct {
	// Width and Height are the image dimensions in pixels.
	Width  uint32
	Height uint32

	// Format is the channel ordering.
	Format PixelFormat

	// Component is the per-channel storage type.
	Component ComponentType

	// Layout is chunky or planar.
	Layout Layout

	// Alignment is the row alignment in bytes. 0 uses the runtime
	// default; 1 packs rows tightly.
	Alignment uint32
}

// String returns a compact description, e.g. "1920x1080 BGR/F32/Planar a1".
func (d ImageDesc) String() string {
	return fmt.Sprintf("%dx%d %s/%s/%s a%d",
		d.Width, d.Height, d.Format, d.Component, d.Layout, d.Alignment)
}

// PixelBytes returns the storage size of one pixel in bytes.
func (d ImageDesc) PixelBytes() int {
	return d.Format.Channels() * d.Component.Size()
}

// ByteSize returns the unpadded storage size of the whole image.
func (d ImageDesc) ByteSize() uint64 {
	return uint64(d.Width) * uint64(d.Height) * uint64(d.PixelBytes())
}

// SameFormat reports whether two descriptors agree on everything except
// dimensions. Transfers between same-format images never convert.
func (d ImageDesc) SameFormat(o ImageDesc) bool {
	return d.Format == o.Format && d.Component == o.Component && d.Layout == o.Layout
}
