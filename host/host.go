// Package host declares the contracts a compositor implements to embed
// a vfx pipeline.
//
// The pipeline RECEIVES everything GPU-related from the host: the device,
// the source frames, and the textures it renders into. It never creates
// a device of its own. This mirrors the integration contract used across
// the GoGPU stack, where libraries borrow the application's device
// through gpucontext.DeviceProvider.
package host

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DeviceHandle provides GPU device access from the host application.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider, providing a
// vfx-specific name for the interface while staying compatible with the
// gpucontext ecosystem.
type DeviceHandle = gpucontext.DeviceProvider

// Texture is a GPU texture owned by the host compositor.
//
// The pipeline binds runtime images to host textures for frame ingress
// and egress. Texture identity may change across source resizes; the
// pipeline re-binds rather than reallocating when it does.
type Texture interface {
	// Width returns the texture width in pixels.
	Width() uint32

	// Height returns the texture height in pixels.
	Height() uint32

	// Format returns the texture pixel format.
	Format() gputypes.TextureFormat

	// Native returns the backend texture object for runtime interop
	// (e.g. a D3D11 texture pointer or a wgpu texture ID). The runtime
	// image binding layer is the only consumer.
	Native() any
}

// TextureFactory creates textures on the host's graphics context. The
// pipeline uses it for the final output texture; calls are only valid on
// the render thread, which owns graphics-context access.
type TextureFactory interface {
	// CreateTexture creates a texture of the given shape and format.
	CreateTexture(width, height uint32, format gputypes.TextureFormat) (Texture, error)
}

// Source is one attached video source, as seen by its pipeline instance.
//
// All methods are called from the host's render thread.
type Source interface {
	// BaseSize returns the current upstream size. Zero dimensions mean
	// the source is not yet delivering frames; the pipeline idles.
	BaseSize() (width, height uint32)

	// Async reports whether the source delivers frames asynchronously.
	// Async sources are only processed on the NewFrame edge; synchronous
	// sources are processed every render pass.
	Async() bool

	// NewFrame reports whether a new frame arrived since the last call.
	// Edge-triggered: reading it consumes the flag.
	NewFrame() bool

	// ColorSpace negotiates the working color space against the
	// pipeline's preferred list.
	ColorSpace(preferred []ColorSpace) ColorSpace

	// RenderFrame renders the current frame in the given color space and
	// returns the raw 8-bit RGBA ingress texture, or nil while the
	// source has nothing to show yet.
	RenderFrame(space ColorSpace) Texture

	// SkipOutput tells the host to pass the source through unmodified
	// for this render pass.
	SkipOutput()
}
