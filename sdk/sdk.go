package sdk

import "github.com/gogpu/vfx/host"

// Selector names an effect implementation inside the runtime. The
// runtime's Info string lists the selectors it supports on the current
// GPU and driver.
type Selector string

const (
	// EffectArtifactReduction removes compression artifacts at the
	// source resolution.
	EffectArtifactReduction Selector = "ArtifactReduction"

	// EffectSuperRes is the neural super-resolution effect.
	EffectSuperRes Selector = "SuperRes"

	// EffectUpscale is the fast non-neural upscaling effect.
	EffectUpscale Selector = "SRUpscale"
)

// Runtime is the entry point to the video-effects engine. A Runtime is
// process-wide and safe to share across pipeline instances; the objects
// it creates are not.
type Runtime interface {
	// Info returns the runtime description string. The string contains
	// the supported effect selectors; Probe parses it into Capabilities.
	Info() (string, Status)

	// CreateStream creates an ordered compute stream. All effect runs
	// and transfers of one pipeline instance are issued on one stream,
	// which orders them causally without host-side synchronization.
	CreateStream() (Stream, Status)

	// CreateEffect instantiates an effect handle. The handle is inert
	// until parameters are bound and Load succeeds.
	CreateEffect(sel Selector) (Effect, Status)

	// CreateImage creates an unallocated GPU image descriptor. Call
	// Image.Alloc or Image.BindTexture before using it in a transfer.
	CreateImage(desc ImageDesc) (Image, Status)

	// Transfer copies src into dst, converting format and value range as
	// needed. scale multiplies component values (e.g. 1/255 into a
	// normalized float image, 255 back out). staging provides scratch
	// space for cross-format conversions and must be at least as large
	// as the larger endpoint.
	Transfer(src, dst Image, scale float32, stream Stream, staging Image) Status
}

// Stream is an ordered GPU compute stream.
type Stream interface {
	// Destroy releases the stream. Destroy is idempotent.
	Destroy() Status
}

// Effect is an opaque effect handle.
//
// Lifecycle: create, bind stream and parameters, set input/output images,
// Load (expensive model compile), then Run once per frame. Any parameter
// or image rebinding after Load requires a reload.
type Effect interface {
	// SetModelDir points the effect at its model assets. Required by
	// effects that load neural models; a no-op for the rest.
	SetModelDir(dir string) Status

	// SetStream binds the compute stream the effect runs on.
	SetStream(s Stream) Status

	// SetMode selects the effect intensity variant.
	SetMode(mode uint32) Status

	// SetStrength sets the effect strength scalar in [0, 1].
	SetStrength(v float32) Status

	// SetInput binds the effect's input image.
	SetInput(img Image) Status

	// SetOutput binds the effect's output image.
	SetOutput(img Image) Status

	// Load compiles and loads the effect for the currently bound images
	// and parameters. StatusErrResolution means this resolution/settings
	// combination is unsupported; the effect stays unloaded.
	Load() Status

	// Run executes the effect on the bound stream. Blocking; returns
	// when the work is queued or failed. StatusErrGPU is transient.
	Run() Status

	// Destroy releases the handle. Destroy is idempotent.
	Destroy() Status
}

// Image is a GPU-resident image owned by the runtime, or a descriptor
// bound to a host texture.
type Image interface {
	// Desc returns the current shape and format.
	Desc() ImageDesc

	// Alloc allocates backing storage for the current descriptor.
	// Valid only once, on a freshly created image.
	Alloc() Status

	// Realloc resizes and reformats the image in place. On failure the
	// previous storage remains valid.
	Realloc(desc ImageDesc) Status

	// BindTexture re-associates the image with a host-owned GPU texture.
	// The image becomes a view over the texture; no storage is owned.
	BindTexture(tex host.Texture) Status

	// Map makes a texture-bound image accessible to compute work on the
	// given stream. Must be paired with Unmap around transfers.
	Map(s Stream) Status

	// Unmap releases compute access acquired by Map.
	Unmap(s Stream) Status

	// Destroy releases owned storage. Destroy is idempotent and never
	// destroys a bound host texture.
	Destroy() Status
}
