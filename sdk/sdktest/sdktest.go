// Package sdktest provides an in-memory software implementation of the
// sdk interfaces for testing.
//
// The runtime records every call and lets tests inject status codes at
// each boundary (effect creation, load, run, allocation, transfer).
// Images carry real pixel storage and transfers perform a software copy
// or scale, so orchestration tests exercise the same shapes a GPU
// runtime would see.
package sdktest

import (
	"fmt"
	"image"
	"sync"

	"golang.org/x/image/draw"

	"github.com/gogpu/vfx/host"
	"github.com/gogpu/vfx/sdk"
)

// InfoAll is the probe string reporting every effect selector.
var InfoAll = fmt.Sprintf("%s %s %s",
	sdk.EffectArtifactReduction, sdk.EffectSuperRes, sdk.EffectUpscale)

// TransferRecord captures one Transfer call.
type TransferRecord struct {
	Src     *Image
	Dst     *Image
	Scale   float32
	Staging *Image
}

// Runtime is a software sdk.Runtime for tests.
//
// The zero value is not usable; call New. Fields are exported so tests
// can inject failures and inspect recorded activity directly.
type Runtime struct {
	mu sync.Mutex

	// InfoString and InfoStatus are returned by Info.
	InfoString string
	InfoStatus sdk.Status

	// CreateEffectStatus, when set for a selector, fails CreateEffect.
	CreateEffectStatus map[sdk.Selector]sdk.Status

	// StreamStatus fails CreateStream when non-success.
	StreamStatus sdk.Status

	// ImageStatus fails CreateImage when non-success.
	ImageStatus sdk.Status

	// TransferStatus fails Transfer when non-success.
	TransferStatus sdk.Status

	// Calls records the call sequence, e.g. "CreateStream",
	// "CreateEffect(SuperRes)", "Transfer(x1)".
	Calls []string

	// Streams, Effects, and Images are every object created, in order.
	Streams []*Stream
	Effects []*Effect
	Images  []*Image

	// Transfers records every Transfer call.
	Transfers []TransferRecord
}

// New creates a runtime that supports every effect.
func New() *Runtime {
	return &Runtime{
		InfoString:         InfoAll,
		CreateEffectStatus: make(map[sdk.Selector]sdk.Status),
	}
}

func (r *Runtime) record(call string) {
	r.Calls = append(r.Calls, call)
}

// Info implements sdk.Runtime.
func (r *Runtime) Info() (string, sdk.Status) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("Info")
	if !r.InfoStatus.Ok() {
		return "", r.InfoStatus
	}
	return r.InfoString, sdk.StatusSuccess
}

// CreateStream implements sdk.Runtime.
func (r *Runtime) CreateStream() (sdk.Stream, sdk.Status) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("CreateStream")
	if !r.StreamStatus.Ok() {
		return nil, r.StreamStatus
	}
	s := &Stream{}
	r.Streams = append(r.Streams, s)
	return s, sdk.StatusSuccess
}

// CreateEffect implements sdk.Runtime.
func (r *Runtime) CreateEffect(sel sdk.Selector) (sdk.Effect, sdk.Status) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record(fmt.Sprintf("CreateEffect(%s)", sel))
	if st, ok := r.CreateEffectStatus[sel]; ok && !st.Ok() {
		return nil, st
	}
	e := &Effect{Selector: sel}
	r.Effects = append(r.Effects, e)
	return e, sdk.StatusSuccess
}

// CreateImage implements sdk.Runtime.
func (r *Runtime) CreateImage(desc sdk.ImageDesc) (sdk.Image, sdk.Status) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record(fmt.Sprintf("CreateImage(%s)", desc))
	if !r.ImageStatus.Ok() {
		return nil, r.ImageStatus
	}
	img := &Image{desc: desc}
	r.Images = append(r.Images, img)
	return img, sdk.StatusSuccess
}

// Transfer implements sdk.Runtime. When both endpoints carry pixel
// storage the transfer performs a software copy, scaling through
// x/image/draw when the shapes differ.
func (r *Runtime) Transfer(src, dst sdk.Image, scale float32, stream sdk.Stream, staging sdk.Image) sdk.Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record(fmt.Sprintf("Transfer(x%g)", scale))
	if !r.TransferStatus.Ok() {
		return r.TransferStatus
	}

	s, _ := src.(*Image)
	d, _ := dst.(*Image)
	g, _ := staging.(*Image)
	if s == nil || d == nil {
		return sdk.StatusErrParameter
	}
	r.Transfers = append(r.Transfers, TransferRecord{Src: s, Dst: d, Scale: scale, Staging: g})

	if s.Pix != nil && d.Pix != nil {
		if s.desc.Width == d.desc.Width && s.desc.Height == d.desc.Height {
			draw.Copy(d.Pix, image.Point{}, s.Pix, s.Pix.Bounds(), draw.Src, nil)
		} else {
			draw.ApproxBiLinear.Scale(d.Pix, d.Pix.Bounds(), s.Pix, s.Pix.Bounds(), draw.Src, nil)
		}
	}

	return sdk.StatusSuccess
}

// Stream is a software compute stream.
type Stream struct {
	// Destroyed counts Destroy calls.
	Destroyed int
}

// Destroy implements sdk.Stream.
func (s *Stream) Destroy() sdk.Status {
	s.Destroyed++
	return sdk.StatusSuccess
}

// Effect is a software effect handle that records parameter binding and
// lets tests inject load/run outcomes.
type Effect struct {
	// Selector identifies which effect this handle is.
	Selector sdk.Selector

	// Injected outcomes. LoadStatus applies to every Load; RunStatuses
	// is consumed one per Run, falling back to success when exhausted.
	LoadStatus  sdk.Status
	RunStatuses []sdk.Status

	// Recorded state.
	ModelDir  string
	Stream    sdk.Stream
	Mode      uint32
	Strength  float32
	Input     sdk.Image
	Output    sdk.Image
	Loads     int
	Runs      int
	Destroyed int
}

// SetModelDir implements sdk.Effect.
func (e *Effect) SetModelDir(dir string) sdk.Status {
	e.ModelDir = dir
	return sdk.StatusSuccess
}

// SetStream implements sdk.Effect.
func (e *Effect) SetStream(s sdk.Stream) sdk.Status {
	e.Stream = s
	return sdk.StatusSuccess
}

// SetMode implements sdk.Effect.
func (e *Effect) SetMode(mode uint32) sdk.Status {
	e.Mode = mode
	return sdk.StatusSuccess
}

// SetStrength implements sdk.Effect.
func (e *Effect) SetStrength(v float32) sdk.Status {
	e.Strength = v
	return sdk.StatusSuccess
}

// SetInput implements sdk.Effect.
func (e *Effect) SetInput(img sdk.Image) sdk.Status {
	e.Input = img
	return sdk.StatusSuccess
}

// SetOutput implements sdk.Effect.
func (e *Effect) SetOutput(img sdk.Image) sdk.Status {
	e.Output = img
	return sdk.StatusSuccess
}

// Load implements sdk.Effect.
func (e *Effect) Load() sdk.Status {
	e.Loads++
	return e.LoadStatus
}

// Run implements sdk.Effect. Each call consumes the next injected status.
func (e *Effect) Run() sdk.Status {
	e.Runs++
	if len(e.RunStatuses) > 0 {
		st := e.RunStatuses[0]
		e.RunStatuses = e.RunStatuses[1:]
		return st
	}
	return sdk.StatusSuccess
}

// Destroy implements sdk.Effect.
func (e *Effect) Destroy() sdk.Status {
	e.Destroyed++
	return sdk.StatusSuccess
}

// Image is a software image with optional pixel storage.
type Image struct {
	desc sdk.ImageDesc

	// Pix is the backing pixels, allocated by Alloc and Realloc. The
	// stub stores every format as RGBA; format fidelity is not the
	// point, shape and sequencing are.
	Pix *image.RGBA

	// Bound is the host texture from the last BindTexture.
	Bound host.Texture

	// Injected failures.
	AllocStatus   sdk.Status
	ReallocStatus sdk.Status

	// Recorded state.
	Allocs    int
	Reallocs  int
	Maps      int
	Unmaps    int
	Destroyed int

	// DescHistory records every shape the image has had.
	DescHistory []sdk.ImageDesc
}

// Desc implements sdk.Image.
func (i *Image) Desc() sdk.ImageDesc {
	return i.desc
}

// Alloc implements sdk.Image.
func (i *Image) Alloc() sdk.Status {
	i.Allocs++
	if !i.AllocStatus.Ok() {
		return i.AllocStatus
	}
	i.Pix = image.NewRGBA(image.Rect(0, 0, int(i.desc.Width), int(i.desc.Height)))
	i.DescHistory = append(i.DescHistory, i.desc)
	return sdk.StatusSuccess
}

// Realloc implements sdk.Image. On injected failure the previous storage
// and descriptor are preserved, matching the contract.
func (i *Image) Realloc(desc sdk.ImageDesc) sdk.Status {
	i.Reallocs++
	if !i.ReallocStatus.Ok() {
		return i.ReallocStatus
	}
	i.desc = desc
	i.Pix = image.NewRGBA(image.Rect(0, 0, int(desc.Width), int(desc.Height)))
	i.DescHistory = append(i.DescHistory, desc)
	return sdk.StatusSuccess
}

// BindTexture implements sdk.Image.
func (i *Image) BindTexture(tex host.Texture) sdk.Status {
	i.Bound = tex
	i.desc.Width = tex.Width()
	i.desc.Height = tex.Height()
	i.Pix = image.NewRGBA(image.Rect(0, 0, int(tex.Width()), int(tex.Height())))
	return sdk.StatusSuccess
}

// Map implements sdk.Image.
func (i *Image) Map(sdk.Stream) sdk.Status {
	i.Maps++
	return sdk.StatusSuccess
}

// Unmap implements sdk.Image.
func (i *Image) Unmap(sdk.Stream) sdk.Status {
	i.Unmaps++
	return sdk.StatusSuccess
}

// Destroy implements sdk.Image.
func (i *Image) Destroy() sdk.Status {
	i.Destroyed++
	i.Pix = nil
	return sdk.StatusSuccess
}
