// Package imgbuf manages the lifecycle of GPU-resident runtime images.
//
// A Buffer owns at most one sdk.Image and is the only writer of its
// shape. Free-standing buffers are created once and reallocated in place
// as the pipeline resizes, never destroy-and-recreated, which avoids
// churn-induced allocation stalls. Bound buffers wrap a host-owned
// texture and are re-associated, not reallocated, when the texture
// identity changes.
package imgbuf

import (
	"errors"
	"fmt"

	"github.com/gogpu/vfx"
	"github.com/gogpu/vfx/host"
	"github.com/gogpu/vfx/sdk"
)

// Package errors for imgbuf.
var (
	// ErrNilRuntime is returned when operating without a runtime.
	ErrNilRuntime = errors.New("imgbuf: runtime is nil")

	// ErrNilTexture is returned when binding a nil host texture.
	ErrNilTexture = errors.New("imgbuf: host texture is nil")
)

// Buffer is a managed GPU image slot. The zero value is an empty slot;
// Ensure or BindTexture populates it lazily.
type Buffer struct {
	img   sdk.Image
	desc  sdk.ImageDesc
	bound host.Texture
}

// Valid reports whether the slot holds an image.
func (b *Buffer) Valid() bool {
	return b.img != nil
}

// Image returns the underlying runtime image, or nil for an empty slot.
func (b *Buffer) Image() sdk.Image {
	return b.img
}

// Desc returns the last shape applied to the buffer. Meaningful only
// while Valid.
func (b *Buffer) Desc() sdk.ImageDesc {
	return b.desc
}

// BoundTexture returns the host texture the buffer mirrors, or nil for
// free-standing buffers.
func (b *Buffer) BoundTexture() host.Texture {
	return b.bound
}

// Ensure makes the buffer match desc, allocating on first use.
//
// maxW and maxH request a maximal-footprint first allocation: the image
// is created and allocated at max(desc, max) and then reallocated down
// to desc. A later Ensure back up to the maximal size then reuses the
// original backing storage instead of growing it. Pass zero for a plain
// allocation.
//
// An existing buffer is reallocated in place. A failed reallocation
// leaves the previous storage and descriptor intact; the caller must
// halt the current operation rather than continue transferring through
// a stale shape.
func (b *Buffer) Ensure(rt sdk.Runtime, desc sdk.ImageDesc, maxW, maxH uint32) error {
	if rt == nil {
		return ErrNilRuntime
	}

	if b.img != nil {
		if st := b.img.Realloc(desc); !st.Ok() {
			return fmt.Errorf("imgbuf: realloc %s: %w", desc, st.Err())
		}
		b.desc = desc
		return nil
	}

	createDesc := desc
	if maxW > createDesc.Width {
		createDesc.Width = maxW
	}
	if maxH > createDesc.Height {
		createDesc.Height = maxH
	}

	img, st := rt.CreateImage(createDesc)
	if !st.Ok() {
		return fmt.Errorf("imgbuf: create %s: %w", createDesc, st.Err())
	}
	if st := img.Alloc(); !st.Ok() {
		img.Destroy()
		return fmt.Errorf("imgbuf: alloc %s: %w", createDesc, st.Err())
	}

	// Size down to the target after the maximal allocation so the slot
	// reports the working shape while the storage keeps the maximal
	// footprint.
	if createDesc != desc {
		if st := img.Realloc(desc); !st.Ok() {
			img.Destroy()
			return fmt.Errorf("imgbuf: realloc %s: %w", desc, st.Err())
		}
	}

	b.img = img
	b.desc = desc

	vfx.Logger().Debug("image buffer allocated",
		"desc", desc.String(),
		"maxW", maxW,
		"maxH", maxH)

	return nil
}

// BindTexture associates the buffer with a host-owned GPU texture,
// creating the image descriptor lazily on first use. The buffer becomes
// a view over the texture: no storage is owned, and a changed texture
// identity re-binds instead of reallocating.
func (b *Buffer) BindTexture(rt sdk.Runtime, desc sdk.ImageDesc, tex host.Texture) error {
	if rt == nil {
		return ErrNilRuntime
	}
	if tex == nil {
		return ErrNilTexture
	}

	if b.img == nil {
		img, st := rt.CreateImage(desc)
		if !st.Ok() {
			return fmt.Errorf("imgbuf: create %s: %w", desc, st.Err())
		}
		b.img = img
	}

	if st := b.img.BindTexture(tex); !st.Ok() {
		return fmt.Errorf("imgbuf: bind texture: %w", st.Err())
	}

	b.bound = tex
	b.desc = desc
	b.desc.Width = tex.Width()
	b.desc.Height = tex.Height()

	return nil
}

// Map makes a texture-bound buffer accessible to compute work on the
// stream. Pair with Unmap around the transfer.
func (b *Buffer) Map(stream sdk.Stream) error {
	if st := b.img.Map(stream); !st.Ok() {
		return fmt.Errorf("imgbuf: map: %w", st.Err())
	}
	return nil
}

// Unmap releases compute access acquired by Map.
func (b *Buffer) Unmap(stream sdk.Stream) error {
	if st := b.img.Unmap(stream); !st.Ok() {
		return fmt.Errorf("imgbuf: unmap: %w", st.Err())
	}
	return nil
}

// Destroy releases the buffer's image. Idempotent; bound host textures
// are never destroyed, only the wrapping descriptor.
func (b *Buffer) Destroy() {
	if b.img == nil {
		return
	}
	b.img.Destroy()
	b.img = nil
	b.bound = nil
	b.desc = sdk.ImageDesc{}
}
