// Package vfx provides a real-time GPU video enhancement pipeline for the
// GoGPU ecosystem.
//
// # Overview
//
// vfx wraps GPU-resident neural effect stages (artifact reduction and
// super-resolution/upscaling) into a per-source pipeline that a host
// compositor drives once per scheduler tick. The package owns the hard
// parts: the chain of GPU image buffers that feed the stages in the
// correct pixel format, the load/reload state machine for each stage,
// and recovery from transient GPU failures without tearing the pipeline
// down.
//
// # Architecture
//
// The module is organized into:
//   - vfx (this package): settings, capabilities, resolution validation,
//     warnings, and the error taxonomy
//   - host: contracts the embedding compositor implements (frame source,
//     textures, device handle)
//   - sdk: the boundary to the opaque video-effects runtime
//   - pipeline: the per-source pipeline instance
//   - shader: color-space draw/convert technique selection
//
// # Quick Start
//
//	caps, err := sdk.Probe(runtime)
//	if err != nil {
//	    // runtime unavailable, leave sources untouched
//	}
//	p, err := pipeline.New(pipeline.Config{
//	    Source:   src,
//	    Runtime:  runtime,
//	    Caps:     caps,
//	    Settings: vfx.DefaultSettings(caps),
//	    ModelDir: modelDir,
//	})
//	// each scheduler tick:
//	p.Tick()
//	// each render pass:
//	p.Render()
//
// # Threading
//
// A pipeline instance is single-threaded by contract: the host serializes
// Tick, Render, Update, and Close onto one render thread, matching the
// compositor scheduling model. Close is queued behind any in-flight frame
// rather than executed inline.
package vfx
