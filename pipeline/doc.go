// Package pipeline orchestrates the per-source enhancement pipeline.
//
// A Pipeline owns one compute stream, up to three effect stages
// (artifact reduction, super resolution, fast upscaling) and the GPU
// image chain connecting them. The host drives it with two calls per
// frame: Tick on the video thread for size tracking and validation, and
// Render on the render thread for all GPU work. Nothing in this package
// is safe for concurrent use; each pipeline instance belongs to the
// render thread that created it.
//
// Failure handling is class-driven. Every error leaving the sdk layer is
// wrapped in a vfx.PipelineError and the orchestrator alone interprets
// the class: transient GPU failures trigger a soft reset and drop the
// frame, resolution rejections disable the offending stage and raise its
// warning, and everything else stops the pipeline for good.
package pipeline
