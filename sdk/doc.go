// Package sdk defines the boundary to the GPU video-effects runtime.
//
// The runtime is an opaque, vendor-provided engine that owns the neural
// effect implementations, the compute stream, and GPU image storage. vfx
// never models what happens inside an effect; it only sequences effect
// handles, image buffers, and format-converting transfers through the
// interfaces declared here.
//
// The package follows the backend pattern used across the GoGPU stack:
// the host selects and constructs a concrete Runtime (typically a cgo
// binding to the vendor SDK) and injects it into each pipeline instance.
//
// All operations report a Status rather than an error: status codes
// carry the recovery semantics (resolution rejection, GPU execution
// failure, missing library) that the pipeline's error supervisor
// classifies. Use Status.Err to bridge into Go error handling.
package sdk
