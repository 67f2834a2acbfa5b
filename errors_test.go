package vfx

import (
	"errors"
	"fmt"
	"testing"
)

// TestPipelineErrorClassOf tests classification extraction.
func TestPipelineErrorClassOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorClass
	}{
		{"fatal", &PipelineError{Class: ClassFatal, Op: "stream/create"}, ClassFatal},
		{"stage invalid", &PipelineError{Class: ClassStageInvalid, Op: "stage/load"}, ClassStageInvalid},
		{"transient", &PipelineError{Class: ClassTransient, Op: "stage/run"}, ClassTransient},
		{"wrapped", fmt.Errorf("frame: %w", &PipelineError{Class: ClassTransient, Op: "stage/run"}), ClassTransient},
		{"unclassified is fatal", errors.New("boom"), ClassFatal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassOf(tt.err); got != tt.want {
				t.Errorf("ClassOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestPipelineErrorUnwrap tests cause chaining.
func TestPipelineErrorUnwrap(t *testing.T) {
	cause := errors.New("allocator failed")
	err := &PipelineError{Class: ClassFatal, Op: "buffer/ensure", Err: cause}

	if !errors.Is(err, cause) {
		t.Error("errors.Is did not find the cause")
	}
	if !Fatal(err) {
		t.Error("Fatal() = false for a fatal error")
	}
	if Fatal(&PipelineError{Class: ClassTransient, Op: "stage/run"}) {
		t.Error("Fatal() = true for a transient error")
	}
}

// TestPipelineErrorMessage tests message formatting with and without a
// cause.
func TestPipelineErrorMessage(t *testing.T) {
	withCause := &PipelineError{Class: ClassFatal, Op: "stage/create", Err: errors.New("no memory")}
	if got, want := withCause.Error(), "vfx: stage/create: Fatal: no memory"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	noCause := &PipelineError{Class: ClassValidation, Op: "tick/validate"}
	if got, want := noCause.Error(), "vfx: tick/validate: Validation"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
