package vfx

import "fmt"

// ScaleFactor is the requested output scale of the enhancement stage.
type ScaleFactor int

const (
	// ScaleNone keeps the source resolution. Used internally when the
	// enhancement stage is disabled; not user-selectable.
	ScaleNone ScaleFactor = iota

	// Scale133x scales by 4/3.
	Scale133x

	// Scale15x scales by 3/2.
	Scale15x

	// Scale2x doubles each dimension.
	Scale2x

	// Scale3x triples each dimension.
	Scale3x

	// Scale4x quadruples each dimension.
	Scale4x

	numScaleFactors
)

// String returns a human-readable name for the scale factor.
func (f ScaleFactor) String() string {
	switch f {
	case ScaleNone:
		return "1x"
	case Scale133x:
		return "1.33x"
	case Scale15x:
		return "1.5x"
	case Scale2x:
		return "2x"
	case Scale3x:
		return "3x"
	case Scale4x:
		return "4x"
	default:
		return fmt.Sprintf("Unknown(%d)", int(f))
	}
}

// Valid reports whether f is a known scale factor.
func (f ScaleFactor) Valid() bool {
	return f >= ScaleNone && f < numScaleFactors
}

// Ratio returns the linear scale ratio for each dimension.
// Unknown factors return 1.
func (f ScaleFactor) Ratio() float64 {
	switch f {
	case Scale133x:
		return 4.0 / 3.0
	case Scale15x:
		return 1.5
	case Scale2x:
		return 2
	case Scale3x:
		return 3
	case Scale4x:
		return 4
	default:
		return 1
	}
}

// Stable reports whether the factor reliably produces resolutions the
// enhancement stages accept. The 4/3 factor frequently rounds to sizes
// the runtime rejects, so hosts may want to hide it.
func (f ScaleFactor) Stable() bool {
	return f.Valid() && f != Scale133x
}

// ScaleFactors returns the user-selectable scale factors in ascending
// order. ScaleNone is excluded; it is an internal identity factor.
func ScaleFactors() []ScaleFactor {
	return []ScaleFactor{Scale133x, Scale15x, Scale2x, Scale3x, Scale4x}
}

// sizeBounds holds the {min, max} input {width, height} accepted per
// scale factor. The bounds use 16:9 reference resolutions; non-16:9
// sources are accepted as long as both dimensions fall inside the
// rectangle for the selected factor.
var sizeBounds = [numScaleFactors][2][2]uint32{
	ScaleNone: {{160, 90}, {1920, 1080}},
	Scale133x: {{160, 90}, {3840, 2160}},
	Scale15x:  {{160, 90}, {3840, 2160}},
	Scale2x:   {{160, 90}, {1920, 1080}},
	Scale3x:   {{160, 90}, {1280, 720}},
	Scale4x:   {{160, 90}, {960, 540}},
}

// MaxInput returns the largest input dimensions the factor accepts.
// Buffer pools allocate at this footprint so that resizes within the
// factor's range reallocate in place instead of growing storage.
// An unknown factor returns zero dimensions.
func MaxInput(f ScaleFactor) (w, h uint32) {
	if !f.Valid() {
		return 0, 0
	}
	return sizeBounds[f][1][0], sizeBounds[f][1][1]
}

// ScaleOutput computes the output dimensions for the given scale factor,
// rounding each dimension to the nearest integer.
func ScaleOutput(f ScaleFactor, inW, inH uint32) (outW, outH uint32) {
	r := f.Ratio()
	outW = uint32(float64(inW)*r + 0.5)
	outH = uint32(float64(inH)*r + 0.5)
	return outW, outH
}

// ValidateSize reports whether the input size is processable at the given
// scale factor. It fails when integer rounding broke the aspect ratio
// (inW*outH != inH*outW) or when the input falls outside the factor's
// bound table. An unknown factor is itself invalid.
//
// ValidateSize is pure and must pass before any buffer allocation; a
// false result freezes the pipeline's output size at its last valid
// value.
func ValidateSize(f ScaleFactor, inW, inH, outW, outH uint32) bool {
	if !f.Valid() {
		return false
	}

	// Aspect ratio must survive integer rounding exactly.
	if inW*outH != inH*outW {
		return false
	}

	minW := sizeBounds[f][0][0]
	minH := sizeBounds[f][0][1]
	maxW := sizeBounds[f][1][0]
	maxH := sizeBounds[f][1][1]

	return inW >= minW && inW <= maxW && inH >= minH && inH <= maxH
}
