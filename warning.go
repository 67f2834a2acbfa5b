package vfx

import "strings"

// Warning identifies a user-visible pipeline warning. Warnings map to
// visibility flags on host configuration fields; the host polls the
// active set after each tick and shows or hides the matching widgets.
type Warning uint8

const (
	// WarningSizeInvalid means the source resolution failed validation
	// for the selected scale factor. Output is frozen at the last valid
	// size until the source recovers.
	WarningSizeInvalid Warning = 1 << iota

	// WarningARResolution means the artifact reduction stage rejected
	// the current resolution and has been disabled.
	WarningARResolution

	// WarningSRResolution means the enhancement stage rejected the
	// current resolution and settings combination and has been disabled.
	WarningSRResolution
)

// String returns a human-readable name for the warning flag set.
func (w Warning) String() string {
	if w == 0 {
		return "none"
	}

	var parts []string
	if w&WarningSizeInvalid != 0 {
		parts = append(parts, "SizeInvalid")
	}
	if w&WarningARResolution != 0 {
		parts = append(parts, "ARResolution")
	}
	if w&WarningSRResolution != 0 {
		parts = append(parts, "SRResolution")
	}
	return strings.Join(parts, "|")
}

// Warnings is an edge-triggered warning set. Raising an already-active
// warning or clearing an inactive one is a no-op, so callers can drive
// it every tick without flicker: a warning fires exactly once per
// false→true transition and clears exactly once per true→false.
//
// The zero value is an empty set ready for use. Warnings is not
// synchronized; it is owned by the pipeline's render thread.
type Warnings struct {
	active Warning
}

// Raise activates w. It returns true only on the inactive→active edge.
func (s *Warnings) Raise(w Warning) bool {
	if s.active&w == w {
		return false
	}
	s.active |= w
	return true
}

// Clear deactivates w. It returns true only on the active→inactive edge.
func (s *Warnings) Clear(w Warning) bool {
	if s.active&w == 0 {
		return false
	}
	s.active &^= w
	return true
}

// Active reports whether every flag in w is currently raised.
func (s *Warnings) Active(w Warning) bool {
	return s.active&w == w
}

// All returns the currently active warning flags.
func (s *Warnings) All() Warning {
	return s.active
}
