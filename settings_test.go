package vfx

import "testing"

// TestDefaultSettings tests stage selection against capabilities.
func TestDefaultSettings(t *testing.T) {
	tests := []struct {
		name string
		caps Capabilities
		want StageType
	}{
		{"all supported", Capabilities{ArtifactReduction: true, SuperRes: true, Upscale: true}, StageSuperRes},
		{"upscale only", Capabilities{Upscale: true}, StageUpscale},
		{"ar only", Capabilities{ArtifactReduction: true}, StageNone},
		{"nothing", Capabilities{}, StageNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings(tt.caps)
			if s.Stage != tt.want {
				t.Errorf("Stage = %v, want %v", s.Stage, tt.want)
			}
			if s.Scale != Scale15x {
				t.Errorf("Scale = %v, want %v", s.Scale, Scale15x)
			}
			if s.Strength != DefaultStrength {
				t.Errorf("Strength = %v, want %v", s.Strength, float32(DefaultStrength))
			}
			if s.ARMode != ModeWeak || s.SRMode != ModeWeak {
				t.Error("expected weak default modes")
			}
		})
	}
}

// TestCapabilitiesSupports tests stage gating.
func TestCapabilitiesSupports(t *testing.T) {
	caps := Capabilities{SuperRes: true}

	if !caps.Supports(StageNone) {
		t.Error("StageNone must always be supported")
	}
	if !caps.Supports(StageSuperRes) {
		t.Error("SuperRes should be supported")
	}
	if caps.Supports(StageUpscale) {
		t.Error("Upscale should not be supported")
	}
	if caps.Supports(StageType(9)) {
		t.Error("unknown stage type should not be supported")
	}
	if !caps.Any() {
		t.Error("Any() should be true")
	}
	if (Capabilities{}).Any() {
		t.Error("empty capabilities reported Any")
	}
}
