package vfx

import "testing"

// TestWarningsEdgeTriggered tests that Raise and Clear fire only on
// transitions.
func TestWarningsEdgeTriggered(t *testing.T) {
	var s Warnings

	if s.Active(WarningSizeInvalid) {
		t.Fatal("zero value has active warnings")
	}

	if !s.Raise(WarningSizeInvalid) {
		t.Error("first Raise did not report an edge")
	}
	if s.Raise(WarningSizeInvalid) {
		t.Error("second Raise reported an edge")
	}
	if !s.Active(WarningSizeInvalid) {
		t.Error("warning not active after Raise")
	}

	if !s.Clear(WarningSizeInvalid) {
		t.Error("first Clear did not report an edge")
	}
	if s.Clear(WarningSizeInvalid) {
		t.Error("second Clear reported an edge")
	}
	if s.Active(WarningSizeInvalid) {
		t.Error("warning active after Clear")
	}
}

// TestWarningsIndependentFlags tests that stage warnings do not interfere.
func TestWarningsIndependentFlags(t *testing.T) {
	var s Warnings

	s.Raise(WarningARResolution)
	s.Raise(WarningSRResolution)

	if !s.Active(WarningARResolution) || !s.Active(WarningSRResolution) {
		t.Fatal("expected both stage warnings active")
	}

	s.Clear(WarningARResolution)

	if s.Active(WarningARResolution) {
		t.Error("AR warning still active after Clear")
	}
	if !s.Active(WarningSRResolution) {
		t.Error("SR warning cleared by unrelated Clear")
	}
	if s.All() != WarningSRResolution {
		t.Errorf("All() = %v, want %v", s.All(), WarningSRResolution)
	}
}

// TestWarningString tests warning set formatting.
func TestWarningString(t *testing.T) {
	tests := []struct {
		w    Warning
		want string
	}{
		{0, "none"},
		{WarningSizeInvalid, "SizeInvalid"},
		{WarningARResolution, "ARResolution"},
		{WarningSizeInvalid | WarningSRResolution, "SizeInvalid|SRResolution"},
	}

	for _, tt := range tests {
		if got := tt.w.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
