package playback

import "testing"

func TestRepeatMode_RoundTrip(t *testing.T) {
	for _, mode := range []RepeatMode{RepeatNone, RepeatOne, RepeatAll} {
		if got := ParseRepeatMode(mode.String()); got != mode {
			t.Errorf("ParseRepeatMode(%q) = %v, want %v", mode.String(), got, mode)
		}
	}
	if got := ParseRepeatMode("garbage"); got != RepeatNone {
		t.Errorf("ParseRepeatMode(garbage) = %v, want RepeatNone", got)
	}
}

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{Empty, "Empty"},
		{Paused, "Paused"},
		{Playing, "Playing"},
		{State(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
