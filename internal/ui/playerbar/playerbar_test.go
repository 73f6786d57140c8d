package playerbar

import (
	"strings"
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{5 * time.Second, "0:05"},
		{65 * time.Second, "1:05"},
		{10 * time.Minute, "10:00"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.d); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestRender_EmptyWhenStopped(t *testing.T) {
	if got := Render(State{}, 80); got != "" {
		t.Errorf("Render(stopped) = %q, want empty", got)
	}
}

func TestRender_ShowsTitleAndTime(t *testing.T) {
	s := State{
		Playing:  true,
		Title:    "Aurora",
		Artist:   "Dawn",
		Position: 30 * time.Second,
		Duration: 2 * time.Minute,
		Volume:   0.8,
	}
	out := Render(s, 100)
	if !strings.Contains(out, "Aurora") {
		t.Error("title missing from bar")
	}
	if !strings.Contains(out, "0:30 / 2:00") {
		t.Error("time display missing from bar")
	}
	if !strings.Contains(out, "80%") {
		t.Error("volume display missing from bar")
	}
}

func TestRender_MuteAndModes(t *testing.T) {
	s := State{
		Paused:  true,
		Title:   "Aurora",
		Muted:   true,
		Shuffle: true,
		Repeat:  "one",
	}
	out := Render(s, 100)
	if !strings.Contains(out, mutedSymbol) {
		t.Error("mute indicator missing")
	}
	if !strings.Contains(out, shuffleSymbol) {
		t.Error("shuffle indicator missing")
	}
	if !strings.Contains(out, repeatSymbol+"1") {
		t.Error("repeat-one indicator missing")
	}
}
