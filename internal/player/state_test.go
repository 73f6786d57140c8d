package player

import (
	"math"
	"testing"
)

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{Stopped, "Stopped"},
		{Playing, "Playing"},
		{Paused, "Paused"},
		{State(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestState_IsActive(t *testing.T) {
	if Stopped.IsActive() {
		t.Error("Stopped.IsActive() = true, want false")
	}
	if !Playing.IsActive() {
		t.Error("Playing.IsActive() = false, want true")
	}
	if !Paused.IsActive() {
		t.Error("Paused.IsActive() = false, want true")
	}
}

func TestLevelToVolume(t *testing.T) {
	if got := levelToVolume(1.0); got != 0 {
		t.Errorf("levelToVolume(1.0) = %v, want 0", got)
	}
	if got := levelToVolume(0.5); got != -1 {
		t.Errorf("levelToVolume(0.5) = %v, want -1", got)
	}
	if got := levelToVolume(0.25); got != -2 {
		t.Errorf("levelToVolume(0.25) = %v, want -2", got)
	}
	if got := levelToVolume(0); got != -10 {
		t.Errorf("levelToVolume(0) = %v, want -10", got)
	}
	if got := levelToVolume(1.5); got != 0 {
		t.Errorf("levelToVolume(1.5) = %v, want 0 (clamped)", got)
	}
	if got := levelToVolume(0.7); math.Abs(got-math.Log2(0.7)) > 1e-9 {
		t.Errorf("levelToVolume(0.7) = %v, want log2(0.7)", got)
	}
}

func TestMock_StateTransitions(t *testing.T) {
	m := NewMock()

	if m.State() != Stopped {
		t.Fatalf("new mock state = %v, want Stopped", m.State())
	}

	// Toggle when stopped is a no-op
	m.Toggle()
	if m.State() != Stopped {
		t.Errorf("Toggle() from Stopped = %v, want Stopped", m.State())
	}

	if err := m.Play("/a.mp3"); err != nil {
		t.Fatal(err)
	}
	if m.State() != Playing {
		t.Errorf("state after Play = %v, want Playing", m.State())
	}

	m.Toggle()
	if m.State() != Paused {
		t.Errorf("state after Toggle = %v, want Paused", m.State())
	}

	m.Toggle()
	if m.State() != Playing {
		t.Errorf("state after second Toggle = %v, want Playing", m.State())
	}

	m.Stop()
	if m.State() != Stopped {
		t.Errorf("state after Stop = %v, want Stopped", m.State())
	}
}

func TestMock_VolumeClamps(t *testing.T) {
	m := NewMock()

	m.SetVolume(-0.5)
	if m.Volume() != 0 {
		t.Errorf("Volume() = %v, want 0 after SetVolume(-0.5)", m.Volume())
	}

	m.SetVolume(1.5)
	if m.Volume() != 1 {
		t.Errorf("Volume() = %v, want 1 after SetVolume(1.5)", m.Volume())
	}
}
