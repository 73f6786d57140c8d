package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/music",
			expected: filepath.Join(home, "music"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/usr/local/music",
			expected: "/usr/local/music",
		},
		{
			name:     "relative path unchanged",
			input:    "music/albums",
			expected: "music/albums",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestRecentLimit(t *testing.T) {
	zero := 0
	ten := 10
	negative := -5

	tests := []struct {
		name string
		cfg  Config
		want int
	}{
		{name: "unset uses default", cfg: Config{}, want: DefaultRecentLimit},
		{name: "zero means unbounded", cfg: Config{RecentlyPlayedLimit: &zero}, want: 0},
		{name: "explicit limit", cfg: Config{RecentlyPlayedLimit: &ten}, want: 10},
		{name: "negative falls back to default", cfg: Config{RecentlyPlayedLimit: &negative}, want: DefaultRecentLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.RecentLimit(); got != tt.want {
				t.Errorf("RecentLimit() = %d, want %d", got, tt.want)
			}
		})
	}
}
