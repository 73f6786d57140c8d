//go:build windows

// Package stderr provides a no-op implementation for Windows, where the
// audio backend does not produce ALSA-style stderr noise.
package stderr

// Start is a no-op on Windows.
func Start() error {
	return nil
}

// Stop is a no-op on Windows.
func Stop() {}
