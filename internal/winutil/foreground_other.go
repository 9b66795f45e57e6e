//go:build !windows

// Package winutil provides Windows-specific utilities for hermes_urls.
package winutil

// AllowAnyForegroundWindow is a no-op on non-Windows platforms.
func AllowAnyForegroundWindow() error {
	return nil
}
