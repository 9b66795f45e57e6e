//go:build windows

// Package winutil provides Windows-specific utilities for hermes_urls.
package winutil

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// ASFW_ANY: any process may take the foreground after us.
const asfwAny = uintptr(0xFFFFFFFF)

var (
	moduser32                    = windows.NewLazySystemDLL("user32.dll")
	procAllowSetForegroundWindow = moduser32.NewProc("AllowSetForegroundWindow")
)

// AllowAnyForegroundWindow permits any process to steal focus from us, so
// focus transfers cleanly to the editor we signal or launch.
func AllowAnyForegroundWindow() error {
	r1, _, e1 := procAllowSetForegroundWindow.Call(asfwAny)
	if r1 == 0 {
		return fmt.Errorf("AllowSetForegroundWindow failed: %w", e1)
	}
	return nil
}
