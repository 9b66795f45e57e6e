// Package handler manages the per-user URL protocol handler registration that
// hermes_urls maintains for the engine editor.
package handler

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupported is returned by all registry operations on non-Windows platforms.
var ErrUnsupported = errors.New("URL handler registration is only supported on Windows")

// ErrNotRegistered is returned when a scheme has no stored launch command.
var ErrNotRegistered = errors.New("protocol is not registered")

// Registration describes one registered scheme and its stored launch command.
type Registration struct {
	Scheme  string   `json:"scheme"`
	Command []string `json:"command"`
}

const (
	displayNameFormat = "URL:%s Protocol"

	configRootKeyPath = `Software\bitSpatter\Hermes\Protocols`
)

// ProtocolKeyPath returns the HKCU-relative key holding the OS handler
// association for a scheme.
func ProtocolKeyPath(scheme string) string {
	return `SOFTWARE\Classes\` + scheme
}

// ConfigKeyPath returns the HKCU-relative key holding hermes' own
// configuration for a scheme. The engine-side plugin reads the same key, so
// the bitSpatter\Hermes namespace must stay stable.
func ConfigKeyPath(scheme string) string {
	return configRootKeyPath + `\` + scheme
}

// OpenCommand builds the shell open command registered for a scheme: this
// executable invoked in open mode with the clicked URL as %1.
func OpenCommand(exePath, extraArgs string) string {
	if extraArgs != "" {
		return fmt.Sprintf(`"%s" %s open "%%1"`, exePath, extraArgs)
	}
	return fmt.Sprintf(`"%s" open "%%1"`, exePath)
}

// IconValue builds the DefaultIcon registry value pointing at this
// executable's first icon resource.
func IconValue(exePath string) string {
	return fmt.Sprintf(`"%s",0`, exePath)
}

// DisplayName returns the default value set on the protocol class key.
func DisplayName(scheme string) string {
	return fmt.Sprintf(displayNameFormat, scheme)
}

// String renders a registration for human-readable listing.
func (r Registration) String() string {
	return fmt.Sprintf("%s:// -> %s", r.Scheme, strings.Join(r.Command, " "))
}
