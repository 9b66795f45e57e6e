// Package mailslot implements the local mailslot channel used to hand URLs
// to a running editor instance.
package mailslot

import "errors"

// ErrUnsupported is returned by all mailslot operations on non-Windows platforms.
var ErrUnsupported = errors.New("mailslots are only supported on Windows")

// ErrNotRunning indicates that no process has created the scheme's mailslot,
// i.e. no editor instance is currently listening.
var ErrNotRunning = errors.New("no mailslot listener for protocol")

// MaxMessageSize caps a single mailslot message. URL payloads are far
// smaller; the cap only sizes the server read buffer.
const MaxMessageSize = 64 * 1024

// Name returns the mailslot path for a scheme. The engine-side plugin opens
// the same name, so the bitSpatter\Hermes namespace must stay stable.
func Name(scheme string) string {
	return `\\.\mailslot\bitSpatter\Hermes\` + scheme
}
