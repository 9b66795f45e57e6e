//go:build windows

package mailslot

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// MAILSLOT_WAIT_FOREVER: reads on the server handle block until a message arrives.
const mailslotWaitForever = 0xFFFFFFFF

var (
	modkernel32         = windows.NewLazySystemDLL("kernel32.dll")
	procCreateMailslotW = modkernel32.NewProc("CreateMailslotW")
)

// Send writes a single message to the scheme's mailslot. ErrNotRunning is
// returned when the slot does not exist.
func Send(scheme string, payload []byte) error {
	name := Name(scheme)
	name16, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return fmt.Errorf("invalid mailslot name %q: %w", name, err)
	}

	h, err := windows.CreateFile(
		name16,
		windows.GENERIC_WRITE,
		windows.FILE_SHARE_READ,
		nil,
		windows.OPEN_EXISTING,
		windows.FILE_ATTRIBUTE_NORMAL,
		0,
	)
	if err != nil {
		if errors.Is(err, windows.ERROR_FILE_NOT_FOUND) {
			return fmt.Errorf("%s: %w", name, ErrNotRunning)
		}
		return fmt.Errorf("failed to open mailslot %s: %w", name, err)
	}
	defer windows.CloseHandle(h)

	var written uint32
	if err := windows.WriteFile(h, payload, &written, nil); err != nil {
		return fmt.Errorf("failed to write to mailslot %s: %w", name, err)
	}

	return nil
}

// Server owns the receiving end of a scheme's mailslot. Only one server can
// exist per name; the editor plugin normally holds it, the listen command
// stands in for it during diagnostics and tests.
type Server struct {
	name string
	h    windows.Handle
}

// Listen creates the scheme's mailslot.
func Listen(scheme string) (*Server, error) {
	name := Name(scheme)
	name16, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return nil, fmt.Errorf("invalid mailslot name %q: %w", name, err)
	}

	r1, _, e1 := procCreateMailslotW.Call(
		uintptr(unsafe.Pointer(name16)),
		uintptr(MaxMessageSize),
		uintptr(mailslotWaitForever),
		0,
	)
	h := windows.Handle(r1)
	if h == windows.InvalidHandle {
		return nil, fmt.Errorf("failed to create mailslot %s: %w", name, e1)
	}

	return &Server{name: name, h: h}, nil
}

// Read blocks until the next message arrives and returns its payload.
func (s *Server) Read() ([]byte, error) {
	buf := make([]byte, MaxMessageSize)
	var read uint32
	if err := windows.ReadFile(s.h, buf, &read, nil); err != nil {
		return nil, fmt.Errorf("failed to read from mailslot %s: %w", s.name, err)
	}
	return buf[:read], nil
}

// Close releases the mailslot handle.
func (s *Server) Close() error {
	return windows.CloseHandle(s.h)
}
