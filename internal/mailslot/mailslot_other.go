//go:build !windows

package mailslot

// Send is unsupported on non-Windows platforms.
func Send(scheme string, payload []byte) error {
	return ErrUnsupported
}

// Server is a stub for non-Windows platforms.
type Server struct{}

// Listen is unsupported on non-Windows platforms.
func Listen(scheme string) (*Server, error) {
	return nil, ErrUnsupported
}

// Read is unsupported on non-Windows platforms.
func (s *Server) Read() ([]byte, error) {
	return nil, ErrUnsupported
}

// Close is unsupported on non-Windows platforms.
func (s *Server) Close() error {
	return ErrUnsupported
}
