//go:build !windows

package handler

// Register is unsupported on non-Windows platforms.
func Register(scheme string, commandline []string, extraArgs string) error {
	return ErrUnsupported
}

// Command is unsupported on non-Windows platforms.
func Command(scheme string) ([]string, error) {
	return nil, ErrUnsupported
}

// Unregister is unsupported on non-Windows platforms.
func Unregister(scheme string) error {
	return ErrUnsupported
}

// List is unsupported on non-Windows platforms.
func List() ([]Registration, error) {
	return nil, ErrUnsupported
}
