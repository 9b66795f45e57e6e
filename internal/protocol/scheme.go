// Package protocol provides parsing and validation for URL schemes handled by hermes_urls.
package protocol

import (
	"fmt"
	"strings"
)

// ParseScheme validates a URL scheme against the RFC 3986 scheme grammar
// (ALPHA *( ALPHA / DIGIT / "+" / "-" / "." )) and returns it lowercased.
// Surrounding whitespace is trimmed before validation.
func ParseScheme(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("protocol needs to contain at least one character")
	}

	first := s[0]
	if !isASCIIAlpha(first) {
		return "", fmt.Errorf("protocol %q needs to start with an alphabetic character", s)
	}

	for i := 1; i < len(s); i++ {
		c := s[i]
		if !isASCIIAlpha(c) && !isASCIIDigit(c) && c != '+' && c != '-' && c != '.' {
			return "", fmt.Errorf("protocol %q can only contain the letters a-z, the numbers 0-9, '+', '-', and '.'", s)
		}
	}

	return strings.ToLower(s), nil
}

func isASCIIAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isASCIIDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
