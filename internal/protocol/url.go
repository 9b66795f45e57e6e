package protocol

import (
	"fmt"
	"net/url"
)

// Parts holds the pieces of a handled URL that matter to dispatch.
type Parts struct {
	// Scheme is the validated, lowercased URL scheme.
	Scheme string
	// Host is the first path segment the engine side routes on.
	Host string
	// FullPath is "/" + host + path + optional "?query", the payload handed
	// to a running instance or substituted for %1 in a launch command.
	FullPath string
}

// Split parses rawURL and extracts the scheme, host, and the combined
// host/path/query payload. URLs without a host are rejected.
func Split(rawURL string) (Parts, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return Parts{}, fmt.Errorf("could not parse url %q: %w", rawURL, err)
	}

	scheme, err := ParseScheme(u.Scheme)
	if err != nil {
		return Parts{}, err
	}

	if u.Host == "" {
		return Parts{}, fmt.Errorf("could not parse hostname from %s", rawURL)
	}

	path := u.EscapedPath()
	if u.RawQuery != "" {
		path += "?" + u.RawQuery
	}

	return Parts{
		Scheme:   scheme,
		Host:     u.Host,
		FullPath: "/" + u.Host + path,
	}, nil
}
