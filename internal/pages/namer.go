package pages

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrOpaqueOrigin is returned for URLs whose origin cannot be decomposed
// into scheme, host and port (e.g. data: URLs).
var ErrOpaqueOrigin = errors.New("url origin is opaque")

var defaultPorts = map[string]string{
	"http":  "80",
	"https": "443",
	"ws":    "80",
	"wss":   "443",
	"ftp":   "21",
}

// FileNameForURL turns a URL into an HTML file name that keeps as much of
// the original URL readable as possible. The mapping is deterministic:
// the same URL always yields the same name. Distinct URLs can in theory
// escape to the same name; that collision is accepted in exchange for
// human-readable names on disk.
func FileNameForURL(u *url.URL) (string, error) {
	if u.Opaque != "" || u.Host == "" {
		return "", fmt.Errorf("%w: %q", ErrOpaqueOrigin, u.String())
	}

	port := u.Port()
	if port == "" {
		p, ok := defaultPorts[u.Scheme]
		if !ok {
			return "", fmt.Errorf("%w: no default port for scheme %q", ErrOpaqueOrigin, u.Scheme)
		}
		port = p
	}

	path := strings.ReplaceAll(u.Path, "/", "_slash_")

	if u.RawQuery == "" {
		return fmt.Sprintf("%s__%s__%s_%s.html", u.Scheme, u.Hostname(), port, path), nil
	}

	query := strings.ReplaceAll(u.RawQuery, "=", "_eq_")
	query = strings.ReplaceAll(query, "&", "_")

	return fmt.Sprintf("%s__%s__%s_%s__%s.html", u.Scheme, u.Hostname(), port, path, query), nil
}
