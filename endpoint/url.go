package endpoint

import (
	"fmt"
	"net/url"
	"strconv"
)

// NormalizeKey strips query and fragment from rawURL returning
// the canonical registry key, so that requests differing only in
// query string resolve to the same configuration.
func NormalizeKey(rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse url: %w", err)
	}
	return Normalize(parsed), nil
}

// Normalize returns the canonical key for an already parsed URL.
func Normalize(parsed *url.URL) string {
	normalized := *parsed
	normalized.RawQuery = ""
	normalized.ForceQuery = false
	normalized.Fragment = ""
	normalized.RawFragment = ""
	return normalized.String()
}

// Port returns the URL port, defaulting to 443 for https when no
// explicit port is present, otherwise it reports absence.
func Port(parsed *url.URL) (int, bool) {
	if port := parsed.Port(); port != "" {
		value, err := strconv.Atoi(port)
		if err != nil {
			return 0, false
		}
		return value, true
	}
	if parsed.Scheme == "https" {
		return 443, true
	}
	return 0, false
}
