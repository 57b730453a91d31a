package flow

import "fmt"

// NotInterposedError reports a URL with no registered endpoint
// configuration.
type NotInterposedError struct {
	URL string
}

func (e *NotInterposedError) Error() string {
	return fmt.Sprintf("no endpoint configuration for %s", e.URL)
}

// MissingCodeError reports a redirect URL without a code parameter.
type MissingCodeError struct {
	RedirectURL string
}

func (e *MissingCodeError) Error() string {
	return fmt.Sprintf("missing authorization code in redirect url %q", e.RedirectURL)
}

// ScopeError reports a granted scope differing from the requested one.
type ScopeError struct {
	Requested string
	Granted   string
}

func (e *ScopeError) Error() string {
	return fmt.Sprintf("scope mismatch: requested %q, server granted %q", e.Requested, e.Granted)
}
