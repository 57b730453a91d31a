package exchange

import "fmt"

// StatusError reports a non success token endpoint response, it
// carries the raw response body for diagnostics.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("token exchange failed with status %v: %s", e.StatusCode, e.Body)
}

// TokenTypeError reports a grant whose token type is not "bearer".
type TokenTypeError struct {
	ClientID  string
	URL       string
	TokenType string
}

func (e *TokenTypeError) Error() string {
	return fmt.Sprintf("client %s: unsupported token type %q from %s, expected \"bearer\"", e.ClientID, e.TokenType, e.URL)
}
