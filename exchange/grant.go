package exchange

import (
	"time"

	"golang.org/x/oauth2"
)

// Grant is a successful token endpoint response. ExpiresAt is the
// absolute deadline derived from expires_in at receipt.
type Grant struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	Scope       string    `json:"scope"`
	ExpiresIn   int       `json:"expires_in"`
	ExpiresAt   time.Time `json:"-"`
}

// Token returns the golang.org/x/oauth2 view of the grant.
func (g *Grant) Token() *oauth2.Token {
	return &oauth2.Token{
		AccessToken: g.AccessToken,
		TokenType:   g.TokenType,
		Expiry:      g.ExpiresAt,
	}
}
