package mock

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// createJWT mints a signed RS256 access token for clientID.
func (m *AuthorizationService) createJWT(clientID string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss": m.Issuer,
		"sub": "test_subject",
		"aud": clientID,
		"exp": now.Add(expiry).Unix(),
		"iat": now.Unix(),
		"typ": "access_token",
	}
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	return token.SignedString(m.PrivateKey)
}
