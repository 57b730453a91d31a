package mock

import (
	"crypto/rand"
	"crypto/rsa"
	"fmt"
	"net/http"
	"sync"
)

// AuthorizationService simulates an OAuth2 authorization server issuing
// authorization codes and exchanging them for bearer tokens.
type AuthorizationService struct {
	PrivateKey   *rsa.PrivateKey
	Issuer       string
	ClientID     string
	ClientSecret string //when set the token endpoint requires client authentication
	Scope        string //when set overrides the scope echoed into token responses
	TokenType    string
	ExpiresIn    int
	RedirectURI  string //redirect base used when the authorize request carries none

	TokenHandler     func(w http.ResponseWriter, r *http.Request)
	AuthorizeHandler func(w http.ResponseWriter, r *http.Request)
	ResourceHandler  func(w http.ResponseWriter, r *http.Request)

	mux   sync.Mutex
	codes map[string]string
}

// NewAuthorizationService creates a mock authorization server with a
// freshly generated RSA signing key.
func NewAuthorizationService(options ...Option) (*AuthorizationService, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, fmt.Errorf("failed to generate RSA key: %v", err)
	}
	service := &AuthorizationService{
		PrivateKey:  privateKey,
		ClientID:    "test_client_id",
		TokenType:   "bearer",
		ExpiresIn:   3600,
		RedirectURI: "https://client.example.com/cb",
		codes:       map[string]string{},
	}
	for _, option := range options {
		option(service)
	}
	return service, nil
}

// Register registers HTTP handlers for all mock endpoints onto the given ServeMux.
func (m *AuthorizationService) Register(mux *http.ServeMux) {
	mux.Handle("/", &Handler{Server: m})
}

// Handler returns an http.Handler for all mock endpoints, suitable for any HTTP server.
func (m *AuthorizationService) Handler() http.Handler {
	mux := http.NewServeMux()
	m.Register(mux)
	return mux
}

func (m *AuthorizationService) issueCode(code, scope string) {
	m.mux.Lock()
	defer m.mux.Unlock()
	m.codes[code] = scope
}

// consumeCode redeems an issued code at most once.
func (m *AuthorizationService) consumeCode(code string) (string, bool) {
	m.mux.Lock()
	defer m.mux.Unlock()
	scope, ok := m.codes[code]
	if ok {
		delete(m.codes, code)
	}
	return scope, ok
}
