package mock

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/viant/authly/endpoint"
	"github.com/viant/authly/exchange"
	"github.com/viant/authly/store"
)

func authorize(t *testing.T, config *endpoint.Config) string {
	prompter := &Prompter{}
	redirect, err := prompter.Prompt(context.Background(), config.AuthorizationCodeURL())
	if !assert.Nil(t, err) {
		t.FailNow()
	}
	parsed, err := url.Parse(redirect)
	if !assert.Nil(t, err) {
		t.FailNow()
	}
	code := parsed.Query().Get("code")
	if !assert.NotEmpty(t, code) {
		t.FailNow()
	}
	return code
}

func TestAuthorizationService_CodeFlow(t *testing.T) {
	server, err := NewHTTPTestAuthorizationServer()
	if !assert.Nil(t, err) {
		return
	}
	defer server.Close()

	config := NewTestConfig(server.Issuer, "https://api.example.com/data")
	code := authorize(t, config)

	grant, err := exchange.New().Exchange(context.Background(), config, code)
	if !assert.Nil(t, err) {
		return
	}
	assert.EqualValues(t, "bearer", grant.TokenType)
	assert.EqualValues(t, "read", grant.Scope)
	assert.NotEmpty(t, grant.AccessToken)
	assert.WithinDuration(t, time.Now().Add(time.Hour), grant.ExpiresAt, 5*time.Second)

	// the minted access token verifies against the server key
	parsed, err := jwt.Parse(grant.AccessToken, func(token *jwt.Token) (interface{}, error) {
		return server.PrivateKey.Public(), nil
	})
	if assert.Nil(t, err) {
		claims := parsed.Claims.(jwt.MapClaims)
		assert.EqualValues(t, "test_client_id", claims["aud"])
		assert.EqualValues(t, server.Issuer, claims["iss"])
	}

	token := grant.Token()
	assert.EqualValues(t, grant.AccessToken, token.AccessToken)
	assert.EqualValues(t, grant.ExpiresAt, token.Expiry)
}

func TestAuthorizationService_CodeRedeemedOnce(t *testing.T) {
	server, err := NewHTTPTestAuthorizationServer()
	if !assert.Nil(t, err) {
		return
	}
	defer server.Close()

	config := NewTestConfig(server.Issuer, "https://api.example.com/data")
	code := authorize(t, config)

	_, err = exchange.New().Exchange(context.Background(), config, code)
	if !assert.Nil(t, err) {
		return
	}
	_, err = exchange.New().Exchange(context.Background(), config, code)
	var statusErr *exchange.StatusError
	if assert.True(t, errors.As(err, &statusErr)) {
		assert.Contains(t, statusErr.Body, "invalid_grant")
	}
}

func TestAuthorizationService_InvalidCode(t *testing.T) {
	server, err := NewHTTPTestAuthorizationServer()
	if !assert.Nil(t, err) {
		return
	}
	defer server.Close()

	config := NewTestConfig(server.Issuer, "https://api.example.com/data")
	_, err = exchange.New().Exchange(context.Background(), config, "nope")
	var statusErr *exchange.StatusError
	if assert.True(t, errors.As(err, &statusErr)) {
		assert.EqualValues(t, 400, statusErr.StatusCode)
	}
}

func TestAuthorizationService_ClientSecret(t *testing.T) {
	server, err := NewHTTPTestAuthorizationServer(WithClientSecret("s3cr3t"))
	if !assert.Nil(t, err) {
		return
	}
	defer server.Close()

	config := NewTestConfig(server.Issuer, "https://api.example.com/data")
	config.SecretMethod = endpoint.SecretMethodPrompt
	code := authorize(t, config)

	secrets := store.NewManager(store.NewMemory(), store.WithSecretPrompt(func(ctx context.Context, key *store.Key) (string, error) {
		return "s3cr3t", nil
	}))
	grant, err := exchange.New(exchange.WithSecrets(secrets)).Exchange(context.Background(), config, code)
	if !assert.Nil(t, err) {
		return
	}
	assert.NotEmpty(t, grant.AccessToken)
}

func TestAuthorizationService_WrongClientSecret(t *testing.T) {
	server, err := NewHTTPTestAuthorizationServer(WithClientSecret("s3cr3t"))
	if !assert.Nil(t, err) {
		return
	}
	defer server.Close()

	config := NewTestConfig(server.Issuer, "https://api.example.com/data")
	config.SecretMethod = endpoint.SecretMethodPrompt
	code := authorize(t, config)

	secrets := store.NewManager(store.NewMemory(), store.WithSecretPrompt(func(ctx context.Context, key *store.Key) (string, error) {
		return "wrong", nil
	}))
	_, err = exchange.New(exchange.WithSecrets(secrets)).Exchange(context.Background(), config, code)
	var statusErr *exchange.StatusError
	if assert.True(t, errors.As(err, &statusErr)) {
		assert.EqualValues(t, 401, statusErr.StatusCode)
	}
}

func TestAuthorizationService_TokenTypeOverride(t *testing.T) {
	server, err := NewHTTPTestAuthorizationServer(WithTokenType("password"))
	if !assert.Nil(t, err) {
		return
	}
	defer server.Close()

	config := NewTestConfig(server.Issuer, "https://api.example.com/data")
	code := authorize(t, config)

	_, err = exchange.New().Exchange(context.Background(), config, code)
	var typeErr *exchange.TokenTypeError
	assert.True(t, errors.As(err, &typeErr))
}

func TestAuthorizationService_GrantedScopeOverride(t *testing.T) {
	server, err := NewHTTPTestAuthorizationServer(WithGrantedScope("admin"))
	if !assert.Nil(t, err) {
		return
	}
	defer server.Close()

	config := NewTestConfig(server.Issuer, "https://api.example.com/data")
	code := authorize(t, config)

	grant, err := exchange.New().Exchange(context.Background(), config, code)
	if !assert.Nil(t, err) {
		return
	}
	assert.EqualValues(t, "admin", grant.Scope)
}
