package exchange

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/viant/authly/endpoint"
	"github.com/viant/authly/store"
)

// Service exchanges authorization codes for bearer grants.
type Service struct {
	client  *http.Client
	secrets *store.Manager
}

// Option customizes an exchange service.
type Option func(*Service)

// WithHTTPClient sets the client used to call the token endpoint.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Service) {
		s.client = client
	}
}

// WithSecrets sets the credential manager resolving client secrets.
func WithSecrets(secrets *store.Manager) Option {
	return func(s *Service) {
		s.secrets = secrets
	}
}

// Exchange swaps an authorization code for a bearer grant, sending
// client credentials as HTTP basic auth when the config requires them.
// A freshly prompted client secret is persisted only once the exchange
// has succeeded.
func (s *Service) Exchange(ctx context.Context, config *endpoint.Config, code string) (*Grant, error) {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, config.TokenEndpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create token request: %w", err)
	}
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	request.Header.Set("Accept", "application/json")

	var staged *store.Entry
	if config.Method() == endpoint.SecretMethodPrompt {
		if s.secrets == nil {
			return nil, fmt.Errorf("client %s requires a secret but no credential manager was configured", config.ClientID)
		}
		key, err := SecretKey(config)
		if err != nil {
			return nil, err
		}
		secret, entry, err := s.secrets.ClientSecret(ctx, key)
		if err != nil {
			return nil, err
		}
		staged = entry
		request.SetBasicAuth(config.ClientID, secret)
	}

	response, err := s.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("failed to call token endpoint: %w", err)
	}
	defer response.Body.Close()
	data, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read token response: %w", err)
	}
	if response.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: response.StatusCode, Body: string(data)}
	}
	grant := &Grant{}
	if err = json.Unmarshal(data, grant); err != nil {
		return nil, fmt.Errorf("failed to parse token response: %w", err)
	}
	if grant.TokenType != "bearer" {
		return nil, &TokenTypeError{ClientID: config.ClientID, URL: config.TokenEndpoint, TokenType: grant.TokenType}
	}
	if grant.ExpiresIn > 0 {
		grant.ExpiresAt = time.Now().Add(time.Duration(grant.ExpiresIn) * time.Second)
	}
	if staged != nil {
		if err = staged.Commit(ctx); err != nil {
			return nil, fmt.Errorf("failed to persist client secret: %w", err)
		}
	}
	return grant, nil
}

// SecretKey derives the credential store key for an endpoint's client
// secret: the client id as user plus host, port and path of the token
// endpoint.
func SecretKey(config *endpoint.Config) (*store.Key, error) {
	parsed, err := url.Parse(config.TokenEndpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token endpoint: %w", err)
	}
	key := &store.Key{
		User:  config.ClientID,
		Host:  parsed.Hostname(),
		Path:  parsed.Path,
		Scope: config.Scope,
	}
	if port, ok := endpoint.Port(parsed); ok {
		key.Port = port
	}
	return key, nil
}

// New creates an exchange service.
func New(options ...Option) *Service {
	ret := &Service{client: http.DefaultClient}
	for _, option := range options {
		option(ret)
	}
	return ret
}
