package flow

import (
	"context"
	"fmt"
	"net/url"

	"github.com/viant/authly/endpoint"
	"github.com/viant/authly/exchange"
	"github.com/viant/authly/store"
	"golang.org/x/sync/singleflight"
)

// Service drives the authorization code grant for registered
// endpoints.
type Service struct {
	registry *endpoint.Registry
	secrets  *store.Manager
	exchange *exchange.Service
	prompter Prompter
	inflight *singleflight.Group
}

// Token returns a bearer token for rawURL, running the interactive
// authorization code flow when no cached token exists.
func (s *Service) Token(ctx context.Context, rawURL string) (string, error) {
	if s.inflight == nil {
		return s.token(ctx, rawURL)
	}
	key, err := endpoint.NormalizeKey(rawURL)
	if err != nil {
		return "", err
	}
	token, err, _ := s.inflight.Do(key, func() (interface{}, error) {
		return s.token(ctx, rawURL)
	})
	if err != nil {
		return "", err
	}
	return token.(string), nil
}

func (s *Service) token(ctx context.Context, rawURL string) (string, error) {
	config, ok := s.registry.Lookup(rawURL)
	if !ok {
		return "", &NotInterposedError{URL: rawURL}
	}
	key, err := bearerKey(config, rawURL)
	if err != nil {
		return "", err
	}
	// a present credential is trusted as is, the store drops expired entries
	if token, ok, err := s.secrets.FindBearer(ctx, key); err != nil {
		return "", err
	} else if ok {
		return token, nil
	}

	redirectURL, err := s.prompter.Prompt(ctx, config.AuthorizationCodeURL())
	if err != nil {
		return "", fmt.Errorf("failed to obtain redirect url: %w", err)
	}
	code, err := AuthorizationCode(redirectURL)
	if err != nil {
		return "", err
	}
	grant, err := s.exchange.Exchange(ctx, config, code)
	if err != nil {
		return "", err
	}
	if grant.Scope != config.Scope {
		return "", &ScopeError{Requested: config.Scope, Granted: grant.Scope}
	}
	entry, err := s.secrets.StageBearer(ctx, key, grant.AccessToken, grant.ExpiresAt)
	if err != nil {
		return "", err
	}
	if err = entry.Commit(ctx); err != nil {
		return "", fmt.Errorf("failed to persist bearer token: %w", err)
	}
	return grant.AccessToken, nil
}

// Registry returns the endpoint registry the flow consults.
func (s *Service) Registry() *endpoint.Registry {
	return s.registry
}

// Secrets returns the credential manager the flow persists through.
func (s *Service) Secrets() *store.Manager {
	return s.secrets
}

// AuthorizationCode extracts the code query parameter from a pasted
// redirect URL, surfacing an authorization server error= parameter
// when present.
func AuthorizationCode(redirectURL string) (string, error) {
	parsed, err := url.Parse(redirectURL)
	if err != nil {
		return "", &MissingCodeError{RedirectURL: redirectURL}
	}
	if message := parsed.Query().Get("error"); message != "" {
		return "", fmt.Errorf("authorization failed: %s", message)
	}
	if parsed.RawQuery == "" {
		return "", &MissingCodeError{RedirectURL: redirectURL}
	}
	code := parsed.Query().Get("code")
	if code == "" {
		return "", &MissingCodeError{RedirectURL: redirectURL}
	}
	return code, nil
}

// bearerKey derives the credential store key for a bearer token: the
// client id as user plus host, port and path of the protected URL.
func bearerKey(config *endpoint.Config, rawURL string) (*store.Key, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse url: %w", err)
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

// New creates a flow service. Unless overridden it starts with an
// empty registry, an in-memory store, a default exchange service and
// a terminal prompter.
func New(options ...Option) *Service {
	ret := &Service{}
	for _, option := range options {
		option(ret)
	}
	if ret.registry == nil {
		ret.registry = endpoint.NewRegistry()
	}
	if ret.secrets == nil {
		ret.secrets = store.NewManager(store.NewMemory())
	}
	if ret.exchange == nil {
		ret.exchange = exchange.New(exchange.WithSecrets(ret.secrets))
	}
	if ret.prompter == nil {
		ret.prompter = NewTermPrompter()
	}
	return ret
}
