package authly

import (
	"context"
	"net/http"
	"net/url"

	"golang.org/x/oauth2"

	"github.com/viant/authly/endpoint"
	"github.com/viant/authly/exchange"
	"github.com/viant/authly/flow"
	"github.com/viant/authly/store"
	"github.com/viant/authly/transport"
)

// Service bundles the endpoint registry, the credential store and the
// authorization flow behind a single entry point.
type Service struct {
	registry     *endpoint.Registry
	secrets      *store.Manager
	flow         *flow.Service
	roundTripper *transport.RoundTripper

	credentials  store.Store
	secretPrompt store.SecretPrompt
	prompter     flow.Prompter
	client       *http.Client
	base         http.RoundTripper
	singleFlight bool
}

// New assembles a service from the supplied options.
func New(options ...Option) (*Service, error) {
	ret := &Service{}
	for _, option := range options {
		option(ret)
	}
	if ret.registry == nil {
		ret.registry = endpoint.NewRegistry()
	}
	if ret.credentials == nil {
		ret.credentials = store.NewMemory()
	}
	var managerOptions []store.ManagerOption
	if ret.secretPrompt != nil {
		managerOptions = append(managerOptions, store.WithSecretPrompt(ret.secretPrompt))
	}
	ret.secrets = store.NewManager(ret.credentials, managerOptions...)

	exchangeOptions := []exchange.Option{exchange.WithSecrets(ret.secrets)}
	if ret.client != nil {
		exchangeOptions = append(exchangeOptions, exchange.WithHTTPClient(ret.client))
	}
	flowOptions := []flow.Option{
		flow.WithRegistry(ret.registry),
		flow.WithSecrets(ret.secrets),
		flow.WithExchange(exchange.New(exchangeOptions...)),
		flow.WithSingleFlight(ret.singleFlight),
	}
	if ret.prompter != nil {
		flowOptions = append(flowOptions, flow.WithPrompter(ret.prompter))
	}
	ret.flow = flow.New(flowOptions...)

	transportOptions := []transport.Option{transport.WithScheme(transport.NewBearerScheme(ret.flow))}
	if ret.base != nil {
		transportOptions = append(transportOptions, transport.WithBase(ret.base))
	}
	ret.roundTripper = transport.New(transportOptions...)
	return ret, nil
}

// Interpose registers endpoint configurations, requests to matching
// URLs are authorized from now on.
func (s *Service) Interpose(configs ...*endpoint.Config) error {
	for _, config := range configs {
		if err := s.registry.Interpose(config); err != nil {
			return err
		}
	}
	return nil
}

// Uninterpose removes the endpoint configuration, requests to its URL
// pass through unauthorized.
func (s *Service) Uninterpose(config *endpoint.Config) {
	s.registry.Uninterpose(config)
}

// BearerToken returns the bearer token for an interposed URL, running
// the authorization code flow when the store holds none.
func (s *Service) BearerToken(ctx context.Context, rawURL string) (string, error) {
	return s.flow.Token(ctx, rawURL)
}

// Authorize resolves the Authorization header value for URL, a URL with
// no endpoint configuration is reported as not applicable.
func (s *Service) Authorize(ctx context.Context, URL *url.URL) (string, bool, error) {
	return s.roundTripper.Schemes().Authorize(ctx, URL)
}

// RoundTripper returns the authorizing round tripper.
func (s *Service) RoundTripper() http.RoundTripper {
	return s.roundTripper
}

// Client returns an http.Client authorizing requests to interposed
// endpoints.
func (s *Service) Client() *http.Client {
	return &http.Client{Transport: s.roundTripper}
}

// Registry returns the endpoint registry.
func (s *Service) Registry() *endpoint.Registry {
	return s.registry
}

// Secrets returns the credential manager.
func (s *Service) Secrets() *store.Manager {
	return s.secrets
}

// TokenSource adapts the flow for rawURL to an oauth2.TokenSource.
func (s *Service) TokenSource(ctx context.Context, rawURL string) oauth2.TokenSource {
	return &tokenSource{ctx: ctx, flow: s.flow, rawURL: rawURL}
}

type tokenSource struct {
	ctx    context.Context
	flow   *flow.Service
	rawURL string
}

func (s *tokenSource) Token() (*oauth2.Token, error) {
	token, err := s.flow.Token(s.ctx, s.rawURL)
	if err != nil {
		return nil, err
	}
	return &oauth2.Token{AccessToken: token, TokenType: "bearer"}, nil
}
