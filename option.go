package authly

import (
	"net/http"

	"github.com/viant/authly/endpoint"
	"github.com/viant/authly/flow"
	"github.com/viant/authly/store"
)

type Option func(*Service)

// WithRegistry sets the endpoint registry.
func WithRegistry(registry *endpoint.Registry) Option {
	return func(s *Service) {
		s.registry = registry
	}
}

// WithStore sets the credential store backend.
func WithStore(credentials store.Store) Option {
	return func(s *Service) {
		s.credentials = credentials
	}
}

// WithSecretPrompt sets the callback supplying absent client secrets.
func WithSecretPrompt(prompt store.SecretPrompt) Option {
	return func(s *Service) {
		s.secretPrompt = prompt
	}
}

// WithPrompter sets the interactive redirect prompter.
func WithPrompter(prompter flow.Prompter) Option {
	return func(s *Service) {
		s.prompter = prompter
	}
}

// WithHTTPClient sets the client used for the token exchange.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Service) {
		s.client = client
	}
}

// WithBase sets the transport authorized requests are delegated to.
func WithBase(base http.RoundTripper) Option {
	return func(s *Service) {
		s.base = base
	}
}

// WithSingleFlight dedups concurrent authorization flows per endpoint.
func WithSingleFlight(enabled bool) Option {
	return func(s *Service) {
		s.singleFlight = enabled
	}
}
