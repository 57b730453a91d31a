package flow

import (
	"github.com/viant/authly/endpoint"
	"github.com/viant/authly/exchange"
	"github.com/viant/authly/store"
	"golang.org/x/sync/singleflight"
)

// Option customizes a flow service.
type Option func(*Service)

// WithRegistry sets the endpoint registry.
func WithRegistry(registry *endpoint.Registry) Option {
	return func(s *Service) {
		s.registry = registry
	}
}

// WithSecrets sets the credential manager.
func WithSecrets(secrets *store.Manager) Option {
	return func(s *Service) {
		s.secrets = secrets
	}
}

// WithExchange sets the token exchange service.
func WithExchange(service *exchange.Service) Option {
	return func(s *Service) {
		s.exchange = service
	}
}

// WithPrompter sets the interactive redirect prompter.
func WithPrompter(prompter Prompter) Option {
	return func(s *Service) {
		s.prompter = prompter
	}
}

// WithSingleFlight deduplicates concurrent flows for the same
// normalized URL so parallel requests share one interactive prompt.
// Off by default, concurrent calls then each run their own flow.
func WithSingleFlight(enabled bool) Option {
	return func(s *Service) {
		if enabled {
			s.inflight = &singleflight.Group{}
		} else {
			s.inflight = nil
		}
	}
}
