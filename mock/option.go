package mock

type Option func(*AuthorizationService)

// WithClientID sets the client identifier the server accepts.
func WithClientID(clientID string) Option {
	return func(m *AuthorizationService) {
		m.ClientID = clientID
	}
}

// WithClientSecret requires client authentication on the token endpoint.
func WithClientSecret(secret string) Option {
	return func(m *AuthorizationService) {
		m.ClientSecret = secret
	}
}

// WithGrantedScope forces the scope written into token responses.
func WithGrantedScope(scope string) Option {
	return func(m *AuthorizationService) {
		m.Scope = scope
	}
}

// WithTokenType overrides the token_type written into token responses.
func WithTokenType(tokenType string) Option {
	return func(m *AuthorizationService) {
		m.TokenType = tokenType
	}
}

// WithExpiresIn sets the issued token lifetime in seconds.
func WithExpiresIn(seconds int) Option {
	return func(m *AuthorizationService) {
		m.ExpiresIn = seconds
	}
}
