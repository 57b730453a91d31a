package transport

import "net/http"

type Option func(*RoundTripper)

// WithBase sets the transport requests are delegated to.
func WithBase(base http.RoundTripper) Option {
	return func(r *RoundTripper) {
		r.transport = base
	}
}

// WithScheme registers an authentication scheme.
func WithScheme(scheme Scheme) Option {
	return func(r *RoundTripper) {
		if r.schemes == nil {
			r.schemes = NewSchemeSet()
		}
		r.schemes.Register(scheme)
	}
}

// WithSchemeSet sets the scheme set.
func WithSchemeSet(schemes *SchemeSet) Option {
	return func(r *RoundTripper) {
		r.schemes = schemes
	}
}
