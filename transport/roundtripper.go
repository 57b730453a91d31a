package transport

import (
	"net/http"
)

// RoundTripper authorizes outgoing requests before delegating to the
// wrapped transport. A caller supplied Authorization header is never
// overwritten.
type RoundTripper struct {
	schemes   *SchemeSet
	transport http.RoundTripper
}

func New(options ...Option) *RoundTripper {
	ret := &RoundTripper{}
	for _, option := range options {
		option(ret)
	}
	if ret.schemes == nil {
		ret.schemes = NewSchemeSet()
	}
	if ret.transport == nil {
		ret.transport = http.DefaultTransport
	}
	return ret
}

// Schemes returns the scheme set consulted per request.
func (r *RoundTripper) Schemes() *SchemeSet {
	return r.schemes
}

func (r *RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("Authorization") != "" {
		return r.transport.RoundTrip(req)
	}
	header, ok, err := r.schemes.Authorize(req.Context(), req.URL)
	if err != nil {
		return nil, err
	}
	if !ok {
		return r.transport.RoundTrip(req)
	}
	authorized := req.Clone(req.Context())
	authorized.Header.Set("Authorization", header)
	return r.transport.RoundTrip(authorized)
}
