package mock

import (
	"github.com/viant/afs/url"
	"github.com/viant/authly/endpoint"
)

// NewTestConfig returns an endpoint configuration protecting resourceURL
// with the issuer's authorize and token endpoints.
func NewTestConfig(issuer, resourceURL string) *endpoint.Config {
	return &endpoint.Config{
		URL:                   resourceURL,
		AuthorizationEndpoint: url.Join(issuer, "authorize"),
		TokenEndpoint:         url.Join(issuer, "token"),
		ClientID:              "test_client_id",
		Scope:                 "read",
	}
}
