package endpoint

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/oauth2"
)

// SecretMethod controls how the client authenticates to the token endpoint.
type SecretMethod string

const (
	// SecretMethodNone omits client authentication on the token endpoint.
	SecretMethodNone SecretMethod = "none"
	// SecretMethodPrompt resolves a client secret from the credential store,
	// prompting the user when absent, and sends it as HTTP basic auth.
	SecretMethodPrompt SecretMethod = "promptForSecret"
)

// ErrInvalidSecretMethod indicates an unrecognized client secret method.
var ErrInvalidSecretMethod = errors.New("invalid client secret method")

// Arg is an extra query argument appended to the authorization URL.
type Arg struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// Config describes a protected endpoint governed by the authorization code grant.
type Config struct {
	//URL identifies the protected resource; its normalized form is the registry key
	URL string `json:"url" yaml:"url"`
	//AuthorizationEndpoint is the URL the user authorizes access at
	AuthorizationEndpoint string `json:"authorizationEndpoint" yaml:"authorizationEndpoint"`
	//TokenEndpoint is the URL the authorization code is exchanged at
	TokenEndpoint string `json:"tokenEndpoint" yaml:"tokenEndpoint"`
	//ClientID identifies the calling application to the authorization server
	ClientID string `json:"clientId" yaml:"clientId"`
	//Scope is the requested permission set, space separated
	Scope string `json:"scope,omitempty" yaml:"scope,omitempty"`
	//SecretMethod defaults to SecretMethodNone when empty
	SecretMethod SecretMethod `json:"secretMethod,omitempty" yaml:"secretMethod,omitempty"`
	//ExtraArgs are appended to the authorization URL query
	ExtraArgs []Arg `json:"extraArgs,omitempty" yaml:"extraArgs,omitempty"`
}

// Method returns the effective secret method, defaulting to SecretMethodNone.
func (c *Config) Method() SecretMethod {
	if c.SecretMethod == "" {
		return SecretMethodNone
	}
	return c.SecretMethod
}

// Validate checks config consistency, it runs once at registration time.
func (c *Config) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("url was empty")
	}
	if c.AuthorizationEndpoint == "" {
		return fmt.Errorf("authorizationEndpoint was empty")
	}
	if c.TokenEndpoint == "" {
		return fmt.Errorf("tokenEndpoint was empty")
	}
	if c.ClientID == "" {
		return fmt.Errorf("clientId was empty")
	}
	switch c.Method() {
	case SecretMethodNone, SecretMethodPrompt:
	default:
		return fmt.Errorf("%w: %s", ErrInvalidSecretMethod, c.SecretMethod)
	}
	return nil
}

// OAuth2 returns the golang.org/x/oauth2 view of this configuration.
func (c *Config) OAuth2() *oauth2.Config {
	return &oauth2.Config{
		ClientID: c.ClientID,
		Endpoint: oauth2.Endpoint{
			AuthURL:  c.AuthorizationEndpoint,
			TokenURL: c.TokenEndpoint,
		},
		Scopes: strings.Fields(c.Scope),
	}
}

// AuthorizationCodeURL builds the URL the user visits to authorize access,
// carrying client_id, response_type=code, scope and any extra arguments.
func (c *Config) AuthorizationCodeURL() string {
	var options []oauth2.AuthCodeOption
	for _, arg := range c.ExtraArgs {
		options = append(options, oauth2.SetAuthURLParam(arg.Name, arg.Value))
	}
	return c.OAuth2().AuthCodeURL("", options...)
}
