package fetch

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/authly/endpoint"
	"github.com/viant/authly/store"
)

type Options struct {
	URL       string `short:"u" long:"url" description:"protected resource url" required:"true"`
	ConfigURL string `short:"c" long:"config" description:"endpoint config json location"`
	AuthURL   string `short:"a" long:"authorize" description:"authorization endpoint url"`
	TokenURL  string `short:"t" long:"token" description:"token endpoint url"`
	ClientID  string `short:"i" long:"client" description:"oauth client identifier"`
	Scope     string `short:"s" long:"scope" description:"requested scope"`
	Secret    bool   `long:"secret" description:"send a prompted client secret with the token request"`
	StoreURL  string `long:"store" description:"credential store location, in-memory when empty"`
	StoreKey  string `long:"storeKey" description:"key encrypting the credential store"`
	Web       bool   `long:"web" description:"prompt with a local web page instead of the terminal"`
}

// Config resolves the endpoint configuration, either loaded from
// ConfigURL or assembled from the endpoint flags.
func (o *Options) Config(ctx context.Context) (*endpoint.Config, error) {
	config := &endpoint.Config{}
	if o.ConfigURL != "" {
		fs := afs.New()
		data, err := fs.DownloadWithURL(ctx, o.ConfigURL)
		if err != nil {
			return nil, fmt.Errorf("failed to load endpoint config: %w", err)
		}
		if err = json.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse endpoint config: %w", err)
		}
	} else {
		config.AuthorizationEndpoint = o.AuthURL
		config.TokenEndpoint = o.TokenURL
		config.ClientID = o.ClientID
		config.Scope = o.Scope
	}
	if config.URL == "" {
		config.URL = o.URL
	}
	if o.Secret {
		config.SecretMethod = endpoint.SecretMethodPrompt
	}
	return config, nil
}

// Store selects the credential store backend.
func (o *Options) Store() store.Store {
	switch {
	case o.StoreURL == "":
		return store.NewMemory()
	case o.StoreKey != "":
		return store.NewEncrypted(o.StoreURL, []byte(o.StoreKey))
	default:
		return store.NewFile(o.StoreURL)
	}
}
