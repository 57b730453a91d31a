package endpoint

import (
	"fmt"

	"github.com/viant/authly/internal/collection"
)

// Registry maps normalized URLs to endpoint configurations. It is safe
// for concurrent use, concurrent registrations of the same URL follow
// last writer wins.
type Registry struct {
	entries *collection.SyncMap[string, *Config]
}

// Interpose registers config under the normalized key of its URL,
// overwriting any previous registration for that key.
func (r *Registry) Interpose(config *Config) error {
	if config == nil {
		return fmt.Errorf("config was nil")
	}
	if err := config.Validate(); err != nil {
		return err
	}
	key, err := NormalizeKey(config.URL)
	if err != nil {
		return err
	}
	r.entries.Put(key, config)
	return nil
}

// Uninterpose removes the registration for config's URL, it is a no-op
// when the URL was never registered.
func (r *Registry) Uninterpose(config *Config) {
	if config == nil {
		return
	}
	key, err := NormalizeKey(config.URL)
	if err != nil {
		return
	}
	r.entries.Delete(key)
}

// Lookup returns the configuration governing rawURL.
func (r *Registry) Lookup(rawURL string) (*Config, bool) {
	key, err := NormalizeKey(rawURL)
	if err != nil {
		return nil, false
	}
	return r.entries.Get(key)
}

// Keys returns the normalized URLs currently registered.
func (r *Registry) Keys() []string {
	return r.entries.Keys()
}

// Len returns the number of registered endpoints.
func (r *Registry) Len() int {
	return r.entries.Len()
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: collection.NewSyncMap[string, *Config]()}
}
