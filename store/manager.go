package store

import (
	"context"
	"fmt"
	"time"
)

// SecretPrompt resolves a client secret interactively when the store
// has no entry for key.
type SecretPrompt func(ctx context.Context, key *Key) (string, error)

// Manager adapts a Store to the credential operations the
// authorization flow needs.
type Manager struct {
	store  Store
	prompt SecretPrompt
}

// ManagerOption customizes a manager.
type ManagerOption func(*Manager)

// WithSecretPrompt sets the interactive client secret prompt.
func WithSecretPrompt(prompt SecretPrompt) ManagerOption {
	return func(m *Manager) {
		m.prompt = prompt
	}
}

// FindBearer returns the cached bearer token for key if present.
func (m *Manager) FindBearer(ctx context.Context, key *Key) (string, bool, error) {
	credential, ok, err := m.store.Find(ctx, key)
	if err != nil || !ok {
		return "", false, err
	}
	return credential.Secret, true, nil
}

// ClientSecret returns the client secret for key, prompting for a new
// one when absent. The returned entry is non nil only for a freshly
// prompted secret, the caller commits it once the secret has been
// successfully used.
func (m *Manager) ClientSecret(ctx context.Context, key *Key) (string, *Entry, error) {
	credential, ok, err := m.store.Find(ctx, key)
	if err != nil {
		return "", nil, err
	}
	if ok {
		return credential.Secret, nil, nil
	}
	if m.prompt == nil {
		return "", nil, fmt.Errorf("no client secret for %s and no secret prompt configured", key.ID())
	}
	secret, err := m.prompt(ctx, key)
	if err != nil {
		return "", nil, fmt.Errorf("failed to prompt for client secret: %w", err)
	}
	entry, err := m.store.Stage(ctx, key, &Credential{Secret: secret})
	if err != nil {
		return "", nil, err
	}
	return secret, entry, nil
}

// StageBearer stages a bearer token with an absolute expiry, a fresh
// entry is always created rather than updated in place.
func (m *Manager) StageBearer(ctx context.Context, key *Key, token string, expiry time.Time) (*Entry, error) {
	return m.store.Stage(ctx, key, &Credential{Secret: token, Expiry: expiry})
}

// Store returns the underlying store.
func (m *Manager) Store() Store {
	return m.store
}

// NewManager creates a manager over store.
func NewManager(store Store, options ...ManagerOption) *Manager {
	ret := &Manager{store: store}
	for _, option := range options {
		option(ret)
	}
	return ret
}
