package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/zalando/go-keyring"
)

type keyringStore struct {
	service string
}

func (k *keyringStore) Find(ctx context.Context, key *Key) (*Credential, bool, error) {
	value, err := keyring.Get(k.service, key.ID())
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read keychain item: %w", err)
	}
	credential := &Credential{}
	if err = json.Unmarshal([]byte(value), credential); err != nil {
		return nil, false, fmt.Errorf("failed to parse keychain item: %w", err)
	}
	if credential.Expired(time.Now()) {
		_ = keyring.Delete(k.service, key.ID())
		return nil, false, nil
	}
	return credential, true, nil
}

func (k *keyringStore) Stage(ctx context.Context, key *Key, credential *Credential) (*Entry, error) {
	return NewEntry(key, credential, func(ctx context.Context) error {
		data, err := json.Marshal(credential)
		if err != nil {
			return err
		}
		if err = keyring.Set(k.service, key.ID(), string(data)); err != nil {
			return fmt.Errorf("failed to write keychain item: %w", err)
		}
		return nil
	}), nil
}

func (k *keyringStore) Delete(ctx context.Context, key *Key) error {
	if err := keyring.Delete(k.service, key.ID()); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("failed to delete keychain item: %w", err)
	}
	return nil
}

// NewKeyring creates a store backed by the operating system keychain,
// service names the keychain namespace, one keychain item per key.
func NewKeyring(service string) Store {
	return &keyringStore{service: service}
}
