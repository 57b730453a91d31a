package store

import (
	"context"
	"sync"
	"time"
)

type memoryStore struct {
	mux         sync.RWMutex
	credentials map[string]*Credential
}

func (m *memoryStore) Find(ctx context.Context, key *Key) (*Credential, bool, error) {
	m.mux.RLock()
	credential, ok := m.credentials[key.ID()]
	m.mux.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if credential.Expired(time.Now()) {
		m.mux.Lock()
		delete(m.credentials, key.ID())
		m.mux.Unlock()
		return nil, false, nil
	}
	return credential, true, nil
}

func (m *memoryStore) Stage(ctx context.Context, key *Key, credential *Credential) (*Entry, error) {
	return NewEntry(key, credential, func(ctx context.Context) error {
		m.mux.Lock()
		defer m.mux.Unlock()
		m.credentials[key.ID()] = credential
		return nil
	}), nil
}

func (m *memoryStore) Delete(ctx context.Context, key *Key) error {
	m.mux.Lock()
	defer m.mux.Unlock()
	delete(m.credentials, key.ID())
	return nil
}

// NewMemory creates an in-memory credential store.
func NewMemory() Store {
	return &memoryStore{credentials: map[string]*Credential{}}
}
