package store

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Key identifies a stored credential.
type Key struct {
	User  string `json:"user"`
	Host  string `json:"host"`
	Port  int    `json:"port,omitempty"`
	Path  string `json:"path,omitempty"`
	Scope string `json:"scope,omitempty"`
}

// ID returns a stable identity usable as an external store key.
func (k *Key) ID() string {
	host := k.Host
	if k.Port > 0 {
		host = fmt.Sprintf("%s:%d", k.Host, k.Port)
	}
	ret := k.User + "@" + host + k.Path
	if k.Scope != "" {
		ret += "#" + k.Scope
	}
	return ret
}

// Credential is a stored secret with an optional expiry.
type Credential struct {
	Secret string    `json:"secret"`
	Expiry time.Time `json:"expiry"`
}

// Expired reports whether the credential expiry has passed.
func (c *Credential) Expired(now time.Time) bool {
	return !c.Expiry.IsZero() && now.After(c.Expiry)
}

// Store is a pluggable persistence layer for bearer tokens and client
// secrets. The in-memory default is fine for tests and short lived
// processes, swap in a file, encrypted or keyring store otherwise.
type Store interface {
	// Find returns the credential for key, reporting absence for
	// missing or expired entries.
	Find(ctx context.Context, key *Key) (*Credential, bool, error)

	// Stage prepares a credential for persistence, it is invisible to
	// Find until the returned entry is committed.
	Stage(ctx context.Context, key *Key, credential *Credential) (*Entry, error)

	// Delete removes the credential for key if present.
	Delete(ctx context.Context, key *Key) error
}

// Entry is a staged credential pending persistence. Commit it only
// after the credential has been verified to work, repeated commits
// are no-ops.
type Entry struct {
	Key        *Key
	Credential *Credential
	mux        sync.Mutex
	committed  bool
	commit     func(ctx context.Context) error
}

// Commit persists the staged credential.
func (e *Entry) Commit(ctx context.Context) error {
	e.mux.Lock()
	defer e.mux.Unlock()
	if e.committed {
		return nil
	}
	if err := e.commit(ctx); err != nil {
		return err
	}
	e.committed = true
	return nil
}

// NewEntry creates a staged entry backed by a store commit function.
func NewEntry(key *Key, credential *Credential, commit func(ctx context.Context) error) *Entry {
	return &Entry{Key: key, Credential: credential, commit: commit}
}
