package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/viant/afs"
)

// Codec transforms the persisted snapshot, encode runs before upload
// and decode after download.
type Codec func(ctx context.Context, data []byte) ([]byte, error)

// File persists credentials as a JSON snapshot at an afs URL, so any
// scheme afs supports works: a local path, mem://, s3:// or gs://.
// Expired entries are dropped when the snapshot is loaded.
type File struct {
	fs          afs.Service
	URL         string
	mux         sync.Mutex
	credentials map[string]*Credential
	loaded      bool
	encode      Codec
	decode      Codec
}

// FileOption customizes a file store.
type FileOption func(*File)

// WithCodec applies an encoding to the persisted snapshot.
func WithCodec(encode, decode Codec) FileOption {
	return func(f *File) {
		f.encode = encode
		f.decode = decode
	}
}

type fileSnapshot struct {
	Credentials map[string]*Credential `json:"credentials"`
}

func (f *File) Find(ctx context.Context, key *Key) (*Credential, bool, error) {
	f.mux.Lock()
	defer f.mux.Unlock()
	if err := f.loadIfNeeded(ctx); err != nil {
		return nil, false, err
	}
	credential, ok := f.credentials[key.ID()]
	if !ok {
		return nil, false, nil
	}
	if credential.Expired(time.Now()) {
		delete(f.credentials, key.ID())
		return nil, false, nil
	}
	return credential, true, nil
}

func (f *File) Stage(ctx context.Context, key *Key, credential *Credential) (*Entry, error) {
	return NewEntry(key, credential, func(ctx context.Context) error {
		f.mux.Lock()
		defer f.mux.Unlock()
		if err := f.loadIfNeeded(ctx); err != nil {
			return err
		}
		f.credentials[key.ID()] = credential
		return f.save(ctx)
	}), nil
}

func (f *File) Delete(ctx context.Context, key *Key) error {
	f.mux.Lock()
	defer f.mux.Unlock()
	if err := f.loadIfNeeded(ctx); err != nil {
		return err
	}
	if _, ok := f.credentials[key.ID()]; !ok {
		return nil
	}
	delete(f.credentials, key.ID())
	return f.save(ctx)
}

func (f *File) save(ctx context.Context) error {
	data, err := json.MarshalIndent(&fileSnapshot{Credentials: f.credentials}, "", "  ")
	if err != nil {
		return err
	}
	if f.encode != nil {
		if data, err = f.encode(ctx, data); err != nil {
			return fmt.Errorf("failed to encode credentials: %w", err)
		}
	}
	if err = f.fs.Upload(ctx, f.URL, 0o600, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to save credentials: %w", err)
	}
	return nil
}

func (f *File) loadIfNeeded(ctx context.Context) error {
	if f.loaded {
		return nil
	}
	credentials := map[string]*Credential{}
	if ok, _ := f.fs.Exists(ctx, f.URL); ok {
		data, err := f.fs.DownloadWithURL(ctx, f.URL)
		if err != nil {
			return fmt.Errorf("failed to load credentials: %w", err)
		}
		if f.decode != nil {
			if data, err = f.decode(ctx, data); err != nil {
				return fmt.Errorf("failed to decode credentials: %w", err)
			}
		}
		snapshot := fileSnapshot{}
		if err = json.Unmarshal(data, &snapshot); err != nil {
			return fmt.Errorf("failed to parse credentials: %w", err)
		}
		now := time.Now()
		for id, credential := range snapshot.Credentials {
			if credential.Expired(now) {
				continue
			}
			credentials[id] = credential
		}
	}
	f.credentials = credentials
	f.loaded = true
	return nil
}

// NewFile creates a credential store persisted at URL.
func NewFile(URL string, options ...FileOption) Store {
	ret := &File{fs: afs.New(), URL: URL}
	for _, option := range options {
		option(ret)
	}
	return ret
}
