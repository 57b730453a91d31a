package store

import (
	"context"

	"github.com/viant/scy/kms"
	"github.com/viant/scy/kms/blowfish"
)

// NewEncrypted creates a file store whose snapshot is blowfish
// encrypted with a key derived from secret, keeping tokens out of
// plaintext on shared filesystems.
func NewEncrypted(URL string, secret []byte, options ...FileOption) Store {
	cipher := blowfish.Cipher{}
	key := &kms.Key{Kind: "raw", Raw: string(blowfish.EnsureKey(secret))}
	options = append(options, WithCodec(
		func(ctx context.Context, data []byte) ([]byte, error) {
			return cipher.Encrypt(ctx, key, data)
		},
		func(ctx context.Context, data []byte) ([]byte, error) {
			return cipher.Decrypt(ctx, key, data)
		}))
	return NewFile(URL, options...)
}
