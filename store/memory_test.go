package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testKey() *Key {
	return &Key{
		User:  "myapp",
		Host:  "api.example.com",
		Port:  443,
		Path:  "/data",
		Scope: "read",
	}
}

func TestKey_ID(t *testing.T) {
	testCases := []struct {
		description string
		key         Key
		expect      string
	}{
		{
			description: "all attributes",
			key:         Key{User: "myapp", Host: "api.example.com", Port: 443, Path: "/data", Scope: "read"},
			expect:      "myapp@api.example.com:443/data#read",
		},
		{
			description: "no port no scope",
			key:         Key{User: "myapp", Host: "api.example.com", Path: "/data"},
			expect:      "myapp@api.example.com/data",
		},
	}
	for _, testCase := range testCases {
		assert.EqualValues(t, testCase.expect, testCase.key.ID(), testCase.description)
	}
}

func TestMemory_StageAndCommit(t *testing.T) {
	ctx := context.Background()
	aStore := NewMemory()
	key := testKey()

	_, ok, err := aStore.Find(ctx, key)
	assert.Nil(t, err)
	assert.False(t, ok)

	entry, err := aStore.Stage(ctx, key, &Credential{Secret: "XYZ"})
	if !assert.Nil(t, err) {
		return
	}

	// staged credential is invisible until committed
	_, ok, err = aStore.Find(ctx, key)
	assert.Nil(t, err)
	assert.False(t, ok)

	if !assert.Nil(t, entry.Commit(ctx)) {
		return
	}
	credential, ok, err := aStore.Find(ctx, key)
	assert.Nil(t, err)
	if assert.True(t, ok) {
		assert.EqualValues(t, "XYZ", credential.Secret)
	}

	// committing again is a no-op
	assert.Nil(t, entry.Commit(ctx))
}

func TestMemory_ExpiredCredential(t *testing.T) {
	ctx := context.Background()
	aStore := NewMemory()
	key := testKey()

	entry, err := aStore.Stage(ctx, key, &Credential{Secret: "XYZ", Expiry: time.Now().Add(-time.Minute)})
	if !assert.Nil(t, err) {
		return
	}
	if !assert.Nil(t, entry.Commit(ctx)) {
		return
	}
	_, ok, err := aStore.Find(ctx, key)
	assert.Nil(t, err)
	assert.False(t, ok)
}

func TestMemory_Delete(t *testing.T) {
	ctx := context.Background()
	aStore := NewMemory()
	key := testKey()

	entry, err := aStore.Stage(ctx, key, &Credential{Secret: "XYZ"})
	if !assert.Nil(t, err) {
		return
	}
	if !assert.Nil(t, entry.Commit(ctx)) {
		return
	}
	if !assert.Nil(t, aStore.Delete(ctx, key)) {
		return
	}
	_, ok, err := aStore.Find(ctx, key)
	assert.Nil(t, err)
	assert.False(t, ok)
}
