package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/viant/authly/endpoint"
	"github.com/viant/authly/flow"
	"github.com/viant/authly/store"
)

type staticScheme struct {
	name    string
	quality int
	header  string
}

func (s *staticScheme) Name() string {
	return s.name
}

func (s *staticScheme) Quality() int {
	return s.quality
}

func (s *staticScheme) Authorize(ctx context.Context, URL *url.URL) (string, bool, error) {
	if s.header == "" {
		return "", false, nil
	}
	return s.header, true, nil
}

// newAuthorizedFlow builds a flow whose store already holds a bearer
// token for resourceURL, the prompter fails the test when invoked.
func newAuthorizedFlow(t *testing.T, resourceURL, token string) *flow.Service {
	ctx := context.Background()
	parsed, err := url.Parse(resourceURL)
	if !assert.Nil(t, err) {
		t.FailNow()
	}
	registry := endpoint.NewRegistry()
	err = registry.Interpose(&endpoint.Config{
		URL:                   resourceURL,
		AuthorizationEndpoint: "https://auth.example.com/authorize",
		TokenEndpoint:         "https://auth.example.com/token",
		ClientID:              "myapp",
		Scope:                 "read",
	})
	if !assert.Nil(t, err) {
		t.FailNow()
	}
	secrets := store.NewManager(store.NewMemory())
	key := &store.Key{User: "myapp", Host: parsed.Hostname(), Path: parsed.Path, Scope: "read"}
	if port, ok := endpoint.Port(parsed); ok {
		key.Port = port
	}
	entry, err := secrets.StageBearer(ctx, key, token, time.Now().Add(time.Hour))
	if !assert.Nil(t, err) {
		t.FailNow()
	}
	if !assert.Nil(t, entry.Commit(ctx)) {
		t.FailNow()
	}
	return flow.New(
		flow.WithRegistry(registry),
		flow.WithSecrets(secrets),
		flow.WithPrompter(flow.PromptFunc(func(ctx context.Context, authURL string) (string, error) {
			t.Error("prompter must not run")
			return "", nil
		})),
	)
}

func TestRoundTripper_AuthorizesInterposed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(r.Header.Get("Authorization")))
	}))
	defer server.Close()

	flowService := newAuthorizedFlow(t, server.URL+"/data", "XYZ")
	client := &http.Client{Transport: New(WithScheme(NewBearerScheme(flowService)))}
	resp, err := client.Get(server.URL + "/data?id=1")
	if !assert.Nil(t, err) {
		return
	}
	defer resp.Body.Close()
	body := make([]byte, 64)
	n, _ := resp.Body.Read(body)
	assert.EqualValues(t, "Bearer XYZ", string(body[:n]))
}

func TestRoundTripper_PassThroughUnregistered(t *testing.T) {
	var seen string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get("Authorization")
	}))
	defer server.Close()

	flowService := flow.New(flow.WithPrompter(flow.PromptFunc(func(ctx context.Context, authURL string) (string, error) {
		t.Error("prompter must not run")
		return "", nil
	})))
	client := &http.Client{Transport: New(WithScheme(NewBearerScheme(flowService)))}
	resp, err := client.Get(server.URL + "/open")
	if !assert.Nil(t, err) {
		return
	}
	_ = resp.Body.Close()
	assert.EqualValues(t, "", seen)
}

func TestRoundTripper_PreservesCallerHeader(t *testing.T) {
	var seen string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get("Authorization")
	}))
	defer server.Close()

	flowService := newAuthorizedFlow(t, server.URL+"/data", "XYZ")
	client := &http.Client{Transport: New(WithScheme(NewBearerScheme(flowService)))}
	req, err := http.NewRequest(http.MethodGet, server.URL+"/data", nil)
	if !assert.Nil(t, err) {
		return
	}
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	resp, err := client.Do(req)
	if !assert.Nil(t, err) {
		return
	}
	_ = resp.Body.Close()
	assert.EqualValues(t, "Basic dXNlcjpwYXNz", seen)
}

func TestBearerScheme_NotApplicable(t *testing.T) {
	flowService := flow.New()
	scheme := NewBearerScheme(flowService)
	URL, err := url.Parse("https://open.example.com/data")
	if !assert.Nil(t, err) {
		return
	}
	header, ok, err := scheme.Authorize(context.Background(), URL)
	assert.Nil(t, err)
	assert.False(t, ok)
	assert.EqualValues(t, "", header)
	assert.EqualValues(t, "oauth", scheme.Name())
	assert.EqualValues(t, BearerQuality, scheme.Quality())
}

func TestSchemeSet_QualityOrder(t *testing.T) {
	low := &staticScheme{name: "basic", quality: 1, header: "Basic low"}
	high := &staticScheme{name: "token", quality: 5, header: "Token high"}
	schemes := NewSchemeSet(low, high)

	URL, err := url.Parse("https://api.example.com/data")
	if !assert.Nil(t, err) {
		return
	}
	header, ok, err := schemes.Authorize(context.Background(), URL)
	assert.Nil(t, err)
	assert.True(t, ok)
	assert.EqualValues(t, "Token high", header)

	scheme, ok := schemes.Lookup("basic")
	if assert.True(t, ok) {
		assert.EqualValues(t, 1, scheme.Quality())
	}
	_, ok = schemes.Lookup("digest")
	assert.False(t, ok)
}
