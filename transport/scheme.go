package transport

import (
	"context"
	"errors"
	"net/url"
	"sort"
	"sync"

	"github.com/viant/authly/flow"
)

// BearerQuality ranks the bearer scheme above password based schemes
// when a client selects among several applicable ones.
const BearerQuality = 9

// Scheme supplies an Authorization header value for a request URL or
// reports that it does not apply to it.
type Scheme interface {
	Name() string
	Quality() int
	Authorize(ctx context.Context, URL *url.URL) (string, bool, error)
}

// BearerScheme authorizes requests to interposed endpoints with an
// OAuth bearer token obtained from the flow service.
type BearerScheme struct {
	flow *flow.Service
}

func (s *BearerScheme) Name() string {
	return "oauth"
}

func (s *BearerScheme) Quality() int {
	return BearerQuality
}

// Authorize returns a Bearer header value for an interposed URL, a URL
// with no endpoint configuration is reported as not applicable.
func (s *BearerScheme) Authorize(ctx context.Context, URL *url.URL) (string, bool, error) {
	token, err := s.flow.Token(ctx, URL.String())
	if err != nil {
		var notInterposed *flow.NotInterposedError
		if errors.As(err, &notInterposed) {
			return "", false, nil
		}
		return "", false, err
	}
	return "Bearer " + token, true, nil
}

// NewBearerScheme creates a bearer scheme backed by the supplied flow.
func NewBearerScheme(flowService *flow.Service) *BearerScheme {
	return &BearerScheme{flow: flowService}
}

// SchemeSet holds named authentication schemes ordered by descending
// quality.
type SchemeSet struct {
	mux     sync.RWMutex
	schemes []Scheme
}

// Register adds a scheme, keeping the set ordered by quality.
func (s *SchemeSet) Register(scheme Scheme) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.schemes = append(s.schemes, scheme)
	sort.SliceStable(s.schemes, func(i, j int) bool {
		return s.schemes[i].Quality() > s.schemes[j].Quality()
	})
}

// Lookup returns the named scheme.
func (s *SchemeSet) Lookup(name string) (Scheme, bool) {
	s.mux.RLock()
	defer s.mux.RUnlock()
	for _, scheme := range s.schemes {
		if scheme.Name() == name {
			return scheme, true
		}
	}
	return nil, false
}

// Authorize asks each scheme in quality order until one applies.
func (s *SchemeSet) Authorize(ctx context.Context, URL *url.URL) (string, bool, error) {
	s.mux.RLock()
	schemes := make([]Scheme, len(s.schemes))
	copy(schemes, s.schemes)
	s.mux.RUnlock()
	for _, scheme := range schemes {
		header, ok, err := scheme.Authorize(ctx, URL)
		if err != nil {
			return "", false, err
		}
		if ok {
			return header, true, nil
		}
	}
	return "", false, nil
}

// NewSchemeSet creates a scheme set with the supplied schemes.
func NewSchemeSet(schemes ...Scheme) *SchemeSet {
	ret := &SchemeSet{}
	for _, scheme := range schemes {
		ret.Register(scheme)
	}
	return ret
}
