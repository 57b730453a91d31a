package mock

import (
	"context"
	"fmt"
	"net/http"
)

// Prompter drives the authorize endpoint without user interaction,
// standing in for the person who approves access in a browser. It
// requests the authorization URL and hands back the redirect URL the
// server answers with.
type Prompter struct {
	// Client performs the authorize request, it must not follow redirects.
	Client *http.Client
}

func (p *Prompter) Prompt(ctx context.Context, authURL string) (string, error) {
	client := p.Client
	if client == nil {
		client = &http.Client{
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, authURL, nil)
	if err != nil {
		return "", err
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	location := resp.Header.Get("Location")
	if location == "" {
		return "", fmt.Errorf("authorize endpoint did not redirect: %s", resp.Status)
	}
	return location, nil
}
