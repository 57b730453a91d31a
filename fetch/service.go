package fetch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/viant/authly"
	"github.com/viant/authly/flow"
	"github.com/viant/authly/store"
)

type Service struct {
	options *Options
	client  *http.Client
}

// New assembles the authorizing client for the resource named by options.
func New(ctx context.Context, options *Options) (*Service, error) {
	config, err := options.Config(ctx)
	if err != nil {
		return nil, err
	}
	authlyOptions := []authly.Option{
		authly.WithStore(options.Store()),
		authly.WithSecretPrompt(secretPrompt),
	}
	if options.Web {
		authlyOptions = append(authlyOptions, authly.WithPrompter(flow.NewWebPrompter("127.0.0.1:0", true)))
	}
	service, err := authly.New(authlyOptions...)
	if err != nil {
		return nil, err
	}
	if err = service.Interpose(config); err != nil {
		return nil, err
	}
	return &Service{options: options, client: service.Client()}, nil
}

// Fetch requests the resource and copies the response body to writer.
func (s *Service) Fetch(ctx context.Context, writer io.Writer) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.options.URL, nil)
	if err != nil {
		return err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("fetch failed with status %v: %s", resp.StatusCode, body)
	}
	_, err = io.Copy(writer, resp.Body)
	return err
}

func secretPrompt(ctx context.Context, key *store.Key) (string, error) {
	fmt.Fprintf(os.Stderr, "Client secret for %s: ", key.ID())
	secret, err := bufio.NewReader(os.Stdin).ReadString('\n')
	secret = strings.TrimSpace(secret)
	if err != nil && secret == "" {
		return "", fmt.Errorf("failed to read client secret: %v", err)
	}
	return secret, nil
}
