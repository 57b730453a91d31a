package flow

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// TermPrompter asks the user to visit the authorization URL and paste
// the redirect URL back on the terminal.
type TermPrompter struct {
	In  io.Reader
	Out io.Writer
}

func (p *TermPrompter) Prompt(ctx context.Context, authURL string) (string, error) {
	_, _ = fmt.Fprintf(p.Out, "Visit the following URL to authorize access:\n\n  %s\n\nPaste the redirect URL here: ", authURL)
	type answer struct {
		line string
		err  error
	}
	done := make(chan answer, 1)
	go func() {
		line, err := bufio.NewReader(p.In).ReadString('\n')
		done <- answer{line: line, err: err}
	}()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		line := strings.TrimSpace(res.line)
		if res.err != nil && line == "" {
			return "", fmt.Errorf("failed to read redirect url: %v", res.err)
		}
		return line, nil
	}
}

// NewTermPrompter creates a prompter reading from stdin and writing
// to stderr.
func NewTermPrompter() *TermPrompter {
	return &TermPrompter{In: os.Stdin, Out: os.Stderr}
}
