package flow

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTermPrompter_Prompt(t *testing.T) {
	output := &bytes.Buffer{}
	prompter := &TermPrompter{
		In:  strings.NewReader("  https://myapp.example.com/cb?code=ABC123\n"),
		Out: output,
	}
	redirect, err := prompter.Prompt(context.Background(), "https://auth.example.com/authorize?client_id=myapp")
	if !assert.Nil(t, err) {
		return
	}
	assert.EqualValues(t, "https://myapp.example.com/cb?code=ABC123", redirect)
	assert.Contains(t, output.String(), "https://auth.example.com/authorize?client_id=myapp")
}

func TestTermPrompter_PromptNoNewline(t *testing.T) {
	prompter := &TermPrompter{
		In:  strings.NewReader("https://myapp.example.com/cb?code=ABC123"),
		Out: &bytes.Buffer{},
	}
	redirect, err := prompter.Prompt(context.Background(), "https://auth.example.com/authorize")
	if !assert.Nil(t, err) {
		return
	}
	assert.EqualValues(t, "https://myapp.example.com/cb?code=ABC123", redirect)
}

func TestTermPrompter_PromptCancelled(t *testing.T) {
	in, out := &blockingReader{}, &bytes.Buffer{}
	prompter := &TermPrompter{In: in, Out: out}
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := prompter.Prompt(ctx, "https://auth.example.com/authorize")
	assert.NotNil(t, err)
}

type blockingReader struct{}

func (r *blockingReader) Read(p []byte) (int, error) {
	select {}
}
