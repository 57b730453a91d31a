package flow

import "context"

// Prompter obtains the redirect URL the user lands at after approving
// access at authURL. Prompt blocks until the user supplies it, there
// is no timeout beyond ctx.
type Prompter interface {
	Prompt(ctx context.Context, authURL string) (string, error)
}

// PromptFunc adapts a function to the Prompter interface.
type PromptFunc func(ctx context.Context, authURL string) (string, error)

func (f PromptFunc) Prompt(ctx context.Context, authURL string) (string, error) {
	return f(ctx, authURL)
}
