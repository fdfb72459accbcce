// Package llm holds the model-provider capability the orchestration layer
// depends on. The matcher core never imports this package.
package llm

import "context"

// Provider is the single capability the intake orchestration needs from a
// hosted language model: render text for one prompt. Implementations may
// fail for reasons outside the caller's control (network, quota, provider
// error); callers do not retry.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GenerateFunc adapts a plain function to the Provider interface.
type GenerateFunc func(ctx context.Context, prompt string) (string, error)

// Generate implements Provider.
func (f GenerateFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
