package llm

import "context"

// Provider is a single-shot text completion backend.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Name() string
}
