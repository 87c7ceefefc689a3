package llm

import "context"

// Generator defines the contract for producing a completion from an
// OpenAI-compatible backend. Implementations live in infrastructure.
type Generator interface {
	Generate(ctx context.Context, systemPrompt string, userPrompt string) (string, error)
}
