package ai

import (
	"context"
)

// LLMProvider defines the contract for interacting with AI models.
// This interface allows for swapping different AI providers (Gemini, OpenAI, etc.) in the future.
type LLMProvider interface {
	// GenerateReply sends a fully assembled prompt to the model and returns
	// the raw reply text. Prompt construction (persona, context, external
	// data) is the caller's responsibility.
	GenerateReply(ctx context.Context, prompt string) (string, error)
}
