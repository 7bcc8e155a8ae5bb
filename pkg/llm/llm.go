package llm

import "context"

// ChatModel is a minimal abstraction for chat-based LLMs.
// Ask sends one system and one user message and returns the first reply.
type ChatModel interface {
	Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
