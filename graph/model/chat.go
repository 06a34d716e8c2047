// Package model provides LLM integration adapters.
package model

import "context"

// ChatModel defines the interface for LLM chat providers.
//
// It abstracts the differences between hosted providers (Groq, OpenAI,
// Anthropic, Google) behind a single call. Implementations should:
//   - Handle provider-specific authentication
//   - Convert Message values to the provider's wire format
//   - Parse provider responses back to ChatOut
//   - Respect context cancellation and the provider's own timeouts
//
// The engine treats a ChatModel as a stateless capability: one instance
// may be shared read-only across many runs.
type ChatModel interface {
	// Chat sends the conversation to the provider and returns its
	// completion, fully awaited. Provider failures (quota, auth,
	// network) are returned as a *ProviderError and are never retried
	// at this layer.
	Chat(ctx context.Context, messages []Message) (ChatOut, error)
}

// Message is a single message in an LLM conversation.
type Message struct {
	// Role identifies the sender; use the Role* constants.
	Role string

	// Content is the message text.
	Content string
}

// Standard role constants, aligned with the major providers' chat APIs.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatOut is the output of a chat completion.
type ChatOut struct {
	// Text is the generated response.
	Text string

	// Tokens is the total token usage reported by the provider,
	// zero when the provider does not report usage.
	Tokens int
}
