package oracle

import (
	"context"
)

// ChatMessageRole defines the role of the message sender (system, user, assistant).
type ChatMessageRole string

const (
	ChatMessageRoleSystem    ChatMessageRole = "system"
	ChatMessageRoleUser      ChatMessageRole = "user"
	ChatMessageRoleAssistant ChatMessageRole = "assistant" // Or "model" for Gemini
)

// ChatMessage represents a single message in a chat conversation.
type ChatMessage struct {
	Role    ChatMessageRole
	Content string
}

// Provider defines the interface for a generative-text backend that answers a
// chat exchange with a single completion string. Providers are expected to
// request JSON-formatted replies from the model; parsing and retrying are the
// Client's concern.
type Provider interface {
	GenerateChatCompletion(ctx context.Context, messages []ChatMessage) (string, error)
	Name() string      // Provider name (e.g., "openai", "gemini")
	ModelName() string // Specific model used
}
