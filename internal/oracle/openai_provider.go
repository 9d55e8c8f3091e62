package oracle

import (
	"context"
	"fmt"
	"os"

	"github.com/sashabaranov/go-openai"

	log "github.com/sirupsen/logrus"

	"taxa/internal/usagetracker"
)

// chatCompletionClient is the minimal slice of the go-openai client we use.
// Kept as an interface so tests can substitute a mock.
type chatCompletionClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIProvider implements Provider using the OpenAI chat completion API.
type OpenAIProvider struct {
	client      chatCompletionClient
	model       string
	temperature float32
	tracker     usagetracker.UsageTracker
}

// NewOpenAIProvider creates a new OpenAI completion provider.
func NewOpenAIProvider(apiKey, model string, temperature float64, tracker usagetracker.UsageTracker) (*OpenAIProvider, error) {
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY") // Fallback to env var
	}
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key not provided")
	}

	client := openai.NewClient(apiKey)
	log.Infof("OpenAI provider initialized with model %s", model)

	return &OpenAIProvider{
		client:      client,
		model:       model,
		temperature: float32(temperature),
		tracker:     tracker,
	}, nil
}

// Name returns the provider name.
func (p *OpenAIProvider) Name() string { return "openai" }

// ModelName returns the specific model identifier.
func (p *OpenAIProvider) ModelName() string { return p.model }

func (p *OpenAIProvider) GenerateChatCompletion(ctx context.Context, messages []ChatMessage) (string, error) {
	if p.client == nil {
		return "", fmt.Errorf("OpenAI provider is not initialized (missing API key)")
	}

	reqMessages := make([]openai.ChatCompletionMessage, len(messages))
	for i, m := range messages {
		reqMessages[i] = openai.ChatCompletionMessage{
			Role:    string(m.Role),
			Content: m.Content,
		}
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       p.model,
		Messages:    reqMessages,
		Temperature: p.temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned from OpenAI")
	}

	if p.tracker != nil && resp.Usage.TotalTokens > 0 {
		if err := p.tracker.RecordUsage(ctx, usagetracker.UsageEvent{
			Operation:    "chat_completion",
			Provider:     p.Name(),
			Model:        p.model,
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
		}); err != nil {
			log.Errorf("Failed to record oracle usage: %v", err)
		}
	}

	return resp.Choices[0].Message.Content, nil
}

var _ Provider = (*OpenAIProvider)(nil)
