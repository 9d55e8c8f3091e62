package oracle

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	log "github.com/sirupsen/logrus"

	"taxa/internal/usagetracker"
)

// GeminiProvider implements Provider using the Google Gemini API.
type GeminiProvider struct {
	client      *genai.Client
	model       string
	temperature float32
	tracker     usagetracker.UsageTracker
}

// NewGeminiProvider creates a new Gemini completion provider.
func NewGeminiProvider(ctx context.Context, apiKey, model string, temperature float64, tracker usagetracker.UsageTracker) (*GeminiProvider, error) {
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY") // Fallback to env var
	}
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key not provided")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	log.Infof("Gemini provider initialized with model %s", model)

	return &GeminiProvider{
		client:      client,
		model:       model,
		temperature: float32(temperature),
		tracker:     tracker,
	}, nil
}

// Name returns the provider name.
func (p *GeminiProvider) Name() string { return "gemini" }

// ModelName returns the specific model identifier.
func (p *GeminiProvider) ModelName() string { return p.model }

func (p *GeminiProvider) GenerateChatCompletion(ctx context.Context, messages []ChatMessage) (string, error) {
	if p.client == nil {
		return "", fmt.Errorf("Gemini provider is not initialized (missing API key)")
	}

	model := p.client.GenerativeModel(p.model)
	model.SetTemperature(p.temperature)
	model.GenerationConfig.ResponseMIMEType = "application/json"

	// Gemini has no system role in the message list; system messages become
	// the model's system instruction, the rest are concatenated as the prompt.
	var systemParts []genai.Part
	var userParts []string
	for _, m := range messages {
		if m.Role == ChatMessageRoleSystem {
			systemParts = append(systemParts, genai.Text(m.Content))
		} else {
			userParts = append(userParts, m.Content)
		}
	}
	if len(systemParts) > 0 {
		model.SystemInstruction = &genai.Content{Parts: systemParts}
	}

	resp, err := model.GenerateContent(ctx, genai.Text(strings.Join(userParts, "\n\n")))
	if err != nil {
		return "", fmt.Errorf("gemini content generation failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no candidates returned from Gemini")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	if p.tracker != nil && resp.UsageMetadata != nil {
		if err := p.tracker.RecordUsage(ctx, usagetracker.UsageEvent{
			Operation:    "chat_completion",
			Provider:     p.Name(),
			Model:        p.model,
			InputTokens:  int(resp.UsageMetadata.PromptTokenCount),
			OutputTokens: int(resp.UsageMetadata.CandidatesTokenCount),
		}); err != nil {
			log.Errorf("Failed to record oracle usage: %v", err)
		}
	}

	return sb.String(), nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() error {
	if p.client != nil {
		return p.client.Close()
	}
	return nil
}

var _ Provider = (*GeminiProvider)(nil)
