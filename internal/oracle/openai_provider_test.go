package oracle

import (
	"context"
	"errors"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxa/internal/usagetracker"
)

// --- Mock OpenAI Client ---

type mockOpenAIClient struct {
	mockResponse openai.ChatCompletionResponse
	mockError    error
	lastRequest  openai.ChatCompletionRequest
}

func (m *mockOpenAIClient) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	m.lastRequest = req
	if m.mockError != nil {
		return openai.ChatCompletionResponse{}, m.mockError
	}
	return m.mockResponse, nil
}

// --- End Mock OpenAI Client ---

func TestOpenAIProvider_GenerateChatCompletion(t *testing.T) {
	mockClient := &mockOpenAIClient{
		mockResponse: openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Content: `{"categories":[]}`}},
			},
			Usage: openai.Usage{PromptTokens: 12, CompletionTokens: 5, TotalTokens: 17},
		},
	}
	tracker := usagetracker.New()
	provider := &OpenAIProvider{client: mockClient, model: "gpt-test", temperature: 0.2, tracker: tracker}

	content, err := provider.GenerateChatCompletion(context.Background(), []ChatMessage{
		{Role: ChatMessageRoleSystem, Content: "system prompt"},
		{Role: ChatMessageRoleUser, Content: "user prompt"},
	})

	require.NoError(t, err)
	assert.Equal(t, `{"categories":[]}`, content)

	// Request carries the model, roles and the JSON response format.
	assert.Equal(t, "gpt-test", mockClient.lastRequest.Model)
	require.Len(t, mockClient.lastRequest.Messages, 2)
	assert.Equal(t, "system", mockClient.lastRequest.Messages[0].Role)
	assert.Equal(t, "user", mockClient.lastRequest.Messages[1].Role)
	require.NotNil(t, mockClient.lastRequest.ResponseFormat)
	assert.Equal(t, openai.ChatCompletionResponseFormatTypeJSONObject, mockClient.lastRequest.ResponseFormat.Type)

	totals, err := tracker.Totals(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, totals.Calls)
	assert.Equal(t, 12, totals.InputTokens)
	assert.Equal(t, 5, totals.OutputTokens)
}

func TestOpenAIProvider_APIError(t *testing.T) {
	mockErr := errors.New("simulated API error 429 Too Many Requests")
	provider := &OpenAIProvider{client: &mockOpenAIClient{mockError: mockErr}, model: "gpt-test"}

	_, err := provider.GenerateChatCompletion(context.Background(), []ChatMessage{
		{Role: ChatMessageRoleUser, Content: "user prompt"},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, mockErr)
	assert.Contains(t, err.Error(), "openai chat completion failed")
}

func TestOpenAIProvider_EmptyResponse(t *testing.T) {
	provider := &OpenAIProvider{client: &mockOpenAIClient{}, model: "gpt-test"}

	_, err := provider.GenerateChatCompletion(context.Background(), []ChatMessage{
		{Role: ChatMessageRoleUser, Content: "user prompt"},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices returned from OpenAI")
}
