package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"taxa/internal/models"
)

// Client wraps a Provider with the retry policy for a single request/response
// exchange: a transport failure or a syntactically invalid JSON reply is
// retried up to maxRetries more times with a fixed backoff, then surfaced as
// models.ErrBackend. Replies that parse but lack expected fields are the
// caller's concern (see models.ErrSchemaMismatch).
type Client struct {
	provider   Provider
	maxRetries int
	backoff    time.Duration
}

// NewClient creates a retrying oracle client around a provider.
func NewClient(provider Provider, maxRetries int, backoff time.Duration) *Client {
	return &Client{
		provider:   provider,
		maxRetries: maxRetries,
		backoff:    backoff,
	}
}

// Call sends the system and user prompts to the backend and returns the
// reply as raw JSON. It makes maxRetries+1 attempts in total.
func (c *Client) Call(ctx context.Context, systemPrompt, userPrompt string) (json.RawMessage, error) {
	messages := []ChatMessage{
		{Role: ChatMessageRoleSystem, Content: systemPrompt},
		{Role: ChatMessageRoleUser, Content: userPrompt},
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			log.Warnf("Oracle call failed (attempt %d of %d): %v. Retrying in %s.",
				attempt, c.maxRetries+1, lastErr, c.backoff)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.backoff):
			}
		}

		content, err := c.provider.GenerateChatCompletion(ctx, messages)
		if err != nil {
			lastErr = err
			continue
		}

		log.Debugf("Oracle raw response: %s", content)

		raw := json.RawMessage(strings.TrimSpace(content))
		if !json.Valid(raw) {
			lastErr = fmt.Errorf("oracle reply is not valid JSON: %s", truncateForLog(content))
			continue
		}
		return raw, nil
	}

	return nil, fmt.Errorf("%w: %d attempts exhausted: %v", models.ErrBackend, c.maxRetries+1, lastErr)
}

const maxLoggedReplyBytes = 512

func truncateForLog(s string) string {
	if len(s) <= maxLoggedReplyBytes {
		return s
	}
	return s[:maxLoggedReplyBytes] + "..."
}
