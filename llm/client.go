package llm

import (
	"context"
	"encoding/json"
)

// Client is the single choke point for LLM calls. It owns payload parsing
// and free-form text cleanup; retry and fallback policy belong to the
// components above it.
type Client struct {
	provider Provider
}

func NewClient(provider Provider) *Client {
	return &Client{provider: provider}
}

// Provider returns the backend name, used in user-facing error messages
func (c *Client) Provider() string {
	return c.provider.Name()
}

// Structured performs a call with a declared JSON-object response format and
// parses the payload into a generic map. A parse failure surfaces as
// MalformedResponseError.
func (c *Client) Structured(ctx context.Context, system, user string, temperature float64) (map[string]any, error) {
	raw, err := c.provider.Complete(ctx, &Request{
		System:      system,
		User:        user,
		Temperature: temperature,
		JSONObject:  true,
	})
	if err != nil {
		return nil, err
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(StripCodeFence(raw)), &payload); err != nil {
		return nil, &MalformedResponseError{Reason: "invalid JSON payload", Raw: raw, Err: err}
	}
	return payload, nil
}

// FreeForm performs a plain-text call and returns the response trimmed of
// wrapping quotes and Question:/Answer: labels.
func (c *Client) FreeForm(ctx context.Context, system, user string, temperature float64, maxTokens int) (string, error) {
	raw, err := c.provider.Complete(ctx, &Request{
		System:      system,
		User:        user,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", err
	}
	return CleanText(raw), nil
}
