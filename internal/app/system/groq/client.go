// internal/app/system/groq/client.go

// Package groq wraps the Groq chat-completions API, which speaks the OpenAI
// wire format. It is the app's text/LLM collaborator: receipt-text
// extraction and recipe generation both go through Complete.
//
// There is no retry or backoff here; a single failure surfaces to the
// caller, which shows an error state.
package groq

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// DefaultBaseURL is Groq's OpenAI-compatible endpoint.
const DefaultBaseURL = "https://api.groq.com/openai/v1"

// ErrMissingAPIKey is returned when no API key was configured. The recipes
// and receipt-scan views treat this as fatal for the view.
var ErrMissingAPIKey = errors.New("groq: api key not configured")

// Client calls the Groq chat-completions endpoint with a fixed model.
type Client struct {
	api   *openai.Client
	model string
}

// New builds a Client for the given key and model. baseURL may be empty to
// use the public Groq endpoint.
func New(apiKey, baseURL, model string) *Client {
	if apiKey == "" {
		return &Client{model: model}
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	cfg.BaseURL = baseURL
	return &Client{
		api:   openai.NewClientWithConfig(cfg),
		model: model,
	}
}

// Complete sends a system + user prompt pair and returns the model's text.
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if c.api == nil {
		return "", ErrMissingAPIKey
	}

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
	}
	if userPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleUser,
			Content: userPrompt,
		})
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("groq: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("groq: empty completion response")
	}
	return resp.Choices[0].Message.Content, nil
}
