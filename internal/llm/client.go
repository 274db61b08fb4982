package llm

import (
	"context"
	"fmt"
	"math"

	openai "github.com/sashabaranov/go-openai"

	"pdfchat/internal/service"
)

// chatTemperature pins sampling to effectively zero. The request struct tags
// Temperature with omitempty, so a literal 0 never reaches the wire; the
// smallest positive float32 does, and samples identically to 0.
const chatTemperature = math.SmallestNonzeroFloat32

// Client is a chat completion client for Groq's OpenAI-compatible API.
type Client struct {
	client *openai.Client
	model  string
}

// NewClient creates a new chat client. baseURL is Groq's OpenAI-compatible
// endpoint; any other OpenAI-compatible server works for local development.
func NewClient(baseURL, apiKey, model string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	return &Client{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// Chat sends a single-turn completion request and returns the generated text.
// Temperature is pinned to 0 so answers stay as deterministic as the model allows.
func (c *Client) Chat(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: chatTemperature,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: chat completion failed: %v", service.ErrGeneration, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices returned", service.ErrGeneration)
	}

	return resp.Choices[0].Message.Content, nil
}
