package api

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// LLM is the text-generation collaborator, reached through the
// OpenAI-compatible surface of the Gemini API.
type LLM struct {
	client *openai.Client
	model  string
}

// DefaultLLM is set once at startup; nil when no API key is configured, in
// which case every call degrades to its local fallback.
var DefaultLLM *LLM

func NewLLM(apiKey, baseURL, model string) *LLM {
	if apiKey == "" {
		return nil
	}

	config := openai.DefaultConfig(apiKey)
	config.BaseURL = baseURL

	return &LLM{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

func InitLLM(apiKey, baseURL, model string) {
	DefaultLLM = NewLLM(apiKey, baseURL, model)
}

// Generate sends a single prompt and returns the raw response text. The
// timeout is a local robustness addition; a timed-out call reads as a plain
// call failure to callers, so fallback behavior is unchanged.
func (c *LLM) Generate(ctx context.Context, prompt string, jsonOnly bool) (string, error) {
	if c == nil {
		return "", fmt.Errorf("no model configured")
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}
	if jsonOnly {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
