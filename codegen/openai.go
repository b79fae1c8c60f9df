package codegen

import (
	"context"
	"fmt"
	"os"

	"github.com/sashabaranov/go-openai"

	"github.com/sartorproj/gosynth/generator"
)

const defaultModel = "gpt-4o-mini"

const systemPrompt = "You are an experienced developer. You write small, " +
	"self-contained data-generation functions and respond with code only."

// Client forwards generated prompts to the OpenAI chat completion API.
type Client struct {
	api   *openai.Client
	model string
}

// NewClient builds a Client from the OPENAI_API_KEY and OPENAI_MODEL
// environment variables. OPENAI_MODEL falls back to gpt-4o-mini.
func NewClient() (*Client, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}

	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = defaultModel
	}

	return &Client{
		api:   openai.NewClient(apiKey),
		model: model,
	}, nil
}

// GenerateCode builds the prompt for cfg and asks the model for alternative
// generator code, returning the raw response text.
func (c *Client) GenerateCode(ctx context.Context, cfg generator.Config) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: BuildPrompt(cfg)},
		},
	}

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("model returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
