package generator

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"copyforge/internal/config"
)

// ModelClient is the model collaborator: one prompt in, raw text out.
// It may fail with a transport or quota error; retry policy belongs to the
// caller, not here.
type ModelClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// OpenAIClient calls the OpenAI chat completion API through langchaingo.
type OpenAIClient struct {
	model       llms.Model
	maxTokens   int
	temperature float64
}

// NewOpenAIClient creates a client from the configured model settings.
func NewOpenAIClient(cfg config.OpenAIConfig, apiKey string) (*OpenAIClient, error) {
	model, err := openai.New(
		openai.WithModel(cfg.Model),
		openai.WithToken(apiKey),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
	}

	return &OpenAIClient{
		model:       model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
	}, nil
}

// Complete sends the prompt and returns the raw completion text.
func (c *OpenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	text, err := llms.GenerateFromSinglePrompt(ctx, c.model, prompt,
		llms.WithMaxTokens(c.maxTokens),
		llms.WithTemperature(c.temperature),
	)
	if err != nil {
		return "", fmt.Errorf("model call failed: %w", err)
	}

	return text, nil
}
