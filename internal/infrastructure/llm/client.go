// Package llm wraps the remote chat-completion provider used for symptom
// classification. Clients are constructed once at startup and shared.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"doctor-triage/config"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
)

const defaultTemperature = 0.1

var ErrEmptyCompletion = errors.New("llm returned no content")

// CompletionRequest is a single system+user exchange whose answer must be a
// JSON document conforming to Schema.
type CompletionRequest struct {
	Name   string
	System string
	User   string
	Schema map[string]interface{}
}

type Client struct {
	model       llms.Model
	temperature float64
}

// NewOpenAIClient builds a client for the OpenAI chat API in JSON mode.
func NewOpenAIClient(cfg config.LLMConfig) (*Client, error) {
	if !cfg.Enabled() {
		return nil, errors.New("openai api key is required")
	}

	opts := []openai.Option{
		openai.WithToken(cfg.APIKey),
		openai.WithModel(cfg.Model),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}

	model, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create openai client: %w", err)
	}

	return NewClient(model), nil
}

// NewClient wraps any langchaingo model.
func NewClient(model llms.Model) *Client {
	return &Client{model: model, temperature: defaultTemperature}
}

// Complete returns the raw text of the first choice.
func (c *Client) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	system, err := withSchema(req)
	if err != nil {
		return "", err
	}

	messages := []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeSystem, system),
		llms.TextParts(schema.ChatMessageTypeHuman, req.User),
	}

	resp, err := c.model.GenerateContent(ctx, messages,
		llms.WithTemperature(c.temperature),
		llms.WithJSONMode(),
	)
	if err != nil {
		return "", fmt.Errorf("llm completion failed: %w", err)
	}
	if resp == nil || len(resp.Choices) == 0 || resp.Choices[0] == nil {
		return "", ErrEmptyCompletion
	}

	content := strings.TrimSpace(resp.Choices[0].Content)
	if content == "" {
		return "", ErrEmptyCompletion
	}
	return content, nil
}

func withSchema(req CompletionRequest) (string, error) {
	if len(req.Schema) == 0 {
		return req.System, nil
	}

	schema, err := json.Marshal(req.Schema)
	if err != nil {
		return "", fmt.Errorf("failed to encode response schema: %w", err)
	}

	var b strings.Builder
	b.WriteString(req.System)
	b.WriteString("\n\nRespond with a single JSON object")
	if req.Name != "" {
		fmt.Fprintf(&b, " named %q", req.Name)
	}
	b.WriteString(" that validates against this JSON Schema:\n")
	b.Write(schema)
	return b.String(), nil
}
