package inference

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	openai "github.com/sashabaranov/go-openai"

	"parley-server/chat-api/internal/domain/llm"
	"parley-server/chat-api/internal/infrastructure/metrics"
)

// Config controls the completion backend connection.
type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Client implements llm.Generator against an OpenAI-compatible backend.
type Client struct {
	httpClient *resty.Client
	model      string
}

// NewClient creates a Resty-backed client.
func NewClient(cfg Config) *Client {
	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("Content-Type", "application/json").
		SetTimeout(cfg.Timeout)

	if cfg.APIKey != "" {
		httpClient.SetAuthToken(cfg.APIKey)
	}

	return &Client{
		httpClient: httpClient,
		model:      cfg.Model,
	}
}

// Generate calls /chat/completions with a system and user message and
// returns the first choice.
func (c *Client) Generate(ctx context.Context, systemPrompt string, userPrompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	}

	started := time.Now()
	var completion openai.ChatCompletionResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&completion).
		Post("/chat/completions")
	if err != nil {
		metrics.RecordCompletion("chat_completion", "error", time.Since(started).Seconds())
		return "", fmt.Errorf("call completion backend: %w", err)
	}

	if resp.IsError() {
		metrics.RecordCompletion("chat_completion", "error", time.Since(started).Seconds())
		return "", fmt.Errorf("completion backend error: %s", resp.String())
	}

	metrics.RecordCompletion("chat_completion", "ok", time.Since(started).Seconds())

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("completion backend returned no choices")
	}

	return completion.Choices[0].Message.Content, nil
}

// Ensure interface compliance.
var _ llm.Generator = (*Client)(nil)
