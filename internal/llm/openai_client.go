// Package llm adapts an OpenAI-compatible chat-completion endpoint to the
// domain.CompletionClient interface.
package llm

import (
	"context"
	"errors"
	"strings"
	"time"

	"quiz-page/internal/config"
	"quiz-page/internal/domain"
	"quiz-page/internal/logger"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// maxCompletionTokens caps the model reply size.
const maxCompletionTokens = 2000

const defaultTimeout = 60 * time.Second

// OpenAIClient issues single blocking chat-completion requests. It makes
// one attempt per call; retry policy belongs to the caller.
type OpenAIClient struct {
	client      *openai.Client
	apiKey      string
	model       string
	temperature float32
	timeout     time.Duration
}

// NewOpenAIClient builds a client for the configured endpoint. A non-empty
// BaseURL points the client at any OpenAI-compatible server (Groq, local
// gateways); requests go to {base_url}/v1/chat/completions.
func NewOpenAIClient(cfg config.LLMConfig) *OpenAIClient {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/") + "/v1"
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &OpenAIClient{
		client:      openai.NewClientWithConfig(clientCfg),
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		temperature: float32(cfg.Temperature),
		timeout:     timeout,
	}
}

// Complete implements domain.CompletionClient.
func (c *OpenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(c.apiKey) == "" {
		return "", domain.NewConfigurationError("completion API key is not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: c.temperature,
		MaxTokens:   maxCompletionTokens,
	})
	if err != nil {
		logger.Get().Error("Completion API call failed",
			zap.String("model", c.model),
			zap.Error(err),
		)
		return "", classifyCompletionError(err)
	}

	if len(resp.Choices) == 0 {
		return "", domain.NewEmptyResponseError()
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", domain.NewEmptyResponseError()
	}

	return content, nil
}

// classifyCompletionError maps transport and non-2xx failures onto the
// upstream error taxonomy, keeping the status code and body the server
// returned.
func classifyCompletionError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return domain.NewUpstreamError(apiErr.HTTPStatusCode, apiErr.Message, err)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return domain.NewUpstreamError(reqErr.HTTPStatusCode, string(reqErr.Body), err)
	}

	// Timeouts and transport failures never produced a response.
	return domain.NewUpstreamError(0, "", err)
}

var _ domain.CompletionClient = (*OpenAIClient)(nil)
