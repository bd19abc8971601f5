package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"

	domai "github.com/kaizen-center/backend/internal/domain/ai"
)

const maxTokens = 4096

// Client wraps the OpenAI chat-completion API behind the TextGenerator
// port. Stateless; safe for concurrent use.
type Client struct {
	api          *openai.Client
	defaultModel string
	configured   bool
}

func NewClient(apiKey, defaultModel string) *Client {
	if defaultModel == "" {
		defaultModel = openai.GPT4o
	}
	return &Client{
		api:          openai.NewClient(apiKey),
		defaultModel: defaultModel,
		configured:   apiKey != "",
	}
}

func (c *Client) GenerateText(ctx context.Context, prompt string, opts domai.Options) (string, error) {
	if !c.configured {
		return "", domai.ErrNotConfigured
	}

	model := opts.Model
	if model == "" {
		model = c.defaultModel
	}

	var msgs []openai.ChatCompletionMessage
	if opts.System != "" {
		msgs = append(msgs, openai.ChatCompletionMessage{
			Role: openai.ChatMessageRoleSystem, Content: opts.System,
		})
	}
	msgs = append(msgs, openai.ChatCompletionMessage{
		Role: openai.ChatMessageRoleUser, Content: prompt,
	})

	req := openai.ChatCompletionRequest{
		Model:       model,
		Messages:    msgs,
		Temperature: opts.Temperature,
	}
	if opts.JSONOnly {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}
	// For reasoning models (o1/o3/o4/gpt-5*) use MaxCompletionTokens instead of MaxTokens
	if strings.HasPrefix(model, "o1") || strings.HasPrefix(model, "o3") || strings.HasPrefix(model, "o4") || strings.HasPrefix(model, "gpt-5") {
		req.MaxCompletionTokens = maxTokens
	} else {
		req.MaxTokens = maxTokens
	}

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			if apiErr.HTTPStatusCode == http.StatusTooManyRequests {
				return "", domai.ErrQuotaExceeded
			}
			return "", &domai.UpstreamError{StatusCode: apiErr.HTTPStatusCode, Message: apiErr.Message}
		}
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", domai.ErrEmptyResponse
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", domai.ErrEmptyResponse
	}
	return content, nil
}
