package openai

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/artem13815/smartparking/pkg/llm"
)

const (
	DefaultBaseURL = "https://api.openai.com/v1"
	DefaultModel   = "gpt-4o-mini"
)

// Client is a minimal OpenAI-compatible chat completions client.
type Client struct {
	api   *goopenai.Client
	model string
}

type Option func(*goopenai.ClientConfig)

// WithHTTPClient replaces the HTTP client used for every request.
func WithHTTPClient(hc *http.Client) Option {
	return func(cfg *goopenai.ClientConfig) {
		cfg.HTTPClient = hc
	}
}

// New creates a client. An empty baseURL or model falls back to the defaults.
func New(apiKey, baseURL, model string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("openai: api key must not be empty")
	}
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	cfg := goopenai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Client{api: goopenai.NewClientWithConfig(cfg), model: model}, nil
}

// Model returns the model identifier sent with every request.
func (c *Client) Model() string { return c.model }

// Ask sends a system and a user message and returns the first choice's text.
func (c *Client) Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model: c.model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: goopenai.ChatMessageRoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		return "", classify(err)
	}
	if len(resp.Choices) == 0 {
		return "", llm.ErrEmptyResponse
	}
	return resp.Choices[0].Message.Content, nil
}

// classify maps go-openai and net/http failures onto the llm error types.
func classify(err error) error {
	var apiErr *goopenai.APIError
	if errors.As(err, &apiErr) {
		return statusError(apiErr.HTTPStatusCode, err)
	}
	var reqErr *goopenai.RequestError
	if errors.As(err, &reqErr) {
		return statusError(reqErr.HTTPStatusCode, err)
	}
	var urlErr *url.Error
	var netErr net.Error
	if errors.As(err, &urlErr) || errors.As(err, &netErr) ||
		errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &llm.TransportError{Err: err}
	}
	return fmt.Errorf("openai: %w", err)
}

func statusError(status int, err error) error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &llm.AuthenticationError{StatusCode: status, Err: err}
	default:
		return &llm.APIError{StatusCode: status, Err: err}
	}
}
