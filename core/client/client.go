package client

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/leofalp/aitutor/providers/ai"
)

// Client generates tutor answers through a provider and a middleware chain.
// It is immutable after New and safe for concurrent use.
type Client struct {
	provider         ai.Provider
	model            string
	generationConfig *ai.GenerationConfig
	middlewares      []Middleware
	send             SendFunc
}

// Option configures a Client.
type Option func(*Client)

// WithModel selects the model; empty leaves the provider default.
func WithModel(model string) Option {
	return func(c *Client) {
		c.model = model
	}
}

// WithGenerationConfig sets token and sampling limits for every request.
func WithGenerationConfig(config ai.GenerationConfig) Option {
	return func(c *Client) {
		c.generationConfig = &config
	}
}

// WithMiddleware appends middlewares. The first one given is the outermost.
func WithMiddleware(middlewares ...Middleware) Option {
	return func(c *Client) {
		c.middlewares = append(c.middlewares, middlewares...)
	}
}

// New builds a Client around provider.
func New(provider ai.Provider, options ...Option) (*Client, error) {
	if provider == nil {
		return nil, errors.New("client: provider must not be nil")
	}

	c := &Client{provider: provider}
	for _, option := range options {
		option(c)
	}
	for i, mw := range c.middlewares {
		if mw == nil {
			return nil, fmt.Errorf("client: middleware at index %d is nil", i)
		}
	}
	c.send = buildSendChain(provider, c.middlewares)
	return c, nil
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.model
}

// Generate sends prompt as a single user turn under systemPrompt and returns
// the trimmed answer. Any failure is a *ServiceError.
func (c *Client) Generate(ctx context.Context, prompt string, systemPrompt string) (string, error) {
	request := ai.ChatRequest{
		Model:            c.model,
		Messages:         []ai.Message{{Role: ai.RoleUser, Content: prompt}},
		SystemPrompt:     systemPrompt,
		GenerationConfig: c.generationConfig,
	}

	response, err := c.send(ctx, request)
	if err != nil {
		return "", newServiceError(err)
	}
	if response == nil {
		return "", newServiceError(ErrEmptyResponse)
	}

	text := strings.TrimSpace(response.Content)
	if text == "" {
		if response.Refusal != "" {
			return "", newServiceError(fmt.Errorf("%w: blocked (%s)", ErrEmptyResponse, response.Refusal))
		}
		return "", newServiceError(fmt.Errorf("%w: finish reason %q", ErrEmptyResponse, response.FinishReason))
	}
	return text, nil
}
