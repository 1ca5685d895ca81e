package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/leofalp/aitutor/internal/utils"
	"github.com/leofalp/aitutor/providers/ai"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-2.0-flash"
)

// ErrMissingAPIKey is returned by SendMessage when no key is configured.
var ErrMissingAPIKey = errors.New("GEMINI_API_KEY is not set")

// GeminiProvider implements the ai.Provider interface for Google's Gemini API.
type GeminiProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// New creates a provider configured from GEMINI_API_KEY and
// GEMINI_API_BASE_URL (optional, defaults to Google's endpoint).
func New() *GeminiProvider {
	baseURL := os.Getenv("GEMINI_API_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &GeminiProvider{
		apiKey:  os.Getenv("GEMINI_API_KEY"),
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

// WithAPIKey sets the API key for the provider.
func (p *GeminiProvider) WithAPIKey(apiKey string) ai.Provider {
	p.apiKey = apiKey
	return p
}

// WithBaseURL sets the base URL for the API. Empty keeps the current one.
func (p *GeminiProvider) WithBaseURL(baseURL string) ai.Provider {
	if baseURL != "" {
		p.baseURL = baseURL
	}
	return p
}

// WithHttpClient sets a custom HTTP client.
func (p *GeminiProvider) WithHttpClient(httpClient *http.Client) ai.Provider {
	p.client = httpClient
	return p
}

// SendMessage implements the ai.Provider interface.
func (p *GeminiProvider) SendMessage(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
	if p.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	model := request.Model
	if model == "" {
		model = defaultModel
	}
	url := fmt.Sprintf("%s/models/%s:generateContent", p.baseURL, model)

	// the key goes in x-goog-api-key, so no bearer token is passed
	_, resp, err := utils.DoPostSync[generateContentResponse](
		ctx,
		p.client,
		url,
		"",
		requestToGemini(request),
		utils.HeaderOption{Key: "x-goog-api-key", Value: p.apiKey},
	)
	if err != nil {
		return nil, fmt.Errorf("gemini generateContent: %w", err)
	}

	result := geminiToGeneric(*resp)
	if result.Model == "" {
		result.Model = model
	}
	return result, nil
}

// IsStopMessage reports whether the response ends the exchange.
func (p *GeminiProvider) IsStopMessage(message *ai.ChatResponse) bool {
	if message == nil {
		return true
	}
	switch message.FinishReason {
	case "stop", "length", "content_filter", "error":
		return true
	}
	return message.Content == ""
}
