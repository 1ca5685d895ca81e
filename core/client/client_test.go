package client

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/leofalp/aitutor/providers/ai"
)

// stubProvider records the last request and replies with a fixed response.
type stubProvider struct {
	response *ai.ChatResponse
	err      error
	delay    time.Duration
	last     ai.ChatRequest
}

func (s *stubProvider) SendMessage(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
	s.last = request
	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.delay):
		}
	}
	return s.response, s.err
}

func (s *stubProvider) IsStopMessage(*ai.ChatResponse) bool      { return true }
func (s *stubProvider) WithAPIKey(string) ai.Provider            { return s }
func (s *stubProvider) WithBaseURL(string) ai.Provider           { return s }
func (s *stubProvider) WithHttpClient(*http.Client) ai.Provider { return s }

// TestNew verifies constructor validation.
func TestNew(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Error("nil provider must be rejected")
	}
	if _, err := New(&stubProvider{}, WithMiddleware(nil)); err == nil {
		t.Error("nil middleware must be rejected")
	}
	c, err := New(&stubProvider{}, WithModel("gemini-2.0-flash"))
	if err != nil || c.Model() != "gemini-2.0-flash" {
		t.Fatalf("New = %v, %v", c, err)
	}
}

// TestGenerate_Request verifies the single-turn request and trimmed answer.
func TestGenerate_Request(t *testing.T) {
	provider := &stubProvider{response: &ai.ChatResponse{Content: "  5  \n", FinishReason: "stop"}}
	c, _ := New(provider,
		WithModel("m1"),
		WithGenerationConfig(ai.GenerationConfig{MaxOutputTokens: 1000, Temperature: 0.7}),
	)

	text, err := c.Generate(context.Background(), "What is 2+3?", "You are a math tutor")
	if err != nil {
		t.Fatal(err)
	}
	if text != "5" {
		t.Errorf("text = %q", text)
	}

	req := provider.last
	if req.Model != "m1" || req.SystemPrompt != "You are a math tutor" {
		t.Errorf("request = %+v", req)
	}
	if len(req.Messages) != 1 || req.Messages[0].Role != ai.RoleUser || req.Messages[0].Content != "What is 2+3?" {
		t.Errorf("messages = %+v", req.Messages)
	}
	if req.GenerationConfig == nil || req.GenerationConfig.MaxOutputTokens != 1000 {
		t.Errorf("generation config = %+v", req.GenerationConfig)
	}
}

// TestGenerate_ServiceErrors verifies every failure path yields a *ServiceError.
func TestGenerate_ServiceErrors(t *testing.T) {
	boom := errors.New("connection refused")
	tests := []struct {
		name        string
		provider    *stubProvider
		timeout     time.Duration
		wantTimeout bool
		wantEmpty   bool
		wantCause   error
	}{
		{"transport", &stubProvider{err: boom}, 0, false, false, boom},
		{"nil response", &stubProvider{}, 0, false, true, nil},
		{"blank answer", &stubProvider{response: &ai.ChatResponse{Content: "  ", FinishReason: "length"}}, 0, false, true, nil},
		{"blocked", &stubProvider{response: &ai.ChatResponse{FinishReason: "content_filter", Refusal: "SAFETY"}}, 0, false, true, nil},
		{"deadline", &stubProvider{response: &ai.ChatResponse{Content: "late"}, delay: time.Second}, 10 * time.Millisecond, true, false, context.DeadlineExceeded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := New(tt.provider)
			ctx := context.Background()
			if tt.timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, tt.timeout)
				defer cancel()
			}

			_, err := c.Generate(ctx, "q", "")
			var svcErr *ServiceError
			if !errors.As(err, &svcErr) {
				t.Fatalf("err = %v, want *ServiceError", err)
			}
			if svcErr.Timeout != tt.wantTimeout {
				t.Errorf("Timeout = %v", svcErr.Timeout)
			}
			if tt.wantEmpty && !errors.Is(err, ErrEmptyResponse) {
				t.Errorf("err = %v, want ErrEmptyResponse", err)
			}
			if tt.wantCause != nil && !errors.Is(err, tt.wantCause) {
				t.Errorf("err = %v, want cause %v", err, tt.wantCause)
			}
		})
	}
}

// TestServiceError_Message verifies the timeout and generic prefixes.
func TestServiceError_Message(t *testing.T) {
	if msg := newServiceError(context.DeadlineExceeded).Error(); !strings.HasPrefix(msg, "AI service timeout") {
		t.Errorf("timeout message = %q", msg)
	}
	if msg := newServiceError(errors.New("x")).Error(); msg != "AI service error: x" {
		t.Errorf("message = %q", msg)
	}
}
