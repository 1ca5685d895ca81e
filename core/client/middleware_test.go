package client

import (
	"context"
	"slices"
	"testing"

	"github.com/leofalp/aitutor/providers/ai"
)

func recordingMiddleware(name string, trace *[]string) Middleware {
	return func(next SendFunc) SendFunc {
		return func(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
			*trace = append(*trace, name+" in")
			resp, err := next(ctx, request)
			*trace = append(*trace, name+" out")
			return resp, err
		}
	}
}

// TestBuildSendChain_Order verifies the first middleware is the outermost.
func TestBuildSendChain_Order(t *testing.T) {
	var trace []string
	provider := &stubProvider{response: &ai.ChatResponse{Content: "ok"}}
	c, err := New(provider, WithMiddleware(
		recordingMiddleware("a", &trace),
		recordingMiddleware("b", &trace),
	))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.Generate(context.Background(), "q", ""); err != nil {
		t.Fatal(err)
	}

	want := []string{"a in", "b in", "b out", "a out"}
	if !slices.Equal(trace, want) {
		t.Errorf("trace = %v, want %v", trace, want)
	}
}
