package middleware

import (
	"context"
	"time"

	"github.com/leofalp/aitutor/core/client"
	"github.com/leofalp/aitutor/providers/ai"
)

// NewTimeoutMiddleware bounds every call with timeout. A shorter deadline
// already on the caller's context still wins. A non-positive timeout
// disables the bound.
func NewTimeoutMiddleware(timeout time.Duration) client.Middleware {
	return func(next client.SendFunc) client.SendFunc {
		if timeout <= 0 {
			return next
		}
		return func(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			return next(ctx, request)
		}
	}
}
