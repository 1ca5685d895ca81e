package middleware

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"net/http"
	"strings"
	"time"

	"github.com/leofalp/aitutor/core/client"
	"github.com/leofalp/aitutor/internal/utils"
	"github.com/leofalp/aitutor/providers/ai"
)

// RetryConfig tunes the retry middleware. Zero values take the defaults
// noted on each field.
type RetryConfig struct {
	// MaxRetries is the number of attempts after the first failure. Default: 3.
	MaxRetries int

	// InitialBackoff is the wait before the first retry. Default: 1s.
	InitialBackoff time.Duration

	// MaxBackoff caps the computed backoff. Default: 30s.
	MaxBackoff time.Duration

	// BackoffFactor multiplies the backoff after each retry. Default: 2.0.
	BackoffFactor float64

	// JitterFraction adds up to this fraction of the backoff as random noise.
	// Default: 0.1.
	JitterFraction float64

	// RetryableFunc decides whether an error is transient. Default: HTTP 429,
	// 500, 502, 503 and 529.
	RetryableFunc func(error) bool
}

var retryableStatus = map[int]bool{
	http.StatusTooManyRequests:     true,
	http.StatusInternalServerError: true,
	http.StatusBadGateway:          true,
	http.StatusServiceUnavailable:  true,
	529:                            true,
}

// defaultRetryableFunc checks the status of a *utils.StatusError and falls
// back to matching the code in the message for other providers' errors.
func defaultRetryableFunc(err error) bool {
	if err == nil {
		return false
	}

	var statusErr *utils.StatusError
	if errors.As(err, &statusErr) {
		return retryableStatus[statusErr.StatusCode]
	}

	msg := err.Error()
	for code := range retryableStatus {
		if strings.Contains(msg, fmt.Sprintf("status %d", code)) {
			return true
		}
	}
	return false
}

func applyRetryDefaults(config *RetryConfig) {
	if config.MaxRetries == 0 {
		config.MaxRetries = 3
	}
	if config.InitialBackoff == 0 {
		config.InitialBackoff = time.Second
	}
	if config.MaxBackoff == 0 {
		config.MaxBackoff = 30 * time.Second
	}
	if config.BackoffFactor == 0 {
		config.BackoffFactor = 2.0
	}
	if config.JitterFraction == 0 {
		config.JitterFraction = 0.1
	}
	if config.RetryableFunc == nil {
		config.RetryableFunc = defaultRetryableFunc
	}
}

// computeBackoff returns min(InitialBackoff * BackoffFactor^attempt, MaxBackoff)
// plus jitter, for a 0-indexed attempt.
func computeBackoff(config RetryConfig, attempt int) time.Duration {
	base := float64(config.InitialBackoff) * math.Pow(config.BackoffFactor, float64(attempt))
	if base > float64(config.MaxBackoff) {
		base = float64(config.MaxBackoff)
	}

	jitter := base * config.JitterFraction * rand.Float64() //nolint:gosec // jitter needs no crypto randomness
	return time.Duration(base + jitter)
}

// NewRetryMiddleware retries failed calls per config. Non-retryable errors
// and context cancellation are returned at once; exhaustion returns an error
// matching both ErrRetryExhausted and the last provider error.
func NewRetryMiddleware(config RetryConfig) client.Middleware {
	applyRetryDefaults(&config)

	return func(next client.SendFunc) client.SendFunc {
		return func(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
			var lastErr error

			for attempt := 0; attempt <= config.MaxRetries; attempt++ {
				if attempt > 0 {
					timer := time.NewTimer(computeBackoff(config, attempt-1))
					select {
					case <-ctx.Done():
						timer.Stop()
						return nil, fmt.Errorf("retry aborted: %w", ctx.Err())
					case <-timer.C:
					}
				}

				response, err := next(ctx, request)
				if err == nil {
					return response, nil
				}

				lastErr = err
				if !config.RetryableFunc(err) {
					return nil, err
				}
			}

			return nil, fmt.Errorf("%w after %d retries: %w", ErrRetryExhausted, config.MaxRetries, lastErr)
		}
	}
}
