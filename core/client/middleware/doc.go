// Package middleware provides the send middlewares used around the tutor's
// text generation client.
//
//   - [NewTimeoutMiddleware] bounds each call with context.WithTimeout.
//   - [NewRetryMiddleware] retries transient failures (HTTP 429 and 5xx) with
//     exponential backoff and jitter. The tutor enables it only when
//     AITUTOR_MAX_RETRIES is positive.
//   - [NewLoggingMiddleware] logs each call with slog at one of three levels.
//
// Usage:
//
//	c, err := client.New(provider,
//	    client.WithMiddleware(
//	        middleware.NewTimeoutMiddleware(30*time.Second),
//	        middleware.NewRetryMiddleware(middleware.RetryConfig{MaxRetries: 2}),
//	        middleware.NewLoggingMiddleware(logger, middleware.LogLevelStandard),
//	    ),
//	)
//
// The first middleware is the outermost, so above the timeout covers all
// retries together, and every attempt is logged.
package middleware
