package middleware

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/leofalp/aitutor/core/client"
	"github.com/leofalp/aitutor/internal/utils"
	"github.com/leofalp/aitutor/providers/ai"
)

// LogLevel controls how much detail the logging middleware emits per call.
// Each level includes everything logged by the levels below it.
type LogLevel int

const (
	// LogLevelMinimal logs only the model name, the call duration and the
	// token counts. Use it for a lightweight audit trail.
	LogLevelMinimal LogLevel = iota

	// LogLevelStandard adds the message count, the system prompt size and the
	// finish reason. It is the default.
	LogLevelStandard

	// LogLevelVerbose adds the user prompt and the answer, truncated to 500
	// characters. Student questions end up in the logs, so keep it out of
	// production.
	LogLevelVerbose
)

// ParseLogLevel maps "minimal", "standard" or "verbose" to a LogLevel,
// ignoring case and surrounding spaces. Anything else is LogLevelStandard;
// callers that want to reject unknown names validate them first.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "minimal":
		return LogLevelMinimal
	case "verbose":
		return LogLevelVerbose
	default:
		return LogLevelStandard
	}
}

// truncateLen is the maximum content length included in verbose log output.
const truncateLen = 500

// NewLoggingMiddleware creates a middleware that emits structured slog entries
// before and after every provider call: "llm send" with the request
// attributes, then "llm send completed" with the response attributes or
// "llm send failed" with the error. The error is passed through unchanged.
//
// A nil logger uses slog.Default().
func NewLoggingMiddleware(logger *slog.Logger, level LogLevel) client.Middleware {
	if logger == nil {
		logger = slog.Default()
	}

	return func(next client.SendFunc) client.SendFunc {
		return func(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
			logger.InfoContext(ctx, "llm send", buildRequestAttrs(request, level)...)

			start := time.Now()
			response, err := next(ctx, request)
			elapsed := time.Since(start)

			if err != nil {
				logger.ErrorContext(ctx, "llm send failed",
					slog.String("model", request.Model),
					slog.Duration("duration", elapsed),
					slog.String("error", err.Error()),
				)
				return nil, err
			}

			logger.InfoContext(ctx, "llm send completed", buildResponseAttrs(response, elapsed, level)...)
			return response, nil
		}
	}
}

func buildRequestAttrs(request ai.ChatRequest, level LogLevel) []any {
	attrs := []any{slog.String("model", request.Model)}

	if level >= LogLevelStandard {
		attrs = append(attrs,
			slog.Int("message_count", len(request.Messages)),
			slog.Int("system_prompt_chars", len(request.SystemPrompt)),
		)
	}

	if level >= LogLevelVerbose && len(request.Messages) > 0 {
		last := request.Messages[len(request.Messages)-1]
		attrs = append(attrs,
			slog.String("prompt_role", string(last.Role)),
			slog.String("prompt", utils.TruncateString(last.Content, truncateLen)),
		)
	}
	return attrs
}

func buildResponseAttrs(response *ai.ChatResponse, elapsed time.Duration, level LogLevel) []any {
	if response == nil {
		return []any{slog.Duration("duration", elapsed), slog.Bool("empty", true)}
	}

	attrs := []any{
		slog.String("model", response.Model),
		slog.Duration("duration", elapsed),
	}

	if response.Usage != nil {
		attrs = append(attrs,
			slog.Int("prompt_tokens", response.Usage.PromptTokens),
			slog.Int("completion_tokens", response.Usage.CompletionTokens),
			slog.Int("total_tokens", response.Usage.TotalTokens),
		)
	}

	if level >= LogLevelStandard && response.FinishReason != "" {
		attrs = append(attrs, slog.String("finish_reason", response.FinishReason))
	}
	if response.Refusal != "" {
		attrs = append(attrs, slog.String("refusal", response.Refusal))
	}

	if level >= LogLevelVerbose && response.Content != "" {
		attrs = append(attrs, slog.String("response_content", utils.TruncateString(response.Content, truncateLen)))
	}
	return attrs
}
