// Command aitutor serves the tutoring API, or answers a single question when
// started with -ask.
//
//	aitutor                       # listen on AITUTOR_HTTP_ADDR (default :8000)
//	aitutor -ask "What is 2 + 3?" # route one question and print the answer
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/leofalp/aitutor/core/agent"
	"github.com/leofalp/aitutor/core/client"
	"github.com/leofalp/aitutor/core/client/middleware"
	"github.com/leofalp/aitutor/core/tutor"
	"github.com/leofalp/aitutor/internal/api"
	"github.com/leofalp/aitutor/internal/config"
	"github.com/leofalp/aitutor/providers/ai"
	"github.com/leofalp/aitutor/providers/ai/gemini"
)

func main() {
	var (
		ask     = flag.String("ask", "", "answer one question and exit")
		envFile = flag.String("env", ".env", "dotenv file to load before reading the environment")
	)
	flag.Parse()

	if err := run(*ask, *envFile, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "aitutor:", err)
		os.Exit(1)
	}
}

func run(ask, envFile string, stdout, stderr io.Writer) error {
	cfg := config.Load(slog.New(slog.NewTextHandler(stderr, nil)), envFile)
	logger := config.NewLogger(cfg, stderr)
	slog.SetDefault(logger)

	generator, err := newGenerator(cfg, logger)
	if err != nil {
		return err
	}
	t := tutor.New(generator, tutor.WithLogger(logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if ask != "" {
		resp := t.Process(ctx, agent.NewQuery(ask, nil))
		fmt.Fprintf(stdout, "[%s] %s\n", resp.Domain, resp.Text)
		return nil
	}

	server := api.NewServer(t,
		api.WithLogger(logger),
		api.WithAllowedOrigins(cfg.AllowedOrigins...),
		// one generation per request, plus a little room for the handlers
		api.WithRequestTimeout(cfg.GenerateTimeout+cfg.GenerateTimeout/2),
	)
	return server.Run(ctx, cfg.HTTPAddr)
}

// newGenerator returns the Gemini-backed client, or the offline generator
// when no API key is configured.
func newGenerator(cfg config.Config, logger *slog.Logger) (agent.TextGenerator, error) {
	if !cfg.HasAPIKey() {
		logger.Warn("GEMINI_API_KEY not set; answers will use the offline fallback")
		return agent.Offline{}, nil
	}

	provider := gemini.New().WithAPIKey(cfg.GeminiAPIKey).WithBaseURL(cfg.GeminiBaseURL)

	middlewares := []client.Middleware{
		middleware.NewLoggingMiddleware(logger, middleware.ParseLogLevel(cfg.LLMLogLevel)),
	}
	if cfg.MaxRetries > 0 {
		middlewares = append(middlewares, middleware.NewRetryMiddleware(middleware.RetryConfig{
			MaxRetries: cfg.MaxRetries,
		}))
	}
	// innermost so that every attempt gets its own deadline
	middlewares = append(middlewares, middleware.NewTimeoutMiddleware(cfg.GenerateTimeout))

	c, err := client.New(provider,
		client.WithModel(cfg.Model),
		client.WithGenerationConfig(ai.GenerationConfig{
			MaxOutputTokens: cfg.MaxResponseTokens,
			Temperature:     float32(cfg.Temperature),
		}),
		client.WithMiddleware(middlewares...),
	)
	if err != nil {
		return nil, fmt.Errorf("build text generation client: %w", err)
	}
	return c, nil
}
