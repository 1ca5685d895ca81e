package tutor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/leofalp/aitutor/core/agent"
	"github.com/leofalp/aitutor/core/classifier"
	"github.com/leofalp/aitutor/internal/utils"
	"github.com/leofalp/aitutor/providers/tool"
)

// Response is a handler response tagged with the domain that produced it.
type Response struct {
	agent.Response
	Domain classifier.Domain `json:"domain"`
}

// Tutor routes queries to the domain handlers. It is safe for concurrent use.
type Tutor struct {
	catalog  *tool.Catalog
	handlers map[classifier.Domain]agent.Handler
	logger   *slog.Logger
}

// Option configures a Tutor.
type Option func(*Tutor)

// WithLogger sets the logger used by the tutor and its handlers.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Tutor) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithCatalog replaces the default tool catalog.
func WithCatalog(catalog *tool.Catalog) Option {
	return func(t *Tutor) {
		if catalog != nil {
			t.catalog = catalog
		}
	}
}

// WithHandler replaces the handler of one domain.
func WithHandler(domain classifier.Domain, handler agent.Handler) Option {
	return func(t *Tutor) {
		if handler != nil {
			t.handlers[domain] = handler
		}
	}
}

// New builds a tutor whose handlers share generator and one tool catalog.
// A nil generator selects [agent.Offline].
func New(generator agent.TextGenerator, options ...Option) *Tutor {
	t := &Tutor{
		handlers: make(map[classifier.Domain]agent.Handler),
		logger:   slog.Default(),
	}
	for _, option := range options {
		option(t)
	}
	if t.catalog == nil {
		t.catalog = agent.NewToolCatalog()
	}

	withLogger := agent.WithLogger(t.logger)
	defaults := map[classifier.Domain]func() agent.Handler{
		classifier.DomainMath:    func() agent.Handler { return agent.NewMath(generator, t.catalog, withLogger) },
		classifier.DomainPhysics: func() agent.Handler { return agent.NewPhysics(generator, t.catalog, withLogger) },
		classifier.DomainTutor:   func() agent.Handler { return agent.NewGeneral(generator, withLogger) },
	}
	for domain, build := range defaults {
		if _, set := t.handlers[domain]; !set {
			t.handlers[domain] = build()
		}
	}
	return t
}

// Tools returns the catalog shared by the handlers.
func (t *Tutor) Tools() *tool.Catalog {
	return t.catalog
}

// Handler returns the handler of domain.
func (t *Tutor) Handler(domain classifier.Domain) agent.Handler {
	return t.handlers[domain]
}

// Process answers q. It never fails: a handler error or panic becomes a
// degraded response with confidence 0.
func (t *Tutor) Process(ctx context.Context, q agent.Query) Response {
	decision := classifier.Classify(q.Text)
	t.logger.InfoContext(ctx, "query routed",
		slog.String("domain", string(decision.Domain)),
		slog.String("reason", string(decision.Reason)),
		slog.Int("math_score", decision.Scores.Math),
		slog.Int("physics_score", decision.Scores.Physics),
		slog.String("query", utils.TruncateString(q.Text, 100)),
	)

	handler := t.handlers[decision.Domain]
	if handler == nil {
		handler = t.handlers[classifier.DomainTutor]
	}

	resp, err := t.handle(ctx, handler, q)
	if err != nil {
		t.logger.ErrorContext(ctx, "handler failed",
			slog.String("agent", handler.Name()),
			slog.Any("error", err),
		)
		resp = agent.Degraded(err, agent.ErrorKindInternal)
	}

	metadata := make(map[string]any, len(resp.Metadata)+2)
	for k, v := range resp.Metadata {
		metadata[k] = v
	}
	metadata["delegated_to"] = handler.Name()
	metadata["classification"] = map[string]any{
		"math_score":    decision.Scores.Math,
		"physics_score": decision.Scores.Physics,
		"reason":        string(decision.Reason),
	}
	resp.Metadata = metadata
	if resp.ToolsUsed == nil {
		resp.ToolsUsed = []string{}
	}

	return Response{Response: resp, Domain: decision.Domain}
}

func (t *Tutor) handle(ctx context.Context, handler agent.Handler, q agent.Query) (resp agent.Response, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s handler panicked: %v", handler.Name(), r)
		}
	}()
	return handler.Handle(ctx, q)
}
