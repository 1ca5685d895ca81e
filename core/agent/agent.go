package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"regexp"
	"slices"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/leofalp/aitutor/core/client"
	"github.com/leofalp/aitutor/providers/tool"
	"github.com/leofalp/aitutor/providers/tool/calculator"
	"github.com/leofalp/aitutor/providers/tool/physics"
)

// Fixed per-handler confidences.
const (
	MathConfidence     = 0.80
	PhysicsConfidence  = 0.85
	GeneralConfidence  = 0.75
	DegradedConfidence = 0.0
)

// Error kinds reported in the metadata of degraded responses.
const (
	ErrorKindService  = "service_error"
	ErrorKindInternal = "internal_error"
)

// UnavailableMessage is the answer of [Offline].
const UnavailableMessage = "I'm currently unable to process requests due to API configuration issues."

// Query is one question with optional caller context.
type Query struct {
	Text    string            `json:"query"`
	Context map[string]string `json:"context,omitempty"`
}

// NewQuery builds a Query holding its own copy of context.
func NewQuery(text string, context map[string]string) Query {
	var copied map[string]string
	if len(context) > 0 {
		copied = maps.Clone(context)
	}
	return Query{Text: text, Context: copied}
}

// Response is what a handler returns for one query.
type Response struct {
	Text       string         `json:"text"`
	ToolsUsed  []string       `json:"tools_used"`
	Confidence float64        `json:"confidence"`
	Metadata   map[string]any `json:"metadata"`
}

// TextGenerator produces prose for a prompt. *client.Client implements it.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, systemPrompt string) (string, error)
}

// Offline is a TextGenerator for deployments without credentials.
type Offline struct{}

// Generate always answers with UnavailableMessage.
func (Offline) Generate(context.Context, string, string) (string, error) {
	return UnavailableMessage, nil
}

// Handler answers queries for one domain.
type Handler interface {
	Name() string
	Description() string
	// Tools lists the names of the catalog tools the handler may call.
	Tools() []string
	// Handle answers q. Generator failures, timeouts included, produce a
	// degraded response rather than an error. An error is returned only when
	// the caller canceled ctx.
	Handle(ctx context.Context, q Query) (Response, error)
}

// Option configures a handler.
type Option func(*base)

// WithLogger sets the handler logger. Nil keeps slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(b *base) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// NewToolCatalog returns a catalog with the calculator and the physics
// lookup over the default store.
func NewToolCatalog() *tool.Catalog {
	return tool.NewCatalogWithTools(
		calculator.NewCalculatorTool(),
		physics.NewPhysicsTool(nil),
	)
}

// base carries what every handler shares.
type base struct {
	name        string
	description string
	tools       []string
	generator   TextGenerator
	catalog     *tool.Catalog
	logger      *slog.Logger
}

func newBase(name, description string, tools []string, generator TextGenerator, catalog *tool.Catalog, options []Option) base {
	if generator == nil {
		generator = Offline{}
	}
	if catalog == nil {
		catalog = NewToolCatalog()
	}
	b := base{
		name:        name,
		description: description,
		tools:       tools,
		generator:   generator,
		catalog:     catalog,
		logger:      slog.Default(),
	}
	for _, option := range options {
		option(&b)
	}
	b.logger = b.logger.With(slog.String("agent", name))
	return b
}

func (b *base) Name() string        { return b.name }
func (b *base) Description() string { return b.description }
func (b *base) Tools() []string     { return slices.Clone(b.tools) }

func (b *base) useTool(ctx context.Context, name string, input any) tool.Outcome {
	outcome := b.catalog.Invoke(ctx, name, input)
	if outcome.Success {
		b.logger.DebugContext(ctx, "tool succeeded", slog.String("tool", name))
	} else {
		b.logger.WarnContext(ctx, "tool failed",
			slog.String("tool", name),
			slog.String("error_kind", string(outcome.Kind)),
			slog.String("error", outcome.Message),
		)
	}
	return outcome
}

// generate asks the generator for prose and converts stray HTML to Markdown.
func (b *base) generate(ctx context.Context, q Query, systemPrompt string) (string, error) {
	text, err := b.generator.Generate(ctx, userPrompt(q), systemPrompt)
	if err != nil {
		return "", err
	}
	return b.cleanProse(text), nil
}

// abandoned returns the context error when the caller canceled the query. An
// expired deadline is not abandonment: the generator reports it as a timeout
// *client.ServiceError and the handler answers degraded.
func abandoned(ctx context.Context) error {
	if err := ctx.Err(); errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// degraded turns a generator failure into an answer.
func (b *base) degraded(ctx context.Context, err error) Response {
	attrs := []any{slog.Any("error", err)}
	var serviceErr *client.ServiceError
	if errors.As(err, &serviceErr) {
		attrs = append(attrs, slog.Bool("timeout", serviceErr.Timeout))
	}
	b.logger.ErrorContext(ctx, "text generation failed, answering degraded", attrs...)
	return Degraded(err, ErrorKindService)
}

// Degraded is the confidence-0 answer given when a query could not be
// handled normally.
func Degraded(err error, kind string) Response {
	return Response{
		Text:       fmt.Sprintf("I apologize, but I encountered an error while processing your request: %v", err),
		ToolsUsed:  []string{},
		Confidence: DegradedConfidence,
		Metadata: map[string]any{
			"error":      err.Error(),
			"error_kind": kind,
		},
	}
}

var htmlTag = regexp.MustCompile(`</?[a-zA-Z][a-zA-Z0-9]*(\s[^<>]*)?/?>`)

func (b *base) cleanProse(text string) string {
	if !htmlTag.MatchString(text) {
		return text
	}
	markdown, err := htmltomarkdown.ConvertString(text)
	if err != nil || strings.TrimSpace(markdown) == "" {
		b.logger.Debug("keeping generated prose as is", slog.Any("error", err))
		return text
	}
	return strings.TrimSpace(markdown)
}

func userPrompt(q Query) string {
	if len(q.Context) == 0 {
		return q.Text
	}
	var sb strings.Builder
	sb.WriteString(q.Text)
	sb.WriteString("\n\nContext:\n")
	for _, key := range slices.Sorted(maps.Keys(q.Context)) {
		fmt.Fprintf(&sb, "- %s: %s\n", key, q.Context[key])
	}
	return strings.TrimRight(sb.String(), "\n")
}

// toolList appends name unless already present, keeping first-seen order.
func toolList(tools []string, name string) []string {
	if slices.Contains(tools, name) {
		return tools
	}
	return append(tools, name)
}

func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}
