package agent

import (
	"context"
	"log/slog"
	"strings"

	"github.com/leofalp/aitutor/core/classifier"
	"github.com/leofalp/aitutor/providers/tool"
	"github.com/leofalp/aitutor/providers/tool/calculator"
)

// MathName is the name of the math handler.
const MathName = "math"

var mathConcepts = []string{
	"algebra", "geometry", "calculus", "trigonometry", "statistics",
	"probability", "equation", "function", "derivative", "integral",
	"matrix", "vector", "polynomial", "theorem", "proof", "formula",
}

// Math solves mathematical questions with the calculator tool.
type Math struct {
	base
}

// NewMath builds the math handler. A nil generator answers with
// UnavailableMessage; a nil catalog gets [NewToolCatalog].
func NewMath(generator TextGenerator, catalog *tool.Catalog, options ...Option) *Math {
	return &Math{base: newBase(MathName,
		"Specialized in solving mathematical problems, performing calculations, and explaining mathematical concepts",
		[]string{calculator.ToolName}, generator, catalog, options)}
}

// Handle implements [Handler].
func (m *Math) Handle(ctx context.Context, q Query) (Response, error) {
	if err := abandoned(ctx); err != nil {
		return Response{}, err
	}

	toolsUsed := []string{}
	fragments := ExtractMathFragments(q.Text)
	if len(fragments) > 0 {
		m.logger.InfoContext(ctx, "calculations found", slog.Int("count", len(fragments)))
	}
	calcs := m.calculate(ctx, fragments)
	if len(calcs) > 0 {
		toolsUsed = toolList(toolsUsed, calculator.ToolName)
	}

	text, err := m.generate(ctx, q, buildMathPrompt(calcs))
	if err != nil {
		if err := abandoned(ctx); err != nil {
			return Response{}, err
		}
		return m.degraded(ctx, err), nil
	}

	return Response{
		Text:       appendCalculations(text, calcs),
		ToolsUsed:  toolsUsed,
		Confidence: MathConfidence,
		Metadata: map[string]any{
			"calculations_performed": len(calcs),
			"calculation_results":    calculationResults(calcs),
			"math_concepts_detected": DetectConcepts(q.Text, mathConcepts),
		},
	}, nil
}

// calculate evaluates each fragment with the calculator tool. Failures are
// kept as "calculation failed: <reason>".
func (b *base) calculate(ctx context.Context, fragments []string) []calculation {
	calcs := make([]calculation, 0, len(fragments))
	for _, fragment := range fragments {
		outcome := b.useTool(ctx, calculator.ToolName, calculator.Input{Expression: fragment})
		calc := calculation{Expression: fragment}
		if output, ok := outcome.Value.(calculator.Output); outcome.Success && ok {
			calc.Value = output.Result
		} else {
			calc.Failed = true
			calc.Err = "calculation failed: " + outcome.Message
		}
		calcs = append(calcs, calc)
	}
	return calcs
}

// DetectConcepts returns the concepts of the list mentioned in text, in
// list order.
func DetectConcepts(text string, concepts []string) []string {
	folded := classifier.Fold(text)
	detected := []string{}
	for _, concept := range concepts {
		if strings.Contains(folded, concept) {
			detected = append(detected, concept)
		}
	}
	return detected
}
