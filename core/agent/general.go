package agent

import (
	"context"

	"github.com/leofalp/aitutor/providers/tool"
)

// GeneralName is the name of the general tutor.
const GeneralName = "tutor"

// General answers questions no specialised handler claims. It calls no tools.
type General struct {
	base
}

// NewGeneral builds the general tutor. A nil generator answers with
// UnavailableMessage.
func NewGeneral(generator TextGenerator, options ...Option) *General {
	return &General{base: newBase(GeneralName,
		"Main tutoring agent that coordinates with specialized math and physics agents to provide comprehensive educational support",
		[]string{}, generator, tool.NewCatalog(), options)}
}

// Handle implements [Handler].
func (g *General) Handle(ctx context.Context, q Query) (Response, error) {
	if err := abandoned(ctx); err != nil {
		return Response{}, err
	}

	text, err := g.generate(ctx, q, generalSystemPrompt)
	if err != nil {
		if err := abandoned(ctx); err != nil {
			return Response{}, err
		}
		return g.degraded(ctx, err), nil
	}

	return Response{
		Text:       text,
		ToolsUsed:  []string{},
		Confidence: GeneralConfidence,
		Metadata: map[string]any{
			"handled_by":           "general_tutor",
			"query_classification": "general",
			"suggestion":           "For specific math or physics calculations, try asking with 'math:' or 'physics:' prefix",
		},
	}, nil
}
