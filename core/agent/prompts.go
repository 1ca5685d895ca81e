package agent

import (
	"fmt"
	"strings"

	"github.com/leofalp/aitutor/core/classifier"
	"github.com/leofalp/aitutor/providers/tool/calculator"
	"github.com/leofalp/aitutor/providers/tool/physics"
)

const mathSystemPrompt = `You are a specialized Math Tutor Agent. Your role is to:

1. Solve mathematical problems step by step
2. Explain mathematical concepts clearly
3. Provide detailed working and reasoning
4. Use calculation results when available
5. Help students understand the underlying principles

Guidelines:
- Always show your working step by step
- Explain the mathematical reasoning behind each step
- Use simple language while maintaining mathematical accuracy
- If calculations were performed, reference them appropriately
- Include formulas and theorems when relevant`

const physicsSystemPrompt = `You are a specialized Physics Tutor Agent. Your role is to:

1. Solve physics problems step by step
2. Explain physics concepts clearly with real-world applications
3. Use appropriate physics formulas and constants
4. Show detailed calculations and unit analysis
5. Help students understand the underlying physics principles

Guidelines:
- Always include units in your calculations
- Explain the physics concepts behind each step
- Reference relevant formulas and constants when applicable
- Show dimensional analysis when helpful
- Connect problems to real-world physics applications
- Use clear, educational language suitable for students`

const generalSystemPrompt = `You are an AI Tutor Agent specializing in educational support. Your role is to:

1. Provide clear, helpful explanations on academic topics
2. Guide students through learning concepts step by step
3. Encourage critical thinking and problem-solving
4. Adapt explanations to different learning levels
5. Suggest additional resources when appropriate

Guidelines:
- Use encouraging, supportive language
- Break complex topics into manageable parts
- Provide examples to illustrate concepts
- Ask clarifying questions when needed
- Connect learning to real-world applications
- If the question is specifically about math or physics calculations, suggest that the student ask more specifically about those topics for detailed assistance

For questions that require detailed mathematical calculations or physics problem-solving, you can suggest that students specify they need "math help" or "physics help" for more specialized assistance.`

// calculation is one evaluated fragment. Failed is set when Err holds the
// reason instead of Value.
type calculation struct {
	Expression string
	Value      float64
	Err        string
	Failed     bool
}

func (c calculation) result() any {
	if c.Failed {
		return c.Err
	}
	return c.Value
}

func (c calculation) line() string {
	if c.Failed {
		return fmt.Sprintf("- %s = %s\n", c.Expression, c.Err)
	}
	return fmt.Sprintf("- %s = %s\n", c.Expression, calculator.FormatResult(c.Value))
}

func calculationResults(calcs []calculation) map[string]any {
	results := make(map[string]any, len(calcs))
	for _, c := range calcs {
		results[c.Expression] = c.result()
	}
	return results
}

func buildMathPrompt(calcs []calculation) string {
	var sb strings.Builder
	sb.WriteString(mathSystemPrompt)
	writeCalculationContext(&sb, calcs, "Use these results in your explanation when appropriate.")
	return sb.String()
}

func buildPhysicsPrompt(constants []physics.Constant, formulas []physics.Formula, calcs []calculation) string {
	var sb strings.Builder
	sb.WriteString(physicsSystemPrompt)
	if len(constants) > 0 {
		sb.WriteString("\n\nPhysics Constants Available:\n")
		for _, c := range constants {
			fmt.Fprintf(&sb, "- %s: %s %s (%s)\n", c.Symbol, calculator.FormatResult(c.Value), c.Unit, c.Description)
		}
	}
	if len(formulas) > 0 {
		sb.WriteString("\n\nRelevant Physics Formulas:\n")
		for _, f := range formulas {
			fmt.Fprintf(&sb, "- %s: %s\n", f.Title(), f.Expression)
			fmt.Fprintf(&sb, "  Description: %s\n", f.Description)
		}
	}
	writeCalculationContext(&sb, calcs, "Use these results in your physics explanation.")
	return sb.String()
}

func writeCalculationContext(sb *strings.Builder, calcs []calculation, closing string) {
	if len(calcs) == 0 {
		return
	}
	sb.WriteString("\n\nCalculation Results Available:\n")
	for _, c := range calcs {
		sb.WriteString(c.line())
	}
	sb.WriteString("\n")
	sb.WriteString(closing)
}

// The appended sections are skipped when the prose already mentions the
// topic (case-insensitive).

func appendCalculations(text string, calcs []calculation) string {
	if len(calcs) == 0 || mentions(text, "calculation") {
		return text
	}
	var sb strings.Builder
	sb.WriteString(text)
	sb.WriteString("\n\n**Calculations:**\n")
	for _, c := range calcs {
		sb.WriteString(c.line())
	}
	return sb.String()
}

func appendConstants(text string, constants []physics.Constant) string {
	if len(constants) == 0 || mentions(text, "constant") {
		return text
	}
	var sb strings.Builder
	sb.WriteString(text)
	sb.WriteString("\n\n**Physics Constants Used:**\n")
	for _, c := range constants {
		fmt.Fprintf(&sb, "- %s = %s %s (%s)\n", c.Symbol, calculator.FormatResult(c.Value), c.Unit, c.Description)
	}
	return sb.String()
}

func appendFormulas(text string, formulas []physics.Formula) string {
	if len(formulas) == 0 || mentions(text, "formula") {
		return text
	}
	var sb strings.Builder
	sb.WriteString(text)
	sb.WriteString("\n\n**Relevant Formulas:**\n")
	for _, f := range formulas {
		fmt.Fprintf(&sb, "- %s - %s\n", f.Expression, f.Description)
	}
	return sb.String()
}

func mentions(text, word string) bool {
	return strings.Contains(classifier.Fold(text), word)
}
