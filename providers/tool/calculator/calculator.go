package calculator

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/leofalp/aitutor/providers/tool"
)

// ToolName is the catalog name of the calculator.
const ToolName = "calculator"

// Input is the argument of the calculator tool.
type Input struct {
	Expression string `json:"expression" jsonschema:"description=Arithmetic expression such as 2 + 3 * 4 or sqrt(16),required"`
}

// Output is the result of a successful evaluation.
type Output struct {
	Expression string  `json:"expression"`
	Normalized string  `json:"normalized_expression"`
	Result     float64 `json:"result"`
}

// NewCalculatorTool returns the calculator as a [tool.Tool].
func NewCalculatorTool() *tool.Tool[Input, Output] {
	return tool.NewTool(ToolName, Calc,
		tool.WithDescription[Input, Output]("Performs safe mathematical calculations including basic arithmetic, trigonometry, and common math functions"),
		tool.WithMetadata(OutcomeMetadata),
	)
}

// Calc evaluates in.Expression. Failures are *tool.Error values carrying one
// of unsafe_expression, division_by_zero, math_domain_error or
// non_finite_result.
func Calc(_ context.Context, in Input) (Output, error) {
	normalized := Normalize(in.Expression)
	if fragment, denied := deniedFragment(normalized); denied {
		return Output{}, tool.NewError(tool.KindUnsafeExpression, fmt.Sprintf("expression contains forbidden sequence %q", fragment))
	}

	tokens, err := tokenize(normalized)
	if err != nil {
		return Output{}, err
	}
	tree, err := parse(tokens)
	if err != nil {
		return Output{}, err
	}
	result, err := tree.eval()
	if err != nil {
		return Output{}, err
	}

	// fold negative zero so results print as 0
	if result == 0 {
		result = 0
	}
	return Output{Expression: in.Expression, Normalized: normalized, Result: result}, nil
}

var evaluator = NewCalculatorTool()

// Evaluate runs [Calc] and reports the result as an outcome.
func Evaluate(expression string) tool.Outcome {
	return evaluator.Run(context.Background(), Input{Expression: expression})
}

// OutcomeMetadata describes a successful evaluation.
func OutcomeMetadata(in Input, out Output) map[string]any {
	return map[string]any{
		"original_expression":   in.Expression,
		"normalized_expression": out.Normalized,
		"result_type":           ResultType(out.Result),
	}
}

// ResultType is "integer" for whole values below 2^53 and "float" otherwise.
func ResultType(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1<<53 {
		return "integer"
	}
	return "float"
}

// FormatResult renders v the way calculation lines show it: whole numbers
// without a fraction, everything else in the shortest exact form.
func FormatResult(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
