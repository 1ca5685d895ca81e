package calculator

import (
	"context"
	"math"
	"testing"

	"github.com/leofalp/aitutor/providers/tool"
)

// TestEvaluate_Values verifies precedence, associativity and function results.
func TestEvaluate_Values(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want float64
	}{
		{"precedence", "2+3*4", 14},
		{"spaced", "2 + 3 * 4", 14},
		{"right associative power", "2**3**2", 512},
		{"caret power", "2^10", 1024},
		{"unicode operators", "6 × 7 ÷ 2", 21},
		{"parentheses", "(2+3)*4", 20},
		{"unary minus", "-3+5", 2},
		{"double unary", "--4", 4},
		{"unary binds looser than power", "-2**2", -4},
		{"negative exponent", "2**-1", 0.5},
		{"leading dot", ".5*4", 2},
		{"trailing dot", "5.+1", 6},
		{"sqrt", "sqrt(16)", 4},
		{"nested functions", "abs(floor(-2.5))", 3},
		{"ceil", "ceil(1.2)", 2},
		{"round half to even", "round(2.5)", 2},
		{"round half to even odd", "round(3.5)", 4},
		{"log of e", "log(e)", 1},
		{"log10", "log10(1000)", 3},
		{"pi", "cos(pi)", -1},
		{"negative base integer exponent", "(-2)**3", -8},
		{"division", "7/2", 3.5},
		{"whitespace everywhere", " 1\t+\n1 ", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Evaluate(tt.expr)
			if !out.Success {
				t.Fatalf("Evaluate(%q) failed: %s %s", tt.expr, out.Kind, out.Message)
			}
			got := out.Value.(Output).Result
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Evaluate(%q) = %v, want %v", tt.expr, got, tt.want)
			}
		})
	}
}

// TestEvaluate_Failures verifies every failure is reported with the right kind.
func TestEvaluate_Failures(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want tool.ErrorKind
	}{
		{"import", "__import__('os')", tool.KindUnsafeExpression},
		{"exec word", "exec(1)", tool.KindUnsafeExpression},
		{"open", "open(1)", tool.KindUnsafeExpression},
		{"unknown identifier", "x+1", tool.KindUnsafeExpression},
		{"exponent notation", "1e5", tool.KindUnsafeExpression},
		{"case sensitive names", "SQRT(4)", tool.KindUnsafeExpression},
		{"disallowed character", "2%3", tool.KindUnsafeExpression},
		{"comma", "log(8,2)", tool.KindUnsafeExpression},
		{"unicode digit", "٣+1", tool.KindUnsafeExpression},
		{"empty", "   ", tool.KindUnsafeExpression},
		{"dangling operator", "2+", tool.KindUnsafeExpression},
		{"unbalanced", "(2+3", tool.KindUnsafeExpression},
		{"implicit multiplication", "2(3)", tool.KindUnsafeExpression},
		{"function without call", "sqrt 4", tool.KindUnsafeExpression},
		{"two dots", "1.2.3", tool.KindUnsafeExpression},
		{"lone dot", ".", tool.KindUnsafeExpression},
		{"triple star", "2***3", tool.KindUnsafeExpression},
		{"syntax error wins over division", "1/0+", tool.KindUnsafeExpression},
		{"division by zero", "5/0", tool.KindDivisionByZero},
		{"zero to negative power", "0**-1", tool.KindDivisionByZero},
		{"sqrt negative", "sqrt(-1)", tool.KindMathDomain},
		{"log zero", "log(0)", tool.KindMathDomain},
		{"log10 negative", "log10(-10)", tool.KindMathDomain},
		{"fractional power of negative", "(-8)**0.5", tool.KindMathDomain},
		{"overflow", "10**400", tool.KindNonFinite},
		{"intermediate overflow", "10**400-10**400", tool.KindNonFinite},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Evaluate(tt.expr)
			if out.Success {
				t.Fatalf("Evaluate(%q) succeeded with %v", tt.expr, out.Value)
			}
			if out.Kind != tt.want {
				t.Errorf("Evaluate(%q) kind = %q (%s), want %q", tt.expr, out.Kind, out.Message, tt.want)
			}
			if out.Value != nil {
				t.Errorf("failure carries value %v", out.Value)
			}
		})
	}
}

// TestNormalize verifies the rewrite rules and idempotence.
func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2 + 3", "2+3"},
		{"2 ^ 3", "2**3"},
		{"6×7÷2", "6*7/2"},
		{" 2 *\t3\n", "2*3"},
		{"2**3", "2**3"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if again := Normalize(got); again != got {
				t.Errorf("Normalize not idempotent: %q -> %q", got, again)
			}
		})
	}
}

// TestCalc_OutputAndMetadata verifies the success payload and its metadata.
func TestCalc_OutputAndMetadata(t *testing.T) {
	out, err := Calc(context.Background(), Input{Expression: "2 ^ 3"})
	if err != nil {
		t.Fatal(err)
	}
	if out.Expression != "2 ^ 3" || out.Normalized != "2**3" || out.Result != 8 {
		t.Errorf("Calc = %+v", out)
	}

	outcome := Evaluate("1/4")
	if outcome.Metadata["result_type"] != "float" || outcome.Metadata["normalized_expression"] != "1/4" {
		t.Errorf("metadata = %v", outcome.Metadata)
	}
	if Evaluate("0*-1").Value.(Output).Result != 0 || math.Signbit(Evaluate("0*-1").Value.(Output).Result) {
		t.Error("negative zero should be folded")
	}
}

// TestCalculatorTool_Execute verifies JSON invocation through the tool interface.
func TestCalculatorTool_Execute(t *testing.T) {
	calc := NewCalculatorTool()
	if calc.ToolInfo().Name != ToolName {
		t.Errorf("name = %q", calc.ToolInfo().Name)
	}

	out := calc.Execute(context.Background(), `{"expression": "sqrt(16) + 1"}`)
	if !out.Success || out.Value.(Output).Result != 5 {
		t.Errorf("Execute = %+v", out)
	}

	bad := calc.Execute(context.Background(), `{"expression": "5/0"}`)
	if bad.Kind != tool.KindDivisionByZero {
		t.Errorf("Execute(5/0) kind = %q", bad.Kind)
	}
}

// TestFormatResult verifies integer, fractional and scientific renderings.
func TestFormatResult(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{14, "14"},
		{-3, "-3"},
		{2.5, "2.5"},
		{6.62607015e-34, "6.62607015e-34"},
		{299792458, "299792458"},
		{1e20, "1e+20"},
	}
	for _, tt := range tests {
		if got := FormatResult(tt.in); got != tt.want {
			t.Errorf("FormatResult(%v) = %q, want %q", tt.in, got, tt.want)
		}
		if tt.in == 14 && ResultType(tt.in) != "integer" {
			t.Errorf("ResultType(14) = %q", ResultType(tt.in))
		}
	}
}
