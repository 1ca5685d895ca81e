package tool

import (
	"context"
	"errors"
	"testing"
)

type doubleInput struct {
	Value int `json:"value" jsonschema:"description=Number to double,required"`
}

type doubleOutput struct {
	Result int `json:"result"`
}

func double(_ context.Context, in doubleInput) (doubleOutput, error) {
	switch {
	case in.Value < 0:
		return doubleOutput{}, NewError(KindMathDomain, "negative input")
	case in.Value == 13:
		return doubleOutput{}, errors.New("unlucky")
	}
	return doubleOutput{Result: in.Value * 2}, nil
}

func newDoubleTool() *Tool[doubleInput, doubleOutput] {
	return NewTool("double", double,
		WithDescription[doubleInput, doubleOutput]("Doubles a number"),
		WithMetadata(func(in doubleInput, out doubleOutput) map[string]any {
			return map[string]any{"input": in.Value}
		}),
	)
}

// TestNewTool verifies the derived description and parameter schema.
func TestNewTool(t *testing.T) {
	info := newDoubleTool().ToolInfo()
	if info.Name != "double" || info.Description != "Doubles a number" {
		t.Errorf("info = %+v", info)
	}
	if info.Parameters == nil || info.Parameters.Properties["value"].Type != "integer" {
		t.Fatalf("parameters = %v", info.Parameters)
	}
	if len(info.Parameters.Required) != 1 || info.Parameters.Required[0] != "value" {
		t.Errorf("required = %v", info.Parameters.Required)
	}
}

// TestTool_Execute verifies the mapping from inputs and errors to outcomes.
func TestTool_Execute(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantOK    bool
		wantKind  ErrorKind
		wantValue int
	}{
		{"valid", `{"value": 21}`, true, "", 42},
		{"repaired json", `{value: 4,}`, true, "", 8},
		{"invalid arguments", `not json at all [`, false, KindInvalidArguments, 0},
		{"typed tool error", `{"value": -1}`, false, KindMathDomain, 0},
		{"plain error", `{"value": 13}`, false, KindExecutionFailed, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := newDoubleTool().Execute(context.Background(), tt.input)
			if out.Success != tt.wantOK {
				t.Fatalf("Success = %v, outcome %+v", out.Success, out)
			}
			if !tt.wantOK {
				if out.Kind != tt.wantKind {
					t.Errorf("Kind = %q, want %q", out.Kind, tt.wantKind)
				}
				if out.Value != nil {
					t.Errorf("failed outcome carries value %v", out.Value)
				}
				return
			}
			got, ok := out.Value.(doubleOutput)
			if !ok || got.Result != tt.wantValue {
				t.Errorf("Value = %#v, want result %d", out.Value, tt.wantValue)
			}
			if out.Metadata["input"] != tt.wantValue/2 {
				t.Errorf("Metadata = %v", out.Metadata)
			}
		})
	}
}

// TestKindOf verifies kind extraction from wrapped and foreign errors.
func TestKindOf(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), NewError(KindDivisionByZero, "x/0"))
	if got := KindOf(wrapped); got != KindDivisionByZero {
		t.Errorf("KindOf(wrapped) = %q", got)
	}
	if got := KindOf(errors.New("boom")); got != KindExecutionFailed {
		t.Errorf("KindOf(plain) = %q", got)
	}
	if msg := NewError(KindNotFound, "no such constant").Error(); msg != "not_found: no such constant" {
		t.Errorf("Error() = %q", msg)
	}
}
