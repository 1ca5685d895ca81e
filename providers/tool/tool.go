package tool

import (
	"context"

	"github.com/leofalp/aitutor/core/parse"
	"github.com/leofalp/aitutor/internal/jsonschema"
	"github.com/leofalp/aitutor/providers/ai"
)

// Tool is a typed, callable capability that handlers invoke by name.
// It binds a name and description to a strongly-typed Go function and derives
// JSON schemas for both input (I) and output (O) via reflection.
// Use [NewTool] to construct a Tool and store it in a [Catalog] through its
// [GenericTool] view.
type Tool[I, O any] struct {
	Name        string
	Description string
	Parameters  *jsonschema.Schema
	Output      *jsonschema.Schema
	Function    func(ctx context.Context, input I) (O, error)
	// Metadata derives outcome metadata from a successful output. Optional.
	Metadata func(input I, output O) map[string]any
}

// GenericTool is the type-erased view of a [Tool] stored in a [Catalog].
// It abstracts over the type parameters of [Tool] so that tools can be
// registered, dispatched and listed without knowing their input and output
// types.
type GenericTool interface {
	// ToolInfo returns the metadata (name, description, parameter schema)
	// used to list the tool and to advertise it to a text generation
	// provider.
	ToolInfo() ai.ToolDescription

	// Execute decodes inputJSON into the tool's input type, runs the tool
	// and reports the result as an Outcome. Decoding is lenient: code fences,
	// envelopes and repairable JSON are accepted. Bad input and function
	// errors are reported in the Outcome, never returned or panicked.
	Execute(ctx context.Context, inputJSON string) Outcome
}

type funcToolOptions[I, O any] struct {
	description string
	metadata    func(I, O) map[string]any
}

// Option configures a tool built with [NewTool].
type Option[I, O any] func(*funcToolOptions[I, O])

// WithDescription sets a human-readable description for the tool.
// The API lists it, and models that choose tools read it.
func WithDescription[I, O any](description string) Option[I, O] {
	return func(o *funcToolOptions[I, O]) {
		o.description = description
	}
}

// WithMetadata attaches a function computing the metadata of a successful
// outcome from the input and the output. It is not called on failure.
func WithMetadata[I, O any](fn func(input I, output O) map[string]any) Option[I, O] {
	return func(o *funcToolOptions[I, O]) {
		o.metadata = fn
	}
}

// NewTool constructs a new [Tool] with the given name and function.
// JSON schemas for I and O are derived automatically via reflection.
// Optional configuration is provided through [WithDescription] and
// [WithMetadata].
//
// Example:
//
//	calc := tool.NewTool("calculator", calculator.Calc,
//	    tool.WithDescription[calculator.Input, calculator.Output]("Evaluates arithmetic."),
//	)
func NewTool[I, O any](name string, function func(ctx context.Context, input I) (O, error), options ...Option[I, O]) *Tool[I, O] {
	opts := &funcToolOptions[I, O]{}
	for _, option := range options {
		option(opts)
	}

	return &Tool[I, O]{
		Name:        name,
		Description: opts.description,
		Parameters:  jsonschema.GenerateJSONSchema[I](),
		Output:      jsonschema.GenerateJSONSchema[O](),
		Function:    function,
		Metadata:    opts.metadata,
	}
}

// ToolInfo returns the [ai.ToolDescription] of the tool: its name,
// description and parameter schema.
func (t *Tool[I, O]) ToolInfo() ai.ToolDescription {
	return ai.ToolDescription{
		Name:        t.Name,
		Description: t.Description,
		Parameters:  t.Parameters,
	}
}

// Execute implements [GenericTool]. It parses inputJSON with
// [parse.ParseStringAs] and then behaves like [Tool.Run].
// Input that cannot be parsed into I yields an invalid_arguments outcome.
func (t *Tool[I, O]) Execute(ctx context.Context, inputJSON string) Outcome {
	input, err := parse.ParseStringAs[I](inputJSON)
	if err != nil {
		return Failure(KindInvalidArguments, err.Error())
	}
	return t.Run(ctx, input)
}

// Run executes the tool with an already typed input. A *Error returned by
// the function keeps its kind and metadata, and any other error is reported
// as execution_failed. On success the outcome carries the output value and
// the metadata from the [WithMetadata] function, if one was given.
func (t *Tool[I, O]) Run(ctx context.Context, input I) Outcome {
	output, err := t.Function(ctx, input)
	if err != nil {
		return failureFromError(err)
	}

	var metadata map[string]any
	if t.Metadata != nil {
		metadata = t.Metadata(input, output)
	}
	return Success(output, metadata)
}
