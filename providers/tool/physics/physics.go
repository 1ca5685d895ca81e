package physics

import (
	"context"
	"fmt"
	"strings"

	"github.com/leofalp/aitutor/providers/tool"
)

// ToolName is the catalog name of the lookup tool.
const ToolName = "physics_constants"

// Lookup modes.
const (
	TypeConstant = "constant"
	TypeFormula  = "formula"
	TypeSearch   = "search"
)

// Input is the argument of the physics_constants tool.
type Input struct {
	Query string `json:"query" jsonschema:"description=Constant symbol or formula name or search text,required"`
	Type  string `json:"type,omitempty" jsonschema:"description=Lookup mode,enum=constant,enum=formula,enum=search,default=constant"`
}

// Output holds exactly one of its fields, chosen by Type.
type Output struct {
	Type     string        `json:"type"`
	Constant *Constant     `json:"constant,omitempty"`
	Formula  *Formula      `json:"formula,omitempty"`
	Search   *SearchResult `json:"search,omitempty"`
}

// Lookup implements the tool function over a store.
type Lookup struct {
	store *Store
}

// NewLookup binds the tool to store; nil selects DefaultStore.
func NewLookup(store *Store) *Lookup {
	if store == nil {
		store = DefaultStore()
	}
	return &Lookup{store: store}
}

// NewPhysicsTool returns the physics_constants tool over store.
func NewPhysicsTool(store *Store) *tool.Tool[Input, Output] {
	l := NewLookup(store)
	return tool.NewTool(ToolName, l.Run,
		tool.WithDescription[Input, Output]("Provides access to fundamental physics constants, common formulas, and unit conversions"),
		tool.WithMetadata(outcomeMetadata),
	)
}

// Run resolves in. Misses fail with not_found; constant and formula misses
// carry up to five suggestions in their metadata.
func (l *Lookup) Run(_ context.Context, in Input) (Output, error) {
	query := strings.TrimSpace(in.Query)
	if query == "" {
		return Output{}, tool.NewError(tool.KindInvalidArguments, "query must not be empty")
	}

	switch in.Type {
	case "", TypeConstant:
		c, ok := l.store.Constant(query)
		if !ok {
			return Output{}, notFound(fmt.Sprintf("Constant '%s' not found", query), l.store.SuggestConstants(query))
		}
		return Output{Type: TypeConstant, Constant: &c}, nil

	case TypeFormula:
		f, ok := l.store.Formula(query)
		if !ok {
			return Output{}, notFound(fmt.Sprintf("Formula '%s' not found", query), l.store.SuggestFormulas(query))
		}
		return Output{Type: TypeFormula, Formula: &f}, nil

	case TypeSearch:
		result := l.store.Search(query)
		if result.Total() == 0 {
			return Output{}, tool.NewError(tool.KindNotFound, fmt.Sprintf("No results found for '%s'", query))
		}
		return Output{Type: TypeSearch, Search: &result}, nil

	default:
		return Output{}, tool.NewError(tool.KindInvalidArguments,
			fmt.Sprintf("Invalid query type: %s. Use 'constant', 'formula', or 'search'", in.Type))
	}
}

func notFound(message string, suggestions []string) error {
	return &tool.Error{
		Kind:     tool.KindNotFound,
		Message:  message,
		Metadata: map[string]any{"suggestions": suggestions},
	}
}

func outcomeMetadata(in Input, out Output) map[string]any {
	metadata := map[string]any{"type": out.Type}
	if out.Search != nil {
		metadata["total_results"] = out.Search.Total()
		metadata["query"] = strings.TrimSpace(in.Query)
	}
	return metadata
}
