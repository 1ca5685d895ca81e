package physics

import (
	"context"
	"slices"
	"sync"
	"testing"

	"github.com/leofalp/aitutor/providers/tool"
)

// TestDefaultStore verifies the table sizes and a few well-known values.
func TestDefaultStore(t *testing.T) {
	s := DefaultStore()
	if len(s.Constants()) != 20 || len(s.Formulas()) != 8 {
		t.Fatalf("store has %d constants and %d formulas", len(s.Constants()), len(s.Formulas()))
	}
	if s != DefaultStore() {
		t.Error("DefaultStore must return the shared instance")
	}

	tests := []struct {
		symbol string
		value  float64
		unit   string
	}{
		{"c", 299792458, "m/s"},
		{"G", 6.67430e-11, "m³/kg⋅s²"},
		{"g", 9.80665, "m/s²"},
		{"NA", 6.02214076e23, "1/mol"},
	}
	for _, tt := range tests {
		c, ok := s.Constant(tt.symbol)
		if !ok || c.Value != tt.value || c.Unit != tt.unit {
			t.Errorf("Constant(%q) = %+v, %v", tt.symbol, c, ok)
		}
	}
	if _, ok := s.Constant("C"); ok {
		t.Error("constant lookup must be case-sensitive")
	}
}

// TestStore_Copies verifies callers cannot mutate the shared tables.
func TestStore_Copies(t *testing.T) {
	s := DefaultStore()
	constants := s.Constants()
	constants[0].Value = 0
	formulas := s.Formulas()
	formulas[0].Variables[0].Symbol = "x"

	if c, _ := s.Constant("c"); c.Value != 299792458 {
		t.Error("Constants() exposed the shared slice")
	}
	if f, _ := s.Formula("kinetic_energy"); f.Variables[0].Symbol != "m" {
		t.Error("Formulas() exposed shared variables")
	}
}

// TestSuggest verifies containment in both directions, order and the cap.
func TestSuggest(t *testing.T) {
	s := DefaultStore()
	tests := []struct {
		name string
		got  []string
		want []string
	}{
		{"query inside key", s.SuggestFormulas("energy"), []string{"kinetic_energy", "potential_energy"}},
		{"key inside query", s.SuggestFormulas("force_law"), []string{"force"}},
		{"both directions", s.SuggestConstants("eps"), []string{"e", "eps0"}},
		{"case-insensitive", s.SuggestFormulas("OHMS"), []string{"ohms_law"}},
		{"nothing", s.SuggestFormulas("zzz"), []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !slices.Equal(tt.got, tt.want) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}

	if got := s.SuggestConstants("me and mp and mn and atm and eps0 and euler"); len(got) != MaxSuggestions {
		t.Errorf("suggestions not capped: %v", got)
	}
}

// TestLookup_Run verifies the three modes and their failures.
func TestLookup_Run(t *testing.T) {
	lookup := NewLookup(nil)
	ctx := context.Background()

	tests := []struct {
		name     string
		in       Input
		wantType string
		wantKind tool.ErrorKind
	}{
		{"default mode is constant", Input{Query: "c"}, TypeConstant, ""},
		{"explicit constant", Input{Query: " hbar ", Type: TypeConstant}, TypeConstant, ""},
		{"formula", Input{Query: "ohms_law", Type: TypeFormula}, TypeFormula, ""},
		{"search", Input{Query: "planck", Type: TypeSearch}, TypeSearch, ""},
		{"unknown constant", Input{Query: "speed"}, "", tool.KindNotFound},
		{"unknown formula", Input{Query: "energy", Type: TypeFormula}, "", tool.KindNotFound},
		{"empty search", Input{Query: "zzzz", Type: TypeSearch}, "", tool.KindNotFound},
		{"bad type", Input{Query: "c", Type: "unit"}, "", tool.KindInvalidArguments},
		{"empty query", Input{Query: "  "}, "", tool.KindInvalidArguments},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := lookup.Run(ctx, tt.in)
			if tt.wantKind != "" {
				if got := tool.KindOf(err); got != tt.wantKind {
					t.Fatalf("kind = %q (err %v), want %q", got, err, tt.wantKind)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", out.Type, tt.wantType)
			}
		})
	}

	out, _ := lookup.Run(ctx, Input{Query: "planck", Type: TypeSearch})
	if len(out.Search.Constants) != 2 || len(out.Search.Formulas) != 0 {
		t.Errorf("search planck = %+v", out.Search)
	}
}

// TestPhysicsTool_Execute verifies the outcome shape through the JSON interface.
func TestPhysicsTool_Execute(t *testing.T) {
	physicsTool := NewPhysicsTool(nil)
	ctx := context.Background()

	hit := physicsTool.Execute(ctx, `{"query": "G", "type": "constant"}`)
	if !hit.Success || hit.Value.(Output).Constant.Description != "Gravitational constant" {
		t.Fatalf("hit = %+v", hit)
	}
	if hit.Metadata["type"] != TypeConstant {
		t.Errorf("metadata = %v", hit.Metadata)
	}

	miss := physicsTool.Execute(ctx, `{"query": "kinetic", "type": "formula"}`)
	if miss.Success || miss.Kind != tool.KindNotFound {
		t.Fatalf("miss = %+v", miss)
	}
	if got := miss.Metadata["suggestions"].([]string); !slices.Equal(got, []string{"kinetic_energy"}) {
		t.Errorf("suggestions = %v", got)
	}

	search := physicsTool.Execute(ctx, `{"query": "gas", "type": "search"}`)
	if !search.Success || search.Metadata["total_results"] != 2 {
		t.Errorf("search = %+v", search)
	}
}

// TestFormula_Title verifies name rendering for prompts.
func TestFormula_Title(t *testing.T) {
	f, _ := DefaultStore().Formula("gravitational_force")
	if got := f.Title(); got != "Gravitational Force" {
		t.Errorf("Title = %q", got)
	}
}

// TestStore_Concurrent verifies concurrent readers of the shared store.
func TestStore_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := DefaultStore().Constant("k"); !ok {
				t.Error("missing k")
			}
			_ = DefaultStore().Search("constant")
		}()
	}
	wg.Wait()
}
