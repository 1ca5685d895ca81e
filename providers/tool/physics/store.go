package physics

import (
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Constant is a physical constant record.
type Constant struct {
	Symbol      string  `json:"symbol"`
	Value       float64 `json:"value"`
	Unit        string  `json:"unit"`
	Description string  `json:"description"`
}

// Variable names one symbol of a formula.
type Variable struct {
	Symbol  string `json:"symbol"`
	Meaning string `json:"meaning"`
}

// Formula is a named physics formula.
type Formula struct {
	Name        string     `json:"name"`
	Expression  string     `json:"formula"`
	Variables   []Variable `json:"variables"`
	Description string     `json:"description"`
}

// Title renders the formula name for prose, e.g. "Kinetic Energy".
func (f Formula) Title() string {
	// a Caser keeps state, so one is made per call
	return cases.Title(language.English).String(strings.ReplaceAll(f.Name, "_", " "))
}

// Store holds constants and formulas in table order with exact-key indexes.
// It is immutable after construction.
type Store struct {
	constants     []Constant
	formulas      []Formula
	constantIndex map[string]int
	formulaIndex  map[string]int
}

// NewStore builds a store. Later duplicates of a key are ignored.
func NewStore(constants []Constant, formulas []Formula) *Store {
	s := &Store{
		constantIndex: make(map[string]int, len(constants)),
		formulaIndex:  make(map[string]int, len(formulas)),
	}
	for _, c := range constants {
		if _, dup := s.constantIndex[c.Symbol]; dup {
			continue
		}
		s.constantIndex[c.Symbol] = len(s.constants)
		s.constants = append(s.constants, c)
	}
	for _, f := range formulas {
		if _, dup := s.formulaIndex[f.Name]; dup {
			continue
		}
		f.Variables = slices.Clone(f.Variables)
		s.formulaIndex[f.Name] = len(s.formulas)
		s.formulas = append(s.formulas, f)
	}
	return s
}

// DefaultStore returns the shared store of 20 constants and 8 formulas.
var DefaultStore = sync.OnceValue(func() *Store {
	return NewStore(defaultConstants, defaultFormulas)
})

// Constant looks a constant up by exact, case-sensitive symbol.
func (s *Store) Constant(symbol string) (Constant, bool) {
	i, ok := s.constantIndex[symbol]
	if !ok {
		return Constant{}, false
	}
	return s.constants[i], true
}

// Formula looks a formula up by exact name.
func (s *Store) Formula(name string) (Formula, bool) {
	i, ok := s.formulaIndex[name]
	if !ok {
		return Formula{}, false
	}
	f := s.formulas[i]
	f.Variables = slices.Clone(f.Variables)
	return f, true
}

// Constants returns all constants in table order.
func (s *Store) Constants() []Constant {
	return slices.Clone(s.constants)
}

// Formulas returns all formulas in table order.
func (s *Store) Formulas() []Formula {
	out := make([]Formula, len(s.formulas))
	for i, f := range s.formulas {
		f.Variables = slices.Clone(f.Variables)
		out[i] = f
	}
	return out
}

// MaxSuggestions caps the keys proposed after a failed lookup.
const MaxSuggestions = 5

// SuggestConstants returns symbols containing query or contained in it,
// compared case-insensitively, in table order.
func (s *Store) SuggestConstants(query string) []string {
	keys := make([]string, len(s.constants))
	for i, c := range s.constants {
		keys[i] = c.Symbol
	}
	return suggest(keys, query)
}

// SuggestFormulas is SuggestConstants for formula names.
func (s *Store) SuggestFormulas(query string) []string {
	keys := make([]string, len(s.formulas))
	for i, f := range s.formulas {
		keys[i] = f.Name
	}
	return suggest(keys, query)
}

func suggest(keys []string, query string) []string {
	q := strings.ToLower(query)
	suggestions := []string{}
	for _, key := range keys {
		k := strings.ToLower(key)
		if strings.Contains(k, q) || strings.Contains(q, k) {
			suggestions = append(suggestions, key)
			if len(suggestions) == MaxSuggestions {
				break
			}
		}
	}
	return suggestions
}

// SearchResult groups the records matched by [Store.Search].
type SearchResult struct {
	Constants []Constant `json:"constants"`
	Formulas  []Formula  `json:"formulas"`
}

// Total is the number of matched records.
func (r SearchResult) Total() int {
	return len(r.Constants) + len(r.Formulas)
}

// Search matches query case-insensitively against constant symbols,
// descriptions and units, and formula names, descriptions and expressions.
func (s *Store) Search(query string) SearchResult {
	q := strings.ToLower(query)
	result := SearchResult{Constants: []Constant{}, Formulas: []Formula{}}
	for _, c := range s.constants {
		if containsAny(q, c.Symbol, c.Description, c.Unit) {
			result.Constants = append(result.Constants, c)
		}
	}
	for _, f := range s.formulas {
		if containsAny(q, f.Name, f.Description, f.Expression) {
			f.Variables = slices.Clone(f.Variables)
			result.Formulas = append(result.Formulas, f)
		}
	}
	return result
}

func containsAny(lowerQuery string, fields ...string) bool {
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), lowerQuery) {
			return true
		}
	}
	return false
}
