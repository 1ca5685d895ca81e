package agent

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"github.com/leofalp/aitutor/core/classifier"
	"github.com/leofalp/aitutor/providers/tool"
	"github.com/leofalp/aitutor/providers/tool/calculator"
	"github.com/leofalp/aitutor/providers/tool/physics"
)

// PhysicsName is the name of the physics handler.
const PhysicsName = "physics"

var physicsConcepts = []string{
	"force", "velocity", "acceleration", "momentum", "energy", "kinetic", "potential",
	"friction", "gravity", "mass", "weight", "newton", "motion", "displacement",

	"temperature", "heat", "entropy", "enthalpy", "thermal", "gas", "pressure",
	"volume", "ideal gas", "carnot", "thermodynamic",

	"electric", "magnetic", "current", "voltage", "resistance", "capacitance",
	"inductance", "electromagnetic", "field", "charge", "coulomb", "ampere",
	"ohm", "faraday", "maxwell",

	"wave", "frequency", "wavelength", "amplitude", "light", "optics", "reflection",
	"refraction", "interference", "diffraction", "polarization",

	"quantum", "relativity", "photon", "electron", "proton", "neutron", "atomic",
	"nuclear", "radioactive", "planck", "einstein", "bohr",
}

// commonConstants are matched as whole, case-sensitive tokens.
var commonConstants = []string{
	"c", "h", "hbar", "e", "me", "mp", "mn", "G", "k", "NA", "R",
	"eps0", "mu0", "ke", "g", "atm", "sigma", "pi", "euler",
}

type formulaKeywords struct {
	name    string
	pattern *regexp.Regexp
}

var formulaTable = []formulaKeywords{
	{"kinetic_energy", keywordPattern("kinetic energy", "ke", "1/2 mv")},
	{"potential_energy", keywordPattern("potential energy", "pe", "mgh")},
	{"force", keywordPattern("newton's law", "f=ma", "force")},
	{"gravitational_force", keywordPattern("gravity", "gravitational force", "newton's gravity")},
	{"coulomb_law", keywordPattern("coulomb", "electrostatic", "electric force")},
	{"ohms_law", keywordPattern("ohm", "v=ir", "resistance")},
	{"wave_equation", keywordPattern("wave", "velocity", "frequency", "wavelength")},
	{"ideal_gas", keywordPattern("ideal gas", "pv=nrt", "gas law")},
}

// keywordPattern matches any keyword at a word start, case-insensitively.
// Keywords of two letters must also end at a word boundary so that "pe"
// does not fire on "speed".
func keywordPattern(keywords ...string) *regexp.Regexp {
	alternatives := make([]string, len(keywords))
	for i, k := range keywords {
		alternatives[i] = `\b` + regexp.QuoteMeta(k)
		if len(k) <= 2 {
			alternatives[i] += `\b`
		}
	}
	return regexp.MustCompile(`(?i)` + strings.Join(alternatives, "|"))
}

// Physics answers physics questions with the constant/formula lookup and
// the calculator.
type Physics struct {
	base
}

// NewPhysics builds the physics handler. A nil generator answers with
// UnavailableMessage; a nil catalog gets [NewToolCatalog].
func NewPhysics(generator TextGenerator, catalog *tool.Catalog, options ...Option) *Physics {
	return &Physics{base: newBase(PhysicsName,
		"Specialized in physics problems, formulas, constants, and concepts including mechanics, thermodynamics, electromagnetism, and quantum physics",
		[]string{physics.ToolName, calculator.ToolName}, generator, catalog, options)}
}

// Handle implements [Handler].
func (p *Physics) Handle(ctx context.Context, q Query) (Response, error) {
	if err := abandoned(ctx); err != nil {
		return Response{}, err
	}

	toolsUsed := []string{}
	constants := p.lookupConstants(ctx, ConstantSymbols(q.Text))
	if len(constants) > 0 {
		toolsUsed = toolList(toolsUsed, physics.ToolName)
	}
	formulas := p.lookupFormulas(ctx, FormulaNames(q.Text))
	if len(formulas) > 0 {
		toolsUsed = toolList(toolsUsed, physics.ToolName)
	}
	calcs := p.calculate(ctx, ExtractPhysicsFragments(q.Text))
	if len(calcs) > 0 {
		toolsUsed = toolList(toolsUsed, calculator.ToolName)
	}
	p.logger.InfoContext(ctx, "physics context resolved",
		slog.Int("constants", len(constants)),
		slog.Int("formulas", len(formulas)),
		slog.Int("calculations", len(calcs)),
	)

	text, err := p.generate(ctx, q, buildPhysicsPrompt(constants, formulas, calcs))
	if err != nil {
		if err := abandoned(ctx); err != nil {
			return Response{}, err
		}
		return p.degraded(ctx, err), nil
	}

	text = appendConstants(text, constants)
	text = appendFormulas(text, formulas)
	text = appendCalculations(text, calcs)

	constantsUsed := make([]string, len(constants))
	for i, c := range constants {
		constantsUsed[i] = c.Symbol
	}
	formulasUsed := make([]string, len(formulas))
	for i, f := range formulas {
		formulasUsed[i] = f.Name
	}

	return Response{
		Text:       text,
		ToolsUsed:  toolsUsed,
		Confidence: PhysicsConfidence,
		Metadata: map[string]any{
			"physics_concepts_detected": DetectConcepts(q.Text, physicsConcepts),
			"constants_used":            constantsUsed,
			"formulas_used":             formulasUsed,
			"calculations_performed":    len(calcs),
			"calculation_results":       calculationResults(calcs),
		},
	}, nil
}

// ConstantSymbols returns the constant symbols referenced by text: symbols
// written as standalone tokens (or right after '='), then symbols named by
// an alias such as "speed of light". Each symbol appears once.
func ConstantSymbols(text string) []string {
	tokens := map[string]bool{}
	for _, field := range strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '='
	}) {
		tokens[strings.Trim(field, `()[]{},.;:!?"'`)] = true
	}

	var symbols []string
	for _, symbol := range commonConstants {
		if tokens[symbol] {
			symbols = append(symbols, symbol)
		}
	}
	folded := classifier.Fold(text)
	for _, alias := range classifier.ConstantAliases {
		if strings.Contains(folded, alias.Phrase) {
			symbols = append(symbols, alias.Symbol)
		}
	}
	return dedupe(symbols)
}

// FormulaNames returns the formulas whose keywords appear in text, in
// table order.
func FormulaNames(text string) []string {
	names := []string{}
	for _, entry := range formulaTable {
		if entry.pattern.MatchString(text) {
			names = append(names, entry.name)
		}
	}
	return names
}

func (p *Physics) lookupConstants(ctx context.Context, symbols []string) []physics.Constant {
	var constants []physics.Constant
	for _, symbol := range symbols {
		outcome := p.useTool(ctx, physics.ToolName, physics.Input{Query: symbol, Type: physics.TypeConstant})
		if output, ok := outcome.Value.(physics.Output); outcome.Success && ok && output.Constant != nil {
			constants = append(constants, *output.Constant)
		}
	}
	return constants
}

func (p *Physics) lookupFormulas(ctx context.Context, names []string) []physics.Formula {
	var formulas []physics.Formula
	for _, name := range names {
		outcome := p.useTool(ctx, physics.ToolName, physics.Input{Query: name, Type: physics.TypeFormula})
		if output, ok := outcome.Value.(physics.Output); outcome.Success && ok && output.Formula != nil {
			formulas = append(formulas, *output.Formula)
		}
	}
	return formulas
}
