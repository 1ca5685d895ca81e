package classifier

import (
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// Domain identifies the handler that owns a query.
type Domain string

const (
	DomainMath    Domain = "math"
	DomainPhysics Domain = "physics"
	DomainTutor   Domain = "tutor"
)

// Reason records which branch of the decision rule produced a Decision.
type Reason string

const (
	ReasonScore    Reason = "score"
	ReasonTieBreak Reason = "tie_break"
	// ReasonFallback means neither domain qualified and the generic tutor
	// takes the query.
	ReasonFallback Reason = "fallback"
)

// MinimumScore is the lowest score that can claim a query for a domain.
const MinimumScore = 2

const (
	domainNameBonus = 3
	patternBonus    = 2
	symbolBonus     = 3
	formulaBonus    = 3
)

// Scores are the accumulated per-domain points for one text.
type Scores struct {
	Math    int `json:"math_score"`
	Physics int `json:"physics_score"`
}

// Decision is the result of classifying one text.
type Decision struct {
	Domain Domain `json:"domain"`
	Scores Scores `json:"scores"`
	Reason Reason `json:"reason"`
}

// Fallback reports whether the generic tutor was chosen because no domain
// qualified.
func (d Decision) Fallback() bool {
	return d.Reason == ReasonFallback
}

var mathKeywords = []string{
	"calculate", "compute", "solve", "evaluate", "math", "mathematics",
	"algebra", "geometry", "calculus", "trigonometry", "statistics",
	"equation", "function", "derivative", "integral", "polynomial",
	"+", "-", "*", "/", "×", "÷", "^", "**", "=", "equals",
	"sqrt", "sin", "cos", "tan", "log", "ln", "abs", "round",

	"theorem", "proof", "formula", "matrix", "vector", "probability",
	"graph", "plot", "linear", "quadratic", "exponential",
}

// "newton" appears twice and counts twice.
var physicsKeywords = []string{
	"physics", "force", "energy", "motion", "velocity", "acceleration",
	"momentum", "gravity", "mass", "weight", "pressure", "volume",

	"newton", "kinetic", "potential", "friction", "displacement", "speed",

	"temperature", "heat", "thermal", "gas", "entropy", "enthalpy",

	"electric", "magnetic", "current", "voltage", "resistance",
	"charge", "field", "electromagnetic",

	"wave", "frequency", "wavelength", "light", "quantum", "relativity",
	"photon", "electron", "proton", "neutron", "atomic", "nuclear",

	"joule", "watt", "newton", "meter", "kilogram", "second", "ampere",
	"coulomb", "volt", "ohm", "hertz",
}

// ConstantAliases maps natural-language names of physical constants to their
// lookup symbols.
var ConstantAliases = []struct {
	Phrase string
	Symbol string
}{
	{"speed of light", "c"},
	{"planck constant", "h"},
	{"elementary charge", "e"},
	{"electron mass", "me"},
	{"gravitational constant", "G"},
	{"boltzmann constant", "k"},
	{"avogadro", "NA"},
	{"gas constant", "R"},
}

var (
	arithmeticPattern = regexp.MustCompile(`\d+\s*[+\-*/^]\s*\d+`)
	functionNotation  = regexp.MustCompile(`f\(x\)|g\(x\)|h\(x\)`)
	mathSymbols       = regexp.MustCompile(`[∫∑∆αβγθπ]`)
	equationPattern   = regexp.MustCompile(`=.*[x-z]|[x-z].*=`)

	physicsFormula  = regexp.MustCompile(`(?i)F\s*=\s*m.*a|E\s*=\s*m.*c|P\s*=\s*F/A`)
	unitNumber      = regexp.MustCompile(`\d+\s*(m/s|kg|N|J|W|V|A|Ω|Hz)`)
	constantLiteral = regexp.MustCompile(`\b(9\.8|3\.0.*10\^8|6\.67.*10\^-11)\b`)
	scenarioPhrase  = regexp.MustCompile(`(?i)object.*moving|ball.*thrown|car.*travels|spring.*compressed`)
)

var (
	physicsCues = []string{"real world", "application", "experiment"}
	mathCues    = []string{"abstract", "theoretical", "pure"}
)

// MathKeywords returns a copy of the math keyword list in scoring order.
func MathKeywords() []string { return slices.Clone(mathKeywords) }

// PhysicsKeywords returns a copy of the physics keyword list in scoring order.
func PhysicsKeywords() []string { return slices.Clone(physicsKeywords) }

// Fold case-folds text for keyword matching.
func Fold(text string) string {
	return cases.Fold().String(text)
}

// Score computes both domain scores for text.
func Score(text string) Scores {
	folded := Fold(text)
	return Scores{
		Math:    countKeywords(folded, mathKeywords) + domainBonus(folded, "math", "mathematics") + mathPatterns(text),
		Physics: countKeywords(folded, physicsKeywords) + domainBonus(folded, "physics", "physical") + physicsPatterns(text, folded),
	}
}

// Classify scores text and applies the decision rule.
func Classify(text string) Decision {
	scores := Score(text)
	decision := Decision{Scores: scores, Reason: ReasonScore}

	switch {
	case scores.Math > scores.Physics && scores.Math >= MinimumScore:
		decision.Domain = DomainMath
	case scores.Physics > scores.Math && scores.Physics >= MinimumScore:
		decision.Domain = DomainPhysics
	case scores.Math == scores.Physics && scores.Math >= MinimumScore:
		decision.Domain = breakTie(Fold(text))
		decision.Reason = ReasonTieBreak
	default:
		decision.Domain = DomainTutor
		decision.Reason = ReasonFallback
	}
	return decision
}

func countKeywords(folded string, keywords []string) int {
	n := 0
	for _, k := range keywords {
		if strings.Contains(folded, k) {
			n++
		}
	}
	return n
}

func domainBonus(folded string, names ...string) int {
	if containsAny(folded, names) {
		return domainNameBonus
	}
	return 0
}

func mathPatterns(text string) int {
	score := 0
	if arithmeticPattern.MatchString(text) {
		score += patternBonus
	}
	if functionNotation.MatchString(text) {
		score += patternBonus
	}
	if mathSymbols.MatchString(text) {
		score += symbolBonus
	}
	if equationPattern.MatchString(text) {
		score += patternBonus
	}
	return score
}

func physicsPatterns(text, folded string) int {
	score := 0
	if physicsFormula.MatchString(text) {
		score += formulaBonus
	}
	if unitNumber.MatchString(text) {
		score += patternBonus
	}
	if constantLiteral.MatchString(text) || mentionsConstant(folded) {
		score += patternBonus
	}
	if scenarioPhrase.MatchString(text) {
		score += patternBonus
	}
	return score
}

func mentionsConstant(folded string) bool {
	for _, alias := range ConstantAliases {
		if strings.Contains(folded, alias.Phrase) {
			return true
		}
	}
	return false
}

func breakTie(folded string) Domain {
	switch {
	case containsAny(folded, physicsCues):
		return DomainPhysics
	case containsAny(folded, mathCues):
		return DomainMath
	case arithmeticPattern.MatchString(folded):
		return DomainMath
	default:
		return DomainTutor
	}
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
