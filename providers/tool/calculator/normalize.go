package calculator

import (
	"strings"
	"unicode"
)

var symbolReplacer = strings.NewReplacer("×", "*", "÷", "/", "^", "**")

// Normalize removes all whitespace and rewrites ×, ÷ and ^ to *, / and **.
// Normalize(Normalize(s)) == Normalize(s).
func Normalize(expression string) string {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, expression)
	return symbolReplacer.Replace(stripped)
}

var deniedFragments = []string{"import", "exec", "eval", "__", "open", "file"}

func deniedFragment(normalized string) (string, bool) {
	lower := strings.ToLower(normalized)
	for _, fragment := range deniedFragments {
		if strings.Contains(lower, fragment) {
			return fragment, true
		}
	}
	return "", false
}
