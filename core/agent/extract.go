package agent

import (
	"regexp"
	"strings"
)

const number = `\d+(?:\.\d+)?`

var (
	arithmeticRun = `\b` + number + `\s*[+\-*/^]\s*` + number + `(?:\s*[+\-*/^]\s*` + number + `)*`

	mathPatterns = []*regexp.Regexp{
		regexp.MustCompile(arithmeticRun),
		regexp.MustCompile(`\b(?:sin|cos|tan|sqrt|log|log10|abs|ceil|floor|round)\s*\(\s*[0-9+\-*/^().\s]+\s*\)`),
		regexp.MustCompile(`\([0-9+\-*/^().\s]+\)`),
		regexp.MustCompile(`\b` + number + `\s*[\^*]{1,2}\s*` + number),
	}

	// explicit requests capture the expression after the verb
	requestPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)calculate\s+([0-9+\-*/^().\s]+)`),
		regexp.MustCompile(`(?i)compute\s+([0-9+\-*/^().\s]+)`),
		regexp.MustCompile(`(?i)evaluate\s+([0-9+\-*/^().\s]+)`),
		regexp.MustCompile(`(?i)solve\s+([0-9+\-*/^().\s=]+)`),
	}

	physicsPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)F\s*=\s*[0-9+\-*/().\s]+`),
		regexp.MustCompile(`(?i)(?:KE|PE)\s*=\s*[0-9+\-*/().\s^]+`),
		regexp.MustCompile(`(?i)` + arithmeticRun),
		regexp.MustCompile(`(?i)\b(?:sin|cos|tan|sqrt|log|abs)\s*\(\s*[0-9+\-*/^().\s]+\s*\)`),
	}

	digit        = regexp.MustCompile(`\d`)
	operator     = regexp.MustCompile(`[+\-*/^]`)
	functionName = regexp.MustCompile(`\b(?:sin|cos|tan|sqrt|log|abs|ceil|floor|round)\b`)
	letters      = regexp.MustCompile(`[A-Za-z]`)
	equalsRun    = regexp.MustCompile(`=+`)
)

// ExtractMathFragments returns the calculation candidates of a math
// question in first-seen order. Overlapping matches are kept; exact
// duplicates are not.
func ExtractMathFragments(text string) []string {
	var fragments []string
	for _, pattern := range mathPatterns {
		for _, match := range pattern.FindAllString(text, -1) {
			if cleaned := strings.TrimSpace(match); isMathCalculation(cleaned) {
				fragments = append(fragments, cleaned)
			}
		}
	}
	for _, pattern := range requestPatterns {
		for _, groups := range pattern.FindAllStringSubmatch(text, -1) {
			cleaned := strings.TrimSpace(strings.ReplaceAll(groups[1], "=", ""))
			if isMathCalculation(cleaned) {
				fragments = append(fragments, cleaned)
			}
		}
	}
	return dedupe(fragments)
}

// ExtractPhysicsFragments returns the purely numeric calculation candidates
// of a physics question, with variable names and equals signs removed.
func ExtractPhysicsFragments(text string) []string {
	var fragments []string
	for _, pattern := range physicsPatterns {
		for _, match := range pattern.FindAllString(text, -1) {
			cleaned := letters.ReplaceAllString(match, "")
			cleaned = strings.TrimSpace(equalsRun.ReplaceAllString(cleaned, ""))
			if isPhysicsCalculation(cleaned) {
				fragments = append(fragments, cleaned)
			}
		}
	}
	return dedupe(fragments)
}

func isMathCalculation(expression string) bool {
	if expression == "" || !digit.MatchString(expression) {
		return false
	}
	return operator.MatchString(expression) || functionName.MatchString(expression)
}

func isPhysicsCalculation(expression string) bool {
	return digit.MatchString(expression) &&
		operator.MatchString(expression) &&
		!letters.MatchString(expression) &&
		len(expression) > 2
}
