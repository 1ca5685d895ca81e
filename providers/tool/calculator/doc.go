// Package calculator evaluates arithmetic expressions taken from untrusted
// text. Expressions are normalized, checked against a closed character set
// and a function allow-list, then parsed by a small recursive-descent
// grammar into a tree that is evaluated in float64. No input ever reaches an
// interpreter.
//
// Supported: + - * / ** (and ^, ×, ÷), unary signs, parentheses, the
// constants pi and e, and sin cos tan sqrt log log10 abs ceil floor round.
//
// Failures are reported as [tool.Outcome] kinds: unsafe_expression,
// division_by_zero, math_domain_error and non_finite_result.
package calculator
