// Package classifier decides which domain handler owns a free-text question.
//
// Scoring is keyword counting plus pattern bonuses, computed fresh on every
// call. The keyword lists and compiled patterns are package-level values that
// are never written after init, so [Classify] is safe for concurrent use and
// performs no I/O.
//
// Decision rule, in order:
//
//	math > physics && math >= 2       -> math
//	physics > math && physics >= 2    -> physics
//	math == physics && math >= 2      -> tie-break
//	otherwise                         -> tutor (fallback)
//
// The tie-break prefers physics on application wording ("real world",
// "application", "experiment"), math on theory wording ("abstract",
// "theoretical", "pure"), then math when the text holds bare arithmetic and
// the tutor otherwise.
package classifier
