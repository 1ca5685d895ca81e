// Package agent implements the domain handlers: Math, Physics and the
// General tutor.
//
// A specialised handler scans the question for calculation fragments (and,
// for physics, referenced constants and formulas), resolves them through the
// shared tool catalog, asks the [TextGenerator] for prose with those results
// embedded in the system prompt, and appends a deterministic summary section
// for anything the prose does not already mention.
//
// Handlers never fail on a generator error: they answer with a degraded
// response of confidence 0 instead.
package agent
