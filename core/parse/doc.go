// Package parse decodes loosely formatted model or client output into Go
// values. Input may arrive wrapped in markdown code fences, with single
// quotes or trailing commas, or with every value wrapped in a
// {"type": ..., "value": ...} envelope; [ParseStringAs] recovers from each of
// these before giving up.
package parse
