// Package tool defines tools: typed Go functions with a name, a description
// and reflected JSON schemas, executed against JSON arguments.
//
// A tool never panics and never returns a bare error to its caller. Every
// invocation yields an [Outcome], either a value with metadata or a failure
// with an [ErrorKind] and message. Tool functions fail with a specific kind by
// returning an [*Error]; any other error becomes execution_failed.
//
// [Catalog] is the registry the tutor agents share. [Catalog.Execute] looks
// tools up by case-insensitive name and turns an unknown name into a
// tool_not_found outcome.
package tool
