// Package physics provides the physics_constants tool: a read-only table of
// fundamental constants and common formulas with exact lookup, suggestion on
// miss, and free-text search.
//
// The table is built once by [DefaultStore] and shared by every goroutine.
package physics
