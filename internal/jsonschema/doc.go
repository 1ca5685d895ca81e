// Package jsonschema derives JSON Schema documents from Go struct types by
// reflection. Tool input types are described with `json` tags for field names
// and `jsonschema` tags for descriptions, enums, defaults and required flags,
// e.g. `jsonschema:"description=Expression to evaluate,required"`.
package jsonschema
