// Package utils holds small helpers shared by the providers and the API
// layer: a synchronous JSON-over-HTTP round-trip used by the model providers
// and string helpers for log-safe output.
package utils
