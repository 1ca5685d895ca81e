package utils

import (
	"strings"
	"testing"
)

// TestJSONToString verifies compact, indented and failing renderings.
func TestJSONToString(t *testing.T) {
	tests := []struct {
		name   string
		input  any
		indent bool
		want   func(string) bool
	}{
		{"compact", map[string]int{"a": 1}, false, func(s string) bool { return s == `{"a":1}` }},
		{"indented", map[string]int{"a": 1}, true, func(s string) bool { return strings.Contains(s, "\n  \"a\": 1") }},
		{"unmarshalable", make(chan int), false, func(s string) bool { return strings.HasPrefix(s, `{"error": "failed to marshal`) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := JSONToString(tt.input, tt.indent)
			if !tt.want(got) {
				t.Errorf("JSONToString() = %q", got)
			}
		})
	}
}

// TestTruncateString verifies rune-aware truncation and the default limit.
func TestTruncateString(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"shorter than limit", "hello", 10, "hello"},
		{"exact limit", "hello", 5, "hello"},
		{"truncated", "hello world", 5, "hello... (truncated, total: 11 chars)"},
		{"multibyte runes", "×÷×÷", 2, "×÷... (truncated, total: 4 chars)"},
		{"default limit keeps short text", "abc", 0, "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateString(tt.input, tt.maxLen); got != tt.want {
				t.Errorf("TruncateString() = %q, want %q", got, tt.want)
			}
		})
	}

	long := strings.Repeat("x", DefaultMaxStringLength+1)
	if got := TruncateString(long, -1); !strings.HasSuffix(got, "(truncated, total: 501 chars)") {
		t.Errorf("default limit not applied: %q", got[len(got)-40:])
	}
}
