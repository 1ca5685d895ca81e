package utils

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

// DefaultMaxStringLength bounds text copied into log lines and error messages.
const DefaultMaxStringLength = 500

// JSONToString marshals object to JSON, indented when indent is true.
// Marshal failures are rendered as a JSON error object so the result is
// always safe to log.
func JSONToString(object any, indent ...bool) string {
	var (
		encoded []byte
		err     error
	)
	if len(indent) > 0 && indent[0] {
		encoded, err = json.MarshalIndent(object, "", "  ")
	} else {
		encoded, err = json.Marshal(object)
	}
	if err != nil {
		return fmt.Sprintf(`{"error": %q}`, "failed to marshal to JSON: "+err.Error())
	}
	return string(encoded)
}

// TruncateString shortens s to at most maxLen runes and notes the original
// length. A non-positive maxLen falls back to DefaultMaxStringLength.
func TruncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultMaxStringLength
	}
	total := utf8.RuneCountInString(s)
	if total <= maxLen {
		return s
	}
	runes := []rune(s)
	return fmt.Sprintf("%s... (truncated, total: %d chars)", string(runes[:maxLen]), total)
}
