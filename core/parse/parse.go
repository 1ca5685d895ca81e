package parse

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// ParseStringAs converts content into a T.
//
// Primitive kinds are converted directly with strconv. Everything else is
// JSON-decoded; a failed decode is retried on the jsonrepair output and then
// once more after schema envelopes are unwrapped.
//
//	args, err := ParseStringAs[calculator.Input](`{expression: '2+3'}`)
func ParseStringAs[T any](content string) (T, error) {
	var result T
	target := reflect.ValueOf(&result).Elem()
	content = stripCodeFence(content)

	switch target.Kind() {
	case reflect.String:
		if unwrapped, ok := unwrapPrimitive(content); ok {
			target.SetString(unwrapped)
		} else {
			target.SetString(content)
		}
		return result, nil

	case reflect.Bool:
		v, err := parsePrimitive(content, strconv.ParseBool)
		if err != nil {
			return result, fmt.Errorf("failed to parse content as bool: %w", err)
		}
		target.SetBool(v)
		return result, nil

	case reflect.Float32, reflect.Float64:
		v, err := parsePrimitive(content, func(s string) (float64, error) { return strconv.ParseFloat(s, 64) })
		if err != nil {
			return result, fmt.Errorf("failed to parse content as float: %w", err)
		}
		target.SetFloat(v)
		return result, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := parsePrimitive(content, func(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) })
		if err != nil {
			return result, fmt.Errorf("failed to parse content as int: %w", err)
		}
		target.SetInt(v)
		return result, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := parsePrimitive(content, func(s string) (uint64, error) { return strconv.ParseUint(s, 10, 64) })
		if err != nil {
			return result, fmt.Errorf("failed to parse content as uint: %w", err)
		}
		target.SetUint(v)
		return result, nil
	}

	err := json.Unmarshal([]byte(content), &result)
	if err == nil {
		return result, nil
	}

	repaired, repairErr := jsonrepair.JSONRepair(content)
	if repairErr != nil {
		return result, fmt.Errorf("failed to unmarshal content as %T and failed to repair JSON: unmarshal error: %w, repair error: %v", result, err, repairErr)
	}
	if err = json.Unmarshal([]byte(repaired), &result); err == nil {
		return result, nil
	}

	if unwrapped, unwrapErr := unwrapEnvelopes(repaired); unwrapErr == nil {
		var retry T
		if json.Unmarshal([]byte(unwrapped), &retry) == nil {
			return retry, nil
		}
	}
	return result, fmt.Errorf("failed to unmarshal repaired JSON as %T: %w", result, err)
}

func parsePrimitive[V any](content string, conv func(string) (V, error)) (V, error) {
	v, err := conv(strings.TrimSpace(content))
	if err == nil {
		return v, nil
	}
	if unwrapped, ok := unwrapPrimitive(content); ok {
		if v, retryErr := conv(unwrapped); retryErr == nil {
			return v, nil
		}
	}
	return v, err
}

// stripCodeFence removes a surrounding ```lang ... ``` block.
func stripCodeFence(content string) string {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "```") || !strings.HasSuffix(trimmed, "```") || len(trimmed) < 6 {
		return content
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(trimmed, "```"), "```")
	if nl := strings.IndexByte(inner, '\n'); nl >= 0 && !strings.ContainsAny(inner[:nl], "{[\"") {
		inner = inner[nl+1:]
	}
	return strings.TrimSpace(inner)
}

// unwrapPrimitive reads {"type": ..., "value": v} and returns v as text.
func unwrapPrimitive(content string) (string, bool) {
	var data map[string]any
	if err := json.Unmarshal([]byte(content), &data); err != nil {
		return "", false
	}
	value, ok := envelopeValue(data)
	if !ok {
		return "", false
	}
	if s, isString := value.(string); isString {
		return s, true
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return "", false
	}
	return string(encoded), true
}

func unwrapEnvelopes(content string) (string, error) {
	var data any
	if err := json.Unmarshal([]byte(content), &data); err != nil {
		return "", err
	}
	encoded, err := json.Marshal(unwrap(data))
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

func unwrap(data any) any {
	switch v := data.(type) {
	case map[string]any:
		if value, ok := envelopeValue(v); ok {
			return unwrap(value)
		}
		out := make(map[string]any, len(v))
		for key, val := range v {
			out[key] = unwrap(val)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, val := range v {
			out[i] = unwrap(val)
		}
		return out
	default:
		return data
	}
}

func envelopeValue(m map[string]any) (any, bool) {
	if len(m) != 2 {
		return nil, false
	}
	if _, hasType := m["type"]; !hasType {
		return nil, false
	}
	value, hasValue := m["value"]
	return value, hasValue
}
