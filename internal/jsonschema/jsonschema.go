package jsonschema

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Schema is the subset of JSON Schema used to describe tool arguments.
type Schema struct {
	Type        string             `json:"type,omitempty"`
	Description string             `json:"description,omitempty"`
	Required    []string           `json:"required,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	// For array types, defines the schema of items in the array
	Items *Schema `json:"items,omitempty"`
	// AdditionalProperties describes map values
	AdditionalProperties *Schema `json:"additionalProperties,omitempty"`
	Default              any     `json:"default,omitempty"`
	Enum                 []any   `json:"enum,omitempty"`
}

// GenerateJSONSchema builds the schema of T. Struct types become objects whose
// properties follow the json tag names; pointers are dereferenced.
func GenerateJSONSchema[T any]() *Schema {
	return generate(reflect.TypeFor[T](), map[reflect.Type]bool{})
}

func generate(t reflect.Type, seen map[reflect.Type]bool) *Schema {
	switch t.Kind() {
	case reflect.Ptr:
		return generate(t.Elem(), seen)
	case reflect.String:
		return &Schema{Type: "string"}
	case reflect.Bool:
		return &Schema{Type: "boolean"}
	case reflect.Float32, reflect.Float64:
		return &Schema{Type: "number"}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &Schema{Type: "integer"}
	case reflect.Slice, reflect.Array:
		return &Schema{Type: "array", Items: generate(t.Elem(), seen)}
	case reflect.Map:
		return &Schema{Type: "object", AdditionalProperties: generate(t.Elem(), seen)}
	case reflect.Struct:
		return generateStruct(t, seen)
	default:
		return &Schema{Type: "object"}
	}
}

// generateStruct describes a struct. A type met again while it is still being
// described collapses to a bare object schema.
func generateStruct(t reflect.Type, seen map[reflect.Type]bool) *Schema {
	schema := &Schema{Type: "object"}
	if seen[t] {
		return schema
	}
	seen[t] = true
	defer delete(seen, t)

	schema.Properties = map[string]*Schema{}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name, skip := jsonFieldName(field)
		if skip {
			continue
		}

		fieldSchema := generate(field.Type, seen)
		required, err := applyTag(field.Type, field.Tag.Get("jsonschema"), fieldSchema)
		if err != nil {
			// malformed tag values are dropped, the field stays described by type
			fieldSchema.Enum = nil
			fieldSchema.Default = nil
		}
		schema.Properties[name] = fieldSchema
		if required {
			schema.Required = append(schema.Required, name)
		}
	}
	return schema
}

func jsonFieldName(field reflect.StructField) (string, bool) {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return "", true
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		name = field.Name
	}
	return name, false
}

// applyTag parses a `jsonschema` tag: description=..., enum=..., default=...
// and the bare flag required. Descriptions cannot contain commas.
func applyTag(fieldType reflect.Type, tag string, schema *Schema) (bool, error) {
	if tag == "" {
		return false, nil
	}

	required := false
	for _, item := range strings.Split(tag, ",") {
		key, value, hasValue := strings.Cut(strings.TrimSpace(item), "=")
		if !hasValue {
			if key == "required" {
				required = true
			}
			continue
		}

		switch key {
		case "description":
			schema.Description = value
		case "enum":
			v, err := typedValue(fieldType, value)
			if err != nil {
				return required, err
			}
			schema.Enum = append(schema.Enum, v)
		case "default":
			v, err := typedValue(fieldType, value)
			if err != nil {
				return required, err
			}
			schema.Default = v
		}
	}
	return required, nil
}

func typedValue(fieldType reflect.Type, value string) (any, error) {
	if fieldType.Kind() == reflect.Ptr {
		fieldType = fieldType.Elem()
	}
	switch fieldType.Kind() {
	case reflect.String:
		return value, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse value %v to int64 failed: %w", value, err)
		}
		return v, nil
	case reflect.Float32, reflect.Float64:
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("parse value %v to float64 failed: %w", value, err)
		}
		return v, nil
	case reflect.Bool:
		v, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("parse value %v to bool failed: %w", value, err)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("tag value unsupported for field type: %v", fieldType)
	}
}

// JsonString converts the Schema to its JSON representation. Pass true to indent.
func (s *Schema) JsonString(indent ...bool) (string, error) {
	var (
		jsonBytes []byte
		err       error
	)
	if len(indent) > 0 && indent[0] {
		jsonBytes, err = json.MarshalIndent(s, "", "  ")
	} else {
		jsonBytes, err = json.Marshal(s)
	}
	if err != nil {
		return "", fmt.Errorf("failed to marshal schema to JSON: %w", err)
	}
	return string(jsonBytes), nil
}

// String returns the compact JSON representation of the schema.
func (s *Schema) String() string {
	jsonStr, err := s.JsonString()
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return jsonStr
}
