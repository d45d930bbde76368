// Package utils holds the lenient type coercions used when mapping
// loosely-typed source documents onto the relational schema.
package utils

import "strconv"

// Present reports whether a source field carries a usable value.
// Absent fields, empty strings and zero numbers all count as missing,
// mirroring how the legacy scripts treated falsy values.
func Present(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case int:
		return t != 0
	case int32:
		return t != 0
	case int64:
		return t != 0
	case float32:
		return t != 0
	case float64:
		return t != 0
	default:
		return true
	}
}

// IntOr converts a value to int, falling back to def when the value is
// absent or non-numeric.
func IntOr(v interface{}, def int) int {
	switch t := v.(type) {
	case int:
		return t
	case int32:
		return int(t)
	case int64:
		return int(t)
	case float32:
		return int(t)
	case float64:
		return int(t)
	case string:
		if n, err := strconv.Atoi(t); err == nil {
			return n
		}
		return def
	default:
		return def
	}
}

// FloatOr converts a value to float64, falling back to def when the value
// is absent or non-numeric.
func FloatOr(v interface{}, def float64) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int32:
		return float64(t)
	case int64:
		return float64(t)
	case string:
		if f, err := strconv.ParseFloat(t, 64); err == nil {
			return f
		}
		return def
	default:
		return def
	}
}

// BoolOr converts a value to bool, falling back to def for anything that
// is not a bool.
func BoolOr(v interface{}, def bool) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	return def
}

// StringOr converts a value to its string form, falling back to def when
// the value is absent or empty.
func StringOr(v interface{}, def string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return def
}

// StringPtr converts a value to a nullable string column value. Absent or
// empty values become NULL.
func StringPtr(v interface{}) *string {
	if s, ok := v.(string); ok && s != "" {
		return &s
	}
	return nil
}

// StringList converts a loosely-typed list field into []string, dropping
// elements that are not strings. A missing field yields an empty list,
// never nil, so the target column gets '{}' instead of NULL.
func StringList(v interface{}) []string {
	out := []string{}
	items, ok := v.([]interface{})
	if !ok {
		return out
	}
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
