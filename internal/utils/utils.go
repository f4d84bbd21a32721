package utils

import (
	"encoding/json"

	"github.com/scottyhq/earthaccess/internal/types"
)

// AsMap returns v as a nested mapping, or nil when it is not one.
// Indexing a nil result is safe, so lookups can be chained.
func AsMap(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return nil
}

// AsSlice returns v as a value list, or nil when it is not one.
func AsSlice(v any) []any {
	if s, ok := v.([]any); ok {
		return s
	}
	return nil
}

// AsFloat coerces numeric values to float64. JSON decoding yields float64,
// but hand-built records may carry Go integer literals or json.Number.
// Anything non-numeric (including numeric strings) reports ok=false.
func AsFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// ColumnIndex returns the position of name in cols, or -1 when absent.
func ColumnIndex(cols []string, name string) int {
	for i, c := range cols {
		if c == name {
			return i
		}
	}
	return -1
}

// CloneRow returns a shallow copy of a row (values are shared).
func CloneRow(r types.Row) types.Row {
	if r == nil {
		return nil
	}
	out := make(types.Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
