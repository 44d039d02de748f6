package store

import "math"

// Sanitize normalizes a decoded JSON tree before it is written as a
// document column. Every value that cannot be represented in storage
// (NaN and infinite floats, values of non-JSON kinds) becomes an explicit
// nil rather than failing the write. Maps and slices are walked
// recursively; scalars pass through.
func Sanitize(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = Sanitize(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = Sanitize(val)
		}
		return out
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil
		}
		return t
	case float32:
		return Sanitize(float64(t))
	case bool, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return t
	default:
		// Anything outside the JSON value model is unrepresentable.
		return nil
	}
}

// SanitizeMap applies Sanitize to every value of a document.
func SanitizeMap(doc map[string]any) map[string]any {
	if doc == nil {
		return map[string]any{}
	}
	return Sanitize(doc).(map[string]any)
}
