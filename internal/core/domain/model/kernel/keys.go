package kernel

import "strings"

// NormalizeKeys returns an equivalent structure in which every map key is
// replaced by its lower-cased form, recursively through nested maps and
// slices. Scalar values pass through unchanged and the input is not mutated.
//
// The function is idempotent: normalizing an already-normalized structure
// yields an identical result. It exists so that field lookups on raw input
// records are case-insensitive regardless of how the source capitalized them.
func NormalizeKeys(obj any) any {
	switch v := obj.(type) {
	case map[string]any:
		normalized := make(map[string]any, len(v))
		for key, value := range v {
			normalized[strings.ToLower(key)] = NormalizeKeys(value)
		}
		return normalized
	case []any:
		normalized := make([]any, len(v))
		for i, item := range v {
			normalized[i] = NormalizeKeys(item)
		}
		return normalized
	default:
		return obj
	}
}

// NormalizeRecordKeys applies NormalizeKeys to a single record.
// Non-map values inside the record are preserved as-is.
func NormalizeRecordKeys(record map[string]any) map[string]any {
	normalized, _ := NormalizeKeys(record).(map[string]any)
	return normalized
}
