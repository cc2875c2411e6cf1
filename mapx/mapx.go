// Package mapx provides helpers for the loosely typed map[string]any trees
// that request payloads and attachment metadata decode into.
package mapx

import "reflect"

// MergeDeep merges overlay into base and returns the merged tree.
// For every key in overlay: when both sides hold a keyed map, the two maps
// are merged recursively with overlay's nested keys winning on conflict;
// otherwise overlay's value replaces base's value at that key.
// Keys present only in base are preserved untouched.
// The returned top-level map is always a fresh allocation; values that
// needed no merging are shared with the inputs by reference.
func MergeDeep(base, overlay map[string]any) map[string]any {
	result := make(map[string]any, len(base)+len(overlay))

	for key, value := range base {
		result[key] = value
	}

	for key, overlayValue := range overlay {
		baseMap, baseIsMap := result[key].(map[string]any)

		overlayMap, overlayIsMap := overlayValue.(map[string]any)
		if baseIsMap && overlayIsMap {
			result[key] = MergeDeep(baseMap, overlayMap)
			continue
		}

		result[key] = overlayValue
	}

	return result
}

// RemoveNulls returns a copy of m without its nil-valued entries.
// Only the top level is filtered; nested containers keep their nil values.
func RemoveNulls(m map[string]any) map[string]any {
	result := make(map[string]any, len(m))

	for key, value := range m {
		if value == nil {
			continue
		}

		result[key] = value
	}

	return result
}

// IsFlat reports whether no value in m is itself a container,
// that is, a keyed map, a slice, or an array.
// An empty map is vacuously flat.
func IsFlat(m map[string]any) bool {
	for _, value := range m {
		switch reflect.ValueOf(value).Kind() {
		case reflect.Map, reflect.Slice, reflect.Array:
			return false
		default:
			continue
		}
	}

	return true
}
