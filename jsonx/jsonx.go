// Package jsonx provides lenient JSON helpers for payloads
// that may or may not contain encoded JSON.
package jsonx

import "encoding/json"

// MaybeDecode attempts to decode a JSON-encoded string into its Go value.
// Non-string input is returned unchanged. String input that parses as JSON
// yields the decoded value: objects become map[string]any, arrays become
// []any, and bare literals become their primitive value, including a
// legitimate nil for the text "null". A string that fails to parse is
// returned unchanged, so the call never fails.
func MaybeDecode(value any) any {
	text, ok := value.(string)
	if !ok {
		return value
	}

	var decoded any
	if err := json.Unmarshal([]byte(text), &decoded); err != nil {
		return value
	}

	return decoded
}
