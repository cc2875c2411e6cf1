package request

import "strings"

// Unslash reverses ambient backslash escaping on a value: strings lose one
// level of backslash escaping, maps and slices are walked recursively, and
// every other value passes through unchanged.
func Unslash(value any) any {
	switch typed := value.(type) {
	case string:
		return UnslashString(typed)
	case map[string]any:
		result := make(map[string]any, len(typed))
		for key, item := range typed {
			result[key] = Unslash(item)
		}

		return result
	case []any:
		result := make([]any, len(typed))
		for i, item := range typed {
			result[i] = Unslash(item)
		}

		return result
	case []string:
		result := make([]string, len(typed))
		for i, item := range typed {
			result[i] = UnslashString(item)
		}

		return result
	default:
		return value
	}
}

// UnslashString removes one level of backslash escaping from s:
// `\"` becomes `"`, `\'` becomes `'`, and `\\` becomes `\`.
// A backslash before any other character is dropped as well,
// and a trailing lone backslash disappears.
func UnslashString(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var builder strings.Builder

	builder.Grow(len(s))

	escaped := false

	for _, r := range s {
		if !escaped && r == '\\' {
			escaped = true
			continue
		}

		escaped = false

		builder.WriteRune(r)
	}

	return builder.String()
}
