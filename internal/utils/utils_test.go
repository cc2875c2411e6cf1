//nolint:nolintlint,revive // utils is a common and acceptable package name for utility functions.
package utils

import (
	"os"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSafeUint64ToInt64 tests the SafeUint64ToInt64 function.
func TestSafeUint64ToInt64(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    uint64
		expected int64
	}{
		{
			name:     "normal value",
			input:    100,
			expected: 100,
		},
		{
			name:     "zero value",
			input:    0,
			expected: 0,
		},
		{
			name:     "max int64 value",
			input:    9223372036854775807,
			expected: 9223372036854775807,
		},
		{
			name:     "value exceeding max int64",
			input:    9223372036854775808,
			expected: 9223372036854775807,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := SafeUint64ToInt64(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// TestIsFileExist tests the IsFileExist function.
func TestIsFileExist(t *testing.T) {
	t.Parallel()

	// Create a temporary file.
	tempFile, err := os.CreateTemp(t.TempDir(), "test_file")
	require.NoError(t, err)

	tempFile.Close()                 //nolint:errcheck,gosec // Test cleanup, error is not critical.
	defer os.Remove(tempFile.Name()) //nolint:errcheck // Test cleanup, error is not critical.

	// Test existing file.
	exists, err := IsFileExist(tempFile.Name())
	require.NoError(t, err)
	assert.True(t, exists)

	// Test non-existing file.
	exists, err = IsFileExist("/non/existing/file")
	require.NoError(t, err)
	assert.False(t, exists)

	// Test directory.
	exists, err = IsFileExist(t.TempDir())
	require.NoError(t, err)
	assert.False(t, exists)
}

// TestExtractNamedGroup tests the ExtractNamedGroup function.
func TestExtractNamedGroup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		regex     *regexp.Regexp
		groupName string
		input     string
		expected  string
	}{
		{
			name:      "valid match",
			regex:     regexp.MustCompile(`(?P<id>\d+)`),
			groupName: "id",
			input:     "test123",
			expected:  "123",
		},
		{
			name:      "no match",
			regex:     regexp.MustCompile(`(?P<id>\d+)`),
			groupName: "id",
			input:     "test",
			expected:  "",
		},
		{
			name:      "valid match with name group",
			regex:     regexp.MustCompile(`(?P<name>\w+)`),
			groupName: "name",
			input:     "test",
			expected:  "test",
		},
		{
			name:      "unknown group name",
			regex:     regexp.MustCompile(`(?P<id>\d+)`),
			groupName: "missing",
			input:     "test123",
			expected:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := ExtractNamedGroup(tt.regex, tt.groupName, tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// TestIsTextContentType tests the IsTextContentType function.
func TestIsTextContentType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		contentType string
		expected    bool
	}{
		{
			name:        "text/plain",
			contentType: "text/plain",
			expected:    true,
		},
		{
			name:        "text/html with charset",
			contentType: "text/html; charset=utf-8",
			expected:    true,
		},
		{
			name:        "application/json",
			contentType: "application/json",
			expected:    true,
		},
		{
			name:        "application/xml",
			contentType: "application/xml",
			expected:    true,
		},
		{
			name:        "image/jpeg",
			contentType: "image/jpeg",
			expected:    false,
		},
		{
			name:        "text with invalid charset",
			contentType: "text/plain; charset=invalid",
			expected:    false,
		},
		{
			name:        "invalid content type",
			contentType: "invalid/type",
			expected:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := IsTextContentType(tt.contentType)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// TestImageMimeTypeConstants tests the image MIME type constants.
func TestImageMimeTypeConstants(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "image/jpeg", ImageJPEGMimeType)
	assert.Equal(t, "image/png", ImagePNGMimeType)
	assert.Equal(t, "image/gif", ImageGIFMimeType)
}
