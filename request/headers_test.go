package request_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wpmvc/helpers/request"
)

// TestHeadersFromServerVars tests the HeadersFromServerVars function.
func TestHeadersFromServerVars(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		serverVars      map[string]string
		expectedHeaders map[string]string
		absentHeaders   []string
	}{
		{
			name: "HTTP_ variables map back to header names",
			serverVars: map[string]string{
				"HTTP_X_CUSTOM_HEADER": "custom-value",
				"HTTP_ACCEPT":          "application/json",
				"HTTP_HOST":            "media.example.com",
			},
			expectedHeaders: map[string]string{
				"X-Custom-Header": "custom-value",
				"Accept":          "application/json",
				"Host":            "media.example.com",
			},
		},
		{
			name: "content type and length are header-bearing without the prefix",
			serverVars: map[string]string{
				"CONTENT_TYPE":   "multipart/form-data",
				"CONTENT_LENGTH": "2048",
			},
			expectedHeaders: map[string]string{
				"Content-Type":   "multipart/form-data",
				"Content-Length": "2048",
			},
		},
		{
			name: "variables carrying no header are ignored",
			serverVars: map[string]string{
				"REQUEST_METHOD":    "POST",
				"GATEWAY_INTERFACE": "CGI/1.1",
				"QUERY_STRING":      "page=2",
				"REMOTE_ADDR":       "192.0.2.1",
				"HTTP_USER_AGENT":   "test-agent",
			},
			expectedHeaders: map[string]string{
				"User-Agent": "test-agent",
			},
			absentHeaders: []string{
				"Request-Method",
				"Gateway-Interface",
				"Query-String",
				"Remote-Addr",
			},
		},
		{
			name:            "empty server variables",
			serverVars:      map[string]string{},
			expectedHeaders: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			headers := request.HeadersFromServerVars(tt.serverVars)

			assert.Len(t, headers, len(tt.expectedHeaders))

			for name, value := range tt.expectedHeaders {
				assert.Equal(t, value, headers.Get(name), "header %s", name)
			}

			for _, name := range tt.absentHeaders {
				assert.Empty(t, headers.Get(name), "header %s should be absent", name)
			}
		})
	}
}
