package request

import (
	"net/http"
	"strings"
)

const (
	// cgiHeaderPrefix marks CGI-style server variables that carry HTTP request headers.
	cgiHeaderPrefix = "HTTP_"

	// serverVarContentType is the header-bearing server variable without the HTTP_ prefix.
	serverVarContentType = "CONTENT_TYPE"
	// serverVarContentLength is the header-bearing server variable without the HTTP_ prefix.
	serverVarContentLength = "CONTENT_LENGTH"

	// serverVarClientIP is the server variable carrying the Client-Ip request header.
	serverVarClientIP = "HTTP_CLIENT_IP"
	// serverVarForwardedFor is the server variable carrying the X-Forwarded-For request header.
	serverVarForwardedFor = "HTTP_X_FORWARDED_FOR"
	// serverVarRemoteAddr is the server variable carrying the peer address of the connection.
	serverVarRemoteAddr = "REMOTE_ADDR"
)

// HeadersFromServerVars extracts the HTTP request headers out of a CGI-style
// server variable map. Every HTTP_* variable maps back to its header name,
// so HTTP_X_CUSTOM_HEADER becomes X-Custom-Header; the CONTENT_TYPE and
// CONTENT_LENGTH variables map to their header equivalents as well.
// Variables carrying no header are ignored.
func HeadersFromServerVars(serverVars map[string]string) http.Header {
	headers := make(http.Header, len(serverVars))

	for name, value := range serverVars {
		if headerName, ok := strings.CutPrefix(name, cgiHeaderPrefix); ok {
			headers.Set(cgiNameToHeaderName(headerName), value)
			continue
		}

		if name == serverVarContentType || name == serverVarContentLength {
			headers.Set(cgiNameToHeaderName(name), value)
		}
	}

	return headers
}

// cgiNameToHeaderName converts an underscore-delimited CGI variable name into
// a header name; http.Header canonicalizes the exact casing on Set.
func cgiNameToHeaderName(name string) string {
	return strings.ReplaceAll(name, "_", "-")
}

// headerNameToCGIName converts a header name into its CGI variable name:
// X-Forwarded-For becomes HTTP_X_FORWARDED_FOR.
func headerNameToCGIName(name string) string {
	return cgiHeaderPrefix + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}
