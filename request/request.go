package request

import (
	"net/http"

	"github.com/wpmvc/helpers/media"
)

// Request is a populated request value object assembled from ambient state.
// It carries no behavior; handlers consume the populated fields directly.
type Request struct {
	// Method is the HTTP method of the request.
	Method string
	// Path is the request path.
	Path string
	// Query holds the query-string parameters.
	Query map[string]any
	// Body holds the form-body parameters.
	Body map[string]any
	// Files holds the received files indexed by form field name.
	Files map[string]*media.IncomingFile
	// Headers holds the request headers extracted from the server variables.
	Headers http.Header
	// Raw holds the raw request body bytes.
	Raw []byte
}

// New returns an empty POST request addressed to the root path.
func New() *Request {
	return &Request{
		Method:  http.MethodPost,
		Path:    "/",
		Query:   make(map[string]any),
		Body:    make(map[string]any),
		Files:   make(map[string]*media.IncomingFile),
		Headers: make(http.Header),
	}
}

// Build assembles a populated request from the environment.
// Population happens in fixed order: query parameters, body parameters,
// received files, headers, and finally the raw body. Query, body, and
// header values pass through Unslash to reverse ambient backslash
// escaping; file descriptors are taken as-is. The contents are not
// validated, this is a pure marshaling step.
func Build(env Environment) *Request {
	result := New()

	result.Query = unslashMap(env.QueryParams())
	result.Body = unslashMap(env.BodyParams())
	result.Files = env.Files()
	result.Headers = unslashHeaders(HeadersFromServerVars(env.ServerVars()))
	result.Raw = env.RawBody()

	return result
}

// unslashMap unslashes every value of a parameter map.
func unslashMap(params map[string]any) map[string]any {
	result := make(map[string]any, len(params))

	for key, value := range params {
		result[key] = Unslash(value)
	}

	return result
}

// unslashHeaders unslashes every header value in place and returns the headers.
func unslashHeaders(headers http.Header) http.Header {
	for name, values := range headers {
		for i, value := range values {
			values[i] = UnslashString(value)
		}

		headers[name] = values
	}

	return headers
}
