package request

//go:generate $MOCKGEN -source=environment.go -destination=mocks/environment_mock.go

import (
	"github.com/wpmvc/helpers/media"
)

// Environment exposes the five ambient request-state sources the helpers
// read from: the query-string store, the form-body store, the uploaded-files
// store, the server-variable store, and the raw-body reader.
// Production code wraps an incoming HTTP request with NewHTTPEnvironment;
// tests substitute a mock.
type Environment interface {
	// QueryParams returns the query-string parameters.
	// A repeated key keeps all of its values as a string slice.
	QueryParams() map[string]any
	// BodyParams returns the form-body parameters.
	// A repeated key keeps all of its values as a string slice.
	BodyParams() map[string]any
	// Files returns the received files indexed by form field name.
	Files() map[string]*media.IncomingFile
	// ServerVars returns the CGI-style server and environment variables,
	// including one HTTP_* entry per request header.
	ServerVars() map[string]string
	// RawBody returns the raw request body bytes.
	RawBody() []byte
}
