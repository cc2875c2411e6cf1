package request_test

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wpmvc/helpers/media"
	"github.com/wpmvc/helpers/request"
)

// TestNewHTTPEnvironment_Query tests query-string parsing.
func TestNewHTTPEnvironment_Query(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/attachments?page=2&tag=go&tag=media", http.NoBody)
	req.Header.Set("X-Api-Token", "secret")

	env, err := request.NewHTTPEnvironment(req)
	require.NoError(t, err)

	// A single value stays a string, a repeated key becomes a slice.
	assert.Equal(t, map[string]any{
		"page": "2",
		"tag":  []string{"go", "media"},
	}, env.QueryParams())

	assert.Empty(t, env.BodyParams())
	assert.Empty(t, env.Files())

	serverVars := env.ServerVars()
	assert.Equal(t, http.MethodGet, serverVars["REQUEST_METHOD"])
	assert.Equal(t, "/attachments?page=2&tag=go&tag=media", serverVars["REQUEST_URI"])
	assert.Equal(t, "page=2&tag=go&tag=media", serverVars["QUERY_STRING"])
	assert.Equal(t, "secret", serverVars["HTTP_X_API_TOKEN"])
}

// TestNewHTTPEnvironment_URLEncodedBody tests urlencoded form parsing.
func TestNewHTTPEnvironment_URLEncodedBody(t *testing.T) {
	t.Parallel()

	form := url.Values{
		"title":  {"Summer photos"},
		"labels": {"beach", "sunset"},
	}
	body := form.Encode()

	req := httptest.NewRequest(http.MethodPost, "/attachments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	env, err := request.NewHTTPEnvironment(req)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"title":  "Summer photos",
		"labels": []string{"beach", "sunset"},
	}, env.BodyParams())

	// The raw body survives form parsing.
	assert.Equal(t, []byte(body), env.RawBody())

	// The request body is still readable after construction.
	replayed, err := io.ReadAll(req.Body)
	require.NoError(t, err)
	assert.Equal(t, body, string(replayed))
}

// TestNewHTTPEnvironment_MultipartBody tests multipart parsing and file spooling.
func TestNewHTTPEnvironment_MultipartBody(t *testing.T) {
	t.Parallel()

	fileContent := []byte("spooled file payload")

	var body bytes.Buffer

	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.WriteField("title", "Quarterly report"))

	part, err := writer.CreateFormFile("document", "report.pdf")
	require.NoError(t, err)
	_, err = part.Write(fileContent)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/attachments", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	env, err := request.NewHTTPEnvironment(req)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"title": "Quarterly report"}, env.BodyParams())

	files := env.Files()
	require.Len(t, files, 1)

	incoming := files["document"]
	require.NotNil(t, incoming)

	t.Cleanup(func() {
		_ = os.Remove(incoming.TmpName)
	})

	assert.Equal(t, "report.pdf", incoming.Name)
	assert.Equal(t, media.TransferOK, incoming.Error)
	assert.Equal(t, int64(len(fileContent)), incoming.Size)
	require.NotEmpty(t, incoming.TmpName)

	// The spooled file carries the part's bytes.
	spooled, err := os.ReadFile(incoming.TmpName)
	require.NoError(t, err)
	assert.Equal(t, fileContent, spooled)
}

// TestNewHTTPEnvironment_ServerVars tests the CGI-style variable derivation.
func TestNewHTTPEnvironment_ServerVars(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "http://media.example.com/upload", strings.NewReader("payload"))
	req.Header.Set("Content-Type", "text/plain")
	req.RemoteAddr = "203.0.113.5:443"

	env, err := request.NewHTTPEnvironment(req)
	require.NoError(t, err)

	serverVars := env.ServerVars()

	// The peer port is stripped from the remote address.
	assert.Equal(t, "203.0.113.5", serverVars["REMOTE_ADDR"])
	assert.Equal(t, "media.example.com", serverVars["HTTP_HOST"])
	assert.Equal(t, "text/plain", serverVars["CONTENT_TYPE"])
	assert.Equal(t, "7", serverVars["CONTENT_LENGTH"])

	// The derived variables satisfy the client IP resolver.
	ip, ok := request.ClientIP(env)
	assert.True(t, ok)
	assert.Equal(t, "203.0.113.5", ip)
}
