package request

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/wpmvc/helpers/media"
)

// maxMultipartMemory bounds the in-memory portion of multipart parsing;
// larger parts spill to disk before being spooled into temporary files.
const maxMultipartMemory = 32 << 20 // 32 MB

// HTTPEnvironment adapts an incoming *http.Request into the Environment
// interface. The raw body is buffered once at construction, urlencoded and
// multipart forms are parsed, and multipart file parts are spooled into
// temporary files so their descriptors carry a readable path.
// Spooled files live in the system temporary directory until the consumer
// moves or removes them.
type HTTPEnvironment struct {
	// queryParams holds the parsed query-string parameters.
	queryParams map[string]any
	// bodyParams holds the parsed form-body parameters.
	bodyParams map[string]any
	// files holds the spooled file descriptors indexed by form field name.
	files map[string]*media.IncomingFile
	// serverVars holds the CGI-style variables derived from the request.
	serverVars map[string]string
	// rawBody holds the buffered request body.
	rawBody []byte
}

// NewHTTPEnvironment buffers and parses req, returning an environment over it.
// The request body is consumed and replaced with an equivalent reader, so the
// caller may still read it afterwards.
func NewHTTPEnvironment(req *http.Request) (*HTTPEnvironment, error) {
	env := &HTTPEnvironment{
		queryParams: make(map[string]any),
		bodyParams:  make(map[string]any),
		files:       make(map[string]*media.IncomingFile),
		serverVars:  make(map[string]string),
	}

	// Buffer the body once so form parsing and RawBody see the same bytes.
	if req.Body != nil {
		rawBody, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read request body: %w", err)
		}

		env.rawBody = rawBody
		req.Body = io.NopCloser(bytes.NewReader(rawBody))
	}

	for key, values := range req.URL.Query() {
		env.queryParams[key] = scalarOrSlice(values)
	}

	if err := env.parseForms(req); err != nil {
		return nil, err
	}

	// Form parsing consumed the buffered reader; restore it for later readers.
	req.Body = io.NopCloser(bytes.NewReader(env.rawBody))

	env.serverVars = serverVarsFromRequest(req)

	return env, nil
}

// parseForms parses the urlencoded or multipart body into body parameters
// and spools multipart file parts into temporary files.
func (e *HTTPEnvironment) parseForms(req *http.Request) error {
	err := req.ParseMultipartForm(maxMultipartMemory)
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return fmt.Errorf("failed to parse multipart form: %w", err)
	}

	if errors.Is(err, http.ErrNotMultipart) {
		// ParseMultipartForm already ran ParseForm for us.
		for key, values := range req.PostForm {
			e.bodyParams[key] = scalarOrSlice(values)
		}

		return nil
	}

	if req.MultipartForm == nil {
		return nil
	}

	for key, values := range req.MultipartForm.Value {
		e.bodyParams[key] = scalarOrSlice(values)
	}

	for field, headers := range req.MultipartForm.File {
		if len(headers) == 0 {
			continue
		}

		incoming, spoolErr := spoolFilePart(headers[0])
		if spoolErr != nil {
			return spoolErr
		}

		e.files[field] = incoming
	}

	return nil
}

// spoolFilePart copies one multipart file part into a temporary file and
// builds its descriptor. Transfer problems are recorded on the descriptor
// rather than failing the whole parse.
func spoolFilePart(header *multipart.FileHeader) (*media.IncomingFile, error) {
	incoming := &media.IncomingFile{
		Name:  header.Filename,
		Type:  header.Header.Get("Content-Type"),
		Error: media.TransferOK,
		Size:  header.Size,
	}

	part, err := header.Open()
	if err != nil {
		incoming.Error = media.TransferMissing
		return incoming, nil
	}

	defer part.Close() //nolint:errcheck // Error on close is not critical here.

	tmpFile, err := os.CreateTemp("", "upload-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary file: %w", err)
	}

	defer tmpFile.Close() //nolint:errcheck // Error on close is not critical here.

	written, err := io.Copy(tmpFile, part)
	if err != nil {
		incoming.Error = media.TransferPartial
		incoming.TmpName = tmpFile.Name()
		incoming.Size = written

		return incoming, nil
	}

	incoming.TmpName = tmpFile.Name()
	incoming.Size = written

	return incoming, nil
}

// QueryParams returns the parsed query-string parameters.
func (e *HTTPEnvironment) QueryParams() map[string]any {
	return e.queryParams
}

// BodyParams returns the parsed form-body parameters.
func (e *HTTPEnvironment) BodyParams() map[string]any {
	return e.bodyParams
}

// Files returns the spooled file descriptors indexed by form field name.
func (e *HTTPEnvironment) Files() map[string]*media.IncomingFile {
	return e.files
}

// ServerVars returns the CGI-style variables derived from the request.
func (e *HTTPEnvironment) ServerVars() map[string]string {
	return e.serverVars
}

// RawBody returns the buffered request body.
func (e *HTTPEnvironment) RawBody() []byte {
	return e.rawBody
}

// scalarOrSlice keeps a single form value as a plain string and repeated
// values as a string slice.
func scalarOrSlice(values []string) any {
	if len(values) == 1 {
		return values[0]
	}

	return values
}

// serverVarsFromRequest builds a CGI-style variable map from the request:
// method, URI, protocol, host, query string, peer address, content type and
// length, and one HTTP_* entry per request header.
func serverVarsFromRequest(req *http.Request) map[string]string {
	vars := map[string]string{
		"REQUEST_METHOD":  req.Method,
		"REQUEST_URI":     req.URL.RequestURI(),
		"SERVER_PROTOCOL": req.Proto,
		"QUERY_STRING":    req.URL.RawQuery,
	}

	if req.Host != "" {
		vars["HTTP_HOST"] = req.Host
	}

	if remoteIP := remoteIPFromAddr(req.RemoteAddr); remoteIP != "" {
		vars[serverVarRemoteAddr] = remoteIP
	}

	if contentType := req.Header.Get("Content-Type"); contentType != "" {
		vars[serverVarContentType] = contentType
	}

	if req.ContentLength > 0 {
		vars[serverVarContentLength] = strconv.FormatInt(req.ContentLength, 10)
	}

	for name, values := range req.Header {
		if len(values) == 0 {
			continue
		}

		vars[headerNameToCGIName(name)] = strings.Join(values, ", ")
	}

	return vars
}

// remoteIPFromAddr strips the port from a host:port peer address.
// Addresses without a port come back unchanged.
func remoteIPFromAddr(addr string) string {
	if addr == "" {
		return ""
	}

	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}

	return host
}
