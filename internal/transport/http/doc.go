// Package http provides custom HTTP transport utilities,
// currently a debug-level request/response logging round tripper
// used by outbound clients such as the S3 storage backend.
package http
