package media

import "errors"

// Static error definitions for better error handling.
var (
	// ErrUploadFailed indicates that the host rejected or could not complete an upload.
	ErrUploadFailed = errors.New("upload failed")
)

// UploadError is the hard failure of the upload path: it is returned when
// the host's upload delegate reports an error and carries the delegate's
// message. It matches ErrUploadFailed in errors.Is checks.
type UploadError struct {
	// Message is the failure description reported by the upload delegate.
	Message string
}

// Error returns the delegate's failure message.
func (e *UploadError) Error() string {
	if e.Message == "" {
		return ErrUploadFailed.Error()
	}

	return e.Message
}

// Unwrap matches the error against ErrUploadFailed.
func (e *UploadError) Unwrap() error {
	return ErrUploadFailed
}
