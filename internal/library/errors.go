package library

import "errors"

// Static error definitions for better error handling.
var (
	// ErrNoIncomingFile indicates that the upload was called without a file descriptor.
	ErrNoIncomingFile = errors.New("no incoming file")
	// ErrTransferFailed indicates that the file did not arrive intact.
	ErrTransferFailed = errors.New("file transfer failed")
	// ErrFileNotSpooled indicates that the descriptor references no spooled temporary file.
	ErrFileNotSpooled = errors.New("file was not spooled through a form upload")
	// ErrFileTooLarge indicates that the file exceeds the configured upload limit.
	ErrFileTooLarge = errors.New("file exceeds the maximum upload size")
	// ErrMimeTypeNotAllowed indicates that the file's MIME type is not in the allowed list.
	ErrMimeTypeNotAllowed = errors.New("file type is not allowed")
)
