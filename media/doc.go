// Package media implements the upload and attachment helpers of the
// framework on top of a pluggable Host: moving incoming files into the
// uploads area, materializing media-library attachment records for them,
// and best-effort batch deletion of attachments.
// The concrete Host lives with the application; internal/library carries
// the reference implementation.
package media
