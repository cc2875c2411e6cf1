package media

// TransferError describes the transfer state reported for a received file.
type TransferError uint8

const (
	// TransferOK indicates the file arrived intact.
	TransferOK TransferError = iota
	// TransferPartial indicates the file was only partially received.
	TransferPartial
	// TransferMissing indicates no file arrived for the field.
	TransferMissing
	// TransferTooLarge indicates the file exceeded the allowed size.
	TransferTooLarge
)

// String returns a human-readable description of the transfer state.
func (e TransferError) String() string {
	switch e {
	case TransferOK:
		return "ok"
	case TransferPartial:
		return "partially received"
	case TransferMissing:
		return "no file received"
	case TransferTooLarge:
		return "file too large"
	default:
		return "unknown transfer state"
	}
}

// StatusInherit is the publication status assigned to attachments created
// from plain uploads: the record inherits its visibility from its parent.
const StatusInherit = "inherit"

// IncomingFile describes a file received with a request:
// the client-declared name and MIME type, the temporary location the bytes
// were spooled to, the transfer state, and the received size.
type IncomingFile struct {
	// Name is the client-declared original filename.
	Name string `json:"name"`
	// Type is the client-declared MIME type.
	Type string `json:"type"`
	// TmpName is the temporary path the received bytes were spooled to.
	TmpName string `json:"tmp_name"`
	// Error is the transfer state reported for the file.
	Error TransferError `json:"error"`
	// Size is the received size in bytes.
	Size int64 `json:"size"`
}

// UploadOptions adjusts how the host validates an incoming file.
type UploadOptions struct {
	// CheckFormField requires the file to originate from a submitted form
	// field when true. The helpers always disable this check so that
	// programmatic uploads (sideloads) pass validation.
	CheckFormField bool
}

// UploadedFile is the metadata record describing a file that was moved
// into the uploads area.
type UploadedFile struct {
	// URL is the public URL of the stored file.
	URL string `json:"url"`
	// Type is the MIME type the file was stored with.
	Type string `json:"type"`
	// File is the storage path of the stored file.
	File string `json:"file"`
}

// Attachment is a media-library record describing one stored file.
type Attachment struct {
	// URL is the public URL of the stored file, doubling as the record's identifier text.
	URL string `json:"url"`
	// MimeType is the MIME type of the stored file.
	MimeType string `json:"mime_type"`
	// Title is the human-readable record title, derived from the sanitized original filename.
	Title string `json:"title"`
	// Content is the record body, empty for plain uploads.
	Content string `json:"content"`
	// Status is the publication status of the record.
	Status string `json:"status"`
}

// SizeVariant describes one generated size of an image attachment.
type SizeVariant struct {
	// File is the filename of the resized copy, relative to the original's directory.
	File string `json:"file"`
	// Width is the variant width in pixels.
	Width int `json:"width"`
	// Height is the variant height in pixels.
	Height int `json:"height"`
	// MimeType is the MIME type of the resized copy.
	MimeType string `json:"mime_type"`
}

// AttachmentMetadata carries the generated metadata of an attachment:
// pixel dimensions and size variants for images, plus the stored file path
// and byte size for every file kind.
type AttachmentMetadata struct {
	// Width is the original image width in pixels, zero for non-images.
	Width int `json:"width,omitempty"`
	// Height is the original image height in pixels, zero for non-images.
	Height int `json:"height,omitempty"`
	// File is the storage path of the original file.
	File string `json:"file"`
	// FileSize is the stored size in bytes.
	FileSize int64 `json:"filesize"`
	// Sizes holds the generated size variants indexed by size name.
	Sizes map[string]SizeVariant `json:"sizes,omitempty"`
}
