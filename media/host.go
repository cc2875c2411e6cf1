package media

//go:generate $MOCKGEN -source=host.go -destination=mocks/host_mock.go

import "context"

// Host is the boundary to the surrounding media subsystem.
// It bundles the operations the helpers delegate to: moving an incoming
// file into the uploads area and managing attachment records.
type Host interface {
	// HandleUpload validates an incoming file and moves it into the uploads
	// area, returning the stored file's metadata record.
	HandleUpload(ctx context.Context, file *IncomingFile, opts *UploadOptions) (*UploadedFile, error)
	// InsertAttachment persists a new attachment record for the stored file
	// at path and returns the new record's identifier.
	InsertAttachment(ctx context.Context, attachment *Attachment, path string) (int64, error)
	// GenerateAttachmentMetadata computes the metadata of the stored file at
	// path for an existing attachment.
	GenerateAttachmentMetadata(ctx context.Context, attachmentID int64, path string) (*AttachmentMetadata, error)
	// UpdateAttachmentMetadata persists the metadata of an existing attachment.
	UpdateAttachmentMetadata(ctx context.Context, attachmentID int64, metadata *AttachmentMetadata) error
	// DeleteAttachment permanently removes an attachment record together
	// with its stored files. A nil error means the attachment is gone.
	DeleteAttachment(ctx context.Context, attachmentID int64) error
}
