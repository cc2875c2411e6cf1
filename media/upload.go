package media

import (
	"context"
	"fmt"

	"github.com/wpmvc/helpers/sanitize"
)

// Upload moves file into the host's uploads area with form-field validation
// disabled and returns the stored file's metadata record unchanged.
// A delegate failure surfaces as a *UploadError carrying the delegate's message.
func Upload(ctx context.Context, host Host, file *IncomingFile) (*UploadedFile, error) {
	uploaded, err := host.HandleUpload(ctx, file, &UploadOptions{CheckFormField: false})
	if err != nil {
		return nil, &UploadError{Message: err.Error()}
	}

	return uploaded, nil
}

// UploadToLibrary moves file into the host's uploads area and materializes
// a media-library attachment for it. The record is inserted with the stored
// file's URL as identifier text, its MIME type, the sanitized original
// filename as title, an empty body, and the "inherit" status; afterwards the
// attachment metadata is generated and persisted through the host.
// Returns the new attachment's identifier.
//
// The upload step fails with a *UploadError exactly like Upload; the
// persistence steps fail with ordinary wrapped errors.
func UploadToLibrary(ctx context.Context, host Host, file *IncomingFile) (int64, error) {
	uploaded, err := Upload(ctx, host, file)
	if err != nil {
		return 0, err
	}

	attachment := &Attachment{
		URL:      uploaded.URL,
		MimeType: uploaded.Type,
		Title:    sanitize.Filename(file.Name),
		Content:  "",
		Status:   StatusInherit,
	}

	attachmentID, err := host.InsertAttachment(ctx, attachment, uploaded.File)
	if err != nil {
		return 0, fmt.Errorf("failed to insert attachment: %w", err)
	}

	metadata, err := host.GenerateAttachmentMetadata(ctx, attachmentID, uploaded.File)
	if err != nil {
		return 0, fmt.Errorf("failed to generate attachment metadata: %w", err)
	}

	if err = host.UpdateAttachmentMetadata(ctx, attachmentID, metadata); err != nil {
		return 0, fmt.Errorf("failed to update attachment metadata: %w", err)
	}

	return attachmentID, nil
}
