package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"

	"github.com/wpmvc/helpers/internal/config"
	"github.com/wpmvc/helpers/internal/library"
	"github.com/wpmvc/helpers/internal/logger"
	"github.com/wpmvc/helpers/media"
)

// ExecuteImportCommand sideloads local files into the media library.
// Every path is copied into a spooled temporary file first, so the source
// files survive the upload pipeline's move semantics.
func ExecuteImportCommand(ctx context.Context, cfg *config.Config, paths []string) {
	host, closeLibrary, err := openLibrary(ctx, cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize media library: %v", err)
		return
	}

	defer closeLibrary()

	for _, path := range paths {
		attachmentID, importErr := importFile(ctx, host, path)
		if importErr != nil {
			logger.Errorf(ctx, "Failed to import %s: %v", path, importErr)
			continue
		}

		logger.Infof(ctx, "Imported %s as attachment %d", path, attachmentID)
	}
}

// importFile spools one local file and uploads it into the library.
func importFile(ctx context.Context, host *library.Library, path string) (int64, error) {
	incoming, err := spoolLocalFile(path)
	if err != nil {
		return 0, err
	}

	return media.UploadToLibrary(ctx, host, incoming)
}

// spoolLocalFile copies a local file into a temporary location and builds
// its upload descriptor. The MIME type is left empty so the library sniffs it.
func spoolLocalFile(path string) (*media.IncomingFile, error) {
	source, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open source file: %w", err)
	}

	defer source.Close() //nolint:errcheck // Error on close is not critical here.

	spooled, err := os.CreateTemp("", "import-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary file: %w", err)
	}

	size, err := io.Copy(spooled, source)
	if err != nil {
		_ = spooled.Close()
		_ = os.Remove(spooled.Name())

		return nil, fmt.Errorf("failed to spool source file: %w", err)
	}

	if err = spooled.Close(); err != nil {
		_ = os.Remove(spooled.Name())

		return nil, fmt.Errorf("failed to close temporary file: %w", err)
	}

	return &media.IncomingFile{
		Name:    filepath.Base(path),
		TmpName: spooled.Name(),
		Error:   media.TransferOK,
		Size:    size,
	}, nil
}

// ExecuteListCommand prints all attachment records.
func ExecuteListCommand(ctx context.Context, cfg *config.Config) {
	host, closeLibrary, err := openLibrary(ctx, cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize media library: %v", err)
		return
	}

	defer closeLibrary()

	records, err := host.Records().List(ctx)
	if err != nil {
		logger.Fatalf(ctx, "Failed to list attachments: %v", err)
		return
	}

	if len(records) == 0 {
		fmt.Println("The media library is empty.")
		return
	}

	for _, record := range records {
		size := "unknown size"

		var metadata media.AttachmentMetadata
		if len(record.Metadata) > 0 && json.Unmarshal(record.Metadata, &metadata) == nil && metadata.FileSize > 0 {
			//nolint:gosec // FileSize is checked to be positive right above.
			size = humanize.Bytes(uint64(metadata.FileSize))
		}

		fmt.Printf("%d\t%s\t%s\t%s\t%s\n", record.ID, record.Title, record.MimeType, size, record.URL)
	}
}

// ExecuteRegenerateCommand rebuilds the attachment metadata (dimensions and
// size variants) for the given attachments, or for the whole library when no
// identifiers are passed. Individual failures are logged and skipped.
func ExecuteRegenerateCommand(ctx context.Context, cfg *config.Config, attachmentIDs []int64) {
	host, closeLibrary, err := openLibrary(ctx, cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize media library: %v", err)
		return
	}

	defer closeLibrary()

	if len(attachmentIDs) == 0 {
		records, listErr := host.Records().List(ctx)
		if listErr != nil {
			logger.Fatalf(ctx, "Failed to list attachments: %v", listErr)
			return
		}

		for _, record := range records {
			attachmentIDs = append(attachmentIDs, record.ID)
		}
	}

	if len(attachmentIDs) == 0 {
		fmt.Println("The media library is empty.")
		return
	}

	bar := progressbar.Default(int64(len(attachmentIDs)), "Regenerating")

	regenerated := 0

	for _, attachmentID := range attachmentIDs {
		if regenerateErr := regenerateAttachment(ctx, host, attachmentID); regenerateErr != nil {
			logger.Errorf(ctx, "Failed to regenerate attachment %d: %v", attachmentID, regenerateErr)
		} else {
			regenerated++
		}

		_ = bar.Add(1)
	}

	logger.Infof(ctx, "Regenerated metadata for %d of %d attachments", regenerated, len(attachmentIDs))
}

// regenerateAttachment rebuilds and persists the metadata of one attachment.
func regenerateAttachment(ctx context.Context, host *library.Library, attachmentID int64) error {
	record, err := host.Records().GetByID(ctx, attachmentID)
	if err != nil {
		return err
	}

	metadata, err := host.GenerateAttachmentMetadata(ctx, attachmentID, record.File)
	if err != nil {
		return err
	}

	return host.UpdateAttachmentMetadata(ctx, attachmentID, metadata)
}

// ExecuteDeleteCommand force-deletes the given attachments, best effort,
// and reports which ones are gone.
func ExecuteDeleteCommand(ctx context.Context, cfg *config.Config, attachmentIDs []int64) {
	host, closeLibrary, err := openLibrary(ctx, cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize media library: %v", err)
		return
	}

	defer closeLibrary()

	deleted := media.DeleteAttachments(ctx, host, attachmentIDs...)

	for _, attachmentID := range deleted {
		fmt.Printf("Deleted attachment %d\n", attachmentID)
	}

	if len(deleted) < len(attachmentIDs) {
		logger.Warnf(ctx, "%d of %d attachments were not deleted", len(attachmentIDs)-len(deleted), len(attachmentIDs))
	}
}
