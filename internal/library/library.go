package library

//go:generate $MOCKGEN -source=library.go -destination=mocks/record_store_mock.go

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wpmvc/helpers/internal/config"
	"github.com/wpmvc/helpers/internal/library/storage"
	"github.com/wpmvc/helpers/internal/library/store"
	"github.com/wpmvc/helpers/internal/logger"
	"github.com/wpmvc/helpers/media"
	"github.com/wpmvc/helpers/sanitize"
)

// sniffLength is how many leading bytes content-type sniffing reads.
const sniffLength = 512

// genericMimeType is the declared type that triggers sniffing.
const genericMimeType = "application/octet-stream"

// RecordStore persists attachment records for the library.
// *store.Store is the production implementation.
type RecordStore interface {
	// Insert creates a new attachment record and returns its identifier.
	Insert(ctx context.Context, record *store.AttachmentRecord) (int64, error)
	// GetByID loads one attachment record.
	GetByID(ctx context.Context, id int64) (*store.AttachmentRecord, error)
	// List returns all attachment records ordered by identifier.
	List(ctx context.Context) ([]store.AttachmentRecord, error)
	// UpdateMetadata replaces the metadata JSON of an existing record.
	UpdateMetadata(ctx context.Context, id int64, metadata []byte) error
	// Delete removes one attachment record.
	Delete(ctx context.Context, id int64) error
}

// Library is the reference media host over a record store and a storage backend.
type Library struct {
	// cfg holds the validated configuration.
	cfg *config.Config
	// records persists attachment records.
	records RecordStore
	// files keeps the stored file contents.
	files storage.Storage
}

// NewLibrary creates a library over the given record store and storage backend.
func NewLibrary(cfg *config.Config, records RecordStore, files storage.Storage) *Library {
	return &Library{
		cfg:     cfg,
		records: records,
		files:   files,
	}
}

// Records returns the underlying record store.
func (l *Library) Records() RecordStore {
	return l.records
}

// HandleUpload validates the incoming file and moves it from its spooled
// temporary location into the storage backend under a year/month key with
// a unique sanitized filename. The spooled file is removed afterwards.
func (l *Library) HandleUpload(
	ctx context.Context,
	file *media.IncomingFile,
	opts *media.UploadOptions,
) (*media.UploadedFile, error) {
	if file == nil {
		return nil, ErrNoIncomingFile
	}

	if file.Error != media.TransferOK {
		return nil, fmt.Errorf("%w: %s", ErrTransferFailed, file.Error)
	}

	// The form-field check requires the bytes to have been spooled by the
	// request layer; sideloads disable it and may point anywhere.
	if opts != nil && opts.CheckFormField && file.TmpName == "" {
		return nil, ErrFileNotSpooled
	}

	if l.cfg.ParsedMaxUploadSize > 0 && file.Size > l.cfg.ParsedMaxUploadSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrFileTooLarge, file.Size)
	}

	mimeType, err := l.resolveMimeType(file)
	if err != nil {
		return nil, err
	}

	if !l.isMimeTypeAllowed(mimeType) {
		return nil, fmt.Errorf("%w: %s", ErrMimeTypeNotAllowed, mimeType)
	}

	key, err := l.uniqueKey(ctx, file.Name)
	if err != nil {
		return nil, err
	}

	spooled, err := os.Open(filepath.Clean(file.TmpName))
	if err != nil {
		return nil, fmt.Errorf("failed to open spooled file: %w", err)
	}

	err = l.files.Save(ctx, key, spooled)

	_ = spooled.Close()

	if err != nil {
		return nil, fmt.Errorf("failed to store file: %w", err)
	}

	// The spooled copy is no longer needed; a leftover is only worth a debug line.
	if removeErr := os.Remove(file.TmpName); removeErr != nil {
		logger.Debugf(ctx, "Spooled file %s was not removed: %v", file.TmpName, removeErr)
	}

	return &media.UploadedFile{
		URL:  l.files.URL(key),
		Type: mimeType,
		File: key,
	}, nil
}

// InsertAttachment persists a new attachment record for the stored file at key.
func (l *Library) InsertAttachment(ctx context.Context, attachment *media.Attachment, key string) (int64, error) {
	return l.records.Insert(ctx, &store.AttachmentRecord{
		URL:      attachment.URL,
		MimeType: attachment.MimeType,
		Title:    attachment.Title,
		Content:  attachment.Content,
		Status:   attachment.Status,
		File:     key,
	})
}

// GenerateAttachmentMetadata computes the metadata of the stored file at key.
// Images additionally get their pixel dimensions and the registered size
// variants, which are resampled and stored next to the original.
func (l *Library) GenerateAttachmentMetadata(
	ctx context.Context,
	attachmentID int64,
	key string,
) (*media.AttachmentMetadata, error) {
	record, err := l.records.GetByID(ctx, attachmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load attachment %d: %w", attachmentID, err)
	}

	content, err := l.readStoredFile(ctx, key)
	if err != nil {
		return nil, err
	}

	metadata := &media.AttachmentMetadata{
		File:     key,
		FileSize: int64(len(content)),
	}

	if !strings.HasPrefix(record.MimeType, "image/") {
		return metadata, nil
	}

	if err = l.generateImageMetadata(ctx, key, record.MimeType, content, metadata); err != nil {
		return nil, err
	}

	return metadata, nil
}

// UpdateAttachmentMetadata persists the metadata of an existing attachment.
func (l *Library) UpdateAttachmentMetadata(
	ctx context.Context,
	attachmentID int64,
	metadata *media.AttachmentMetadata,
) error {
	encoded, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("failed to encode attachment metadata: %w", err)
	}

	return l.records.UpdateMetadata(ctx, attachmentID, encoded)
}

// DeleteAttachment permanently removes the attachment record together with
// its original file and generated size variants. The record removal is the
// operation's outcome; leftover files are only worth debug lines.
func (l *Library) DeleteAttachment(ctx context.Context, attachmentID int64) error {
	record, err := l.records.GetByID(ctx, attachmentID)
	if err != nil {
		return fmt.Errorf("failed to load attachment %d: %w", attachmentID, err)
	}

	if err = l.records.Delete(ctx, attachmentID); err != nil {
		return fmt.Errorf("failed to delete attachment %d: %w", attachmentID, err)
	}

	l.removeStoredFiles(ctx, record)

	return nil
}

// resolveMimeType settles the MIME type a file is stored with: the declared
// type when specific, content sniffing otherwise, and the extension mapping
// as the last resort.
func (l *Library) resolveMimeType(file *media.IncomingFile) (string, error) {
	declared := strings.TrimSpace(file.Type)
	if declared != "" && declared != genericMimeType {
		return declared, nil
	}

	head := make([]byte, sniffLength)

	spooled, err := os.Open(filepath.Clean(file.TmpName))
	if err != nil {
		return "", fmt.Errorf("failed to open spooled file: %w", err)
	}

	n, _ := spooled.Read(head)

	_ = spooled.Close()

	if sniffed := http.DetectContentType(head[:n]); sniffed != genericMimeType {
		// DetectContentType appends a charset parameter to text types.
		if parsed, _, parseErr := mime.ParseMediaType(sniffed); parseErr == nil {
			return parsed, nil
		}

		return sniffed, nil
	}

	if byExtension := mime.TypeByExtension(filepath.Ext(file.Name)); byExtension != "" {
		if parsed, _, parseErr := mime.ParseMediaType(byExtension); parseErr == nil {
			return parsed, nil
		}

		return byExtension, nil
	}

	return genericMimeType, nil
}

// isMimeTypeAllowed checks the configured allow list; an empty list accepts everything.
func (l *Library) isMimeTypeAllowed(mimeType string) bool {
	if len(l.cfg.AllowedMimeTypes) == 0 {
		return true
	}

	for _, allowed := range l.cfg.AllowedMimeTypes {
		if strings.EqualFold(allowed, mimeType) {
			return true
		}
	}

	return false
}

// uniqueKey builds the year/month storage key for an original filename,
// appending -1, -2, ... until the key is free.
func (l *Library) uniqueKey(ctx context.Context, originalName string) (string, error) {
	name := sanitize.Filename(path.Base(originalName))
	if name == "" || name == "_" {
		// Nothing usable survived sanitization; fall back to a random name.
		name = uuid.NewString() + path.Ext(originalName)
	}

	now := time.Now()
	folder := fmt.Sprintf("%04d/%02d", now.Year(), now.Month())

	extension := path.Ext(name)
	base := strings.TrimSuffix(name, extension)

	candidate := folder + "/" + name

	for suffix := 1; ; suffix++ {
		exists, err := l.files.Exists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to probe storage key: %w", err)
		}

		if !exists {
			return candidate, nil
		}

		candidate = fmt.Sprintf("%s/%s-%d%s", folder, base, suffix, extension)
	}
}

// readStoredFile loads the full contents of a stored file.
func (l *Library) readStoredFile(ctx context.Context, key string) ([]byte, error) {
	reader, err := l.files.Open(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to open stored file: %w", err)
	}

	defer reader.Close() //nolint:errcheck // Error on close is not critical here.

	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read stored file: %w", err)
	}

	return content, nil
}

// removeStoredFiles deletes the original file and every size variant
// recorded in the attachment's metadata, best effort.
func (l *Library) removeStoredFiles(ctx context.Context, record *store.AttachmentRecord) {
	if err := l.files.Delete(ctx, record.File); err != nil {
		logger.Debugf(ctx, "Stored file %s was not removed: %v", record.File, err)
	}

	if len(record.Metadata) == 0 {
		return
	}

	var metadata media.AttachmentMetadata
	if err := json.Unmarshal(record.Metadata, &metadata); err != nil {
		logger.Debugf(ctx, "Metadata of attachment %d was not decoded: %v", record.ID, err)
		return
	}

	folder := path.Dir(record.File)

	for name, variant := range metadata.Sizes {
		variantKey := folder + "/" + variant.File
		if err := l.files.Delete(ctx, variantKey); err != nil {
			logger.Debugf(ctx, "Size variant %s (%s) was not removed: %v", name, variantKey, err)
		}
	}
}
