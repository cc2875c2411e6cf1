package library

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/wpmvc/helpers/internal/config"
	mock_library "github.com/wpmvc/helpers/internal/library/mocks"
	"github.com/wpmvc/helpers/internal/library/storage"
	"github.com/wpmvc/helpers/internal/library/store"
	"github.com/wpmvc/helpers/media"
)

// newLibraryForTest returns a library over a mocked record store and a local
// storage backend rooted in a temporary directory.
func newLibraryForTest(t *testing.T, cfg *config.Config) (*Library, *mock_library.MockRecordStore, *storage.Local) {
	t.Helper()

	if cfg == nil {
		cfg = &config.Config{}
	}

	local, err := storage.NewLocal(filepath.Join(t.TempDir(), "uploads"), "https://example.com/uploads")
	require.NoError(t, err)

	records := mock_library.NewMockRecordStore(gomock.NewController(t))

	return NewLibrary(cfg, records, local), records, local
}

// spoolTestFile writes content into a temporary file and returns its path.
func spoolTestFile(t *testing.T, content []byte) string {
	t.Helper()

	spooled, err := os.CreateTemp(t.TempDir(), "upload-*")
	require.NoError(t, err)

	_, err = spooled.Write(content)
	require.NoError(t, err)
	require.NoError(t, spooled.Close())

	return spooled.Name()
}

// currentUploadsFolder returns the year/month key prefix HandleUpload uses.
func currentUploadsFolder() string {
	now := time.Now()
	return fmt.Sprintf("%04d/%02d", now.Year(), now.Month())
}

// encodeTestPNG renders a solid PNG of the given dimensions.
func encodeTestPNG(t *testing.T, width, height int) []byte {
	t.Helper()

	var buffer bytes.Buffer

	require.NoError(t, png.Encode(&buffer, image.NewRGBA(image.Rect(0, 0, width, height))))

	return buffer.Bytes()
}

// TestHandleUpload tests the happy upload path.
func TestHandleUpload(t *testing.T) {
	t.Parallel()

	lib, _, local := newLibraryForTest(t, nil)
	ctx := context.Background()

	tmpName := spoolTestFile(t, []byte("png bytes"))
	incoming := &media.IncomingFile{
		Name:    "picture.png",
		Type:    "image/png",
		TmpName: tmpName,
		Error:   media.TransferOK,
		Size:    9,
	}

	uploaded, err := lib.HandleUpload(ctx, incoming, &media.UploadOptions{CheckFormField: false})
	require.NoError(t, err)

	expectedKey := currentUploadsFolder() + "/picture.png"
	assert.Equal(t, expectedKey, uploaded.File)
	assert.Equal(t, "image/png", uploaded.Type)
	assert.Equal(t, "https://example.com/uploads/"+expectedKey, uploaded.URL)

	exists, err := local.Exists(ctx, expectedKey)
	require.NoError(t, err)
	assert.True(t, exists)

	// The spooled copy must be gone after a successful move.
	_, err = os.Stat(tmpName)
	assert.True(t, os.IsNotExist(err))
}

// TestHandleUploadUniqueName tests that a key collision appends a numeric suffix.
func TestHandleUploadUniqueName(t *testing.T) {
	t.Parallel()

	lib, _, local := newLibraryForTest(t, nil)
	ctx := context.Background()

	require.NoError(t, local.Save(ctx, currentUploadsFolder()+"/picture.png", bytes.NewReader([]byte("older"))))

	incoming := &media.IncomingFile{
		Name:    "picture.png",
		Type:    "image/png",
		TmpName: spoolTestFile(t, []byte("newer")),
		Size:    5,
	}

	uploaded, err := lib.HandleUpload(ctx, incoming, nil)
	require.NoError(t, err)
	assert.Equal(t, currentUploadsFolder()+"/picture-1.png", uploaded.File)
}

// TestHandleUploadValidation tests the rejection paths.
func TestHandleUploadValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		cfg           *config.Config
		file          *media.IncomingFile
		opts          *media.UploadOptions
		expectedError error
	}{
		{
			name:          "nil file",
			file:          nil,
			expectedError: ErrNoIncomingFile,
		},
		{
			name: "partial transfer",
			file: &media.IncomingFile{
				Name:  "picture.png",
				Error: media.TransferPartial,
			},
			expectedError: ErrTransferFailed,
		},
		{
			name: "form field check without spooled file",
			file: &media.IncomingFile{
				Name: "picture.png",
				Type: "image/png",
			},
			opts:          &media.UploadOptions{CheckFormField: true},
			expectedError: ErrFileNotSpooled,
		},
		{
			name: "file too large",
			cfg:  &config.Config{ParsedMaxUploadSize: 10},
			file: &media.IncomingFile{
				Name: "huge.bin",
				Type: "application/zip",
				Size: 11,
			},
			expectedError: ErrFileTooLarge,
		},
		{
			name: "type not allowed",
			cfg:  &config.Config{AllowedMimeTypes: []string{"image/png"}},
			file: &media.IncomingFile{
				Name: "movie.mp4",
				Type: "video/mp4",
			},
			expectedError: ErrMimeTypeNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lib, _, _ := newLibraryForTest(t, tt.cfg)

			_, err := lib.HandleUpload(context.Background(), tt.file, tt.opts)
			assert.ErrorIs(t, err, tt.expectedError)
		})
	}
}

// TestHandleUploadSniffsMimeType tests content sniffing for generic declared types.
func TestHandleUploadSniffsMimeType(t *testing.T) {
	t.Parallel()

	lib, _, _ := newLibraryForTest(t, nil)

	incoming := &media.IncomingFile{
		Name:    "report",
		Type:    "application/octet-stream",
		TmpName: spoolTestFile(t, []byte("%PDF-1.7 content")),
		Size:    16,
	}

	uploaded, err := lib.HandleUpload(context.Background(), incoming, nil)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", uploaded.Type)
}

// TestInsertAttachment tests that the attachment record maps onto a store row.
func TestInsertAttachment(t *testing.T) {
	t.Parallel()

	lib, records, _ := newLibraryForTest(t, nil)

	records.EXPECT().
		Insert(gomock.Any(), &store.AttachmentRecord{
			URL:      "https://example.com/uploads/2026/08/picture.png",
			MimeType: "image/png",
			Title:    "picture.png",
			Status:   media.StatusInherit,
			File:     "2026/08/picture.png",
		}).
		Return(int64(7), nil)

	id, err := lib.InsertAttachment(context.Background(), &media.Attachment{
		URL:      "https://example.com/uploads/2026/08/picture.png",
		MimeType: "image/png",
		Title:    "picture.png",
		Status:   media.StatusInherit,
	}, "2026/08/picture.png")
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
}

// TestGenerateAttachmentMetadataImage tests dimension extraction and size variants.
func TestGenerateAttachmentMetadataImage(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		ImageSizes: map[string]config.ImageSize{
			"thumbnail": {Width: 4, Height: 4, Crop: true},
			"large":     {Width: 100, Height: 100},
		},
	}
	lib, records, local := newLibraryForTest(t, cfg)
	ctx := context.Background()

	content := encodeTestPNG(t, 8, 8)
	require.NoError(t, local.Save(ctx, "2026/08/picture.png", bytes.NewReader(content)))

	records.EXPECT().
		GetByID(gomock.Any(), int64(7)).
		Return(&store.AttachmentRecord{ID: 7, MimeType: "image/png", File: "2026/08/picture.png"}, nil)

	metadata, err := lib.GenerateAttachmentMetadata(ctx, 7, "2026/08/picture.png")
	require.NoError(t, err)

	assert.Equal(t, 8, metadata.Width)
	assert.Equal(t, 8, metadata.Height)
	assert.Equal(t, "2026/08/picture.png", metadata.File)
	assert.Equal(t, int64(len(content)), metadata.FileSize)

	// The thumbnail shrinks; the 100x100 size would upscale and is skipped.
	require.Contains(t, metadata.Sizes, "thumbnail")
	assert.NotContains(t, metadata.Sizes, "large")

	thumbnail := metadata.Sizes["thumbnail"]
	assert.Equal(t, "picture-4x4.png", thumbnail.File)
	assert.Equal(t, 4, thumbnail.Width)
	assert.Equal(t, 4, thumbnail.Height)
	assert.Equal(t, "image/png", thumbnail.MimeType)

	exists, err := local.Exists(ctx, "2026/08/picture-4x4.png")
	require.NoError(t, err)
	assert.True(t, exists)
}

// TestGenerateAttachmentMetadataNonImage tests that non-images only get file facts.
func TestGenerateAttachmentMetadataNonImage(t *testing.T) {
	t.Parallel()

	lib, records, local := newLibraryForTest(t, nil)
	ctx := context.Background()

	require.NoError(t, local.Save(ctx, "2026/08/report.pdf", bytes.NewReader([]byte("%PDF-1.7"))))

	records.EXPECT().
		GetByID(gomock.Any(), int64(9)).
		Return(&store.AttachmentRecord{ID: 9, MimeType: "application/pdf", File: "2026/08/report.pdf"}, nil)

	metadata, err := lib.GenerateAttachmentMetadata(ctx, 9, "2026/08/report.pdf")
	require.NoError(t, err)

	assert.Zero(t, metadata.Width)
	assert.Zero(t, metadata.Height)
	assert.Equal(t, int64(8), metadata.FileSize)
	assert.Empty(t, metadata.Sizes)
}

// TestUpdateAttachmentMetadata tests the JSON round trip into the store.
func TestUpdateAttachmentMetadata(t *testing.T) {
	t.Parallel()

	lib, records, _ := newLibraryForTest(t, nil)

	metadata := &media.AttachmentMetadata{File: "2026/08/picture.png", FileSize: 9, Width: 8, Height: 8}
	encoded, err := json.Marshal(metadata)
	require.NoError(t, err)

	records.EXPECT().
		UpdateMetadata(gomock.Any(), int64(7), encoded).
		Return(nil)

	require.NoError(t, lib.UpdateAttachmentMetadata(context.Background(), 7, metadata))
}

// TestDeleteAttachment tests that the record, the original, and the size
// variants are all removed.
func TestDeleteAttachment(t *testing.T) {
	t.Parallel()

	lib, records, local := newLibraryForTest(t, nil)
	ctx := context.Background()

	require.NoError(t, local.Save(ctx, "2026/08/picture.png", bytes.NewReader([]byte("original"))))
	require.NoError(t, local.Save(ctx, "2026/08/picture-4x4.png", bytes.NewReader([]byte("variant"))))

	metadata, err := json.Marshal(&media.AttachmentMetadata{
		File: "2026/08/picture.png",
		Sizes: map[string]media.SizeVariant{
			"thumbnail": {File: "picture-4x4.png", Width: 4, Height: 4, MimeType: "image/png"},
		},
	})
	require.NoError(t, err)

	records.EXPECT().
		GetByID(gomock.Any(), int64(7)).
		Return(&store.AttachmentRecord{ID: 7, File: "2026/08/picture.png", Metadata: metadata}, nil)
	records.EXPECT().
		Delete(gomock.Any(), int64(7)).
		Return(nil)

	require.NoError(t, lib.DeleteAttachment(ctx, 7))

	for _, key := range []string{"2026/08/picture.png", "2026/08/picture-4x4.png"} {
		exists, existsErr := local.Exists(ctx, key)
		require.NoError(t, existsErr)
		assert.False(t, exists, "stored file %s should be removed", key)
	}
}

// TestDeleteAttachmentMissingRecord tests that a missing record fails the delete.
func TestDeleteAttachmentMissingRecord(t *testing.T) {
	t.Parallel()

	lib, records, _ := newLibraryForTest(t, nil)

	records.EXPECT().
		GetByID(gomock.Any(), int64(404)).
		Return(nil, store.ErrAttachmentNotFound)

	err := lib.DeleteAttachment(context.Background(), 404)
	assert.ErrorIs(t, err, store.ErrAttachmentNotFound)
}

// TestVariantDimensions tests the size math for scaled and cropped variants.
func TestVariantDimensions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		sourceWidth    int
		sourceHeight   int
		size           config.ImageSize
		expectedWidth  int
		expectedHeight int
	}{
		{
			name:        "scale to fit landscape",
			sourceWidth: 800, sourceHeight: 400,
			size:          config.ImageSize{Width: 200, Height: 200},
			expectedWidth: 200, expectedHeight: 100,
		},
		{
			name:        "crop to exact box",
			sourceWidth: 800, sourceHeight: 400,
			size:          config.ImageSize{Width: 150, Height: 150, Crop: true},
			expectedWidth: 150, expectedHeight: 150,
		},
		{
			name:        "unconstrained height",
			sourceWidth: 800, sourceHeight: 400,
			size:          config.ImageSize{Width: 400},
			expectedWidth: 400, expectedHeight: 200,
		},
		{
			name:        "no upscaling",
			sourceWidth: 100, sourceHeight: 100,
			size:          config.ImageSize{Width: 300, Height: 300},
			expectedWidth: 100, expectedHeight: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			width, height := variantDimensions(tt.sourceWidth, tt.sourceHeight, tt.size)
			assert.Equal(t, tt.expectedWidth, width)
			assert.Equal(t, tt.expectedHeight, height)
		})
	}
}
