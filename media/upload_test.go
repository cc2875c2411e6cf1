package media_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/wpmvc/helpers/media"
	mock_media "github.com/wpmvc/helpers/media/mocks"
)

// testIncomingFile returns a typical incoming image file descriptor.
func testIncomingFile() *media.IncomingFile {
	return &media.IncomingFile{
		Name:    "picture.png",
		Type:    "image/png",
		TmpName: "/tmp/upload-123456",
		Error:   media.TransferOK,
		Size:    2048,
	}
}

// TestUpload tests the Upload function.
func TestUpload(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		delegateErr   error
		expectedError string
	}{
		{
			name:        "delegate success returns record unchanged",
			delegateErr: nil,
		},
		{
			name:          "delegate failure surfaces as upload error",
			delegateErr:   errors.New("file type is not permitted"),
			expectedError: "file type is not permitted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			host := mock_media.NewMockHost(ctrl)
			file := testIncomingFile()

			uploaded := &media.UploadedFile{
				URL:  "https://cdn.example.com/uploads/2026/08/picture.png",
				Type: "image/png",
				File: "2026/08/picture.png",
			}

			host.EXPECT().
				HandleUpload(gomock.Any(), file, &media.UploadOptions{CheckFormField: false}).
				Return(uploaded, tt.delegateErr)

			result, err := media.Upload(context.Background(), host, file)

			if tt.delegateErr != nil {
				require.Error(t, err)
				assert.Nil(t, result)

				// The helper wraps the delegate message into an UploadError.
				var uploadErr *media.UploadError
				require.ErrorAs(t, err, &uploadErr)
				assert.Equal(t, tt.expectedError, uploadErr.Message)
				assert.ErrorIs(t, err, media.ErrUploadFailed)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, uploaded, result)
		})
	}
}

// TestUploadToLibrary tests the happy path of the UploadToLibrary function.
func TestUploadToLibrary(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	host := mock_media.NewMockHost(ctrl)
	ctx := context.Background()

	file := testIncomingFile()
	file.Name = "photo<1>.png"

	uploaded := &media.UploadedFile{
		URL:  "https://cdn.example.com/uploads/2026/08/photo_1_.png",
		Type: "image/png",
		File: "2026/08/photo_1_.png",
	}
	metadata := &media.AttachmentMetadata{
		Width:    800,
		Height:   600,
		File:     uploaded.File,
		FileSize: 2048,
	}

	host.EXPECT().
		HandleUpload(gomock.Any(), file, &media.UploadOptions{CheckFormField: false}).
		Return(uploaded, nil)

	host.EXPECT().
		InsertAttachment(gomock.Any(), gomock.Any(), uploaded.File).
		DoAndReturn(func(_ context.Context, attachment *media.Attachment, _ string) (int64, error) {
			// The record is built from the stored file, with a sanitized title and inherit status.
			assert.Equal(t, uploaded.URL, attachment.URL)
			assert.Equal(t, "image/png", attachment.MimeType)
			assert.Equal(t, "photo_1_.png", attachment.Title)
			assert.Empty(t, attachment.Content)
			assert.Equal(t, media.StatusInherit, attachment.Status)

			return 42, nil
		})

	host.EXPECT().
		GenerateAttachmentMetadata(gomock.Any(), int64(42), uploaded.File).
		Return(metadata, nil)

	host.EXPECT().
		UpdateAttachmentMetadata(gomock.Any(), int64(42), metadata).
		Return(nil)

	attachmentID, err := media.UploadToLibrary(ctx, host, file)
	require.NoError(t, err)
	assert.Equal(t, int64(42), attachmentID)
}

// TestUploadToLibraryFailures tests the failure paths of the UploadToLibrary function.
func TestUploadToLibraryFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		setup         func(host *mock_media.MockHost, uploaded *media.UploadedFile)
		isUploadError bool
	}{
		{
			name: "upload delegate failure",
			setup: func(host *mock_media.MockHost, _ *media.UploadedFile) {
				host.EXPECT().
					HandleUpload(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("temporary file is missing"))
			},
			isUploadError: true,
		},
		{
			name: "insert failure",
			setup: func(host *mock_media.MockHost, uploaded *media.UploadedFile) {
				host.EXPECT().
					HandleUpload(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(uploaded, nil)
				host.EXPECT().
					InsertAttachment(gomock.Any(), gomock.Any(), uploaded.File).
					Return(int64(0), errors.New("insert failed"))
			},
		},
		{
			name: "metadata generation failure",
			setup: func(host *mock_media.MockHost, uploaded *media.UploadedFile) {
				host.EXPECT().
					HandleUpload(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(uploaded, nil)
				host.EXPECT().
					InsertAttachment(gomock.Any(), gomock.Any(), uploaded.File).
					Return(int64(7), nil)
				host.EXPECT().
					GenerateAttachmentMetadata(gomock.Any(), int64(7), uploaded.File).
					Return(nil, errors.New("unreadable image"))
			},
		},
		{
			name: "metadata update failure",
			setup: func(host *mock_media.MockHost, uploaded *media.UploadedFile) {
				host.EXPECT().
					HandleUpload(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(uploaded, nil)
				host.EXPECT().
					InsertAttachment(gomock.Any(), gomock.Any(), uploaded.File).
					Return(int64(7), nil)
				host.EXPECT().
					GenerateAttachmentMetadata(gomock.Any(), int64(7), uploaded.File).
					Return(&media.AttachmentMetadata{File: uploaded.File}, nil)
				host.EXPECT().
					UpdateAttachmentMetadata(gomock.Any(), int64(7), gomock.Any()).
					Return(errors.New("store unavailable"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			host := mock_media.NewMockHost(ctrl)

			uploaded := &media.UploadedFile{
				URL:  "https://cdn.example.com/uploads/2026/08/picture.png",
				Type: "image/png",
				File: "2026/08/picture.png",
			}

			tt.setup(host, uploaded)

			attachmentID, err := media.UploadToLibrary(context.Background(), host, testIncomingFile())
			require.Error(t, err)
			assert.Zero(t, attachmentID)

			var uploadErr *media.UploadError
			if tt.isUploadError {
				assert.ErrorAs(t, err, &uploadErr)
			} else {
				assert.False(t, errors.As(err, &uploadErr))
			}
		})
	}
}
