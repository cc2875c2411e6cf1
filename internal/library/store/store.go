// Package store persists attachment records in a SQLite database.
// The schema is managed by embedded goose migrations; see Open.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrAttachmentNotFound indicates that no attachment record exists for the given identifier.
var ErrAttachmentNotFound = errors.New("attachment not found")

// AttachmentRecord is one row of the attachments table.
type AttachmentRecord struct {
	// ID is the record identifier.
	ID int64
	// URL is the public URL of the stored file.
	URL string
	// MimeType is the MIME type of the stored file.
	MimeType string
	// Title is the human-readable record title.
	Title string
	// Content is the record body.
	Content string
	// Status is the publication status of the record.
	Status string
	// File is the storage key of the original file.
	File string
	// Metadata is the generated attachment metadata as JSON, empty until generated.
	Metadata []byte
	// CreatedAt is the record creation time.
	CreatedAt time.Time
}

// Store runs attachment record queries against a DBTX.
type Store struct {
	db DBTX
}

// New returns a store bound to the given DBTX.
func New(db DBTX) *Store {
	return &Store{db: db}
}

// Insert creates a new attachment record and returns its identifier.
func (s *Store) Insert(ctx context.Context, record *AttachmentRecord) (int64, error) {
	query := `INSERT INTO attachments (url, mime_type, title, content, status, file, metadata)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	result, err := s.db.ExecContext(ctx, query,
		record.URL, record.MimeType, record.Title, record.Content, record.Status, record.File, record.Metadata)
	if err != nil {
		return 0, fmt.Errorf("failed to insert attachment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted attachment id: %w", err)
	}

	return id, nil
}

// GetByID loads one attachment record.
func (s *Store) GetByID(ctx context.Context, id int64) (*AttachmentRecord, error) {
	query := `SELECT id, url, mime_type, title, content, status, file, metadata, created_at
		FROM attachments WHERE id = ?`

	record := &AttachmentRecord{}

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&record.ID, &record.URL, &record.MimeType, &record.Title,
		&record.Content, &record.Status, &record.File, &record.Metadata, &record.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAttachmentNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to select attachment: %w", err)
	}

	return record, nil
}

// List returns all attachment records ordered by identifier.
func (s *Store) List(ctx context.Context) ([]AttachmentRecord, error) {
	query := `SELECT id, url, mime_type, title, content, status, file, metadata, created_at
		FROM attachments ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select attachments: %w", err)
	}

	defer rows.Close() //nolint:errcheck // Error on close is not critical here.

	var result []AttachmentRecord

	for rows.Next() {
		var record AttachmentRecord
		if err = rows.Scan(
			&record.ID, &record.URL, &record.MimeType, &record.Title,
			&record.Content, &record.Status, &record.File, &record.Metadata, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan attachment: %w", err)
		}

		result = append(result, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attachments: %w", err)
	}

	return result, nil
}

// UpdateMetadata replaces the metadata JSON of an existing record.
func (s *Store) UpdateMetadata(ctx context.Context, id int64, metadata []byte) error {
	query := `UPDATE attachments SET metadata = ? WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, metadata, id)
	if err != nil {
		return fmt.Errorf("failed to update attachment metadata: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrAttachmentNotFound
	}

	return nil
}

// Delete removes one attachment record.
func (s *Store) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM attachments WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete attachment: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrAttachmentNotFound
	}

	return nil
}
