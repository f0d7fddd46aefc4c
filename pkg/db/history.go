package db

import (
	"database/sql"
	"fmt"
	"time"
)

// UploadRecord represents one uploaded receipt image.
type UploadRecord struct {
	ID          int64
	ImageSHA256 string
	FileName    string
	DraftID     int64
	Comment     sql.NullString
	UploadedAt  time.Time
}

// ConfirmationRecord represents a draft promoted into a confirmed journal.
type ConfirmationRecord struct {
	ID          int64
	DraftID     int64
	JournalID   int64
	EntryNumber int64
	ConfirmedAt time.Time
}

// Stats summarizes the local history.
type Stats struct {
	TotalUploads       int64
	TotalConfirmations int64
	LastUpload         sql.NullString
}

// History manages upload and confirmation history operations.
type History struct {
	conn *Connection
}

// NewHistory creates a new History instance.
func NewHistory(conn *Connection) *History {
	return &History{conn: conn}
}

// RecordUpload records a receipt upload.
// If the image hash already exists, the record is updated with the new draft.
func (h *History) RecordUpload(record UploadRecord) error {
	query := `
		INSERT INTO upload_history (image_sha256, file_name, draft_id, comment)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(image_sha256) DO UPDATE SET
			file_name = excluded.file_name,
			draft_id = excluded.draft_id,
			comment = excluded.comment,
			uploaded_at = CURRENT_TIMESTAMP
	`

	_, err := h.conn.Exec(query,
		record.ImageSHA256,
		record.FileName,
		record.DraftID,
		record.Comment,
	)
	if err != nil {
		return fmt.Errorf("failed to record upload: %w", err)
	}
	return nil
}

// FindUploadByHash returns the upload record for an image hash,
// or nil if the image has not been uploaded.
func (h *History) FindUploadByHash(sha256Hex string) (*UploadRecord, error) {
	query := `
		SELECT id, image_sha256, file_name, draft_id, comment, uploaded_at
		FROM upload_history
		WHERE image_sha256 = ?
	`

	var record UploadRecord
	err := h.conn.QueryRow(query, sha256Hex).Scan(
		&record.ID,
		&record.ImageSHA256,
		&record.FileName,
		&record.DraftID,
		&record.Comment,
		&record.UploadedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query upload history: %w", err)
	}
	return &record, nil
}

// RecordConfirmation records a draft being promoted into a journal.
func (h *History) RecordConfirmation(record ConfirmationRecord) error {
	query := `
		INSERT INTO confirmations (draft_id, journal_id, entry_number)
		VALUES (?, ?, ?)
		ON CONFLICT(draft_id) DO UPDATE SET
			journal_id = excluded.journal_id,
			entry_number = excluded.entry_number,
			confirmed_at = CURRENT_TIMESTAMP
	`

	_, err := h.conn.Exec(query, record.DraftID, record.JournalID, record.EntryNumber)
	if err != nil {
		return fmt.Errorf("failed to record confirmation: %w", err)
	}
	return nil
}

// IsConfirmed reports whether a draft has already been promoted.
func (h *History) IsConfirmed(draftID int64) (bool, error) {
	var count int64
	err := h.conn.QueryRow(`SELECT COUNT(*) FROM confirmations WHERE draft_id = ?`, draftID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to query confirmations: %w", err)
	}
	return count > 0, nil
}

// GetStats returns summary statistics for the local history.
func (h *History) GetStats() (*Stats, error) {
	stats := &Stats{}

	if err := h.conn.QueryRow(`SELECT COUNT(*) FROM upload_history`).Scan(&stats.TotalUploads); err != nil {
		return nil, fmt.Errorf("failed to count uploads: %w", err)
	}
	if err := h.conn.QueryRow(`SELECT COUNT(*) FROM confirmations`).Scan(&stats.TotalConfirmations); err != nil {
		return nil, fmt.Errorf("failed to count confirmations: %w", err)
	}
	if err := h.conn.QueryRow(`SELECT MAX(uploaded_at) FROM upload_history`).Scan(&stats.LastUpload); err != nil {
		return nil, fmt.Errorf("failed to query last upload: %w", err)
	}

	return stats, nil
}
