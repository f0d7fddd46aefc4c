// Package db provides SQLite storage for receipt upload history and
// draft confirmation records.
package db

// Schema defines the SQL statements to create database tables.
const Schema = `
-- Upload history table
-- Tracks which receipt images have been uploaded for AI analysis,
-- keyed by content hash so the same image is not uploaded twice.
CREATE TABLE IF NOT EXISTS upload_history (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    image_sha256 TEXT NOT NULL,        -- Hex digest of the image bytes
    file_name TEXT NOT NULL,           -- Original file name
    draft_id INTEGER NOT NULL,         -- Draft ID assigned by the kakeibo API
    comment TEXT,                      -- Comment sent with the upload
    uploaded_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    UNIQUE(image_sha256)
);

CREATE INDEX IF NOT EXISTS idx_upload_history_draft
    ON upload_history(draft_id);

-- Confirmations table
-- Tracks which drafts have been promoted into confirmed journals.
CREATE TABLE IF NOT EXISTS confirmations (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    draft_id INTEGER NOT NULL,         -- Draft ID from the kakeibo API
    journal_id INTEGER NOT NULL,       -- Journal ID assigned on confirmation
    entry_number INTEGER NOT NULL,     -- Server-assigned entry number
    confirmed_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    UNIQUE(draft_id)
);

CREATE INDEX IF NOT EXISTS idx_confirmations_journal
    ON confirmations(journal_id);
`

// InitializeSchema initializes the database schema.
// It creates all tables if they don't exist.
func InitializeSchema(conn *Connection) error {
	if _, err := conn.Exec(Schema); err != nil {
		return err
	}
	return nil
}
