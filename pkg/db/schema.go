// Package db provides SQLite database management for export history and metadata.
package db

// Schema defines the SQL statements to create database tables.
const Schema = `
-- Export history table
-- Tracks which rendered directives have been written to the ledger tree
CREATE TABLE IF NOT EXISTS export_history (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    directive_kind TEXT NOT NULL,      -- 'transaction', 'balance', ...
    content_hash TEXT NOT NULL,        -- sha256 of the rendered directive text
    entry_date TEXT NOT NULL,          -- YYYY-MM-DD
    month_file TEXT NOT NULL,          -- Path to the month file written
    exported_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    UNIQUE(content_hash)
);

CREATE INDEX IF NOT EXISTS idx_export_history_kind
    ON export_history(directive_kind);

CREATE INDEX IF NOT EXISTS idx_export_history_date
    ON export_history(entry_date);

-- Export metadata table
-- Stores key-value metadata about export operations
CREATE TABLE IF NOT EXISTS export_metadata (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`

// InitializeSchema initializes the database schema.
// It creates all tables if they don't exist.
func InitializeSchema(conn *Connection) error {
	if _, err := conn.Exec(Schema); err != nil {
		return err
	}
	return nil
}
