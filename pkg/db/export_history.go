package db

import (
	"database/sql"
	"fmt"
	"time"
)

// ExportRecord represents one exported directive.
type ExportRecord struct {
	ID            int64
	DirectiveKind string
	ContentHash   string
	EntryDate     string
	MonthFile     string
	ExportedAt    time.Time
}

// ExportHistory manages export history operations.
//
// The content hash identifies a directive across runs: two directives
// that render to the same text are the same export. Callers hash the
// rendered bytes and the history only stores the digest.
type ExportHistory struct {
	conn *Connection
}

// NewExportHistory creates a new ExportHistory instance.
func NewExportHistory(conn *Connection) *ExportHistory {
	return &ExportHistory{conn: conn}
}

const recordExportQuery = `
	INSERT INTO export_history (directive_kind, content_hash, entry_date, month_file)
	VALUES (?, ?, ?, ?)
	ON CONFLICT(content_hash) DO UPDATE SET
		directive_kind = excluded.directive_kind,
		entry_date = excluded.entry_date,
		month_file = excluded.month_file,
		exported_at = CURRENT_TIMESTAMP
`

// RecordExport records an export operation.
// If the record already exists (same content_hash), it updates it.
func (s *ExportHistory) RecordExport(record ExportRecord) error {
	_, err := s.conn.Exec(recordExportQuery,
		record.DirectiveKind,
		record.ContentHash,
		record.EntryDate,
		record.MonthFile,
	)

	if err != nil {
		return fmt.Errorf("failed to record export: %w", err)
	}

	return nil
}

// RecordExportTx records an export operation within an existing
// transaction, so a batch of records commits or rolls back together.
// Use Connection.Transaction to manage the transaction itself.
func (s *ExportHistory) RecordExportTx(tx *sql.Tx, record ExportRecord) error {
	_, err := tx.Exec(recordExportQuery,
		record.DirectiveKind,
		record.ContentHash,
		record.EntryDate,
		record.MonthFile,
	)

	if err != nil {
		return fmt.Errorf("failed to record export: %w", err)
	}

	return nil
}

// IsExported checks if a directive with this content hash has been exported.
func (s *ExportHistory) IsExported(contentHash string) (bool, error) {
	query := `
		SELECT COUNT(*) as count FROM export_history
		WHERE content_hash = ?
	`

	var count int
	err := s.conn.QueryRow(query, contentHash).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check if exported: %w", err)
	}

	return count > 0, nil
}

// GetExportRecord retrieves an export record by content hash.
func (s *ExportHistory) GetExportRecord(contentHash string) (*ExportRecord, error) {
	query := `
		SELECT id, directive_kind, content_hash, entry_date, month_file, exported_at
		FROM export_history
		WHERE content_hash = ?
	`

	var record ExportRecord

	err := s.conn.QueryRow(query, contentHash).Scan(
		&record.ID,
		&record.DirectiveKind,
		&record.ContentHash,
		&record.EntryDate,
		&record.MonthFile,
		&record.ExportedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get export record: %w", err)
	}

	return &record, nil
}

// GetExportRecordsByKind retrieves all export records for a directive kind.
func (s *ExportHistory) GetExportRecordsByKind(kind string) ([]ExportRecord, error) {
	query := `
		SELECT id, directive_kind, content_hash, entry_date, month_file, exported_at
		FROM export_history
		WHERE directive_kind = ?
		ORDER BY entry_date DESC
	`

	rows, err := s.conn.Query(query, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to get export records by kind: %w", err)
	}
	defer rows.Close()

	var records []ExportRecord
	for rows.Next() {
		var record ExportRecord

		if err := rows.Scan(
			&record.ID,
			&record.DirectiveKind,
			&record.ContentHash,
			&record.EntryDate,
			&record.MonthFile,
			&record.ExportedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan export record: %w", err)
		}

		records = append(records, record)
	}

	return records, nil
}

// ExportedHashes retrieves all exported content hashes.
// This is useful for bulk filtering.
func (s *ExportHistory) ExportedHashes() ([]string, error) {
	query := `
		SELECT content_hash FROM export_history
	`

	rows, err := s.conn.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get exported hashes: %w", err)
	}
	defer rows.Close()

	var hashes []string
	for rows.Next() {
		var hash string
		if err := rows.Scan(&hash); err != nil {
			return nil, fmt.Errorf("failed to scan content hash: %w", err)
		}
		hashes = append(hashes, hash)
	}

	return hashes, nil
}

// DeleteExport deletes an export record.
// Use case: Force re-export of a specific directive.
func (s *ExportHistory) DeleteExport(contentHash string) (bool, error) {
	query := `DELETE FROM export_history WHERE content_hash = ?`

	result, err := s.conn.Exec(query, contentHash)
	if err != nil {
		return false, fmt.Errorf("failed to delete export record: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows > 0, nil
}

// Stats represents export statistics.
type Stats struct {
	TotalExports int
	ByKind       map[string]int
	LastExport   sql.NullString
}

// GetStats retrieves export statistics.
func (s *ExportHistory) GetStats() (*Stats, error) {
	stats := Stats{ByKind: make(map[string]int)}

	err := s.conn.QueryRow(`SELECT COUNT(*) FROM export_history`).Scan(&stats.TotalExports)
	if err != nil {
		return nil, fmt.Errorf("failed to get export count: %w", err)
	}

	rows, err := s.conn.Query(`SELECT directive_kind, COUNT(*) FROM export_history GROUP BY directive_kind`)
	if err != nil {
		return nil, fmt.Errorf("failed to get counts by kind: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var kind string
		var count int
		if err := rows.Scan(&kind, &count); err != nil {
			return nil, fmt.Errorf("failed to scan kind count: %w", err)
		}
		stats.ByKind[kind] = count
	}

	err = s.conn.QueryRow(`SELECT MAX(exported_at) FROM export_history`).Scan(&stats.LastExport)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to get last export time: %w", err)
	}

	return &stats, nil
}

// GetMetadata retrieves a metadata value.
func (s *ExportHistory) GetMetadata(key string) (string, error) {
	query := `SELECT value FROM export_metadata WHERE key = ?`

	var value string
	err := s.conn.QueryRow(query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get metadata: %w", err)
	}

	return value, nil
}

// SetMetadata sets a metadata value.
func (s *ExportHistory) SetMetadata(key, value string) error {
	query := `
		INSERT INTO export_metadata (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP
	`

	_, err := s.conn.Exec(query, key, value)
	if err != nil {
		return fmt.Errorf("failed to set metadata: %w", err)
	}

	return nil
}
