package db

import (
	"path/filepath"
	"testing"
)

func TestOpenInitializesSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "export.db")

	conn, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if got := conn.GetPath(); got != path {
		t.Errorf("GetPath() = %q, want %q", got, path)
	}

	rows, err := conn.GetDB().Query(
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name IN ('export_history', 'export_metadata')`,
	)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	defer rows.Close()

	tables := map[string]bool{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			t.Fatalf("Scan() error = %v", err)
		}
		tables[name] = true
	}
	if !tables["export_history"] || !tables["export_metadata"] {
		t.Errorf("tables = %v, want export_history and export_metadata", tables)
	}
}
