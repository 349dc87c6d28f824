// Package pathutil provides centralized path management for the rendered
// ledger tree and its export database.
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PathResolver manages paths inside a ledger tree: year directories,
// month files, the main file, and the export history database.
type PathResolver struct {
	ledgerRoot   string
	databasePath string
	mainFileName string
}

// Config represents the configuration for PathResolver.
type Config struct {
	// LedgerRoot is the root directory of the ledger tree (e.g., ~/accounting/ledger)
	LedgerRoot string
	// DatabasePath is the path to the SQLite database file for export history
	DatabasePath string
	// MainFileName is the name of the top-level ledger file
	MainFileName string
}

// New creates a new PathResolver with the given configuration.
// If DatabasePath is empty, it defaults to {LedgerRoot}/.export/export.db
// If MainFileName is empty, it defaults to main.beancount
func New(config Config) *PathResolver {
	dbPath := config.DatabasePath
	if dbPath == "" {
		dbPath = filepath.Join(config.LedgerRoot, ".export", "export.db")
	}

	mainFileName := config.MainFileName
	if mainFileName == "" {
		mainFileName = "main.beancount"
	}

	return &PathResolver{
		ledgerRoot:   config.LedgerRoot,
		databasePath: dbPath,
		mainFileName: mainFileName,
	}
}

// FromEnv creates a PathResolver from environment variables.
// Expected environment variables:
//   - LEDGER_ROOT: Root directory of the ledger tree (required)
//   - LEDGER_DB_PATH: Database file path (optional)
//   - LEDGER_MAIN_FILE: Main ledger file name (optional)
func FromEnv() (*PathResolver, error) {
	ledgerRoot := os.Getenv("LEDGER_ROOT")
	if ledgerRoot == "" {
		return nil, fmt.Errorf("LEDGER_ROOT environment variable is required")
	}

	return New(Config{
		LedgerRoot:   ledgerRoot,
		DatabasePath: os.Getenv("LEDGER_DB_PATH"),
		MainFileName: os.Getenv("LEDGER_MAIN_FILE"),
	}), nil
}

// GetLedgerRoot returns the ledger root directory.
func (p *PathResolver) GetLedgerRoot() string {
	return p.ledgerRoot
}

// GetDatabasePath returns the database file path.
func (p *PathResolver) GetDatabasePath() string {
	return p.databasePath
}

// GetMainFilePath returns the path of the top-level ledger file.
// Example: ~/accounting/ledger/main.beancount
func (p *PathResolver) GetMainFilePath() string {
	return filepath.Join(p.ledgerRoot, p.mainFileName)
}

// GetYearDir returns the directory path for a year.
// Example: ~/accounting/ledger/2024
func (p *PathResolver) GetYearDir(year string) string {
	return filepath.Join(p.ledgerRoot, year)
}

// GetMonthFilePath returns the file path for a month.
// yearMonth should be in YYYY-MM format.
// Example: ~/accounting/ledger/2024/2024-01.beancount
func (p *PathResolver) GetMonthFilePath(yearMonth string) (string, error) {
	if !ValidYearMonth(yearMonth) {
		return "", fmt.Errorf("invalid year-month format: %s. Expected YYYY-MM", yearMonth)
	}

	year := yearMonth[:4]
	yearDir := p.GetYearDir(year)
	filename := fmt.Sprintf("%s.beancount", yearMonth)

	return filepath.Join(yearDir, filename), nil
}

// MonthFileRelPath returns the month file path relative to the ledger
// root, with forward slashes. This is the form include directives use.
// Example: 2024/2024-01.beancount
func (p *PathResolver) MonthFileRelPath(yearMonth string) (string, error) {
	if !ValidYearMonth(yearMonth) {
		return "", fmt.Errorf("invalid year-month format: %s. Expected YYYY-MM", yearMonth)
	}
	return yearMonth[:4] + "/" + yearMonth + ".beancount", nil
}

// ValidYearMonth reports whether s is a YYYY-MM string.
func ValidYearMonth(s string) bool {
	parts := strings.Split(s, "-")
	if len(parts) != 2 || len(parts[0]) != 4 || len(parts[1]) != 2 {
		return false
	}
	for _, part := range parts {
		for _, r := range part {
			if r < '0' || r > '9' {
				return false
			}
		}
	}
	return true
}

// EnsureDir creates a directory if it doesn't exist.
// It creates all parent directories as needed (like mkdir -p).
func (p *PathResolver) EnsureDir(dirPath string) error {
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dirPath, err)
	}
	return nil
}

// EnsureParentDir ensures the parent directory of a file exists.
func (p *PathResolver) EnsureParentDir(filePath string) error {
	dir := filepath.Dir(filePath)
	return p.EnsureDir(dir)
}

// FileExists checks if a file exists.
func (p *PathResolver) FileExists(filePath string) bool {
	_, err := os.Stat(filePath)
	return err == nil
}

// IsDir checks if a path is a directory.
func (p *PathResolver) IsDir(dirPath string) bool {
	info, err := os.Stat(dirPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}
