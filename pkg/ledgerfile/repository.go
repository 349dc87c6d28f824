// Package ledgerfile maintains the on-disk ledger tree: month files under
// year directories, plus a generated main file that includes them.
package ledgerfile

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/pigeonworks-llc/beancount-render/pkg/ledger"
	"github.com/pigeonworks-llc/beancount-render/pkg/pathutil"
	"github.com/pigeonworks-llc/beancount-render/pkg/render"
)

// Repository defines the interface for ledger file operations.
type Repository interface {
	// AppendDirective renders a directive and appends it to a monthly file
	AppendDirective(yearMonth string, d ledger.Directive, comment ...string) error

	// ReadMonthFile reads the content of a monthly file
	ReadMonthFile(yearMonth string) (string, error)

	// MonthFileExists checks if a monthly file exists
	MonthFileExists(yearMonth string) bool

	// MonthFilesInYear gets all monthly files in a year
	MonthFilesInYear(year string) ([]string, error)

	// AllMonthFiles gets all monthly files in the ledger tree
	AllMonthFiles() ([]string, error)

	// EnsureMonthFile ensures a monthly file exists with header
	EnsureMonthFile(yearMonth string) error

	// WriteMainFile regenerates the main file from options, plugins,
	// extra includes, and months
	WriteMainFile(options []*ledger.Option, plugins []*ledger.Plugin, includes []*ledger.Include, months []string) error
}

// FileSystemRepository is a file system implementation of Repository.
type FileSystemRepository struct {
	pathResolver *pathutil.PathResolver
	renderer     render.Renderer
}

// NewFileSystemRepository creates a new FileSystemRepository.
func NewFileSystemRepository(pathResolver *pathutil.PathResolver) *FileSystemRepository {
	return &FileSystemRepository{
		pathResolver: pathResolver,
	}
}

// AppendDirective renders a directive and appends it to a monthly file,
// preceded by an optional "; comment" line and followed by a blank line.
// It creates the file if it doesn't exist.
func (r *FileSystemRepository) AppendDirective(yearMonth string, d ledger.Directive, comment ...string) error {
	filePath, err := r.pathResolver.GetMonthFilePath(yearMonth)
	if err != nil {
		return fmt.Errorf("failed to get month file path: %w", err)
	}

	// Render first so a directive the renderer rejects leaves no file behind
	var buf bytes.Buffer
	if len(comment) > 0 && comment[0] != "" {
		fmt.Fprintf(&buf, "; %s\n", comment[0])
	}
	if err := r.renderer.RenderDirective(&buf, d); err != nil {
		return fmt.Errorf("failed to render directive: %w", err)
	}
	buf.WriteString("\n")

	// Ensure file exists with header
	if err := r.EnsureMonthFile(yearMonth); err != nil {
		return fmt.Errorf("failed to ensure month file: %w", err)
	}

	// Append to file
	f, err := os.OpenFile(filePath, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open file for appending: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write to file: %w", err)
	}

	return nil
}

// ReadMonthFile reads the content of a monthly file.
// Returns empty string if file doesn't exist.
func (r *FileSystemRepository) ReadMonthFile(yearMonth string) (string, error) {
	filePath, err := r.pathResolver.GetMonthFilePath(yearMonth)
	if err != nil {
		return "", fmt.Errorf("failed to get month file path: %w", err)
	}

	if !r.pathResolver.FileExists(filePath) {
		return "", nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	return string(data), nil
}

// MonthFileExists checks if a monthly file exists.
func (r *FileSystemRepository) MonthFileExists(yearMonth string) bool {
	filePath, err := r.pathResolver.GetMonthFilePath(yearMonth)
	if err != nil {
		return false
	}

	return r.pathResolver.FileExists(filePath)
}

// MonthFilesInYear gets all monthly files in a year.
// Returns a slice of year-month strings (e.g., ["2024-01", "2024-02"]).
func (r *FileSystemRepository) MonthFilesInYear(year string) ([]string, error) {
	yearDir := r.pathResolver.GetYearDir(year)
	if !r.pathResolver.FileExists(yearDir) {
		return []string{}, nil
	}

	entries, err := os.ReadDir(yearDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read year directory: %w", err)
	}

	var monthFiles []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if filepath.Ext(name) == ".beancount" {
			// Remove .beancount extension to get YYYY-MM
			monthKey := name[:len(name)-len(".beancount")]
			if pathutil.ValidYearMonth(monthKey) {
				monthFiles = append(monthFiles, monthKey)
			}
		}
	}

	return monthFiles, nil
}

// AllMonthFiles gets all monthly files in the ledger tree, across years,
// in sorted order.
func (r *FileSystemRepository) AllMonthFiles() ([]string, error) {
	root := r.pathResolver.GetLedgerRoot()
	if !r.pathResolver.FileExists(root) {
		return []string{}, nil
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger root: %w", err)
	}

	var months []string
	for _, entry := range entries {
		if !entry.IsDir() || !validYear(entry.Name()) {
			continue
		}
		yearMonths, err := r.MonthFilesInYear(entry.Name())
		if err != nil {
			return nil, err
		}
		months = append(months, yearMonths...)
	}

	sort.Strings(months)
	return months, nil
}

func validYear(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// EnsureMonthFile ensures a monthly file exists with header.
// If the file already exists, this is a no-op.
func (r *FileSystemRepository) EnsureMonthFile(yearMonth string) error {
	filePath, err := r.pathResolver.GetMonthFilePath(yearMonth)
	if err != nil {
		return fmt.Errorf("failed to get month file path: %w", err)
	}

	if r.pathResolver.FileExists(filePath) {
		return nil
	}

	// Ensure parent directory exists
	if err := r.pathResolver.EnsureParentDir(filePath); err != nil {
		return fmt.Errorf("failed to ensure parent directory: %w", err)
	}

	// Create file with header
	header := r.generateFileHeader(yearMonth)
	if err := os.WriteFile(filePath, []byte(header), 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// WriteMainFile regenerates the top-level ledger file: options first, then
// plugins, then extra includes, then one include per month file in sorted
// order. The whole file is rewritten on every call; month files are never
// touched.
func (r *FileSystemRepository) WriteMainFile(options []*ledger.Option, plugins []*ledger.Plugin, includes []*ledger.Include, months []string) error {
	sorted := make([]string, len(months))
	copy(sorted, months)
	sort.Strings(sorted)

	var l ledger.Ledger
	for _, option := range options {
		l.Directives = append(l.Directives, option)
	}
	for _, plugin := range plugins {
		l.Directives = append(l.Directives, plugin)
	}
	for _, include := range includes {
		l.Directives = append(l.Directives, include)
	}
	for _, yearMonth := range sorted {
		relPath, err := r.pathResolver.MonthFileRelPath(yearMonth)
		if err != nil {
			return fmt.Errorf("failed to resolve month file path: %w", err)
		}
		l.Directives = append(l.Directives, &ledger.Include{Filename: relPath})
	}

	var buf bytes.Buffer
	buf.WriteString(r.generateMainHeader())
	if err := r.renderer.RenderLedger(&buf, &l); err != nil {
		return fmt.Errorf("failed to render main file: %w", err)
	}

	mainPath := r.pathResolver.GetMainFilePath()
	if err := r.pathResolver.EnsureParentDir(mainPath); err != nil {
		return fmt.Errorf("failed to ensure ledger root: %w", err)
	}
	if err := os.WriteFile(mainPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write main file: %w", err)
	}

	return nil
}

// generateFileHeader generates a header comment for a monthly file.
func (r *FileSystemRepository) generateFileHeader(yearMonth string) string {
	now := time.Now().Format(time.RFC3339)
	return fmt.Sprintf("; Ledger file for %s\n; Generated at %s\n\n", yearMonth, now)
}

// generateMainHeader generates a header comment for the main file.
func (r *FileSystemRepository) generateMainHeader() string {
	now := time.Now().Format(time.RFC3339)
	return fmt.Sprintf("; Main ledger file\n; Generated at %s\n\n", now)
}
