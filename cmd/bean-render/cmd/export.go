package cmd

import (
	"bytes"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"log/slog"
	"sort"

	"github.com/spf13/cobra"

	"github.com/pigeonworks-llc/beancount-render/pkg/config"
	"github.com/pigeonworks-llc/beancount-render/pkg/db"
	"github.com/pigeonworks-llc/beancount-render/pkg/ledger"
	"github.com/pigeonworks-llc/beancount-render/pkg/ledgerfile"
	"github.com/pigeonworks-llc/beancount-render/pkg/loader"
	"github.com/pigeonworks-llc/beancount-render/pkg/pathutil"
	"github.com/pigeonworks-llc/beancount-render/pkg/render"
)

var dryRun bool

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:   "export <document>",
	Short: "Export a ledger document into the ledger tree",
	Long: `Export the directives of a ledger document (YAML) into monthly
Beancount files under the ledger root.

This command:
1. Loads the document
2. Filters out directives that were already exported
3. Renders new directives and appends them to monthly files
4. Records export history in SQLite
5. Regenerates the main file (options, plugins, includes)

Dated directives are grouped by month of their date. Options, plugins,
and includes carry no date; they go to the main file instead.

Example:
  bean-render export ledger.yaml
  bean-render export ledger.yaml --dry-run`,
	Args: cobra.ExactArgs(1),
	Run:  runExport,
}

func init() {
	exportCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Dry run mode (no file writes)")
}

// exportEntry is one dated directive staged for export, with its rendered
// text and the content hash that identifies it in the history.
type exportEntry struct {
	directive ledger.Directive
	date      string
	monthKey  string
	hash      string
	text      string
}

func runExport(cmd *cobra.Command, args []string) {
	slog.Info("Starting export", "document", args[0], "dry_run", dryRun)

	// Load configuration
	cfg, err := config.Load(getConfigFile())
	exitOnError(err, "failed to load configuration")

	// Validate required fields
	if err := cfg.Validate([]string{"ledger", "root"}); err != nil {
		exitOnError(err, "invalid configuration")
	}

	// Initialize components
	pathResolver := pathutil.New(pathutil.Config{
		LedgerRoot:   cfg.Ledger.Root,
		DatabasePath: cfg.Ledger.DBPath,
		MainFileName: cfg.Ledger.MainFile,
	})

	// Load the document
	doc, err := loader.LoadFile(args[0])
	exitOnError(err, "failed to load ledger document")
	slog.Info("Loaded ledger document", "directives", len(doc.Directives))

	// Split directives: undated kinds belong to the main file, the rest
	// are grouped into monthly files by their date
	var options []*ledger.Option
	var plugins []*ledger.Plugin
	var includes []*ledger.Include
	var dated []ledger.Directive
	for _, d := range doc.Directives {
		switch d := d.(type) {
		case *ledger.Option:
			options = append(options, d)
		case *ledger.Plugin:
			plugins = append(plugins, d)
		case *ledger.Include:
			includes = append(includes, d)
		default:
			dated = append(dated, d)
		}
	}

	// Open database
	dbPath := pathResolver.GetDatabasePath()
	slog.Debug("Opening database", "path", dbPath)
	conn, err := db.Open(dbPath)
	exitOnError(err, "failed to open database")
	defer conn.Close()

	exportHistory := db.NewExportHistory(conn)

	// Filter out already exported directives
	slog.Info("Checking for already exported directives")
	exportedHashes, err := exportHistory.ExportedHashes()
	exitOnError(err, "failed to get exported hashes")

	newEntries, err := prepareEntries(dated, exportedHashes)
	exitOnError(err, "failed to prepare directives")

	slog.Info("New entries to export",
		"new", len(newEntries),
		"skipped", len(dated)-len(newEntries),
	)

	if len(newEntries) == 0 && len(options) == 0 && len(plugins) == 0 && len(includes) == 0 {
		fmt.Println("No new entries to export")
		return
	}

	// Group by month
	entriesByMonth := groupByMonth(newEntries)
	months := sortedMonthKeys(entriesByMonth)

	repo := ledgerfile.NewFileSystemRepository(pathResolver)

	filesWritten := []string{}

	// Process each month
	for _, monthKey := range months {
		entries := entriesByMonth[monthKey]

		filePath, err := pathResolver.GetMonthFilePath(monthKey)
		if err != nil {
			slog.Error("Failed to get month file path", "month", monthKey, "error", err)
			continue
		}

		if !dryRun {
			var appended []exportEntry
			for _, entry := range entries {
				if err := repo.AppendDirective(monthKey, entry.directive); err != nil {
					slog.Error("Failed to append directive",
						"kind", entry.directive.Kind(),
						"date", entry.date,
						"error", err,
					)
					continue
				}
				appended = append(appended, entry)
			}

			// Record the month's history in one transaction
			recordErr := conn.Transaction(func(tx *sql.Tx) error {
				for _, entry := range appended {
					record := db.ExportRecord{
						DirectiveKind: entry.directive.Kind(),
						ContentHash:   entry.hash,
						EntryDate:     entry.date,
						MonthFile:     filePath,
					}
					if err := exportHistory.RecordExportTx(tx, record); err != nil {
						return err
					}
				}
				return nil
			})
			if recordErr != nil {
				slog.Error("Failed to record export history", "month", monthKey, "error", recordErr)
			}

			filesWritten = append(filesWritten, filePath)
			slog.Info("Updated file", "path", filePath, "entries", len(appended))
		} else {
			// Dry run: print rendered directives
			fmt.Printf("[DRY RUN] Would append to %s\n", filePath)
			for _, entry := range entries {
				fmt.Print(entry.text)
			}
		}
	}

	// Regenerate the main file from everything now on disk
	if !dryRun {
		allMonths, err := repo.AllMonthFiles()
		exitOnError(err, "failed to scan ledger tree")

		if err := repo.WriteMainFile(options, plugins, includes, allMonths); err != nil {
			exitOnError(err, "failed to write main file")
		}
		slog.Info("Regenerated main file",
			"path", pathResolver.GetMainFilePath(),
			"months", len(allMonths),
		)

		if err := exportHistory.SetMetadata("last_document", args[0]); err != nil {
			slog.Error("Failed to record last document", "error", err)
		}

		// Display final statistics
		stats, err := exportHistory.GetStats()
		if err == nil {
			printExportStats(stats)
		}
	} else {
		fmt.Printf("[DRY RUN] Would regenerate %s\n", pathResolver.GetMainFilePath())
	}

	slog.Info("Export completed",
		"new_entries", len(newEntries),
		"files_written", len(filesWritten),
	)
}

// Helper functions

// prepareEntries renders each dated directive, hashes the rendered text,
// and drops the directives whose hash is already in the history.
func prepareEntries(directives []ledger.Directive, exportedHashes []string) ([]exportEntry, error) {
	exported := make(map[string]bool)
	for _, hash := range exportedHashes {
		exported[hash] = true
	}

	var entries []exportEntry
	for _, d := range directives {
		date, ok := ledger.DirectiveDate(d)
		if !ok {
			return nil, fmt.Errorf("%s directive carries no date", d.Kind())
		}

		var buf bytes.Buffer
		if err := render.RenderDirective(&buf, d); err != nil {
			return nil, fmt.Errorf("failed to render %s directive dated %s: %w", d.Kind(), date, err)
		}

		sum := sha256.Sum256(buf.Bytes())
		hash := hex.EncodeToString(sum[:])
		if exported[hash] {
			continue
		}

		entries = append(entries, exportEntry{
			directive: d,
			date:      string(date),
			monthKey:  string(date)[:7], // YYYY-MM
			hash:      hash,
			text:      buf.String(),
		})
	}
	return entries, nil
}

func groupByMonth(entries []exportEntry) map[string][]exportEntry {
	groups := make(map[string][]exportEntry)
	for _, entry := range entries {
		groups[entry.monthKey] = append(groups[entry.monthKey], entry)
	}
	return groups
}

func sortedMonthKeys(groups map[string][]exportEntry) []string {
	months := make([]string, 0, len(groups))
	for month := range groups {
		months = append(months, month)
	}

	// Simple string sort works for YYYY-MM format
	sort.Strings(months)

	return months
}
