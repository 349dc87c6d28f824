package cmd

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/spf13/cobra"

	"github.com/pigeonworks-llc/beancount-render/pkg/config"
	"github.com/pigeonworks-llc/beancount-render/pkg/db"
	"github.com/pigeonworks-llc/beancount-render/pkg/pathutil"
)

var statsKind string

// statsCmd represents the stats command.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Display export statistics",
	Long: `Display statistics about exported directives.

Shows:
- Total number of exported directives
- Counts per directive kind
- Last export timestamp

With --kind, lists the export records of that directive kind instead,
newest entry date first.

Example:
  bean-render stats
  bean-render stats --kind transaction`,
	Run: runStats,
}

func init() {
	statsCmd.Flags().StringVar(&statsKind, "kind", "", "list export records for one directive kind")
}

func runStats(cmd *cobra.Command, args []string) {
	slog.Info("Loading configuration")

	// Load configuration
	cfg, err := config.Load(getConfigFile())
	exitOnError(err, "failed to load configuration")

	// Validate required fields
	if err := cfg.Validate([]string{"ledger", "root"}); err != nil {
		exitOnError(err, "invalid configuration")
	}

	// Initialize PathResolver
	pathResolver := pathutil.New(pathutil.Config{
		LedgerRoot:   cfg.Ledger.Root,
		DatabasePath: cfg.Ledger.DBPath,
		MainFileName: cfg.Ledger.MainFile,
	})

	// Open database connection
	dbPath := pathResolver.GetDatabasePath()
	slog.Debug("Opening database", "path", dbPath)

	conn, err := db.Open(dbPath)
	exitOnError(err, "failed to open database")
	defer conn.Close()

	// Get export history
	exportHistory := db.NewExportHistory(conn)

	// Display either the per-kind listing or the summary
	if statsKind != "" {
		records, err := exportHistory.GetExportRecordsByKind(statsKind)
		exitOnError(err, "failed to get export records")

		printExportRecords(statsKind, records)
	} else {
		stats, err := exportHistory.GetStats()
		exitOnError(err, "failed to get statistics")

		printExportStats(stats)
	}

	slog.Info("Statistics displayed successfully")
}

// printExportStats displays export statistics, kinds in alphabetical order.
func printExportStats(stats *db.Stats) {
	fmt.Println("\n=== Export Statistics ===")
	fmt.Printf("Total exported: %d\n", stats.TotalExports)

	kinds := make([]string, 0, len(stats.ByKind))
	for kind := range stats.ByKind {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		fmt.Printf("  %-13s %d\n", kind+":", stats.ByKind[kind])
	}

	if stats.LastExport.Valid {
		fmt.Printf("Last export:    %s\n", stats.LastExport.String)
	} else {
		fmt.Printf("Last export:    (never)\n")
	}

	fmt.Println()
}

// printExportRecords lists the export history of one directive kind.
func printExportRecords(kind string, records []db.ExportRecord) {
	fmt.Printf("\n=== Exports: %s ===\n", kind)

	if len(records) == 0 {
		fmt.Println("(none)")
		fmt.Println()
		return
	}

	for _, record := range records {
		fmt.Printf("  %s  %s  %s\n", record.EntryDate, shortHash(record.ContentHash), record.MonthFile)
	}

	fmt.Println()
}

// shortHash truncates a content hash for display.
func shortHash(hash string) string {
	if len(hash) > 12 {
		return hash[:12]
	}
	return hash
}
