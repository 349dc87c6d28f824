package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pigeonworks-llc/beancount-render/pkg/ledger"
	"github.com/pigeonworks-llc/beancount-render/pkg/loader"
	"github.com/pigeonworks-llc/beancount-render/pkg/render"
)

var outputPath string

// renderCmd represents the render command.
var renderCmd = &cobra.Command{
	Use:   "render <document>",
	Short: "Render a ledger document to Beancount text",
	Long: `Render all directives of a ledger document (YAML) to Beancount text.

The output is written to stdout unless --output is given. Directives are
rendered in document order, separated by blank lines; nothing is
reordered, validated, or balanced.

Example:
  bean-render render ledger.yaml
  bean-render render ledger.yaml --output main.beancount`,
	Args: cobra.ExactArgs(1),
	Run:  runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write output to file instead of stdout")
}

func runRender(cmd *cobra.Command, args []string) {
	l, err := loader.LoadFile(args[0])
	exitOnError(err, "failed to load ledger document")
	slog.Debug("Loaded ledger document", "document", args[0], "directives", len(l.Directives))

	if outputPath == "" {
		err := render.Render(os.Stdout, l)
		exitOnError(err, "failed to render ledger")
		return
	}

	err = renderToFile(l, outputPath)
	exitOnError(err, "failed to render ledger")
	slog.Info("Rendered ledger", "directives", len(l.Directives), "output", outputPath)
}

// renderToFile renders the ledger into a freshly created file at path,
// including the final close in the error result.
func renderToFile(l *ledger.Ledger, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := render.Render(f, l); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}

	return nil
}
