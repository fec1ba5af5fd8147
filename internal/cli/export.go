package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Svenja-dev/gf-screening/internal/pipeline"
)

var exportOutput string

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export qualified leads as CSV",
	Long: `Export writes the qualified companies to a semicolon-separated CSV
in the output directory, including the natural person shareholders of
each company.

Example:
  gf-screening export
  gf-screening export --output leads.csv`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportOutput, "output", "", "output filename (default: qualified_leads_<timestamp>.csv)")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	p, err := pipeline.New(cfg)
	if err != nil {
		return err
	}
	defer p.Close()

	path, count, err := p.Export(context.Background(), exportOutput)
	if err != nil {
		return err
	}

	fmt.Printf("Exported %d qualified leads to %s\n", count, path)
	return nil
}
