package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Svenja-dev/gf-screening/internal/pipeline"
)

var importDelimiter string

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a Dealfront export (CSV or Excel)",
	Long: `Import loads companies from a Dealfront export into the pipeline
database. CSV and Excel files are supported; columns are matched by
name in both German and English (Firma/Company Name, Ort/Location,
Registernummer/Register Number, ...).

Companies already present (same name and register number) are skipped.

Example:
  gf-screening import leads.csv
  gf-screening import leads.xlsx
  gf-screening import leads.csv --delimiter ","`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVar(&importDelimiter, "delimiter", ";", "CSV delimiter")
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.Import.Delimiter = importDelimiter

	p, err := pipeline.New(cfg)
	if err != nil {
		return err
	}
	defer p.Close()

	report, err := p.Import(context.Background(), args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Imported %d companies (%d skipped)\n", report.Imported, report.Skipped)
	return nil
}
