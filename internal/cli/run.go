package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/Svenja-dev/gf-screening/internal/pipeline"
)

var runLimit int

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Run the complete pipeline on a Dealfront export",
	Long: `Run executes the whole workflow in one go: import the export,
fetch the Gesellschafterlisten, parse them and export the qualified
leads, finishing with a status summary.

Example:
  gf-screening run leads.csv
  gf-screening run leads.xlsx --limit 100`,
	Args: cobra.ExactArgs(1),
	RunE: runAll,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().IntVar(&runLimit, "limit", 0, "max number of companies to process (0 = all)")
}

func runAll(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	p, err := pipeline.New(cfg)
	if err != nil {
		return err
	}
	defer p.Close()

	ctx := context.Background()

	if _, err := p.Import(ctx, args[0]); err != nil {
		return err
	}
	if err := p.RunDownloads(ctx, runLimit); err != nil {
		return err
	}
	if _, err := p.RunParsing(ctx, 0); err != nil {
		return err
	}
	if _, _, err := p.Export(ctx, ""); err != nil {
		return err
	}
	return p.PrintStats(ctx, os.Stdout)
}
