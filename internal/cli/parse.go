package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Svenja-dev/gf-screening/internal/pipeline"
)

var (
	parseLimit   int
	parseWorkers int
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse downloaded Gesellschafterlisten",
	Long: `Parse extracts the shareholder structure from downloaded PDFs.

Table extraction is attempted first; documents without a detectable
table fall back to a regex cascade over the raw text. Each result
carries a confidence score, and a company qualifies when its owner
circle is small enough (default: at most 2 natural persons, no legal
entities).

Example:
  gf-screening parse
  gf-screening parse --limit 50 --workers 8`,
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().IntVar(&parseLimit, "limit", 0, "max number of PDFs to parse (0 = all)")
	parseCmd.Flags().IntVar(&parseWorkers, "workers", 0, "parse worker count (0 = config default)")
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if parseWorkers > 0 {
		cfg.Parse.Workers = parseWorkers
	}

	p, err := pipeline.New(cfg)
	if err != nil {
		return err
	}
	defer p.Close()

	report, err := p.RunParsing(context.Background(), parseLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Parsed %d PDFs: %d qualified, %d errors\n",
		report.Parsed, report.Qualified, report.Errors)
	return nil
}
