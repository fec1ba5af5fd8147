package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Svenja-dev/gf-screening/internal/pipeline"
)

var (
	cleanupMaxAge    int
	cleanupDryRun    bool
	cleanupDeleteAll bool
)

// cleanupCmd represents the cleanup command
var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Delete stale data files (DSGVO retention)",
	Long: `Cleanup deletes downloaded Gesellschafterlisten, exports and debug
screenshots past their retention period. The lists contain personal
data and must not be kept beyond it (DSGVO Art. 17).

Defaults: documents and exports after 90 days, debug screenshots
after 24 hours.

Example:
  gf-screening cleanup
  gf-screening cleanup --dry-run
  gf-screening cleanup --delete-all`,
	RunE: runCleanup,
}

func init() {
	rootCmd.AddCommand(cleanupCmd)

	cleanupCmd.Flags().IntVar(&cleanupMaxAge, "max-age", 0, "max age in days (0 = config default)")
	cleanupCmd.Flags().BoolVar(&cleanupDryRun, "dry-run", false, "only show what would be deleted")
	cleanupCmd.Flags().BoolVar(&cleanupDeleteAll, "delete-all", false, "delete all data files regardless of age")
}

func runCleanup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	p, err := pipeline.New(cfg)
	if err != nil {
		return err
	}
	defer p.Close()

	maxAge := cfg.Retention.MaxAgeDays
	if cleanupMaxAge > 0 {
		maxAge = cleanupMaxAge
	}
	if cleanupDeleteAll {
		maxAge = 0
	}

	report := p.Cleanup(maxAge, cleanupDryRun)

	mode := "deleted"
	if cleanupDryRun {
		mode = "would delete"
	}
	fmt.Printf("Retention cleanup (%s):\n", mode)
	fmt.Printf("  PDFs:    %d\n", report.PDFs)
	fmt.Printf("  Exports: %d\n", report.Exports)
	fmt.Printf("  Debug:   %d\n", report.Debug)
	return nil
}
