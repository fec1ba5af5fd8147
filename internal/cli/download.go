package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Svenja-dev/gf-screening/internal/pipeline"
)

var downloadLimit int

// downloadCmd represents the download command
var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Fetch Gesellschafterlisten for pending companies",
	Long: `Download resolves pending companies against the register document
drop directory and moves found lists into the PDF directory.

Lookups are rate limited per Registergericht (default 55 per hour) to
stay below the portal's tolerance. Companies without a list on file
are marked so they are not retried on the next run.

Example:
  gf-screening download
  gf-screening download --limit 100`,
	RunE: runDownload,
}

func init() {
	rootCmd.AddCommand(downloadCmd)

	downloadCmd.Flags().IntVar(&downloadLimit, "limit", 0, "max number of downloads (0 = all)")
}

func runDownload(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	p, err := pipeline.New(cfg)
	if err != nil {
		return err
	}
	defer p.Close()

	return p.RunDownloads(context.Background(), downloadLimit)
}
