package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Svenja-dev/gf-screening/internal/parse"
	"github.com/Svenja-dev/gf-screening/internal/pdfread"
)

var inspectJSON bool

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect <pdf>",
	Short: "Parse a single PDF and show the extraction result",
	Long: `Inspect runs the parser on one Gesellschafterliste without touching
the database. Useful for checking why a document parsed badly: it
shows the extracted shareholders, their sources and the confidence
score.

Example:
  gf-screening inspect pdfs/HRB_12345.pdf
  gf-screening inspect pdfs/HRB_12345.pdf --json`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "print the full result as JSON")
}

func runInspect(cmd *cobra.Command, args []string) error {
	result := parse.New(pdfread.NewOpener()).Parse(args[0])

	if inspectJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Printf("File:       %s\n", args[0])
	fmt.Printf("Confidence: %.2f\n", result.Confidence)
	fmt.Printf("Natural persons: %d, legal entities: %d\n\n",
		result.NaturalPersonsCount, result.LegalEntitiesCount)

	if len(result.Shareholders) == 0 {
		fmt.Println("No shareholders extracted.")
		return nil
	}

	for _, sh := range result.Shareholders {
		kind := "legal entity"
		if sh.IsNaturalPerson {
			kind = "natural person"
		}
		share := ""
		if sh.SharePercent != nil {
			share = fmt.Sprintf(", share %.2f", *sh.SharePercent)
		}
		fmt.Printf("  - %s (%s%s, via %s)\n", sh.Name, kind, share, sh.Source)
	}
	return nil
}
