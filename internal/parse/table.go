package parse

import (
	"strings"

	"github.com/Svenja-dev/gf-screening/internal/model"
)

// Header keywords for locating columns in detected table grids. Courts
// format their lists differently, so matching is loose substring work
// over the lower-cased header row.
var (
	nameHeaderTerms  = []string{"name", "gesellschafter", "vor- und nachname", "nachname", "inhaber", "anteilsinhaber"}
	shareHeaderTerms = []string{"anteil", "%", "geschäftsanteil", "nennbetrag", "betrag", "prozent"}
	indexHeaderTerms = []string{"nr", "lfd", "nummer"}
)

// ExtractTable turns one detected table grid into shareholder rows.
// Returns nil when the table has no data rows or no usable name column;
// that is not an error, the document just falls through to the next
// table or to the regex fallback.
func ExtractTable(table [][]string) []model.Shareholder {
	if len(table) < 2 {
		return nil
	}

	headers := make([]string, len(table[0]))
	for i, h := range table[0] {
		headers[i] = strings.ToLower(h)
	}

	nameCol := findColumn(headers, nameHeaderTerms)
	shareCol := findColumn(headers, shareHeaderTerms)

	// No name header: take the first column that is not an obvious
	// row-index column.
	if nameCol < 0 {
		for i, h := range headers {
			if h != "" && !containsAny(h, indexHeaderTerms) {
				nameCol = i
				break
			}
		}
	}
	if nameCol < 0 {
		return nil
	}

	var shareholders []model.Shareholder
	for _, row := range table[1:] {
		if len(row) <= nameCol {
			continue
		}

		name := strings.TrimSpace(row[nameCol])
		if len([]rune(name)) < 3 {
			continue
		}
		if containsNonPersonMarker(name) {
			continue
		}

		sh := model.Shareholder{
			Name:            cleanName(name),
			IsNaturalPerson: true,
			Source:          "table",
		}
		if shareCol >= 0 && len(row) > shareCol && row[shareCol] != "" {
			if v, ok := ParseShare(row[shareCol]); ok {
				sh.SharePercent = &v
			}
		}
		shareholders = append(shareholders, sh)
	}

	return shareholders
}

// findColumn returns the index of the first header containing any of
// the terms, or -1.
func findColumn(headers []string, terms []string) int {
	for i, h := range headers {
		if h != "" && containsAny(h, terms) {
			return i
		}
	}
	return -1
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}
