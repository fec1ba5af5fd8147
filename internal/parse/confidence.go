package parse

import (
	"math"
	"regexp"
	"strings"

	"github.com/Svenja-dev/gf-screening/internal/model"
)

// birthDateRe matches "*DD.MM.YYYY" birthdate markers anywhere in the
// text, a strong indicator that a real Gesellschafterliste was read.
var birthDateRe = regexp.MustCompile(`\*\s*\d{2}\.\d{2}\.\d{4}`)

// Confidence rates extraction quality between 0.0 (unusable) and 1.0
// (very sure). The factor weights are empirically tuned; downstream
// thresholds depend on these exact values.
func Confidence(shareholders []model.Shareholder, fullText string) float64 {
	if len(shareholders) == 0 {
		return 0.0
	}

	score := 0.0

	// Factor 1: source quality, table beats regex.
	hasTable := false
	hasRegex := false
	for _, sh := range shareholders {
		if sh.Source == "table" {
			hasTable = true
		}
		if strings.Contains(sh.Source, "regex") {
			hasRegex = true
		}
	}
	if hasTable {
		score += 0.3
	} else if hasRegex {
		score += 0.15
	}

	// Factor 2: share values found.
	for _, sh := range shareholders {
		if sh.SharePercent != nil {
			score += 0.2
			break
		}
	}

	// Factor 3: plausible shareholder count for a GmbH.
	if n := len(shareholders); n <= 10 {
		score += 0.2
	} else if n <= 20 {
		score += 0.1
	}

	// Factor 4: birthdates anywhere in the text.
	if birthDateRe.MatchString(fullText) {
		score += 0.15
	}

	// Factor 5: the document calls itself a Gesellschafterliste.
	if strings.Contains(strings.ToLower(fullText), "gesellschafterliste") {
		score += 0.15
	}

	return math.Min(score, 1.0)
}
