package parse

import (
	"regexp"
	"strings"
)

// legalEntityMarkers are substrings that identify a juristische Person.
// German legal forms plus the foreign forms that show up in German
// shareholder lists.
var legalEntityMarkers = []string{
	"GmbH", "AG", "KG", "SE", "UG", "OHG", "e.V.", "e. V.",
	"Stiftung", "Ltd.", "B.V.", "S.A.", "S.L.", "Inc.", "Corp.",
	"Holding", "Beteiligungs", "Verwaltungs", "& Co.", "mbH",
	"Kommanditgesellschaft", "Aktiengesellschaft", "Genossenschaft",
	"GbR", "PartG", "EWIV", "KGaA", "VVaG",
}

// nonPersonMarkers flag cells and lines that are table boilerplate
// rather than a shareholder name.
var nonPersonMarkers = []string{
	"Geschäftsanteil", "Stammkapital", "Nennbetrag", "laufende",
	"Nummer", "Betrag", "Liste", "Gesellschafter", "insgesamt",
	"Summe", "EUR", "Anteil", "Veränderung",
}

var digitRe = regexp.MustCompile(`\d`)

// IsNaturalPerson reports whether a name belongs to a natural person as
// opposed to a legal entity. Heuristic, not legally authoritative:
// legal-form markers win, then overly long names and names containing
// digits count as companies, everything else as a person.
func IsNaturalPerson(name string) bool {
	upper := strings.ToUpper(name)
	for _, marker := range legalEntityMarkers {
		if strings.Contains(upper, strings.ToUpper(marker)) {
			return false
		}
	}

	// Natural persons rarely carry more than 5 name parts.
	if len(strings.Fields(name)) > 5 {
		return false
	}

	if digitRe.MatchString(name) {
		return false
	}

	return true
}

// containsNonPersonMarker reports whether a candidate name is table
// boilerplate that must never become a Shareholder.
func containsNonPersonMarker(name string) bool {
	lower := strings.ToLower(name)
	for _, marker := range nonPersonMarkers {
		if strings.Contains(lower, strings.ToLower(marker)) {
			return true
		}
	}
	return false
}
