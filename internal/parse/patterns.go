package parse

import "regexp"

// capitalized word token: first letter uppercase, umlauts included.
// Keeps lowercase boilerplate from ever matching a name position.
const word = `[A-ZÄÖÜ][a-zäöüß]+`

// like word, but tolerating interior capitals so legal-form tokens
// ("GmbH") survive in bare name lines. The second letter must still be
// lowercase, which keeps roman numerals and ALL-CAPS headings out.
const wordMixed = `[A-ZÄÖÜ][a-zäöüß][A-Za-zäöüß]*`

// pattern models one known textual layout of a shareholder entry.
// displayName builds the display name from the submatches (index 0 is
// the whole match).
type pattern struct {
	name        string
	re          *regexp.Regexp
	displayName func(m []string) string
}

// patterns is the fixed cascade of known Gesellschafterliste layouts.
// Every pattern is applied independently over the whole text; redundant
// hits on the same name are resolved by deduplication downstream.
var patterns = []pattern{
	{
		// "Mustermann, Max, Berlin, *01.01.1980"
		name:        "standard_birth",
		re:          regexp.MustCompile(`(?m)(` + word + `),\s*(` + word + `(?:\s+` + word + `)?),\s*([^,*]+),\s*\*\s*(\d{2}\.\d{2}\.\d{4})`),
		displayName: func(m []string) string { return m[2] + " " + m[1] },
	},
	{
		// "Max Mustermann, Berlin, *01.01.1980"
		name:        "name_first",
		re:          regexp.MustCompile(`(?m)(` + word + `(?:\s+` + word + `)+),\s*([^,*]+),\s*\*\s*(\d{2}\.\d{2}\.\d{4})`),
		displayName: func(m []string) string { return m[1] },
	},
	{
		// "1. Max Mustermann, geb. 01.01.1980"
		name:        "numbered_geb",
		re:          regexp.MustCompile(`(?m)\d+\.\s*(` + word + `(?:\s+` + word + `)+),?\s*geb\.\s*(\d{2}\.\d{2}\.\d{4})`),
		displayName: func(m []string) string { return m[1] },
	},
	{
		// "Max Mustermann 50,00 %" or "Max Mustermann 50.000,00 EUR"
		name:        "name_share",
		re:          regexp.MustCompile(`(?m)(` + word + `(?:\s+` + word + `)+)\s+(\d+(?:[.,]\d+)?)\s*(%|EUR|€)`),
		displayName: func(m []string) string { return m[1] },
	},
	{
		// a line holding nothing but 2-4 capitalized words, with an
		// optional "2." style enumerator in front
		name:        "name_only",
		re:          regexp.MustCompile(`(?m)^(?:\d+\.\s*)?(` + wordMixed + `(?:\s+` + wordMixed + `){1,3})$`),
		displayName: func(m []string) string { return m[1] },
	},
}
