package parse

import "github.com/Svenja-dev/gf-screening/internal/model"

// ExtractText runs the pattern cascade over the full document text.
// Fallback strategy for documents where table detection found nothing.
// The same length and boilerplate filters apply as in table extraction;
// the source tag records which pattern produced each entry.
func ExtractText(text string) []model.Shareholder {
	var shareholders []model.Shareholder

	for _, p := range patterns {
		for _, m := range p.re.FindAllStringSubmatch(text, -1) {
			name := cleanName(p.displayName(m))

			if len([]rune(name)) < 3 {
				continue
			}
			if containsNonPersonMarker(name) {
				continue
			}

			shareholders = append(shareholders, model.Shareholder{
				Name:            name,
				IsNaturalPerson: true,
				Source:          "regex:" + p.name,
			})
		}
	}

	return shareholders
}
