package parse

import (
	"strings"

	"github.com/Svenja-dev/gf-screening/internal/model"
)

// Dedupe removes duplicate shareholder entries, comparing names
// case-insensitively. The first occurrence wins; attributes of later
// duplicates are discarded, not merged.
func Dedupe(shareholders []model.Shareholder) []model.Shareholder {
	seen := make(map[string]struct{}, len(shareholders))
	unique := make([]model.Shareholder, 0, len(shareholders))

	for _, sh := range shareholders {
		key := strings.TrimSpace(strings.ToLower(sh.Name))
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, sh)
	}

	return unique
}
