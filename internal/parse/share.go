package parse

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	percentRe = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*%`)
	eurRe     = regexp.MustCompile(`([\d.]+(?:,\d+)?)\s*(?:EUR|€)`)
	spaceRe   = regexp.MustCompile(`\s+`)
)

// ParseShare extracts a percentage or EUR nominal amount from a raw
// cell value. Numbers are in German format: comma as decimal separator,
// dot as thousands separator, so "12.500 EUR" is 12500, not 12.5.
// The second return value is false when no value could be parsed;
// an unparseable share never blocks extraction of the shareholder.
func ParseShare(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}

	if m := percentRe.FindStringSubmatch(s); m != nil {
		v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
		if err == nil {
			return v, true
		}
	}

	if m := eurRe.FindStringSubmatch(s); m != nil {
		raw := strings.ReplaceAll(m[1], ".", "")
		raw = strings.ReplaceAll(raw, ",", ".")
		v, err := strconv.ParseFloat(raw, 64)
		if err == nil {
			return v, true
		}
	}

	return 0, false
}

// cleanName collapses whitespace runs and strips surrounding whitespace
// and trailing commas.
func cleanName(name string) string {
	name = spaceRe.ReplaceAllString(name, " ")
	name = strings.TrimSpace(name)
	return strings.TrimRight(name, ",")
}
