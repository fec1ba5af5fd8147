package importer

import (
	"regexp"
	"strings"
)

// Register field formats seen in Dealfront exports:
//
//	"HRB 12345"
//	"HRB 12345 B"
//	"12345"                       (bare number, HRB assumed)
//	"Amtsgericht Berlin HRB 12345"
//	"Berlin, HRB 12345"
var (
	registerWithCourtRe = regexp.MustCompile(`(?:AMTSGERICHT\s+)?([^\s,]+)[\s,]+?(HRB|HRA|GNR|VR|PR)\s*(\d+)\s*([A-Z])?`)
	registerTypedRe     = regexp.MustCompile(`(HRB|HRA|GNR|VR|PR)\s*(\d+)\s*([A-Z])?`)
	registerBareRe      = regexp.MustCompile(`^(\d+)\s*([A-Z])?$`)
)

// courtByCity maps city names to their Registergericht. Checked in
// order since the match is a substring test.
var courtByCity = []struct {
	city  string
	court string
}{
	{"berlin", "Berlin (Charlottenburg)"},
	{"münchen", "München"},
	{"munich", "München"},
	{"hamburg", "Hamburg"},
	{"frankfurt", "Frankfurt am Main"},
	{"köln", "Köln"},
	{"cologne", "Köln"},
	{"düsseldorf", "Düsseldorf"},
	{"stuttgart", "Stuttgart"},
	{"dortmund", "Dortmund"},
	{"essen", "Essen"},
	{"bremen", "Bremen"},
	{"leipzig", "Leipzig"},
	{"dresden", "Dresden"},
	{"hannover", "Hannover"},
	{"nürnberg", "Nürnberg"},
	{"nuremberg", "Nürnberg"},
}

// ParseRegisterField extracts register type, number and court from a
// raw register field. A bare number is assumed to be an HRB entry; the
// court falls back to a city lookup when the field itself names none.
func ParseRegisterField(raw, city string) (regType, regNum, court string) {
	raw = strings.ToUpper(strings.TrimSpace(raw))
	if raw == "" {
		return "", "", ""
	}

	if m := registerWithCourtRe.FindStringSubmatch(raw); m != nil {
		return m[2], strings.TrimSpace(m[3] + " " + m[4]), m[1]
	}

	if m := registerTypedRe.FindStringSubmatch(raw); m != nil {
		return m[1], strings.TrimSpace(m[2] + " " + m[3]), CityToCourt(city)
	}

	if m := registerBareRe.FindStringSubmatch(raw); m != nil {
		return "HRB", strings.TrimSpace(m[1] + " " + m[2]), CityToCourt(city)
	}

	return "", "", ""
}

// CityToCourt derives the Registergericht from a city name. Unknown
// cities are returned as-is; the register portal resolves most of them.
func CityToCourt(city string) string {
	if city == "" {
		return ""
	}
	lower := strings.ToLower(city)
	for _, entry := range courtByCity {
		if strings.Contains(lower, entry.city) {
			return entry.court
		}
	}
	return city
}
