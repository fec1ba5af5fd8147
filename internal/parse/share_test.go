package parse

import "testing"

func TestParseShare(t *testing.T) {
	tests := []struct {
		input string
		want  float64
		ok    bool
	}{
		{"50,00 %", 50.0, true},
		{"33,33%", 33.33, true},
		{"50.00 %", 50.0, true},
		{"25.000,00 EUR", 25000.0, true},
		// Dot before the unit is a thousands separator in German
		// number format, never a decimal point.
		{"12.500 EUR", 12500.0, true},
		{"1.000 €", 1000.0, true},
		{"keine Angabe", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseShare(tt.input)
		if ok != tt.ok {
			t.Errorf("ParseShare(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("ParseShare(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestCleanName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"  Max Mustermann  ", "Max Mustermann"},
		{"Max   Mustermann", "Max Mustermann"},
		{"Max Mustermann,", "Max Mustermann"},
		{"  Max   Mustermann,  ", "Max Mustermann"},
	}

	for _, tt := range tests {
		if got := cleanName(tt.input); got != tt.want {
			t.Errorf("cleanName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
