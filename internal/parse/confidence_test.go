package parse

import (
	"testing"

	"github.com/Svenja-dev/gf-screening/internal/model"
)

func TestConfidence_EmptyIsZero(t *testing.T) {
	// Short-circuit: even a perfect-looking text scores 0.0 when no
	// shareholder was extracted.
	text := "Gesellschafterliste\nMustermann, Max, Berlin, *01.01.1980"
	if got := Confidence(nil, text); got != 0.0 {
		t.Errorf("expected 0.0 for empty shareholder list, got %v", got)
	}
}

func TestConfidence_TableBeatsRegex(t *testing.T) {
	table := []model.Shareholder{{Name: "Max Mustermann", Source: "table"}}
	regex := []model.Shareholder{{Name: "Max Mustermann", Source: "regex:name_only"}}

	if ct, cr := Confidence(table, ""), Confidence(regex, ""); ct <= cr {
		t.Errorf("expected table confidence %v > regex confidence %v", ct, cr)
	}
}

func TestConfidence_SharesIncreaseScore(t *testing.T) {
	share := 50.0
	without := []model.Shareholder{{Name: "Max Mustermann", Source: "table"}}
	with := []model.Shareholder{{Name: "Max Mustermann", Source: "table", SharePercent: &share}}

	if cw, cwo := Confidence(with, ""), Confidence(without, ""); cw <= cwo {
		t.Errorf("expected share values to raise confidence: %v <= %v", cw, cwo)
	}
}

func TestConfidence_CountBands(t *testing.T) {
	mk := func(n int) []model.Shareholder {
		shs := make([]model.Shareholder, n)
		for i := range shs {
			shs[i] = model.Shareholder{Name: "Gesellschafterin", Source: "table"}
		}
		return shs
	}

	small := Confidence(mk(5), "")
	medium := Confidence(mk(15), "")
	large := Confidence(mk(30), "")

	if small <= medium {
		t.Errorf("expected 1-10 band above 11-20 band: %v <= %v", small, medium)
	}
	if medium <= large {
		t.Errorf("expected 11-20 band above 20+: %v <= %v", medium, large)
	}
}

func TestConfidence_TextSignals(t *testing.T) {
	shs := []model.Shareholder{{Name: "Max Mustermann", Source: "table"}}

	plain := Confidence(shs, "")
	withBirth := Confidence(shs, "Mustermann, Max, Berlin, *01.01.1980")
	withTitle := Confidence(shs, "Gesellschafterliste der Beispiel GmbH")

	if withBirth <= plain {
		t.Errorf("expected birthdate marker to raise confidence: %v <= %v", withBirth, plain)
	}
	if withTitle <= plain {
		t.Errorf("expected Gesellschafterliste marker to raise confidence: %v <= %v", withTitle, plain)
	}
}

func TestConfidence_ClampedToOne(t *testing.T) {
	share := 50.0
	shs := []model.Shareholder{
		{Name: "Max Mustermann", Source: "table", SharePercent: &share},
		{Name: "Erika Musterfrau", Source: "table"},
	}
	text := "Gesellschafterliste\nMustermann, Max, Berlin, *01.01.1980"

	got := Confidence(shs, text)
	if got < 0.0 || got > 1.0 {
		t.Fatalf("confidence out of range: %v", got)
	}
	// All factors fire: 0.3 + 0.2 + 0.2 + 0.15 + 0.15 = 1.0.
	if got != 1.0 {
		t.Errorf("expected all factors to sum to the 1.0 cap, got %v", got)
	}
}
