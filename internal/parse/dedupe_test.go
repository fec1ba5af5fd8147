package parse

import (
	"testing"

	"github.com/Svenja-dev/gf-screening/internal/model"
)

func TestDedupe_RemovesDuplicates(t *testing.T) {
	shareholders := []model.Shareholder{
		{Name: "Max Mustermann"},
		{Name: "Max Mustermann"},
		{Name: "Erika Musterfrau"},
	}

	unique := Dedupe(shareholders)
	if len(unique) != 2 {
		t.Fatalf("expected 2 unique entries, got %d", len(unique))
	}
}

func TestDedupe_CaseInsensitiveFirstWins(t *testing.T) {
	share := 50.0
	shareholders := []model.Shareholder{
		{Name: "Max Mustermann", Source: "table"},
		{Name: "max mustermann", Source: "regex:name_only", SharePercent: &share},
	}

	unique := Dedupe(shareholders)
	if len(unique) != 1 {
		t.Fatalf("expected 1 unique entry, got %d", len(unique))
	}
	// First occurrence wins; the later duplicate's share is discarded,
	// not merged.
	if unique[0].Name != "Max Mustermann" || unique[0].Source != "table" {
		t.Errorf("expected first occurrence to win, got %+v", unique[0])
	}
	if unique[0].SharePercent != nil {
		t.Error("expected no attribute merging from the discarded duplicate")
	}
}

func TestDedupe_Empty(t *testing.T) {
	if got := Dedupe(nil); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}
