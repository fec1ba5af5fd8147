package parse

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// fakePage is one synthetic document page.
type fakePage struct {
	text   string
	tables [][][]string
}

// fakeDocument implements Document over synthetic pages.
type fakeDocument struct {
	pages    []fakePage
	textErr  error
	tableErr error
	closed   bool
}

func (d *fakeDocument) NumPages() int { return len(d.pages) }

func (d *fakeDocument) PageText(i int) (string, error) {
	if d.textErr != nil {
		return "", d.textErr
	}
	return d.pages[i].text, nil
}

func (d *fakeDocument) PageTables(i int) ([][][]string, error) {
	if d.tableErr != nil {
		return nil, d.tableErr
	}
	return d.pages[i].tables, nil
}

func (d *fakeDocument) Close() error {
	d.closed = true
	return nil
}

// fakeOpener implements Opener, handing out a prepared document.
type fakeOpener struct {
	doc     *fakeDocument
	openErr error
}

func (o *fakeOpener) Open(path string) (Document, error) {
	if o.openErr != nil {
		return nil, o.openErr
	}
	return o.doc, nil
}

// touch creates an empty file so the existence check passes.
func touch(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "liste.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParse_TableDocument(t *testing.T) {
	doc := &fakeDocument{pages: []fakePage{{
		text: "Gesellschafterliste",
		tables: [][][]string{{
			{"Lfd Nr", "Name", "Anteil %"},
			{"1", "Max Mustermann", "50,00 %"},
			{"2", "Erika Musterfrau", "50,00 %"},
		}},
	}}}
	parser := New(&fakeOpener{doc: doc})

	result := parser.Parse(touch(t))

	if len(result.Shareholders) != 2 {
		t.Fatalf("expected 2 shareholders, got %d", len(result.Shareholders))
	}
	if result.NaturalPersonsCount != 2 || result.LegalEntitiesCount != 0 {
		t.Errorf("expected 2 natural / 0 legal, got %d/%d",
			result.NaturalPersonsCount, result.LegalEntitiesCount)
	}
	if result.Confidence <= 0 {
		t.Errorf("expected positive confidence, got %v", result.Confidence)
	}
	if !doc.closed {
		t.Error("expected document to be closed")
	}
}

func TestParse_RegexFallback(t *testing.T) {
	doc := &fakeDocument{pages: []fakePage{{
		text: "1. Max Mustermann, geb. 01.01.1980\n2. Alpha Holding GmbH\n",
	}}}
	parser := New(&fakeOpener{doc: doc})

	result := parser.Parse(touch(t))

	if result.NaturalPersonsCount != 1 {
		t.Errorf("expected 1 natural person, got %d", result.NaturalPersonsCount)
	}
	if result.LegalEntitiesCount != 1 {
		t.Errorf("expected 1 legal entity, got %d", result.LegalEntitiesCount)
	}

	var names []string
	for _, sh := range result.Shareholders {
		names = append(names, sh.Name)
	}
	want := []string{"Max Mustermann", "Alpha Holding GmbH"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("expected names %v, got %v", want, names)
	}
}

func TestParse_TableSuppressesRegexFallback(t *testing.T) {
	// One table-derived shareholder plus text that would match the
	// regex cascade: the fallback must not run at all.
	doc := &fakeDocument{pages: []fakePage{
		{
			text: "Gesellschafterliste",
			tables: [][][]string{{
				{"Name", "Anteil"},
				{"Max Mustermann", "100,00 %"},
			}},
		},
		{
			text: "Petra Beispiel, Hamburg, *02.02.1970\n1. Karl Probe, geb. 03.03.1960",
		},
	}}
	parser := New(&fakeOpener{doc: doc})

	result := parser.Parse(touch(t))

	if len(result.Shareholders) != 1 {
		t.Fatalf("regex fallback ran despite table success: %v", result.Shareholders)
	}
	if result.Shareholders[0].Source != "table" {
		t.Errorf("unexpected source %q", result.Shareholders[0].Source)
	}
}

func TestParse_MissingFile(t *testing.T) {
	parser := New(&fakeOpener{doc: &fakeDocument{}})

	result := parser.Parse(filepath.Join(t.TempDir(), "does-not-exist.pdf"))

	if len(result.Shareholders) != 0 || result.NaturalPersonsCount != 0 ||
		result.LegalEntitiesCount != 0 || result.Confidence != 0.0 {
		t.Errorf("expected zero-value result for missing file, got %+v", result)
	}
}

func TestParse_OpenErrorAbsorbed(t *testing.T) {
	parser := New(&fakeOpener{openErr: errors.New("not a PDF")})

	result := parser.Parse(touch(t))

	if result.Confidence != 0.0 || len(result.Shareholders) != 0 {
		t.Errorf("expected zero-value result for corrupt document, got %+v", result)
	}
}

func TestParse_ExtractionErrorKeepsPartialText(t *testing.T) {
	doc := &fakeDocument{
		pages:    []fakePage{{text: "Gesellschafterliste"}},
		tableErr: errors.New("damaged xref"),
	}
	parser := New(&fakeOpener{doc: doc})

	result := parser.Parse(touch(t))

	if len(result.Shareholders) != 0 || result.Confidence != 0.0 {
		t.Errorf("expected failed result, got %+v", result)
	}
	// Text extraction completed before the failure, so the raw text
	// survives for debugging.
	if result.RawText != "Gesellschafterliste" {
		t.Errorf("expected partial raw text, got %q", result.RawText)
	}
}

func TestParse_Idempotent(t *testing.T) {
	doc := &fakeDocument{pages: []fakePage{{
		text: "Gesellschafterliste\nMax Mustermann 50,00 %",
	}}}
	opener := &fakeOpener{doc: doc}
	parser := New(opener)
	path := touch(t)

	first := parser.Parse(path)
	second := parser.Parse(path)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical results across runs:\n%+v\n%+v", first, second)
	}
}

func TestParse_EmptyDocument(t *testing.T) {
	parser := New(&fakeOpener{doc: &fakeDocument{}})

	result := parser.Parse(touch(t))

	if len(result.Shareholders) != 0 {
		t.Errorf("expected no shareholders, got %v", result.Shareholders)
	}
	if result.Confidence != 0.0 {
		t.Errorf("expected confidence 0.0, got %v", result.Confidence)
	}
}
