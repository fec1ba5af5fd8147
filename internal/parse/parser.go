// Package parse extracts shareholder structures from German
// Gesellschafterliste documents. Table extraction is attempted first;
// a regex pattern cascade over the raw text is the fallback. Every
// result carries a confidence score; callers threshold on it instead
// of handling parse errors.
package parse

import (
	"log"
	"os"
	"strings"

	"github.com/Svenja-dev/gf-screening/internal/model"
)

// Document is an open register document provided by the PDF-reading
// collaborator. Page indexes are zero-based. Implementations return
// empty text for pages without extractable text and no tables for
// pages without a detectable grid.
type Document interface {
	NumPages() int
	PageText(i int) (string, error)
	PageTables(i int) ([][][]string, error)
	Close() error
}

// Opener opens register documents for extraction. Injected so the
// parser can be tested against synthetic pages without a PDF library.
type Opener interface {
	Open(path string) (Document, error)
}

// Result is the outcome of parsing one document. The counts always
// partition Shareholders; Confidence is in [0,1] and is the caller's
// only signal of parse quality — there is no separate failure flag.
type Result struct {
	Shareholders        []model.Shareholder `json:"shareholders"`
	NaturalPersonsCount int                 `json:"natural_persons_count"`
	LegalEntitiesCount  int                 `json:"legal_entities_count"`
	Confidence          float64             `json:"confidence"`
	RawText             string              `json:"raw_text,omitempty"`
}

// Parser extracts shareholder lists from register documents.
// Stateless apart from the injected opener; one Parse call fully
// consumes one file, concurrent calls on independent files are safe.
type Parser struct {
	opener Opener
}

// New creates a Parser reading documents through the given opener.
func New(opener Opener) *Parser {
	return &Parser{opener: opener}
}

// Parse extracts the shareholder structure from the document at path.
//
// Anticipated failures — missing file, corrupt or unreadable document —
// are absorbed into a zero-value Result with confidence 0.0 rather than
// returned as errors: the parser runs unattended over thousands of
// scraped files and a single bad input must never halt the batch.
func (p *Parser) Parse(path string) Result {
	if _, err := os.Stat(path); err != nil {
		log.Printf("parse: document not found: %s", path)
		return Result{}
	}

	doc, err := p.opener.Open(path)
	if err != nil {
		log.Printf("parse: open %s: %v", path, err)
		return Result{}
	}
	defer func() { _ = doc.Close() }()

	// 1. Full document text, page texts joined with newlines.
	texts := make([]string, 0, doc.NumPages())
	for i := 0; i < doc.NumPages(); i++ {
		text, err := doc.PageText(i)
		if err != nil {
			log.Printf("parse: extract text %s page %d: %v", path, i+1, err)
			return Result{}
		}
		texts = append(texts, text)
	}
	fullText := strings.Join(texts, "\n")

	// 2. First attempt: table extraction, pooled over all pages.
	var shareholders []model.Shareholder
	for i := 0; i < doc.NumPages(); i++ {
		tables, err := doc.PageTables(i)
		if err != nil {
			log.Printf("parse: extract tables %s page %d: %v", path, i+1, err)
			return Result{RawText: fullText}
		}
		for _, table := range tables {
			shareholders = append(shareholders, ExtractTable(table)...)
		}
	}

	// 3. Fallback: regex cascade, only when tables yielded nothing
	// document-wide. Table success suppresses the fallback entirely.
	if len(shareholders) == 0 {
		shareholders = ExtractText(fullText)
	}

	// 4. Deduplicate, then classify the survivors.
	shareholders = Dedupe(shareholders)

	natural := 0
	for i := range shareholders {
		shareholders[i].IsNaturalPerson = IsNaturalPerson(shareholders[i].Name)
		if shareholders[i].IsNaturalPerson {
			natural++
		}
	}

	return Result{
		Shareholders:        shareholders,
		NaturalPersonsCount: natural,
		LegalEntitiesCount:  len(shareholders) - natural,
		Confidence:          Confidence(shareholders, fullText),
		RawText:             fullText,
	}
}
