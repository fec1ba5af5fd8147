// Package pdfread adapts github.com/ledongthuc/pdf to the parser's
// document ports. Text comes out page by page in reading order; table
// grids are reconstructed from word positions, since the underlying
// library has no table detection of its own. Both are best effort: a
// page without extractable text yields an empty string, a page without
// a recognizable grid yields no tables, and the parser's regex
// fallback takes over from there.
package pdfread

import (
	"os"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/Svenja-dev/gf-screening/internal/parse"
)

// Opener implements parse.Opener over PDF files on disk.
type Opener struct{}

// NewOpener creates an Opener.
func NewOpener() *Opener {
	return &Opener{}
}

// Open opens the PDF at path. Scanned TIF documents and anything else
// the PDF reader rejects surface as an open error, which the parser
// absorbs into a zero-confidence result.
func (o *Opener) Open(path string) (parse.Document, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, err
	}
	return &document{file: f, reader: r}, nil
}

type document struct {
	file   *os.File
	reader *pdf.Reader
}

func (d *document) NumPages() int {
	return d.reader.NumPage()
}

func (d *document) PageText(i int) (string, error) {
	page := d.reader.Page(i + 1)
	if page.V.IsNull() {
		return "", nil
	}

	rows, err := page.GetTextByRow()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, row := range rows {
		for j, word := range row.Content {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(word.S)
		}
		sb.WriteByte('\n')
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}

func (d *document) PageTables(i int) ([][][]string, error) {
	page := d.reader.Page(i + 1)
	if page.V.IsNull() {
		return nil, nil
	}

	rows, err := page.GetTextByRow()
	if err != nil {
		return nil, err
	}

	grid := gridFromRows(rows)
	if grid == nil {
		return nil, nil
	}
	return [][][]string{grid}, nil
}

func (d *document) Close() error {
	return d.file.Close()
}
