// Package export writes qualified leads as semicolon-separated CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/Svenja-dev/gf-screening/internal/model"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row.
var columns = []string{
	"ID",
	"Firma",
	"Ort",
	"Registergericht",
	"Registerart",
	"Registernummer",
	"Anzahl Gesellschafter",
	"Konfidenz",
	"Gesellschafter",
}

// Writer wraps csv.Writer for exporting qualified leads.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes semicolon-separated CSV to w.
func NewWriter(w io.Writer) *Writer {
	cw := csv.NewWriter(w)
	cw.Comma = ';'
	return &Writer{csv: cw}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteLeads converts leads to CSV rows and writes them.
func (w *Writer) WriteLeads(leads []model.QualifiedLead) error {
	for i := range leads {
		if err := w.csv.Write(leadToRow(&leads[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() error {
	w.csv.Flush()
	return w.csv.Error()
}

func leadToRow(lead *model.QualifiedLead) []string {
	return []string{
		strconv.FormatInt(lead.ID, 10),
		lead.Name,
		lead.City,
		lead.Court,
		lead.RegisterType,
		lead.RegisterNum,
		strconv.Itoa(lead.NaturalPersonsCount),
		strconv.FormatFloat(lead.ParsingConfidence, 'f', 2, 64),
		lead.ShareholderNames,
	}
}

// WriteFile writes leads to path, BOM first, and returns the number of
// exported rows.
func WriteFile(path string, leads []model.QualifiedLead) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("export.WriteFile: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(BOM); err != nil {
		return 0, fmt.Errorf("export.WriteFile bom: %w", err)
	}

	w := NewWriter(f)
	if err := w.WriteHeader(); err != nil {
		return 0, fmt.Errorf("export.WriteFile header: %w", err)
	}
	if err := w.WriteLeads(leads); err != nil {
		return 0, fmt.Errorf("export.WriteFile rows: %w", err)
	}
	if err := w.Flush(); err != nil {
		return 0, fmt.Errorf("export.WriteFile flush: %w", err)
	}
	return len(leads), nil
}
