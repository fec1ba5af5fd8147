// Package importer loads Dealfront exports (CSV or Excel) into the
// pipeline database.
package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Svenja-dev/gf-screening/internal/model"
)

// Column aliases accepted per field. Dealfront exports moved between
// German and English headers over time.
var (
	nameFields     = []string{"firma", "firmenname", "name", "company", "company name"}
	cityFields     = []string{"ort", "stadt", "city", "location"}
	courtFields    = []string{"district court", "registergericht", "gericht", "court"}
	registerFields = []string{"registernummer", "register number", "hrb", "hra"}
	idFields       = []string{"id", "dealfront_id", "company_id"}
)

// CompanyStore persists imported companies.
type CompanyStore interface {
	InsertCompany(ctx context.Context, c *model.Company) (int64, error)
}

// Report summarizes one import run.
type Report struct {
	Imported int
	Skipped  int
}

// Importer reads Dealfront export files into a CompanyStore.
type Importer struct {
	store     CompanyStore
	delimiter rune
}

// New creates an Importer. delimiter is the preferred CSV delimiter;
// when the file does not contain it another one is sniffed.
func New(store CompanyStore, delimiter string) *Importer {
	d := ';'
	if delimiter != "" {
		d = []rune(delimiter)[0]
	}
	return &Importer{store: store, delimiter: d}
}

// ImportFile imports a CSV or Excel file, dispatching on the file
// extension.
func (im *Importer) ImportFile(ctx context.Context, path string) (*Report, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		return im.importExcel(ctx, path)
	default:
		return im.importCSV(ctx, path)
	}
}

func (im *Importer) importCSV(ctx context.Context, path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("importer.ImportFile: %w", err)
	}

	// Dealfront CSV exports start with a UTF-8 BOM.
	data = []byte(strings.TrimPrefix(string(data), "\ufeff"))

	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.Comma = im.sniffDelimiter(data)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("importer.ImportFile header: %w", err)
	}
	columns := headerIndex(header)

	report := &Report{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("importer.ImportFile row: %w", err)
		}
		if err := im.importRow(ctx, columns, record, report); err != nil {
			return nil, err
		}
	}
	return report, nil
}

func (im *Importer) importExcel(ctx context.Context, path string) (*Report, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("importer.ImportFile: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return &Report{}, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("importer.ImportFile sheet: %w", err)
	}
	if len(rows) == 0 {
		return &Report{}, nil
	}

	columns := headerIndex(rows[0])
	report := &Report{}
	for _, record := range rows[1:] {
		if err := im.importRow(ctx, columns, record, report); err != nil {
			return nil, err
		}
	}
	return report, nil
}

// importRow converts one record into a Company and stores it. Rows
// without a company name are counted as skipped.
func (im *Importer) importRow(ctx context.Context, columns map[string]int, record []string, report *Report) error {
	name := field(columns, record, nameFields)
	if name == "" {
		report.Skipped++
		return nil
	}

	city := field(columns, record, cityFields)
	court := field(columns, record, courtFields)
	registerRaw := field(columns, record, registerFields)

	regType, regNum, parsedCourt := ParseRegisterField(registerRaw, city)
	if court == "" {
		court = parsedCourt
	}

	dealfrontID := field(columns, record, idFields)
	if dealfrontID == "" {
		dealfrontID = name
	}

	registerNum := ""
	if regType != "" && regNum != "" {
		registerNum = regType + " " + regNum
	}

	company := &model.Company{
		DealfrontID:  dealfrontID,
		Name:         name,
		City:         city,
		Court:        court,
		RegisterType: regType,
		RegisterNum:  registerNum,
	}
	if _, err := im.store.InsertCompany(ctx, company); err != nil {
		return fmt.Errorf("importer.ImportFile insert %q: %w", name, err)
	}
	report.Imported++
	return nil
}

// sniffDelimiter checks the first KiB for the configured delimiter and
// falls back to comma or tab when it is absent.
func (im *Importer) sniffDelimiter(data []byte) rune {
	sample := string(data)
	if len(sample) > 1024 {
		sample = sample[:1024]
	}
	if strings.ContainsRune(sample, im.delimiter) {
		return im.delimiter
	}
	if strings.ContainsRune(sample, ',') {
		return ','
	}
	return '\t'
}

// headerIndex maps lowercased, trimmed column names to their position.
func headerIndex(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return columns
}

// field returns the first non-empty value among the candidate columns.
func field(columns map[string]int, record []string, candidates []string) string {
	for _, candidate := range candidates {
		idx, ok := columns[candidate]
		if !ok || idx >= len(record) {
			continue
		}
		if v := strings.TrimSpace(record[idx]); v != "" {
			return v
		}
	}
	return ""
}
