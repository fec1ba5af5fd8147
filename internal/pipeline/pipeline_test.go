package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Svenja-dev/gf-screening/internal/download"
	"github.com/Svenja-dev/gf-screening/internal/model"
	"github.com/Svenja-dev/gf-screening/internal/parse"
	"github.com/Svenja-dev/gf-screening/internal/store"
	"github.com/Svenja-dev/gf-screening/internal/worker"
)

// fakeDocument serves canned page text so parse runs without a PDF
// library.
type fakeDocument struct {
	text   string
	tables [][][]string
}

func (d *fakeDocument) NumPages() int { return 1 }

func (d *fakeDocument) PageText(int) (string, error) { return d.text, nil }

func (d *fakeDocument) PageTables(int) ([][][]string, error) { return d.tables, nil }

func (d *fakeDocument) Close() error { return nil }

type fakeOpener struct {
	doc *fakeDocument
}

func (o *fakeOpener) Open(string) (parse.Document, error) { return o.doc, nil }

func testConfig(t *testing.T) *model.Config {
	t.Helper()
	base := t.TempDir()
	cfg := model.DefaultConfig()
	cfg.Data.DatabasePath = filepath.Join(base, "test.db")
	cfg.Data.PDFDir = filepath.Join(base, "pdfs")
	cfg.Data.OutputDir = filepath.Join(base, "output")
	cfg.Data.DebugDir = filepath.Join(base, "debug")
	cfg.Download.DropDir = filepath.Join(base, "incoming")
	cfg.Parse.Workers = 2
	return cfg
}

func newTestPipeline(t *testing.T, cfg *model.Config, doc *fakeDocument) *Pipeline {
	t.Helper()
	st, err := store.Open(cfg.Data.DatabasePath, cfg.Qualify)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	require.NoError(t, os.MkdirAll(cfg.Data.PDFDir, 0o755))
	require.NoError(t, os.MkdirAll(cfg.Data.OutputDir, 0o755))

	return &Pipeline{
		cfg:        cfg,
		store:      st,
		parser:     parse.New(&fakeOpener{doc: doc}),
		downloader: download.NewDirectoryDownloader(cfg.Download.DropDir, cfg.Data.PDFDir),
		limiter:    worker.NewLimiter(cfg.Download.RequestsPerHour),
	}
}

func insertCompany(t *testing.T, p *Pipeline, name, registerNum, court string) int64 {
	t.Helper()
	id, err := p.store.InsertCompany(context.Background(), &model.Company{
		Name:        name,
		City:        "Berlin",
		Court:       court,
		RegisterNum: registerNum,
	})
	require.NoError(t, err)
	return id
}

func TestImport(t *testing.T) {
	cfg := testConfig(t)
	p := newTestPipeline(t, cfg, &fakeDocument{})

	csvPath := filepath.Join(t.TempDir(), "leads.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(
		"Firma;Ort;Registernummer\nMuster GmbH;Berlin;HRB 12345\n"), 0o644))

	report, err := p.Import(context.Background(), csvPath)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Imported)

	pending, err := p.store.PendingDownloads(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "Muster GmbH", pending[0].Name)
}

func TestRunDownloads(t *testing.T) {
	cfg := testConfig(t)
	p := newTestPipeline(t, cfg, &fakeDocument{})
	ctx := context.Background()

	insertCompany(t, p, "Muster GmbH", "HRB 12345", "Berlin (Charlottenburg)")
	insertCompany(t, p, "Ohne Liste GmbH", "HRB 777", "Hamburg")

	require.NoError(t, os.MkdirAll(cfg.Download.DropDir, 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(cfg.Download.DropDir, "HRB_12345.pdf"), []byte("%PDF-1.4"), 0o644))

	require.NoError(t, p.RunDownloads(ctx, 0))

	// Both companies count as downloaded; only one has a document.
	stats, err := p.store.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Downloaded)
	assert.Equal(t, 1, stats.NoList)

	parsing, err := p.store.PendingParsing(ctx, 0)
	require.NoError(t, err)
	require.Len(t, parsing, 1)
	assert.Equal(t, "Muster GmbH", parsing[0].Name)
}

func TestRunParsing_QualifiesSmallOwnerCircle(t *testing.T) {
	cfg := testConfig(t)
	doc := &fakeDocument{
		text: "Gesellschafterliste\n1. Max Mustermann, geb. 01.01.1980, 50%\n",
		tables: [][][]string{{
			{"Name", "Anteil"},
			{"Max Mustermann", "50%"},
			{"Erika Musterfrau", "50%"},
		}},
	}
	p := newTestPipeline(t, cfg, doc)
	ctx := context.Background()

	id := insertCompany(t, p, "Muster GmbH", "HRB 12345", "Berlin (Charlottenburg)")
	pdfPath := filepath.Join(cfg.Data.PDFDir, "HRB_12345.pdf")
	require.NoError(t, os.WriteFile(pdfPath, []byte("%PDF-1.4"), 0o644))
	require.NoError(t, p.store.MarkDownloaded(ctx, id, pdfPath))

	report, err := p.RunParsing(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Parsed)
	assert.Equal(t, 1, report.Qualified)
	assert.Zero(t, report.Errors)

	shareholders, err := p.store.Shareholders(ctx, id)
	require.NoError(t, err)
	require.Len(t, shareholders, 2)
	assert.True(t, shareholders[0].IsNaturalPerson)
	assert.Equal(t, "table", shareholders[0].Source)
}

func TestRunParsing_LegalEntityDisqualifies(t *testing.T) {
	cfg := testConfig(t)
	doc := &fakeDocument{
		tables: [][][]string{{
			{"Name", "Anteil"},
			{"Alpha Holding GmbH", "100%"},
		}},
	}
	p := newTestPipeline(t, cfg, doc)
	ctx := context.Background()

	id := insertCompany(t, p, "Tochter GmbH", "HRB 99", "Hamburg")
	pdfPath := filepath.Join(cfg.Data.PDFDir, "HRB_99.pdf")
	require.NoError(t, os.WriteFile(pdfPath, []byte("%PDF-1.4"), 0o644))
	require.NoError(t, p.store.MarkDownloaded(ctx, id, pdfPath))

	report, err := p.RunParsing(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Parsed)
	assert.Zero(t, report.Qualified)

	leads, err := p.store.QualifiedLeads(ctx)
	require.NoError(t, err)
	assert.Empty(t, leads)
}

func TestRunParsing_MissingPDFCountsAsError(t *testing.T) {
	cfg := testConfig(t)
	p := newTestPipeline(t, cfg, &fakeDocument{})
	ctx := context.Background()

	id := insertCompany(t, p, "Muster GmbH", "HRB 1", "")
	require.NoError(t, p.store.MarkDownloaded(ctx, id, filepath.Join(cfg.Data.PDFDir, "gone.pdf")))

	report, err := p.RunParsing(ctx, 0)
	require.NoError(t, err)
	assert.Zero(t, report.Parsed)
	assert.Equal(t, 1, report.Errors)
}

func TestExport(t *testing.T) {
	cfg := testConfig(t)
	doc := &fakeDocument{
		tables: [][][]string{{
			{"Name", "Anteil"},
			{"Max Mustermann", "100%"},
		}},
	}
	p := newTestPipeline(t, cfg, doc)
	ctx := context.Background()

	id := insertCompany(t, p, "Muster GmbH", "HRB 12345", "Berlin (Charlottenburg)")
	pdfPath := filepath.Join(cfg.Data.PDFDir, "HRB_12345.pdf")
	require.NoError(t, os.WriteFile(pdfPath, []byte("%PDF-1.4"), 0o644))
	require.NoError(t, p.store.MarkDownloaded(ctx, id, pdfPath))
	_, err := p.RunParsing(ctx, 0)
	require.NoError(t, err)

	path, count, err := p.Export(ctx, "leads.csv")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, filepath.Join(cfg.Data.OutputDir, "leads.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Muster GmbH")
	assert.Contains(t, string(data), "Max Mustermann")
}

func TestExport_DefaultFilename(t *testing.T) {
	cfg := testConfig(t)
	p := newTestPipeline(t, cfg, &fakeDocument{})

	path, count, err := p.Export(context.Background(), "")
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Contains(t, filepath.Base(path), "qualified_leads_")
}

func TestPrintStats(t *testing.T) {
	cfg := testConfig(t)
	p := newTestPipeline(t, cfg, &fakeDocument{})

	insertCompany(t, p, "Muster GmbH", "HRB 1", "")

	var buf bytes.Buffer
	require.NoError(t, p.PrintStats(context.Background(), &buf))
	out := buf.String()
	assert.Contains(t, out, "Companies total:")
	assert.Contains(t, out, "Estimated remaining download time")
}
