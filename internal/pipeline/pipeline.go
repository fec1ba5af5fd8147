// Package pipeline orchestrates the screening workflow: import
// Dealfront leads, fetch Gesellschafterlisten, parse them and export
// the qualified companies.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/Svenja-dev/gf-screening/internal/download"
	"github.com/Svenja-dev/gf-screening/internal/export"
	"github.com/Svenja-dev/gf-screening/internal/importer"
	"github.com/Svenja-dev/gf-screening/internal/model"
	"github.com/Svenja-dev/gf-screening/internal/parse"
	"github.com/Svenja-dev/gf-screening/internal/pdfread"
	"github.com/Svenja-dev/gf-screening/internal/retention"
	"github.com/Svenja-dev/gf-screening/internal/store"
	"github.com/Svenja-dev/gf-screening/internal/worker"
)

// Pipeline wires the stages together over a shared store.
type Pipeline struct {
	cfg        *model.Config
	store      *store.Store
	parser     *parse.Parser
	downloader download.Downloader
	limiter    *worker.Limiter
}

// New creates a Pipeline from the configuration, opening the database
// and creating the data directories.
func New(cfg *model.Config) (*Pipeline, error) {
	st, err := store.Open(cfg.Data.DatabasePath, cfg.Qualify)
	if err != nil {
		return nil, err
	}

	for _, dir := range []string{cfg.Data.PDFDir, cfg.Data.OutputDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			st.Close()
			return nil, fmt.Errorf("pipeline: create %s: %w", dir, err)
		}
	}

	return &Pipeline{
		cfg:        cfg,
		store:      st,
		parser:     parse.New(pdfread.NewOpener()),
		downloader: download.NewDirectoryDownloader(cfg.Download.DropDir, cfg.Data.PDFDir),
		limiter:    worker.NewLimiter(cfg.Download.RequestsPerHour),
	}, nil
}

// Store exposes the underlying store for stats queries.
func (p *Pipeline) Store() *store.Store {
	return p.store
}

// Close closes the database connection.
func (p *Pipeline) Close() error {
	return p.store.Close()
}

// Import loads a Dealfront export (CSV or Excel) into the database.
func (p *Pipeline) Import(ctx context.Context, path string) (*importer.Report, error) {
	log.Printf("importing %s", path)

	report, err := importer.New(p.store, p.cfg.Import.Delimiter).ImportFile(ctx, path)
	if err != nil {
		return nil, err
	}
	log.Printf("import done: %d imported, %d skipped", report.Imported, report.Skipped)

	if missing, err := p.store.MissingRegisterCount(ctx); err == nil && missing > 0 {
		log.Printf("warning: %d companies without register number", missing)
	}
	return report, nil
}

// RunDownloads fetches pending Gesellschafterlisten, paced per court.
// limit 0 processes all pending companies.
func (p *Pipeline) RunDownloads(ctx context.Context, limit int) error {
	companies, err := p.store.PendingDownloads(ctx, limit)
	if err != nil {
		return err
	}
	if len(companies) == 0 {
		log.Printf("no pending downloads")
		return nil
	}
	log.Printf("downloading lists for %d companies", len(companies))

	for i := range companies {
		c := &companies[i]

		if err := p.limiter.Wait(ctx, c.Court); err != nil {
			return err
		}

		result, err := p.downloader.Download(ctx, c.RegisterNum, c.Court)
		if err != nil {
			log.Printf("download %s (%s): %v", c.Name, c.RegisterNum, err)
			p.logEvent(ctx, c.ID, "download", "error", err.Error())
			// Mark as attempted so it is not retried forever.
			if err := p.store.MarkDownloaded(ctx, c.ID, ""); err != nil {
				return err
			}
			continue
		}

		if err := p.store.MarkDownloaded(ctx, c.ID, result.PDFPath); err != nil {
			return err
		}
		if result.NoListAvailable {
			p.logEvent(ctx, c.ID, "download", "no_gl", "no shareholder list on file")
		} else {
			p.logEvent(ctx, c.ID, "download", "success", result.PDFPath)
		}
	}

	if stats, err := p.store.Stats(ctx); err == nil {
		log.Printf("download status: %d/%d done, %d without list",
			stats.Downloaded, stats.Total, stats.NoList)
	}
	return nil
}

// ParseReport summarizes one parse run.
type ParseReport struct {
	Parsed    int
	Qualified int
	Errors    int
}

// RunParsing parses pending PDFs concurrently and stores the results.
// limit 0 processes all pending companies.
func (p *Pipeline) RunParsing(ctx context.Context, limit int) (*ParseReport, error) {
	companies, err := p.store.PendingParsing(ctx, limit)
	if err != nil {
		return nil, err
	}
	report := &ParseReport{}
	if len(companies) == 0 {
		log.Printf("no pending PDFs to parse")
		return report, nil
	}
	log.Printf("parsing %d PDFs", len(companies))

	pool := worker.NewPool(p.cfg.Parse.Workers)
	pool.Start()
	for i := range companies {
		pool.Submit(&parseJob{pipeline: p, company: companies[i]})
	}

	for _, res := range pool.Wait() {
		pr := res.(*parseResult)
		if pr.err != nil {
			report.Errors++
			continue
		}
		report.Parsed++
		if pr.qualified {
			report.Qualified++
		}
	}

	log.Printf("parsing done: %d qualified, %d errors", report.Qualified, report.Errors)
	return report, nil
}

// parseJob parses one downloaded PDF and persists the outcome.
type parseJob struct {
	pipeline *Pipeline
	company  model.Company
}

type parseResult struct {
	companyID int64
	qualified bool
	err       error
}

func (r *parseResult) GetError() error { return r.err }

func (j *parseJob) Execute(ctx context.Context) worker.Result {
	p := j.pipeline
	c := j.company

	if c.PDFPath == nil {
		return &parseResult{companyID: c.ID, err: fmt.Errorf("company %d has no PDF path", c.ID)}
	}
	if _, err := os.Stat(*c.PDFPath); err != nil {
		log.Printf("PDF not found: %s", *c.PDFPath)
		return &parseResult{companyID: c.ID, err: err}
	}

	result := p.parser.Parse(*c.PDFPath)

	err := p.store.SaveParsingResult(ctx, c.ID,
		result.NaturalPersonsCount, result.LegalEntitiesCount,
		result.Confidence, result.Shareholders)
	if err != nil {
		log.Printf("saving parse result for %s: %v", c.Name, err)
		p.logEvent(ctx, c.ID, "parse", "error", err.Error())
		return &parseResult{companyID: c.ID, err: err}
	}
	p.logEvent(ctx, c.ID, "parse", "success", "")

	qualified := result.NaturalPersonsCount <= p.cfg.Qualify.MaxNaturalPersons &&
		result.LegalEntitiesCount <= p.cfg.Qualify.MaxLegalEntities
	return &parseResult{companyID: c.ID, qualified: qualified}
}

// Export writes qualified leads to a CSV in the output directory and
// returns the file path and row count. An empty name picks a
// timestamped default.
func (p *Pipeline) Export(ctx context.Context, name string) (string, int, error) {
	if name == "" {
		name = fmt.Sprintf("qualified_leads_%s.csv", time.Now().Format("20060102_150405"))
	}
	path := filepath.Join(p.cfg.Data.OutputDir, name)

	leads, err := p.store.QualifiedLeads(ctx)
	if err != nil {
		return "", 0, err
	}
	count, err := export.WriteFile(path, leads)
	if err != nil {
		return "", 0, err
	}
	log.Printf("exported %d qualified leads to %s", count, path)
	return path, count, nil
}

// Cleanup applies the retention policy to the data directories.
// maxAgeDays 0 deletes everything.
func (p *Pipeline) Cleanup(maxAgeDays int, dryRun bool) retention.Report {
	return retention.Run(p.cfg.Data.PDFDir, p.cfg.Data.OutputDir, p.cfg.Data.DebugDir,
		maxAgeDays, p.cfg.Retention.DebugMaxAgeHours, dryRun)
}

// PrintStats writes the pipeline status block to w.
func (p *Pipeline) PrintStats(ctx context.Context, w io.Writer) error {
	stats, err := p.store.Stats(ctx)
	if err != nil {
		return err
	}

	total := max(stats.Total, 1)
	parsed := max(stats.Parsed, 1)

	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, "GF-Screening Pipeline - Status")
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintf(w, "Companies total:      %6d\n", stats.Total)
	fmt.Fprintf(w, "Downloads done:       %6d (%.1f%%)\n", stats.Downloaded, 100*float64(stats.Downloaded)/float64(total))
	fmt.Fprintf(w, "PDFs parsed:          %6d (%.1f%%)\n", stats.Parsed, 100*float64(stats.Parsed)/float64(total))
	fmt.Fprintf(w, "Qualified leads:      %6d (%.1f%%)\n", stats.Qualified, 100*float64(stats.Qualified)/float64(parsed))
	fmt.Fprintf(w, "Without list:         %6d\n", stats.NoList)
	fmt.Fprintln(w, "==================================================")

	if pending := stats.Total - stats.Downloaded; pending > 0 {
		hours := float64(pending) * 65 / 3600
		fmt.Fprintf(w, "\nEstimated remaining download time: %.1f hours (%.1f days)\n", hours, hours/24)
	}
	return nil
}

func (p *Pipeline) logEvent(ctx context.Context, companyID int64, stage, status, message string) {
	if err := p.store.LogEvent(ctx, companyID, stage, status, message); err != nil {
		log.Printf("logging %s event for company %d: %v", stage, companyID, err)
	}
}
