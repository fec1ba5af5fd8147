// Package retention deletes stale data files. Gesellschafterlisten
// carry personal data (names, birth dates), so downloaded documents
// and exports must not be kept beyond the retention period
// (DSGVO Art. 17).
package retention

import (
	"log"
	"os"
	"path/filepath"
	"time"
)

// DefaultMaxAgeDays is the default retention period for downloaded
// documents and exports.
const DefaultMaxAgeDays = 90

// DefaultDebugMaxAgeHours is the retention period for debug
// screenshots. They can show company data on screen and are only
// needed right after a failed run.
const DefaultDebugMaxAgeHours = 24

// Report holds deletion counts per category.
type Report struct {
	PDFs    int `json:"pdfs"`
	Exports int `json:"exports"`
	Debug   int `json:"debug"`
}

// Total returns the overall number of deleted files.
func (r Report) Total() int {
	return r.PDFs + r.Exports + r.Debug
}

// CleanupPDFs deletes downloaded register documents (*.pdf, *.tif,
// *.tiff) older than maxAgeDays. Per-file errors are logged, not
// returned; one unremovable file must not stop the sweep.
func CleanupPDFs(pdfDir string, maxAgeDays int, dryRun bool) int {
	cutoff := time.Now().Add(-time.Duration(maxAgeDays) * 24 * time.Hour)
	deleted := 0
	for _, pattern := range []string{"*.pdf", "*.tif", "*.tiff"} {
		deleted += removeOlderThan(pdfDir, pattern, cutoff, dryRun)
	}
	return deleted
}

// CleanupExports deletes exported CSV files older than maxAgeDays.
func CleanupExports(outputDir string, maxAgeDays int, dryRun bool) int {
	cutoff := time.Now().Add(-time.Duration(maxAgeDays) * 24 * time.Hour)
	return removeOlderThan(outputDir, "*.csv", cutoff, dryRun)
}

// CleanupDebug deletes debug screenshots older than maxAgeHours.
func CleanupDebug(debugDir string, maxAgeHours int, dryRun bool) int {
	cutoff := time.Now().Add(-time.Duration(maxAgeHours) * time.Hour)
	return removeOlderThan(debugDir, "debug_*.png", cutoff, dryRun)
}

// Run sweeps all three data directories and returns the per-category
// deletion counts. With dryRun the files are only counted.
func Run(pdfDir, outputDir, debugDir string, maxAgeDays, debugMaxAgeHours int, dryRun bool) Report {
	return Report{
		PDFs:    CleanupPDFs(pdfDir, maxAgeDays, dryRun),
		Exports: CleanupExports(outputDir, maxAgeDays, dryRun),
		Debug:   CleanupDebug(debugDir, debugMaxAgeHours, dryRun),
	}
}

func removeOlderThan(dir, pattern string, cutoff time.Time, dryRun bool) int {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		// Only possible with a malformed pattern.
		log.Printf("retention: bad pattern %q: %v", pattern, err)
		return 0
	}

	deleted := 0
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil {
			log.Printf("retention: stat %s: %v", filepath.Base(path), err)
			continue
		}
		if !info.ModTime().Before(cutoff) {
			continue
		}
		if dryRun {
			deleted++
			continue
		}
		if err := os.Remove(path); err != nil {
			log.Printf("retention: remove %s: %v", filepath.Base(path), err)
			continue
		}
		deleted++
	}
	return deleted
}
