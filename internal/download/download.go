// Package download fetches Gesellschafterlisten for the parse stage.
//
// The register portal itself is driven by a separate browser job that
// drops fetched documents into a directory, named after the register
// number. DirectoryDownloader picks them up from there, so the
// pipeline stays headless and testable.
package download

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

// Result is the outcome of one register lookup.
type Result struct {
	Success bool
	PDFPath string

	// NoListAvailable is set when the lookup worked but the register
	// has no Gesellschafterliste on file for this company.
	NoListAvailable bool
}

// Downloader fetches the Gesellschafterliste for one register entry.
type Downloader interface {
	Download(ctx context.Context, registerNum, court string) (Result, error)
}

// DirectoryDownloader resolves register numbers against a drop
// directory and copies found documents into the pipeline's PDF
// directory. Lookups are memoized so a rescan of the same register
// number within a run does not hit the filesystem again.
type DirectoryDownloader struct {
	dropDir string
	destDir string
	seen    *cache.Cache
}

// documentExtensions in lookup order. The portal delivers older lists
// as TIF scans.
var documentExtensions = []string{".pdf", ".tif", ".tiff"}

// NewDirectoryDownloader creates a DirectoryDownloader reading from
// dropDir and copying into destDir.
func NewDirectoryDownloader(dropDir, destDir string) *DirectoryDownloader {
	return &DirectoryDownloader{
		dropDir: dropDir,
		destDir: destDir,
		seen:    cache.New(1*time.Hour, 10*time.Minute),
	}
}

// Download looks for a document named after the register number in the
// drop directory. A missing document is not an error: the register has
// no list on file then, and the company is marked accordingly.
func (d *DirectoryDownloader) Download(ctx context.Context, registerNum, court string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if registerNum == "" {
		return Result{}, fmt.Errorf("download: empty register number")
	}

	key := strings.ToLower(registerNum)
	if cached, ok := d.seen.Get(key); ok {
		return cached.(Result), nil
	}

	result, err := d.lookup(registerNum)
	if err != nil {
		return Result{}, err
	}
	d.seen.Set(key, result, cache.DefaultExpiration)
	return result, nil
}

func (d *DirectoryDownloader) lookup(registerNum string) (Result, error) {
	base := SafeFilename(registerNum)

	for _, ext := range documentExtensions {
		src := filepath.Join(d.dropDir, base+ext)
		if _, err := os.Stat(src); err != nil {
			continue
		}

		dest := filepath.Join(d.destDir, base+ext)
		if err := copyFile(src, dest); err != nil {
			return Result{}, fmt.Errorf("download %s: %w", registerNum, err)
		}
		return Result{Success: true, PDFPath: dest}, nil
	}

	return Result{Success: true, NoListAvailable: true}, nil
}

// SafeFilename turns a register number into a filesystem-safe base
// name: "HRB 12345 B" becomes "HRB_12345_B".
func SafeFilename(registerNum string) string {
	s := strings.ReplaceAll(registerNum, " ", "_")
	return strings.ReplaceAll(s, "/", "-")
}

func copyFile(src, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
