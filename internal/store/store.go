// Package store persists pipeline state in a local SQLite database.
package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/Svenja-dev/gf-screening/internal/model"
)

// maxQueryLimit caps the LIMIT clause of pending-work queries.
const maxQueryLimit = 10000

// ErrInvalidLimit is returned when a query limit is negative or
// exceeds maxQueryLimit. A limit of 0 means "no limit".
var ErrInvalidLimit = errors.New("store: invalid query limit")

const schema = `
CREATE TABLE IF NOT EXISTS companies (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	dealfront_id TEXT,
	name TEXT NOT NULL,
	city TEXT,
	court TEXT,
	register_type TEXT,
	register_num TEXT,

	dk_downloaded BOOLEAN DEFAULT FALSE,
	pdf_parsed BOOLEAN DEFAULT FALSE,
	pdf_path TEXT,

	natural_persons_count INTEGER,
	legal_entities_count INTEGER,
	parsing_confidence REAL,
	is_qualified BOOLEAN,

	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,

	UNIQUE(name, register_num)
);

CREATE TABLE IF NOT EXISTS shareholders (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	company_id INTEGER REFERENCES companies(id),
	name TEXT NOT NULL,
	share_percent REAL,
	is_natural_person BOOLEAN,
	source TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS pipeline_log (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	company_id INTEGER REFERENCES companies(id),
	stage TEXT,
	status TEXT,
	message TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_companies_qualified ON companies(is_qualified);
CREATE INDEX IF NOT EXISTS idx_companies_pipeline ON companies(dk_downloaded, pdf_parsed);
CREATE INDEX IF NOT EXISTS idx_shareholders_company ON shareholders(company_id);
`

// Store wraps the SQLite database holding companies, shareholders and
// the pipeline event log.
type Store struct {
	db      *sqlx.DB
	qualify model.QualifyConfig
}

// Open opens (and if needed creates) the database at path and applies
// the schema. The parent directory is created when missing.
func Open(path string, qualify model.QualifyConfig) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("store.Open mkdir: %w", err)
		}
	}

	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("store.Open connect: %w", err)
	}
	// SQLite allows one writer at a time; a second connection would
	// only produce SQLITE_BUSY errors under the worker pool.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store.Open schema: %w", err)
	}

	return &Store{db: db, qualify: qualify}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// InsertCompany inserts a company and returns its ID. Companies with
// the same (name, register_num) pair are deduplicated; the existing
// row's ID is returned then.
func (s *Store) InsertCompany(ctx context.Context, c *model.Company) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO companies
		(dealfront_id, name, city, court, register_type, register_num)
		VALUES (?, ?, ?, ?, ?, ?)`,
		c.DealfrontID, c.Name, c.City, c.Court, c.RegisterType, c.RegisterNum)
	if err != nil {
		return 0, fmt.Errorf("store.InsertCompany: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n > 0 {
		id, err := res.LastInsertId()
		if err != nil {
			return 0, fmt.Errorf("store.InsertCompany id: %w", err)
		}
		return id, nil
	}

	// Duplicate: look up the existing row.
	var id int64
	err = s.db.GetContext(ctx, &id,
		"SELECT id FROM companies WHERE name = ? AND register_num = ?",
		c.Name, c.RegisterNum)
	if err != nil {
		return 0, fmt.Errorf("store.InsertCompany lookup: %w", err)
	}
	return id, nil
}

// PendingDownloads returns companies whose register document has not
// been fetched yet. Companies without a register number are skipped;
// there is nothing to look up for them. limit 0 returns all.
func (s *Store) PendingDownloads(ctx context.Context, limit int) ([]model.Company, error) {
	query := `
		SELECT * FROM companies
		WHERE dk_downloaded = FALSE AND register_num IS NOT NULL AND register_num != ''
		ORDER BY id`
	companies, err := s.selectCompanies(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("store.PendingDownloads: %w", err)
	}
	return companies, nil
}

// PendingParsing returns downloaded companies whose PDF has not been
// parsed yet. limit 0 returns all.
func (s *Store) PendingParsing(ctx context.Context, limit int) ([]model.Company, error) {
	query := `
		SELECT * FROM companies
		WHERE dk_downloaded = TRUE AND pdf_parsed = FALSE AND pdf_path IS NOT NULL
		ORDER BY id`
	companies, err := s.selectCompanies(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("store.PendingParsing: %w", err)
	}
	return companies, nil
}

func (s *Store) selectCompanies(ctx context.Context, query string, limit int) ([]model.Company, error) {
	if limit < 0 || limit > maxQueryLimit {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}

	var companies []model.Company
	var err error
	if limit > 0 {
		err = s.db.SelectContext(ctx, &companies, query+" LIMIT ?", limit)
	} else {
		err = s.db.SelectContext(ctx, &companies, query)
	}
	if err != nil {
		return nil, err
	}
	return companies, nil
}

// MarkDownloaded records a download attempt. pdfPath is empty when the
// portal has no Gesellschafterliste for the company; the company still
// counts as downloaded so it is not retried forever.
func (s *Store) MarkDownloaded(ctx context.Context, companyID int64, pdfPath string) error {
	var path *string
	if pdfPath != "" {
		path = &pdfPath
	}
	_, err := s.db.ExecContext(ctx, `
		UPDATE companies SET
			dk_downloaded = TRUE,
			pdf_path = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`, path, companyID)
	if err != nil {
		return fmt.Errorf("store.MarkDownloaded: %w", err)
	}
	return nil
}

// SaveParsingResult stores the parse outcome and the extracted
// shareholders, and derives the qualification flag from the configured
// cutoffs. Everything happens in one transaction.
func (s *Store) SaveParsingResult(ctx context.Context, companyID int64,
	naturalCount, legalCount int, confidence float64,
	shareholders []model.Shareholder) error {

	qualified := naturalCount <= s.qualify.MaxNaturalPersons &&
		legalCount <= s.qualify.MaxLegalEntities

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store.SaveParsingResult begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		UPDATE companies SET
			pdf_parsed = TRUE,
			natural_persons_count = ?,
			legal_entities_count = ?,
			parsing_confidence = ?,
			is_qualified = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		naturalCount, legalCount, confidence, qualified, companyID)
	if err != nil {
		return fmt.Errorf("store.SaveParsingResult company: %w", err)
	}

	for _, sh := range shareholders {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO shareholders (company_id, name, share_percent, is_natural_person, source)
			VALUES (?, ?, ?, ?, ?)`,
			companyID, sh.Name, sh.SharePercent, sh.IsNaturalPerson, sh.Source)
		if err != nil {
			return fmt.Errorf("store.SaveParsingResult shareholder: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store.SaveParsingResult commit: %w", err)
	}
	return nil
}

// Shareholders returns the stored shareholders of a company.
func (s *Store) Shareholders(ctx context.Context, companyID int64) ([]model.Shareholder, error) {
	var shareholders []model.Shareholder
	err := s.db.SelectContext(ctx, &shareholders,
		"SELECT * FROM shareholders WHERE company_id = ? ORDER BY id", companyID)
	if err != nil {
		return nil, fmt.Errorf("store.Shareholders: %w", err)
	}
	return shareholders, nil
}

// LogEvent appends an entry to the pipeline event log.
func (s *Store) LogEvent(ctx context.Context, companyID int64, stage, status, message string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO pipeline_log (company_id, stage, status, message)
		VALUES (?, ?, ?, ?)`, companyID, stage, status, message)
	if err != nil {
		return fmt.Errorf("store.LogEvent: %w", err)
	}
	return nil
}

// Stats summarizes pipeline progress.
type Stats struct {
	Total      int `db:"total"`
	Downloaded int `db:"downloaded"`
	Parsed     int `db:"parsed"`
	Qualified  int `db:"qualified"`

	// NoList counts companies whose register lookup succeeded but the
	// portal had no Gesellschafterliste on file.
	NoList int `db:"no_list"`
}

const statsQuery = `SELECT
	COUNT(*) AS total,
	COUNT(CASE WHEN dk_downloaded = TRUE THEN 1 END) AS downloaded,
	COUNT(CASE WHEN pdf_parsed = TRUE THEN 1 END) AS parsed,
	COUNT(CASE WHEN is_qualified = TRUE THEN 1 END) AS qualified,
	COUNT(CASE WHEN dk_downloaded = TRUE AND pdf_path IS NULL THEN 1 END) AS no_list
FROM companies`

// Stats returns pipeline counters across all companies.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	var stats Stats
	if err := s.db.GetContext(ctx, &stats, statsQuery); err != nil {
		return nil, fmt.Errorf("store.Stats: %w", err)
	}
	return &stats, nil
}

const qualifiedLeadsQuery = `SELECT
	c.id, c.name, c.city, c.court, c.register_type, c.register_num,
	COALESCE(c.natural_persons_count, 0) AS natural_persons_count,
	COALESCE(c.parsing_confidence, 0) AS parsing_confidence,
	COALESCE(GROUP_CONCAT(s.name, '; '), '') AS shareholder_names
FROM companies c
LEFT JOIN shareholders s ON c.id = s.company_id AND s.is_natural_person = TRUE
WHERE c.is_qualified = TRUE
GROUP BY c.id
ORDER BY c.name`

// QualifiedLeads returns the qualified companies with their natural
// person shareholders joined into one display string.
func (s *Store) QualifiedLeads(ctx context.Context) ([]model.QualifiedLead, error) {
	var leads []model.QualifiedLead
	if err := s.db.SelectContext(ctx, &leads, qualifiedLeadsQuery); err != nil {
		return nil, fmt.Errorf("store.QualifiedLeads: %w", err)
	}
	return leads, nil
}

// MissingRegisterCount counts imported companies without a register
// number. They never enter the download stage.
func (s *Store) MissingRegisterCount(ctx context.Context) (int, error) {
	var n int
	err := s.db.GetContext(ctx, &n,
		"SELECT COUNT(*) FROM companies WHERE register_num IS NULL OR register_num = ''")
	if err != nil {
		return 0, fmt.Errorf("store.MissingRegisterCount: %w", err)
	}
	return n, nil
}
