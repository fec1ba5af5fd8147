package model

import "time"

// Shareholder is one entry extracted from a Gesellschafterliste.
type Shareholder struct {
	ID        int64 `db:"id" json:"id,omitempty"`
	CompanyID int64 `db:"company_id" json:"company_id,omitempty"`

	// Name is the cleaned display string: whitespace-normalized,
	// trailing commas stripped.
	Name string `db:"name" json:"name"`

	// SharePercent is the ownership stake when one could be parsed.
	// Percent values are stored as-is; EUR nominal amounts are stored
	// as the raw amount and interpreted by the caller.
	SharePercent *float64 `db:"share_percent" json:"share_percent,omitempty"`

	// IsNaturalPerson holds the classifier outcome. True until the
	// classifier has run.
	IsNaturalPerson bool `db:"is_natural_person" json:"is_natural_person"`

	// Source records which strategy found the entry: "table" or
	// "regex:<pattern>". Used for confidence scoring and debugging
	// only, never as an authoritative fact.
	Source string `db:"source" json:"source,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at,omitzero"`
}
