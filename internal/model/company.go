package model

import "time"

// Company is one imported lead and its pipeline state.
type Company struct {
	ID           int64  `db:"id" json:"id"`
	DealfrontID  string `db:"dealfront_id" json:"dealfront_id,omitempty"`
	Name         string `db:"name" json:"name"`
	City         string `db:"city" json:"city,omitempty"`
	Court        string `db:"court" json:"court,omitempty"`       // Registergericht
	RegisterType string `db:"register_type" json:"register_type"` // HRB, HRA, ...
	RegisterNum  string `db:"register_num" json:"register_num"`   // full number incl. type

	// Pipeline flags. A company is downloaded once the register lookup
	// was attempted, even when it failed; pdf_path stays empty then.
	ListDownloaded bool    `db:"dk_downloaded" json:"dk_downloaded"`
	PDFParsed      bool    `db:"pdf_parsed" json:"pdf_parsed"`
	PDFPath        *string `db:"pdf_path" json:"pdf_path,omitempty"`

	// Parse outcome, nil until the parse stage ran.
	NaturalPersonsCount *int     `db:"natural_persons_count" json:"natural_persons_count,omitempty"`
	LegalEntitiesCount  *int     `db:"legal_entities_count" json:"legal_entities_count,omitempty"`
	ParsingConfidence   *float64 `db:"parsing_confidence" json:"parsing_confidence,omitempty"`
	IsQualified         *bool    `db:"is_qualified" json:"is_qualified,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at,omitzero"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at,omitzero"`
}
