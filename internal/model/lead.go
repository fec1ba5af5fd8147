package model

// QualifiedLead is one row of the qualified-leads export: a qualified
// company with its natural person shareholders joined into a single
// display string.
type QualifiedLead struct {
	ID                  int64   `db:"id" json:"id"`
	Name                string  `db:"name" json:"name"`
	City                string  `db:"city" json:"city"`
	Court               string  `db:"court" json:"court"`
	RegisterType        string  `db:"register_type" json:"register_type"`
	RegisterNum         string  `db:"register_num" json:"register_num"`
	NaturalPersonsCount int     `db:"natural_persons_count" json:"natural_persons_count"`
	ParsingConfidence   float64 `db:"parsing_confidence" json:"parsing_confidence"`

	// ShareholderNames is "Name1; Name2; ..." in insertion order.
	ShareholderNames string `db:"shareholder_names" json:"shareholder_names"`
}
