package model

// Config holds the full gf-screening configuration
type Config struct {
	Data      DataConfig      `mapstructure:"data" yaml:"data"`
	Import    ImportConfig    `mapstructure:"import" yaml:"import"`
	Download  DownloadConfig  `mapstructure:"download" yaml:"download"`
	Parse     ParseConfig     `mapstructure:"parse" yaml:"parse"`
	Qualify   QualifyConfig   `mapstructure:"qualify" yaml:"qualify"`
	Retention RetentionConfig `mapstructure:"retention" yaml:"retention"`
}

// DataConfig holds filesystem locations
type DataConfig struct {
	DatabasePath string `mapstructure:"database_path" yaml:"database_path"`
	PDFDir       string `mapstructure:"pdf_dir" yaml:"pdf_dir"`
	OutputDir    string `mapstructure:"output_dir" yaml:"output_dir"`
	DebugDir     string `mapstructure:"debug_dir" yaml:"debug_dir"`
}

// ImportConfig holds Dealfront import settings
type ImportConfig struct {
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
}

// DownloadConfig holds register download settings
type DownloadConfig struct {
	// DropDir is where the external browser job leaves fetched
	// documents, named <register_num>.pdf (or .tif/.tiff).
	DropDir string `mapstructure:"drop_dir" yaml:"drop_dir"`

	// RequestsPerHour paces portal lookups. The register portal
	// tolerates roughly 60 requests per hour per client.
	RequestsPerHour int `mapstructure:"requests_per_hour" yaml:"requests_per_hour"`
}

// ParseConfig holds parse stage settings
type ParseConfig struct {
	Workers int `mapstructure:"workers" yaml:"workers"`
}

// QualifyConfig holds the lead qualification cutoffs
type QualifyConfig struct {
	MaxNaturalPersons int `mapstructure:"max_natural_persons" yaml:"max_natural_persons"`
	MaxLegalEntities  int `mapstructure:"max_legal_entities" yaml:"max_legal_entities"`
}

// RetentionConfig holds data retention settings (DSGVO Art. 17:
// shareholder lists carry personal data and must not be kept forever)
type RetentionConfig struct {
	MaxAgeDays       int `mapstructure:"max_age_days" yaml:"max_age_days"`
	DebugMaxAgeHours int `mapstructure:"debug_max_age_hours" yaml:"debug_max_age_hours"`
}

// DefaultConfig returns the configuration defaults
func DefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			DatabasePath: "data/gesellschafter.db",
			PDFDir:       "pdfs",
			OutputDir:    "output",
			DebugDir:     "debug",
		},
		Import: ImportConfig{
			Delimiter: ";",
		},
		Download: DownloadConfig{
			DropDir:         "incoming",
			RequestsPerHour: 55,
		},
		Parse: ParseConfig{
			Workers: 4,
		},
		Qualify: QualifyConfig{
			MaxNaturalPersons: 2,
			MaxLegalEntities:  0,
		},
		Retention: RetentionConfig{
			MaxAgeDays:       90,
			DebugMaxAgeHours: 24,
		},
	}
}
