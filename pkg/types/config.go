package types

import "time"

// HTTPConfig holds shared HTTP settings used when fetching datasets.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero leaves the client default
	// (no timeout) in place.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "recsys-data/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// LoaderConfig holds settings for the dataset loader.
type LoaderConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// BaseURL replaces the default dataset repository prefix
	// (https://repo.hops.works/dev/jdowling/h-and-m). Empty keeps the default.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty" mapstructure:"base_url"`

	// Token is an optional bearer token for private mirrors.
	Token string `json:"-" yaml:"-" mapstructure:"-"`
}

// ExportFormat selects the file format used when writing tables.
type ExportFormat string

const (
	ExportCSV  ExportFormat = "csv"
	ExportJSON ExportFormat = "json"
)

// ExportConfig holds settings for writing loaded tables to disk.
type ExportConfig struct {
	// OutputDir receives one file per dataset. Empty disables file output.
	OutputDir string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`

	// Format selects the file format: csv or json.
	Format ExportFormat `json:"format" yaml:"format" mapstructure:"format"`

	// SQLitePath, when set, receives every loaded table as a SQL table.
	SQLitePath string `json:"sqlite_path" yaml:"sqlite_path" mapstructure:"sqlite_path"`
}

// Config groups all settings read from recsys-data.yaml.
type Config struct {
	Loader LoaderConfig `json:"loader" yaml:"loader" mapstructure:"loader"`
	Export ExportConfig `json:"export" yaml:"export" mapstructure:"export"`
}
