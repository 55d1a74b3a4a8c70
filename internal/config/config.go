// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults; Load(ctx) layers file/env.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DatasetPath points at the delimited risk-assessment dataset file.
	DatasetPath string `koanf:"dataset_path"`

	// MaxScatterPoints caps the scatter projection payload; 0 means unlimited.
	MaxScatterPoints int `koanf:"max_scatter_points"`

	// ExportFilename is the suggested download name for workbook exports.
	ExportFilename string `koanf:"export_filename"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:         "info",
		Addr:             ":9080",
		DatasetPath:      "compas-scores-two-years.csv",
		MaxScatterPoints: 0,
		ExportFilename:   "riskboard-summaries.xlsx",
	}
}
