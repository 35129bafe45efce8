// Package config provides configuration management for dnadb.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Store: batch_size
//   - Taxonomy: depth, prefixes
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - Import.WithHeader (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use DNADB_ prefix with underscores for nesting:
//
//	DNADB_STORE_BATCH_SIZE=10000
//	DNADB_TAXONOMY_PREFIXES=dpcofgs
//	DNADB_LOG_LEVEL=info
//	DNADB_JOBS_NUMBER=8
package config

import (
	"runtime"
)

// Config represents the complete dnadb configuration.
type Config struct {
	// Store contains settings of the embedded sequence stores.
	Store StoreConfig `mapstructure:"store" yaml:"store"`

	// Taxonomy contains the rank scheme of taxonomic labels.
	Taxonomy TaxonomyConfig `mapstructure:"taxonomy" yaml:"taxonomy"`

	// Import contains settings specific to the import commands.
	Import ImportConfig `mapstructure:"import" yaml:"import"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers for parallel operations.
	// Default value is set according to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// StoreConfig contains settings of the embedded sequence stores.
type StoreConfig struct {
	// BatchSize defines the number of records buffered per atomic
	// write batch while a store is built. Larger batches are faster
	// but use more memory.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`
}

// TaxonomyConfig contains the rank scheme of taxonomic labels.
type TaxonomyConfig struct {
	// Depth is the number of ranks kept in labels and hierarchies.
	Depth int `mapstructure:"depth" yaml:"depth"`

	// Prefixes is the rank-prefix table, one lowercase letter per
	// rank. "kpcofgs" for kingdom-rooted references, "dpcofgs" for
	// domain-rooted ones such as SILVA.
	Prefixes string `mapstructure:"prefixes" yaml:"prefixes"`
}

// ImportConfig contains settings specific to the import commands.
type ImportConfig struct {
	// WithHeader tells the taxonomy TSV reader whether the first row
	// is a header. Unset (nil) means autodetect.
	// Runtime-only field, set per command invocation.
	WithHeader *bool `mapstructure:"with_header" yaml:"with_header"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Store: StoreConfig{
			BatchSize: 10_000,
		},
		Taxonomy: TaxonomyConfig{
			Depth:    7,
			Prefixes: "kpcofgs",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}
