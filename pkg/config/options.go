package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptStoreBatchSize sets the number of records buffered per atomic
// write batch during store builds.
func OptStoreBatchSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Batch Size", i) {
			c.Store.BatchSize = i
		}
	}
}

// OptTaxonomyDepth sets the number of ranks kept in labels and
// hierarchies.
func OptTaxonomyDepth(i int) Option {
	return func(c *Config) {
		if isValidInt("Taxonomy Depth", i) {
			c.Taxonomy.Depth = i
		}
	}
}

// OptTaxonomyPrefixes sets the rank-prefix table, one lowercase
// letter per rank.
func OptTaxonomyPrefixes(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidPrefixes(s) {
			c.Taxonomy.Prefixes = s
		}
	}
}

// OptImportWithHeader tells the taxonomy TSV reader whether the
// first row is a header. Nil keeps autodetection.
// Runtime-only field - not in ToOptions().
func OptImportWithHeader(b *bool) Option {
	return func(c *Config) {
		if b != nil {
			c.Import.WithHeader = b
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptJobsNumber sets the number of concurrent workers for parallel operations.
// Default is runtime.NumCPU().
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptHomeDir sets the home directory for config, cache, and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
