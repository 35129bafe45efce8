package config_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/gnames/dnadb/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}

	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "dnadb"),
		},
		{
			msg: "cache dir",
			fn:  config.CacheDir,
			res: filepath.Join(tempHome, ".cache", "dnadb"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "dnadb", "logs"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()

	t.Run("creates valid default config", func(t *testing.T) {
		require.NotNil(t, cfg)

		// Store defaults
		assert.Equal(t, 10_000, cfg.Store.BatchSize)

		// Taxonomy defaults
		assert.Equal(t, 7, cfg.Taxonomy.Depth)
		assert.Equal(t, "kpcofgs", cfg.Taxonomy.Prefixes)

		// Log defaults
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "file", cfg.Log.Destination)

		// JobsNumber defaults to CPU count
		assert.Equal(t, runtime.NumCPU(), cfg.JobsNumber)
	})
}

func TestOptionStoreBatchSize(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{
			name:     "sets valid batch size",
			input:    500,
			expected: 500,
		},
		{
			name:     "ignores zero",
			input:    0,
			expected: 10_000, // Should keep default
		},
		{
			name:     "ignores negative",
			input:    -100,
			expected: 10_000, // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptStoreBatchSize(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Store.BatchSize)
		})
	}
}

func TestOptionTaxonomyDepth(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{
			name:     "sets valid depth",
			input:    6,
			expected: 6,
		},
		{
			name:     "ignores zero",
			input:    0,
			expected: 7, // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptTaxonomyDepth(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Taxonomy.Depth)
		})
	}
}

func TestOptionTaxonomyPrefixes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid prefixes",
			input:    "dpcofgs",
			expected: "dpcofgs",
		},
		{
			name:     "lowercases and trims",
			input:    "  DPCOFGS ",
			expected: "dpcofgs",
		},
		{
			name:     "ignores empty string",
			input:    "",
			expected: "kpcofgs", // Should keep default
		},
		{
			name:     "ignores non-letters",
			input:    "kp7ofgs",
			expected: "kpcofgs", // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptTaxonomyPrefixes(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Taxonomy.Prefixes)
		})
	}
}

func TestOptionImportWithHeader(t *testing.T) {
	trueVal := true
	falseVal := false

	tests := []struct {
		name     string
		input    *bool
		expected *bool
	}{
		{
			name:     "sets true",
			input:    &trueVal,
			expected: &trueVal,
		},
		{
			name:     "sets false",
			input:    &falseVal,
			expected: &falseVal,
		},
		{
			name:     "nil keeps autodetect",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptImportWithHeader(tt.input)
			cfg.Update([]config.Option{opt})
			if tt.expected == nil {
				assert.Nil(t, cfg.Import.WithHeader)
			} else {
				require.NotNil(t, cfg.Import.WithHeader)
				assert.Equal(t, *tt.expected, *cfg.Import.WithHeader)
			}
		})
	}
}

func TestOptionLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid level",
			input:    "debug",
			expected: "debug",
		},
		{
			name:     "normalizes case",
			input:    "WARN",
			expected: "warn",
		},
		{
			name:     "rejects unknown level",
			input:    "verbose",
			expected: "info", // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptLogLevel(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Log.Level)
		})
	}
}

func TestOptionLogDestination(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets stdout",
			input:    "stdout",
			expected: "stdout",
		},
		{
			name:     "sets stderr",
			input:    "stderr",
			expected: "stderr",
		},
		{
			name:     "rejects unknown destination",
			input:    "syslog",
			expected: "file", // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptLogDestination(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Log.Destination)
		})
	}
}

func TestMultipleOptions(t *testing.T) {
	t.Run("applies multiple options in order", func(t *testing.T) {
		cfg := config.New()

		opts := []config.Option{
			config.OptStoreBatchSize(500),
			config.OptTaxonomyPrefixes("dpcofgs"),
			config.OptLogLevel("debug"),
			config.OptJobsNumber(16),
		}

		cfg.Update(opts)

		assert.Equal(t, 500, cfg.Store.BatchSize)
		assert.Equal(t, "dpcofgs", cfg.Taxonomy.Prefixes)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, 16, cfg.JobsNumber)

		// Unchanged fields keep defaults
		assert.Equal(t, 7, cfg.Taxonomy.Depth)
		assert.Equal(t, "json", cfg.Log.Format)
	})

	t.Run("later options override earlier ones", func(t *testing.T) {
		cfg := config.New()

		opts := []config.Option{
			config.OptTaxonomyPrefixes("dpcofgs"),
			config.OptTaxonomyPrefixes("kpcofgs"),
		}

		cfg.Update(opts)

		assert.Equal(t, "kpcofgs", cfg.Taxonomy.Prefixes)
	})
}

func TestToOptions(t *testing.T) {
	t.Run("converts config to options correctly", func(t *testing.T) {
		// Create config with custom values
		original := config.New()
		opts := []config.Option{
			config.OptStoreBatchSize(2000),
			config.OptTaxonomyDepth(6),
			config.OptTaxonomyPrefixes("dpcofgs"),
			config.OptLogLevel("debug"),
			config.OptLogFormat("text"),
			config.OptLogDestination("stdout"),
			config.OptJobsNumber(8),
		}
		original.Update(opts)

		// Convert to options and apply to new config
		convertedOpts := original.ToOptions()
		newCfg := config.New()
		newCfg.Update(convertedOpts)

		// Verify persistent fields match
		assert.Equal(t, original.Store.BatchSize, newCfg.Store.BatchSize)
		assert.Equal(t, original.Taxonomy.Depth, newCfg.Taxonomy.Depth)
		assert.Equal(t, original.Taxonomy.Prefixes, newCfg.Taxonomy.Prefixes)
		assert.Equal(t, original.Log.Level, newCfg.Log.Level)
		assert.Equal(t, original.Log.Format, newCfg.Log.Format)
		assert.Equal(t, original.Log.Destination, newCfg.Log.Destination)
		assert.Equal(t, original.JobsNumber, newCfg.JobsNumber)
	})

	t.Run("excludes runtime-only fields", func(t *testing.T) {
		trueVal := true
		cfg := config.New()
		cfg.Update([]config.Option{
			config.OptHomeDir("/custom/home"),
			config.OptImportWithHeader(&trueVal),
		})

		// These fields should not be in ToOptions() output
		opts := cfg.ToOptions()
		newCfg := config.New()
		newCfg.Update(opts)

		// Runtime fields should remain at defaults in newCfg
		assert.Equal(t, "", newCfg.HomeDir)
		assert.Nil(t, newCfg.Import.WithHeader)
	})
}
