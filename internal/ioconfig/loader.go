// Package ioconfig provides I/O operations for loading configuration
// from files, environment variables and flags. This is an impure
// package that handles file system and flag operations.
package ioconfig

import (
	"fmt"
	"os"
	"strings"

	"github.com/gnames/dnadb/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// LoadResult contains the loaded configuration and metadata about the source.
type LoadResult struct {
	Config     *config.Config
	SourcePath string // Path to config file used, or empty if using defaults
	Source     string // "file", "defaults", or "defaults+env"
}

// Load reads configuration from a YAML file and returns a validated
// Config with source info. If configPath is empty, the default
// location ~/.config/dnadb/config.yaml is tried.
//
// Precedence: flags > env vars > config file > defaults.
func Load(configPath string) (*LoadResult, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	// Enable environment variable overrides
	v.SetEnvPrefix("DNADB")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults BEFORE reading config - this allows env vars to
	// work with AutomaticEnv() even when no config file exists.
	defaults := config.New()
	v.SetDefault("store.batch_size", defaults.Store.BatchSize)
	v.SetDefault("taxonomy.depth", defaults.Taxonomy.Depth)
	v.SetDefault("taxonomy.prefixes", defaults.Taxonomy.Prefixes)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)
	v.SetDefault("log.destination", defaults.Log.Destination)
	v.SetDefault("jobs_number", defaults.JobsNumber)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		defaultPath, err := GetDefaultConfigPath()
		if err == nil {
			if _, statErr := os.Stat(defaultPath); statErr == nil {
				v.SetConfigFile(defaultPath)
			}
		}
		// If no file exists at the default path, viper falls back to
		// defaults + env vars.
	}

	configFileRead := false
	usedConfigPath := ""

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if configPath != "" {
				// Explicit path that doesn't exist is an error
				return nil, fmt.Errorf("config file not found: %s", configPath)
			}
			// No config file in default locations - defaults + env vars
		} else if os.IsNotExist(err) && configPath == "" {
			// Default-location file vanished between Stat and read
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		configFileRead = true
		usedConfigPath = v.ConfigFileUsed()
	}

	var raw config.Config
	if err := v.Unmarshal(&raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Route loaded values through Option validation so bad fields
	// fall back to defaults with a warning.
	cfg := config.New()
	cfg.Update(raw.ToOptions())

	source := "defaults"
	if configFileRead {
		source = "file"
	} else if hasEnvVars() {
		source = "defaults+env"
	}

	return &LoadResult{
		Config:     cfg,
		SourcePath: usedConfigPath,
		Source:     source,
	}, nil
}

// hasEnvVars checks if any DNADB_* environment variables are set.
func hasEnvVars() bool {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "DNADB_") {
			return true
		}
	}
	return false
}

// BindFlags applies cobra command flags to the config. CLI flags
// take precedence over config file and env var values.
func BindFlags(cmd *cobra.Command, cfg *config.Config) (*config.Config, error) {
	v := viper.New()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	var opts []config.Option
	if v.IsSet("batch-size") {
		opts = append(opts, config.OptStoreBatchSize(v.GetInt("batch-size")))
	}
	if v.IsSet("depth") {
		opts = append(opts, config.OptTaxonomyDepth(v.GetInt("depth")))
	}
	if v.IsSet("prefixes") {
		opts = append(opts, config.OptTaxonomyPrefixes(v.GetString("prefixes")))
	}
	if v.IsSet("log-level") {
		opts = append(opts, config.OptLogLevel(v.GetString("log-level")))
	}
	if v.IsSet("jobs") {
		opts = append(opts, config.OptJobsNumber(v.GetInt("jobs")))
	}
	cfg.Update(opts)

	return cfg, nil
}
