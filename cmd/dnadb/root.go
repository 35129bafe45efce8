package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gnames/dnadb/internal/ioconfig"
	"github.com/gnames/dnadb/pkg/config"
	"github.com/gnames/dnadb/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dnadb",
		Short: "dnadb manages sequence and taxonomy stores",
		Long: `dnadb builds embedded key-value stores out of FASTA, FASTQ and
taxonomy TSV files and answers queries against them.

The tool provides four groups of operations:
  - import:  build a store from a sequence or taxonomy file
  - export:  dump a taxonomy store into a SQLite file
  - inspect: print summary statistics of a taxonomy store
  - reduce:  rewrite labels to their known taxonomic prefix

Configuration precedence (highest to lowest):
  1. CLI flags (--batch-size, --prefixes, etc.)
  2. Environment variables (DNADB_*)
  3. Config file (~/.config/dnadb/config.yaml)
  4. Built-in defaults

Environment Variables:
  All configuration can be set via DNADB_* environment variables.
  Nested fields use underscores (store.batch_size → DNADB_STORE_BATCH_SIZE).

  Examples:
    DNADB_STORE_BATCH_SIZE          Write batch size for store builds
    DNADB_TAXONOMY_DEPTH            Number of ranks in labels
    DNADB_TAXONOMY_PREFIXES         Rank prefix table (kpcofgs, dpcofgs)
    DNADB_LOG_LEVEL                 Log level (debug/info/warn/error)

  See 'go doc github.com/gnames/dnadb/pkg/config' for complete list.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Auto-generate config file on first run if it doesn't exist
			if cfgFile == "" {
				exists, err := ioconfig.ConfigFileExists()
				if err != nil {
					return fmt.Errorf("failed to check config file: %w", err)
				}

				if !exists {
					generatedPath, err := ioconfig.GenerateDefaultConfig()
					if err != nil {
						// Only warn, don't fail - can use defaults
						fmt.Printf("Warning: could not generate config file: %v\n", err)
					} else {
						fmt.Printf("Generated default config at: %s\n", generatedPath)
					}
				}
			}

			result, err := ioconfig.Load(cfgFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			cfg = result.Config

			if homeDir, err := os.UserHomeDir(); err == nil {
				cfg.Update([]config.Option{config.OptHomeDir(homeDir)})
			}

			if _, err := ioconfig.BindFlags(cmd, cfg); err != nil {
				return err
			}

			slog.SetDefault(newLogger(cfg))
			return nil
		},
	}

	// Persistent flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ~/.config/dnadb/config.yaml)")
	rootCmd.PersistentFlags().Int("batch-size", 0,
		"records per write batch during store builds")
	rootCmd.PersistentFlags().Int("jobs", 0,
		"number of concurrent workers")
	rootCmd.PersistentFlags().String("log-level", "",
		"log level (debug/info/warn/error)")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for dnadb")

	rootCmd.AddCommand(getImportCmd())
	rootCmd.AddCommand(getExportCmd())
	rootCmd.AddCommand(getInspectCmd())
	rootCmd.AddCommand(getReduceCmd())

	return rootCmd
}

// getConfig returns the loaded configuration (for use in subcommands)
func getConfig() *config.Config {
	return cfg
}

// newLogger builds the process logger from the config. The "file"
// destination goes to dnadb.log under the user's log directory,
// falling back to STDERR when the file cannot be opened.
func newLogger(cfg *config.Config) *slog.Logger {
	if cfg.Log.Destination != "file" || cfg.HomeDir == "" {
		return logger.New(&cfg.Log)
	}

	logDir := config.LogDir(cfg.HomeDir)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return logger.NewWithWriter(&cfg.Log, os.Stderr)
	}
	path := filepath.Join(logDir, "dnadb.log")
	f, err := os.Create(path)
	if err != nil {
		return logger.NewWithWriter(&cfg.Log, os.Stderr)
	}
	return logger.NewWithWriter(&cfg.Log, f)
}
