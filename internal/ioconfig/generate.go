package ioconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gnames/dnadb/pkg/config"
	"gopkg.in/yaml.v3"
)

// configYAML is the documented default config written by
// GenerateDefaultConfig. All values are commented out, so the file
// documents the defaults without pinning them.
const configYAML = `# dnadb configuration.
#
# Every value below shows its default. Uncomment a line to override.
# Environment variables (DNADB_ prefix) and CLI flags take
# precedence over this file.

store:
  # Number of records buffered per atomic write batch during store
  # builds. Larger batches are faster but use more memory.
  # batch_size: 10000

taxonomy:
  # Number of ranks kept in labels and hierarchies.
  # depth: 7

  # Rank-prefix table, one lowercase letter per rank.
  # "kpcofgs" for kingdom-rooted references, "dpcofgs" for
  # domain-rooted ones such as SILVA.
  # prefixes: kpcofgs

log:
  # Logging level: debug, info, warn, error.
  # level: info

  # Log output format: json, text.
  # format: json

  # Where logs go: file, stderr, stdout.
  # destination: file

# Number of concurrent workers for parallel operations.
# Defaults to the number of CPU threads.
# jobs_number: 8
`

// GetConfigDir returns the configuration directory for dnadb.
// Uses ~/.config/dnadb/ on all platforms for consistency.
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return config.ConfigDir(homeDir), nil
}

// GetCacheDir returns the cache directory for dnadb.
// Uses ~/.cache/dnadb/ on all platforms for consistency.
func GetCacheDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return config.CacheDir(homeDir), nil
}

// GetDefaultConfigPath returns the full path to the default config file.
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.yaml"), nil
}

// GenerateDefaultConfig creates a documented default config file at
// the default location. Returns the config path, or an error if the
// file already exists.
func GenerateDefaultConfig() (string, error) {
	configPath, err := GetDefaultConfigPath()
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(configPath); err == nil {
		return "", fmt.Errorf("config file already exists at %s", configPath)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(configYAML), 0644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return configPath, nil
}

// ConfigFileExists checks if a config file exists at the default location.
func ConfigFileExists() (bool, error) {
	configPath, err := GetDefaultConfigPath()
	if err != nil {
		return false, err
	}

	_, err = os.Stat(configPath)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// ValidateGeneratedConfig reads and parses a generated config file.
// Used for testing to ensure generated YAML is valid.
func ValidateGeneratedConfig(configPath string) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("invalid YAML: %w", err)
	}

	return nil
}
