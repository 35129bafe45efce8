package ioconfig_test

import (
	"strings"
	"testing"

	"github.com/gnames/dnadb/internal/ioconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDefaultConfig(t *testing.T) {
	assert := assert.New(t)
	t.Setenv("HOME", t.TempDir())

	exists, err := ioconfig.ConfigFileExists()
	require.NoError(t, err)
	assert.False(exists)

	path, err := ioconfig.GenerateDefaultConfig()
	require.NoError(t, err)
	assert.True(strings.HasSuffix(path, "config.yaml"))

	exists, err = ioconfig.ConfigFileExists()
	require.NoError(t, err)
	assert.True(exists)

	// Generated file is valid YAML.
	require.NoError(t, ioconfig.ValidateGeneratedConfig(path))

	// All values are commented out, so loading it keeps defaults.
	res, err := ioconfig.Load(path)
	require.NoError(t, err)
	assert.Equal(10_000, res.Config.Store.BatchSize)
	assert.Equal("kpcofgs", res.Config.Taxonomy.Prefixes)

	// A second run refuses to overwrite.
	_, err = ioconfig.GenerateDefaultConfig()
	assert.Error(err)
}

func TestGetDirs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	configDir, err := ioconfig.GetConfigDir()
	require.NoError(t, err)
	assert.Contains(t, configDir, "dnadb")

	cacheDir, err := ioconfig.GetCacheDir()
	require.NoError(t, err)
	assert.Contains(t, cacheDir, "dnadb")
}
