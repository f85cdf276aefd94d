package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/numberfield/pkg/config"
	"github.com/dmitrymomot/numberfield/pkg/numberfield"
)

type precisionConfig struct {
	Locale    string `env:"TEST_CFG_LOCALE" envDefault:"en"`
	Precision int    `env:"TEST_CFG_PRECISION" envDefault:"2"`
	Grouping  bool   `env:"TEST_CFG_GROUPING" envDefault:"true"`
}

type cachedConfig struct {
	Locale string `env:"TEST_CFG_CACHED_LOCALE" envDefault:"en"`
}

type boundsConfig struct {
	Max float64 `env:"TEST_CFG_MAX,required"`
}

type envFileConfig struct {
	Locale string `env:"TEST_CFG_FILE_LOCALE"`
	Error  string `env:"TEST_CFG_FILE_ERROR"`
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("TEST_CFG_LOCALE", "de-DE")
	t.Setenv("TEST_CFG_PRECISION", "4")
	t.Setenv("TEST_CFG_GROUPING", "false")
	config.ResetCache()

	var cfg precisionConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "de-DE", cfg.Locale)
	assert.Equal(t, 4, cfg.Precision)
	assert.False(t, cfg.Grouping)
}

func TestLoad_Defaults(t *testing.T) {
	config.ResetCache()

	var cfg precisionConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, 2, cfg.Precision)
	assert.True(t, cfg.Grouping)
}

func TestLoad_Cached(t *testing.T) {
	config.ResetCache()
	t.Setenv("TEST_CFG_CACHED_LOCALE", "it")

	var first cachedConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("TEST_CFG_CACHED_LOCALE", "fr")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "it", second.Locale)

	var reloaded cachedConfig
	require.NoError(t, config.ForceReload(&reloaded))
	assert.Equal(t, "fr", reloaded.Locale)
}

func TestLoad_MissingRequired(t *testing.T) {
	config.ResetCache()

	var cfg boundsConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)

	assert.Panics(t, func() {
		var cfg boundsConfig
		config.MustLoad(&cfg)
	})

	t.Setenv("TEST_CFG_MAX", "999.9")
	require.NoError(t, config.Load(&cfg), "failed loads are not cached")
	assert.Equal(t, 999.9, cfg.Max)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *precisionConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestLoad_NumberFieldSettings(t *testing.T) {
	config.ResetCache()
	t.Setenv("NUMBERFIELD_LOCALE", "de")
	t.Setenv("NUMBERFIELD_DECIMAL_PRECISION", "3")

	var settings numberfield.Settings
	require.NoError(t, config.Load(&settings))

	cfg := settings.Config()
	assert.Equal(t, ',', cfg.DecimalSeparator)
	assert.Equal(t, 3, cfg.DecimalPrecision)
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.env")
	override := filepath.Join(dir, "override.env")
	require.NoError(t, os.WriteFile(base, []byte("TEST_CFG_FILE_LOCALE=de\nTEST_CFG_FILE_ERROR=\"Invalid number\"\n"), 0o600))
	require.NoError(t, os.WriteFile(override, []byte("TEST_CFG_FILE_LOCALE=it\n"), 0o600))

	// Registered so t restores the variables after the test.
	t.Setenv("TEST_CFG_FILE_LOCALE", "")
	t.Setenv("TEST_CFG_FILE_ERROR", "")
	config.ResetCache()

	require.NoError(t, config.LoadEnv(base, override))

	var cfg envFileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "it", cfg.Locale)
	assert.Equal(t, "Invalid number", cfg.Error)

	err := config.LoadEnv(filepath.Join(dir, "missing.env"))
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	assert.Panics(t, func() { config.MustLoadEnv(filepath.Join(dir, "missing.env")) })
	assert.NotPanics(t, func() { config.MustLoadEnv(base) })
}
