package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/ptil/config"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "en", cfg.DefaultLanguage)
	assert.Contains(t, cfg.Languages, "en")
	assert.Contains(t, cfg.Languages, "es")
}

func TestValidateRejectsMissingDefaultLanguage(t *testing.T) {
	cfg := config.Default()
	cfg.DefaultLanguage = "zz"
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsUnknownFormat(t *testing.T) {
	cfg := config.Default()
	cfg.DefaultFormat = "xml"
	assert.Error(t, cfg.Validate())
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ptil.yaml")
	content := []byte(`
default_language: fr
default_format: compact
languages:
  fr:
    parser_model: rule
    pool_size: 2
training:
  format_type: mixed
  csc_weight: 3
  original_weight: 1
  separator: "|"
  include_brackets: false
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "fr", cfg.DefaultLanguage)
	assert.Equal(t, "compact", cfg.DefaultFormat)
	assert.Equal(t, 2, cfg.Languages["fr"].PoolSize)
	assert.Equal(t, "|", cfg.Training.Separator)
}

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestSafeConfigGetUpdate(t *testing.T) {
	sc := config.NewSafeConfig(nil)
	got := sc.Get()
	require.NoError(t, got.Validate())

	updated := config.Default()
	updated.DefaultFormat = config.FormatUltra
	require.NoError(t, sc.Update(updated))

	assert.Equal(t, config.FormatUltra, sc.Get().DefaultFormat)
}

func TestSafeConfigUpdateRejectsInvalid(t *testing.T) {
	sc := config.NewSafeConfig(nil)
	bad := config.Default()
	bad.Languages = nil
	assert.Error(t, sc.Update(bad))
	assert.Equal(t, "en", sc.Get().DefaultLanguage)
}
