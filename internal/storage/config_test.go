package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, ".locmanconfig.yaml"), []byte(content), 0644)
	require.NoError(t, err)
}

func TestLoadConfig(t *testing.T) {
	t.Run("no .locmanconfig.yaml returns defaults", func(t *testing.T) {
		cfg, err := loadConfig(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, DefaultAutoCreateLanguages, cfg.AutoCreateLanguages)
		assert.Equal(t, DefaultColor, cfg.Color)
		assert.Empty(t, cfg.NeutralCulture)
	})

	t.Run("full .locmanconfig.yaml loads all values", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "auto_create_languages: false\nneutral_culture: en\ncolor: never\n")

		cfg, err := loadConfig(dir)
		require.NoError(t, err)

		assert.False(t, cfg.AutoCreateLanguages)
		assert.Equal(t, "en", cfg.NeutralCulture)
		assert.Equal(t, "never", cfg.Color)
	})

	t.Run("partial .locmanconfig.yaml merges with defaults", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "neutral_culture: en\n")

		cfg, err := loadConfig(dir)
		require.NoError(t, err)

		assert.Equal(t, "en", cfg.NeutralCulture)
		assert.Equal(t, DefaultAutoCreateLanguages, cfg.AutoCreateLanguages) // default
		assert.Equal(t, DefaultColor, cfg.Color)                            // default
	})

	t.Run("environment overrides file values", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "auto_create_languages: true\ncolor: auto\n")
		t.Setenv("LOCMAN_AUTO_CREATE_LANGUAGES", "false")
		t.Setenv("LOCMAN_COLOR", "never")

		cfg, err := loadConfig(dir)
		require.NoError(t, err)

		assert.False(t, cfg.AutoCreateLanguages)
		assert.Equal(t, "never", cfg.Color)
	})

	t.Run("unparseable environment boolean keeps file value", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "auto_create_languages: false\n")
		t.Setenv("LOCMAN_AUTO_CREATE_LANGUAGES", "maybe")

		cfg, err := loadConfig(dir)
		require.NoError(t, err)

		assert.False(t, cfg.AutoCreateLanguages)
	})

	t.Run("invalid YAML returns error with filename", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "color: [invalid yaml\nnot valid\n")

		_, err := loadConfig(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ".locmanconfig.yaml")
	})

	t.Run("empty .locmanconfig.yaml returns defaults", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "")

		cfg, err := loadConfig(dir)
		require.NoError(t, err)

		assert.Equal(t, DefaultAutoCreateLanguages, cfg.AutoCreateLanguages)
		assert.Equal(t, DefaultColor, cfg.Color)
	})
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.True(t, cfg.AutoCreateLanguages)
	assert.True(t, cfg.AutoCreateLanguageFiles())
	assert.Equal(t, "auto", cfg.Color)
	assert.Empty(t, cfg.NeutralCulture)
}
