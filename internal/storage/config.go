package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

const (
	// userConfigFile is the name of the user configuration file at the
	// workspace root.
	userConfigFile = ".locmanconfig.yaml"

	// Default configuration values
	DefaultAutoCreateLanguages = true
	DefaultColor               = "auto"
)

// Config represents user configuration from .locmanconfig.yaml. The file is
// user-managed and never written by locman. Environment variables override
// file values: LOCMAN_AUTO_CREATE_LANGUAGES, LOCMAN_NEUTRAL_CULTURE and
// LOCMAN_COLOR.
type Config struct {
	// AutoCreateLanguages lets add-language create a missing language file
	// for every entity.
	AutoCreateLanguages bool `yaml:"auto_create_languages"`

	// NeutralCulture, when set, treats suffix-less files as holding this
	// culture instead of the neutral one.
	NeutralCulture string `yaml:"neutral_culture"`

	// Color controls table output: auto, always, or never.
	Color string `yaml:"color"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		AutoCreateLanguages: DefaultAutoCreateLanguages,
		Color:               DefaultColor,
	}
}

// AutoCreateLanguageFiles reports whether a newly added culture should get
// a file for every entity.
func (c *Config) AutoCreateLanguageFiles() bool {
	return c.AutoCreateLanguages
}

// loadConfig reads .locmanconfig.yaml under root if it exists, merging
// partial files over defaults, then applies environment overrides. A .env
// file in the working directory is honored too.
func loadConfig(root string) (*Config, error) {
	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("Loaded environment from .env")
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(filepath.Join(root, userConfigFile))
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", userConfigFile, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read %s: %w", userConfigFile, err)
	}

	cfg.AutoCreateLanguages = getEnvBool("LOCMAN_AUTO_CREATE_LANGUAGES", cfg.AutoCreateLanguages)
	cfg.NeutralCulture = getEnv("LOCMAN_NEUTRAL_CULTURE", cfg.NeutralCulture)
	cfg.Color = getEnv("LOCMAN_COLOR", cfg.Color)

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
