// Package config loads the application configuration from YAML, with
// environment variable overrides for the AI connection.
package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// AIConfig holds the connection settings for the criteria extraction
// service.
type AIConfig struct {
	Host        string `yaml:"host"`
	Model       string `yaml:"model"`
	MaxAttempts int    `yaml:"max_attempts"`
}

// StorageConfig holds the catalog store settings.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// CatalogConfig holds the catalog seeding settings.
type CatalogConfig struct {
	SeedFile string `yaml:"seed_file"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	AI      AIConfig      `yaml:"ai"`
	Storage StorageConfig `yaml:"storage"`
	Catalog CatalogConfig `yaml:"catalog"`
}

// Load reads a config from the specified path. If the file does not
// exist, returns defaults. Environment variables ZOOMETF_AI_HOST and
// ZOOMETF_AI_MODEL override the file in either case.
func Load(path string) (*AppConfig, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(cfg)
	applyEnvOverrides(cfg)
	return cfg, nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		AI: AIConfig{
			Host:        "http://localhost:11434",
			Model:       "llama3:8b",
			MaxAttempts: 3,
		},
		Storage: StorageConfig{Path: "zoometf.db"},
		Catalog: CatalogConfig{SeedFile: "etfs.json"},
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	defaults := defaultConfig()
	if cfg.AI.Host == "" {
		cfg.AI.Host = defaults.AI.Host
	}
	if cfg.AI.Model == "" {
		cfg.AI.Model = defaults.AI.Model
	}
	if cfg.AI.MaxAttempts == 0 {
		cfg.AI.MaxAttempts = defaults.AI.MaxAttempts
	}
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = defaults.Storage.Path
	}
	if cfg.Catalog.SeedFile == "" {
		cfg.Catalog.SeedFile = defaults.Catalog.SeedFile
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	if host := os.Getenv("ZOOMETF_AI_HOST"); host != "" {
		cfg.AI.Host = host
	}
	if model := os.Getenv("ZOOMETF_AI_MODEL"); model != "" {
		cfg.AI.Model = model
	}
}
