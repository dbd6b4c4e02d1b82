package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/lunarok/pokedex-cli/internal/api"
	"github.com/lunarok/pokedex-cli/internal/catalog"
)

// Config holds CLI configuration stored at ~/.pokedex/config. Every field
// is optional; the API is unauthenticated, so a missing file just means
// defaults.
type Config struct {
	BaseURL        string `yaml:"base_url,omitempty"`
	Limit          int    `yaml:"limit,omitempty"`
	TimeoutSeconds int    `yaml:"timeout_seconds,omitempty"`
	PartialLoad    bool   `yaml:"partial_load,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		BaseURL:        api.DefaultBaseURL,
		Limit:          catalog.DefaultLimit,
		TimeoutSeconds: 30,
	}
}

// Path returns the config file path.
func Path() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".pokedex", "config")
}

// Load reads the config file, falling back to defaults when it is absent.
func Load() (*Config, error) {
	return loadFrom(Path())
}

func loadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = api.DefaultBaseURL
	}
	if cfg.Limit < 1 {
		cfg.Limit = catalog.DefaultLimit
	}
	if cfg.TimeoutSeconds < 1 {
		cfg.TimeoutSeconds = 30
	}
	return cfg, nil
}

// Save writes the config to disk with restrictive permissions.
func (c *Config) Save() error {
	return c.saveTo(Path())
}

func (c *Config) saveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}
