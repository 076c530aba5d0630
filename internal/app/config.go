package app

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	BaseURL        string `yaml:"base_url"`
	Nickname       string `yaml:"nickname"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	Theme          string `yaml:"theme"`
	NoColor        bool   `yaml:"no_color"`
}

func DefaultConfig() Config {
	return Config{
		BaseURL:        "http://localhost:8000/api",
		TimeoutSeconds: 30,
		Theme:          "dawn",
	}
}

// LoadConfig reads the yaml config at path. A missing file is not an
// error; defaults apply.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8000/api"
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = 30
	}
	if cfg.Theme == "" {
		cfg.Theme = "dawn"
	}
	return cfg, nil
}

// Overlay applies command-line and environment overrides on top of the
// file-backed values. Precedence is flag, then environment, then file.
func (c Config) Overlay(baseURL, nickname, theme string, noColor bool) Config {
	if baseURL == "" {
		baseURL = os.Getenv("SOLACE_BASE_URL")
	}
	if baseURL != "" {
		c.BaseURL = baseURL
	}
	if nickname == "" {
		nickname = os.Getenv("SOLACE_NICKNAME")
	}
	if nickname != "" {
		c.Nickname = nickname
	}
	if theme == "" {
		theme = os.Getenv("SOLACE_THEME")
	}
	if theme != "" {
		c.Theme = theme
	}
	if noColor || os.Getenv("SOLACE_NO_COLOR") == "1" {
		c.NoColor = true
	}
	return c
}

func SaveConfig(cfg Config, path string) error {
	if path == "" {
		return errors.New("no path provided for config")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func DefaultConfigPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "solace", "config.yml")
}
