// Package config loads the agentdeck configuration file and environment
// overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Env overrides, applied after the file is read.
const (
	envEngineURL = "AGENTDECK_ENGINE_URL"
	envAPIToken  = "AGENTDECK_API_TOKEN"
)

type Config struct {
	// EngineURL is the base URL of the platform API.
	EngineURL string `yaml:"engine_url"`

	// RequestTimeoutSeconds bounds each engine request.
	RequestTimeoutSeconds int `yaml:"request_timeout_seconds"`

	// Player optionally names the audio player binary to prefer over the
	// built-in detection order.
	Player string `yaml:"player"`

	// APIToken comes from the environment only; it never lives in the file.
	APIToken string `yaml:"-"`

	path string
}

func defaultConfig() *Config {
	return &Config{
		EngineURL:             "http://localhost:8080",
		RequestTimeoutSeconds: 15,
	}
}

// Path returns the config file location, ~/.config/agentdeck/config.yaml.
func Path() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "agentdeck", "config.yaml")
}

// Load reads the config file, creating it with defaults on first run, then
// applies environment overrides.
func Load() (*Config, error) {
	return loadFrom(Path())
}

func loadFrom(path string) (*Config, error) {
	cfg := defaultConfig()
	cfg.path = path

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		if err := cfg.Save(); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if v := os.Getenv(envEngineURL); v != "" {
		cfg.EngineURL = v
	}
	cfg.APIToken = os.Getenv(envAPIToken)

	if cfg.RequestTimeoutSeconds <= 0 {
		cfg.RequestTimeoutSeconds = defaultConfig().RequestTimeoutSeconds
	}
	return cfg, nil
}

// Save writes the config back to its file, creating parent directories.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = Path()
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("config: create dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", c.path, err)
	}
	return nil
}

// Timeout returns the request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}
