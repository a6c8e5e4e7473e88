// Package config loads and saves the CLI configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the persisted CLI configuration.
type Config struct {
	// Organization name used for the token endpoint realm.
	Org string `yaml:"org,omitempty"`

	// API domain prefix for non-production cells (e.g. "stage").
	Domain string `yaml:"domain,omitempty"`

	// OAuth client ID; the secret lives in the keyring.
	ClientID string `yaml:"client_id,omitempty"`

	// Project SQL queries run against when no --project is given.
	DefaultProject string `yaml:"default_project,omitempty"`

	// Default output format (text, html, json, yaml).
	Output string `yaml:"output,omitempty"`

	// Default color mode (auto, always, never).
	Color string `yaml:"color,omitempty"`
}

// configPathFunc resolves the default config path; overridable for tests.
var configPathFunc = defaultConfigPath

// SetConfigPathFunc sets the config path function for testing and returns
// the original so it can be restored.
func SetConfigPathFunc(fn func() (string, error)) func() (string, error) {
	orig := configPathFunc
	configPathFunc = fn
	return orig
}

func defaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "polaris-cli", "config.yaml"), nil
}

// DefaultConfigPath returns ~/.config/polaris-cli/config.yaml.
func DefaultConfigPath() (string, error) {
	return configPathFunc()
}

// Load loads config from the default path; a missing file yields an empty
// config, not an error.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return &Config{}, nil
	}
	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}
	return &cfg, nil
}

// Save writes the config to the default path.
func (c *Config) Save() error {
	path, err := DefaultConfigPath()
	if err != nil {
		return err
	}
	return c.SaveToPath(path)
}

// SaveToPath writes the config to a specific path, creating parent
// directories as needed.
func (c *Config) SaveToPath(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// Get returns a settable field by key.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "org":
		return c.Org, nil
	case "domain":
		return c.Domain, nil
	case "client_id":
		return c.ClientID, nil
	case "default_project":
		return c.DefaultProject, nil
	case "output":
		return c.Output, nil
	case "color":
		return c.Color, nil
	default:
		return "", fmt.Errorf("unknown config key %q", key)
	}
}

// Set assigns a settable field by key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "org":
		c.Org = value
	case "domain":
		c.Domain = value
	case "client_id":
		c.ClientID = value
	case "default_project":
		c.DefaultProject = value
	case "output":
		c.Output = value
	case "color":
		c.Color = value
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	return nil
}
