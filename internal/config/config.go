package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sprintgm/sprintgm/internal/assets"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// RootFolder is the games directory scanned by default.
	RootFolder string `yaml:"root_folder"`

	// RomExtensions lists the recognized ROM extensions in tie-break
	// precedence order. Leading dots are optional.
	RomExtensions []string `yaml:"rom_extensions"`

	// UseHiddenAttribute additionally prunes entries carrying the
	// platform hidden attribute (Windows); dot-prefixed entries are
	// always pruned.
	UseHiddenAttribute bool `yaml:"use_hidden_attribute"`

	Verbose bool `yaml:"verbose"`
}

// GetDefault returns the default configuration
func GetDefault() *Config {
	return &Config{
		RomExtensions:      append([]string(nil), assets.DefaultRomExtensions...),
		UseHiddenAttribute: true,
	}
}

// Load loads configuration from a file
func Load(configPath string) (*Config, error) {
	// If config doesn't exist, return default config
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return GetDefault(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Save saves configuration to a file
func Save(config *Config, configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	for _, ext := range c.RomExtensions {
		trimmed := strings.TrimPrefix(strings.TrimSpace(ext), ".")
		if trimmed == "" {
			return fmt.Errorf("empty rom extension")
		}
		if strings.ContainsAny(trimmed, `\/.`) {
			return fmt.Errorf("invalid rom extension: %s", ext)
		}
	}

	if c.RootFolder != "" && !filepath.IsAbs(c.RootFolder) {
		return fmt.Errorf("root folder must be absolute: %s", c.RootFolder)
	}

	return nil
}

// GetConfigPath returns the default config path
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	configDir := filepath.Join(homeDir, ".config", "sprintgm")
	return filepath.Join(configDir, "config.yaml"), nil
}

// EnsureConfigExists creates a default config file if it doesn't exist
func EnsureConfigExists() (string, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := Save(GetDefault(), configPath); err != nil {
			return "", err
		}
	}

	return configPath, nil
}
