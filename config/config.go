// ABOUTME: Configuration management for picker defaults and count policy
// ABOUTME: Handles loading/saving TOML config files with fallback to defaults

// Package config persists picker settings between sessions.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the picker settings saved between sessions. Level bounds
// are kept as the raw input text so invalid text the user was editing at
// quit is preserved verbatim.
type Config struct {
	MinLevel string `toml:"min_level"`
	MaxLevel string `toml:"max_level"`
	Count    int    `toml:"count"`

	// What to do when the requested count exceeds the pool:
	// "lenient" clamps, "strict" rejects.
	CountPolicy string `toml:"count_policy"`

	Difficulties []string `toml:"difficulties"`
	Variants     []int    `toml:"variants"`

	// Version filtering. Only meaningful when an index file exists.
	VersionFilter bool     `toml:"version_filter"`
	Versions      []string `toml:"versions"`
	VersionIndex  string   `toml:"version_index"`
}

// DefaultConfig returns the out-of-the-box settings: the 10.0-10.9
// range, ten picks, every tier and variant on, lenient count handling.
func DefaultConfig() Config {
	return Config{
		MinLevel:     "10.0",
		MaxLevel:     "10.9",
		Count:        10,
		CountPolicy:  "lenient",
		Difficulties: []string{"basic", "advanced", "extreme"},
		Variants:     []int{1, 2},
		VersionIndex: "versions.toml",
	}
}

// GetConfigPath returns the default config file path.
// First tries current directory, then falls back to ~/.config/chartpick/config.toml
func GetConfigPath() string {
	if _, err := os.Stat("./chartpick.toml"); err == nil {
		return "./chartpick.toml"
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "./chartpick.toml"
	}

	return filepath.Join(home, ".config", "chartpick", "config.toml")
}

// LoadConfig loads configuration from a TOML file.
// If the file doesn't exist or fails to load, returns default config.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}

		return DefaultConfig(), fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves configuration to a TOML file.
func SaveConfig(path string, config Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			fmt.Printf("Warning: failed to close config file: %v\n", err)
		}
	}()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
