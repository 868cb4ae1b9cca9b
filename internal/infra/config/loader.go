// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"tasktide/internal/domain"
)

// ConfigFileName is the name of the config file inside the config dir.
const ConfigFileName = "config.toml"

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from a TOML file.
type Loader struct {
	configDir string
}

// NewLoader creates a new Loader reading from the given directory.
func NewLoader(configDir string) *Loader {
	return &Loader{configDir: configDir}
}

// DefaultConfigDir returns the per-user config directory, honoring
// XDG_CONFIG_HOME.
func DefaultConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "tasktide")
}

// DefaultDataDir returns the per-user data directory, honoring
// XDG_DATA_HOME.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "tasktide")
}

// Default returns the configuration used when no config file exists.
func Default() *domain.Config {
	return &domain.Config{
		Data: domain.DataConfig{Dir: DefaultDataDir()},
		Log:  domain.LogConfig{Level: "info"},
	}
}

// fileConfig is the TOML representation of the config file. All fields
// are optional; anything unset keeps its default.
type fileConfig struct {
	Data struct {
		Dir string `toml:"dir"`
	} `toml:"data"`
	Log struct {
		Level string `toml:"level"`
	} `toml:"log"`
}

// Load returns the configuration. A missing config file is not an
// error; defaults are used.
func (l *Loader) Load() (*domain.Config, error) {
	cfg := Default()

	path := filepath.Join(l.configDir, ConfigFileName)
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var file fileConfig
	if err := toml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	if file.Data.Dir != "" {
		cfg.Data.Dir = file.Data.Dir
	}
	if file.Log.Level != "" {
		cfg.Log.Level = file.Log.Level
	}
	return cfg, nil
}
