// ABOUTME: BMI configuration management
// ABOUTME: Handles default unit system, color preference, and environment overrides

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harper/bmi/internal/models"
)

// Environment variables that override the config file.
const (
	EnvUnit    = "BMI_UNIT"
	EnvNoColor = "NO_COLOR"
)

// ErrUnknownUnit is returned when the configured unit system is not recognized.
var ErrUnknownUnit = errors.New("unknown unit system")

// Config stores bmi configuration.
type Config struct {
	// Unit is the default unit system: "metric" (default) or "imperial".
	Unit string `json:"unit,omitempty"`

	// NoColor disables colored terminal output.
	NoColor bool `json:"no_color,omitempty"`
}

// GetUnit returns the configured unit system, defaulting to metric.
func (c *Config) GetUnit() (models.UnitSystem, error) {
	if c.Unit == "" {
		return models.Metric, nil
	}
	u, err := models.ParseUnitSystem(c.Unit)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownUnit, c.Unit)
	}
	return u, nil
}

// SetUnit validates and stores the default unit system.
func (c *Config) SetUnit(s string) error {
	u, err := models.ParseUnitSystem(s)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownUnit, s)
	}
	c.Unit = string(u)
	return nil
}

// ApplyEnv overrides fields from environment variables.
func (c *Config) ApplyEnv() {
	if u := os.Getenv(EnvUnit); u != "" {
		c.Unit = u
	}
	if _, ok := os.LookupEnv(EnvNoColor); ok {
		c.NoColor = true
	}
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(ExpandPath(configDir), "bmi", "config.json")
}

// Load reads config from disk and applies environment overrides.
// A missing file yields defaults.
func Load() (*Config, error) {
	cfg := &Config{}
	data, err := os.ReadFile(GetConfigPath())
	switch {
	case err == nil:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	case !os.IsNotExist(err):
		return nil, err
	}
	cfg.ApplyEnv()
	return cfg, nil
}

// Save writes config to disk atomically.
func (c *Config) Save() error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return atomicWrite(GetConfigPath(), data)
}

func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil { //nolint:gosec // 0750 is appropriate for user config directory
		return fmt.Errorf("create config directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".config-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(append(data, '\n')); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("rename config: %w", err)
	}
	return nil
}
