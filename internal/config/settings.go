package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const DefaultHistoryLimit = 500

// Settings are optional user preferences read from config.yaml.
type Settings struct {
	Editor       string `yaml:"editor"`
	HistoryLimit int    `yaml:"history_limit"`
	Shell        string `yaml:"shell"`
	NoColor      bool   `yaml:"no_color"`
	LogLevel     string `yaml:"log_level"`
	LogFile      string `yaml:"log_file"`
}

// DefaultSettingsPath returns <UserConfigDir>/cmdlist/config.yaml, or "" when
// the platform has no config dir.
func DefaultSettingsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "cmdlist", "config.yaml")
}

// LoadSettings reads a settings file. A missing file yields zero settings.
func LoadSettings(fs afero.Fs, path string) (Settings, error) {
	var s Settings
	if path == "" {
		return s, nil
	}
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("read settings %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse settings %s: %w", path, err)
	}
	switch s.Shell {
	case "", ShellInterp, ShellSystem:
	default:
		return s, fmt.Errorf("parse settings %s: unknown shell %q (want %s or %s)", path, s.Shell, ShellInterp, ShellSystem)
	}
	return s, nil
}
