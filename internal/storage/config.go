package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const appName = "bhist"

// Config holds bhist user configuration.
type Config struct {
	Theme           string        `yaml:"theme"`
	TimestampLayout string        `yaml:"timestamp_layout"`
	RecentURLs      int           `yaml:"recent_urls"`
	ExportFile      string        `yaml:"export_file"`
	Logging         LoggingConfig `yaml:"logging"`
	path            string
}

// LoggingConfig mirrors logger.Config so the file can set it.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"` // stdout, stderr, file path, or empty for the default
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Theme:           "default",
		TimestampLayout: time.ANSIC,
		RecentURLs:      50,
		ExportFile:      "history.txt",
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfig loads configuration from path, or from the standard config
// directory when path is empty. A missing file yields the defaults, which are
// written back so the user has something to edit.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg := DefaultConfig()
	cfg.path = path

	data, err := os.ReadFile(path) // nolint:gosec
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if serr := cfg.Save(); serr != nil {
				return nil, fmt.Errorf("writing default config: %w", serr)
			}
			return &cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	cfg.path = path

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.TimestampLayout) == "" {
		return ErrEmptyTimestampLayout
	}
	if c.RecentURLs <= 0 {
		return ErrInvalidRecentURLs
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return ErrInvalidLogLevel
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return ErrInvalidLogFormat
	}
	return nil
}

// Path returns the file the config was loaded from.
func (c *Config) Path() string {
	return c.path
}

// Save writes the configuration to disk.
func (c *Config) Save() error {
	if c.path == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			return err
		}
		c.path = p
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	return os.WriteFile(c.path, data, 0o644)
}

// DefaultConfigPath returns the standard location of config.yaml.
func DefaultConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// DataDir returns the directory for log files and other local state.
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home dir: %w", err)
	}

	var dir string
	switch runtime.GOOS {
	case "darwin":
		dir = filepath.Join(home, "Library", "Application Support", appName)
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData != "" {
			dir = filepath.Join(appData, appName)
		} else {
			dir = filepath.Join(home, "."+appName)
		}
	default: // Linux, BSD, etc.
		xdgData := os.Getenv("XDG_DATA_HOME")
		if xdgData != "" {
			dir = filepath.Join(xdgData, appName)
		} else {
			dir = filepath.Join(home, ".local", "share", appName)
		}
	}

	return dir, nil
}

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home dir: %w", err)
	}

	var dir string
	switch runtime.GOOS {
	case "darwin":
		dir = filepath.Join(home, "Library", "Application Support", appName)
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData != "" {
			dir = filepath.Join(appData, appName)
		} else {
			dir = filepath.Join(home, "."+appName)
		}
	default:
		xdgConfig := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfig != "" {
			dir = filepath.Join(xdgConfig, appName)
		} else {
			dir = filepath.Join(home, ".config", appName)
		}
	}

	return dir, nil
}
