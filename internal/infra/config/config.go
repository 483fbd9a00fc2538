// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// ConfigFileName is the name of the configuration file.
const ConfigFileName = "config.toml"

// Duration wraps time.Duration so TOML values can be written as "3s".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config is the full client configuration.
type Config struct {
	Server ServerConfig `toml:"server"`
	Push   PushConfig   `toml:"push"`
	Prune  PruneConfig  `toml:"prune"`
	Log    LogConfig    `toml:"log"`
}

// ServerConfig locates the task service.
type ServerConfig struct {
	BaseURL string `toml:"base_url"`
}

// PushConfig controls the WebSocket update listener.
type PushConfig struct {
	InitialBackoff Duration `toml:"initial_backoff"`
	MaxBackoff     Duration `toml:"max_backoff"`
	Enabled        bool     `toml:"enabled"`
}

// PruneConfig controls automatic removal of completed tasks from view.
type PruneConfig struct {
	Delay   Duration `toml:"delay"`
	Enabled bool     `toml:"enabled"`
}

// LogConfig controls the log file output.
type LogConfig struct {
	Level string `toml:"level"`
}

// NewDefaultConfig returns the built-in defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{BaseURL: "http://localhost:8000"},
		Push: PushConfig{
			Enabled:        true,
			InitialBackoff: Duration{time.Second},
			MaxBackoff:     Duration{30 * time.Second},
		},
		Prune: PruneConfig{
			Enabled: true,
			Delay:   Duration{3 * time.Second},
		},
		Log: LogConfig{Level: "info"},
	}
}

// Loader loads configuration from the user's config directory.
type Loader struct {
	confDir string
}

// NewLoader creates a Loader rooted at the default config directory.
func NewLoader() *Loader {
	return &Loader{confDir: DefaultConfigDir()}
}

// NewLoaderWithDir creates a Loader with a custom config directory.
// This is useful for testing.
func NewLoaderWithDir(confDir string) *Loader {
	return &Loader{confDir: confDir}
}

// DefaultConfigDir returns the XDG config directory for taskdeck.
func DefaultConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "taskdeck")
}

// Dir returns the loader's config directory.
func (l *Loader) Dir() string { return l.confDir }

// Load returns the configuration merged over the defaults. A missing
// file is not an error; the defaults apply. The TASKDECK_SERVER_URL
// environment variable overrides the configured base URL.
func (l *Loader) Load() (*Config, error) {
	cfg := NewDefaultConfig()

	if l.confDir != "" {
		raw, err := os.ReadFile(filepath.Join(l.confDir, ConfigFileName))
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := toml.Unmarshal(raw, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	if env := os.Getenv("TASKDECK_SERVER_URL"); env != "" {
		cfg.Server.BaseURL = env
	}
	return cfg, nil
}

// Save writes the configuration to the loader's directory, creating it
// if needed.
func (l *Loader) Save(cfg *Config) error {
	if l.confDir == "" {
		return errors.New("no config directory available")
	}
	if err := os.MkdirAll(l.confDir, 0o750); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	raw, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(filepath.Join(l.confDir, ConfigFileName), raw, 0o600)
}
