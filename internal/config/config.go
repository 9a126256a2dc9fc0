// Package config loads ecoadvisor settings from YAML and the environment.
//
// Only presentation and logging are configurable. The energy and emission
// factors live in internal/greenops and change only by recompilation.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variable names.
const (
	EnvHome      = "ECOADVISOR_HOME"
	EnvConfig    = "ECOADVISOR_CONFIG"
	EnvLogLevel  = "ECOADVISOR_LOG_LEVEL"
	EnvLogFormat = "ECOADVISOR_LOG_FORMAT"
	EnvColor     = "ECOADVISOR_COLOR"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Report output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

const (
	dirName        = ".ecoadvisor"
	configFileName = "config.yaml"
	logFileName    = "ecoadvisor.log"
)

// Config is the on-disk configuration.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`

	configPath string
}

// OutputConfig controls how reports are rendered.
type OutputConfig struct {
	// Color is auto, always or never.
	Color string `yaml:"color"`
	// Format is the default format of the report command (text or json).
	Format string `yaml:"format"`
}

// New returns a Config with defaults, bound to the default config path.
func New() *Config {
	return &Config{
		Output: OutputConfig{
			Color:  ColorAuto,
			Format: FormatText,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
		configPath: DefaultConfigPath(),
	}
}

// HomeDir returns the ecoadvisor state directory, honoring ECOADVISOR_HOME.
func HomeDir() string {
	if dir := os.Getenv(EnvHome); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return dirName
	}
	return filepath.Join(home, dirName)
}

// DefaultConfigPath returns ECOADVISOR_CONFIG or $HOME/.ecoadvisor/config.yaml.
func DefaultConfigPath() string {
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	return filepath.Join(HomeDir(), configFileName)
}

// ConfigPath returns the path Save writes to.
func (c *Config) ConfigPath() string { return c.configPath }

// SetConfigPath changes the path Save writes to.
func (c *Config) SetConfigPath(p string) { c.configPath = p }

// Load reads path on top of the defaults, then applies environment
// overrides and validates the result. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg, err := LoadUnvalidated(path)
	if err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadUnvalidated is Load without the final Validate. Commands that repair or
// inspect a broken file use it so they still run.
func LoadUnvalidated(path string) (*Config, error) {
	cfg := New()
	if path != "" {
		cfg.configPath = path
	}

	data, err := os.ReadFile(cfg.configPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config file %s: %w", cfg.configPath, err)
	default:
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", cfg.configPath, err)
		}
	}

	cfg.ApplyEnv()
	return cfg, nil
}

// LoadDotEnv loads variables from a .env file in the working directory
// without overriding variables already set. A missing file is ignored.
func LoadDotEnv() error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}
	return nil
}

// ApplyEnv overrides fields from ECOADVISOR_* environment variables.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv(EnvColor); v != "" {
		c.Output.Color = strings.ToLower(v)
	}
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("output.color must be auto, always or never, got %q", c.Output.Color)
	}
	switch c.Output.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("output.format must be text or json, got %q", c.Output.Format)
	}
	return nil
}

// Save writes the config as YAML, creating the parent directory.
func (c *Config) Save() error {
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	if err = os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config file %s: %w", c.configPath, err)
	}
	return nil
}
