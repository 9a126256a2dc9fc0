package config

import (
	"os"
	"path/filepath"

	"github.com/rshade/ecoadvisor/internal/logging"
)

// LoggingConfig is the logging section of the config file.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	// File, when set, sends log lines to a file instead of stderr.
	File string `yaml:"file,omitempty"`
}

// DefaultLogFile returns the conventional log path under HomeDir.
func DefaultLogFile() string {
	return filepath.Join(HomeDir(), logFileName)
}

// EnsureLogDir creates the directory of the configured log file.
func EnsureLogDir() error {
	file := GetLoggingConfig().File
	if file == "" {
		file = DefaultLogFile()
	}
	return os.MkdirAll(filepath.Dir(file), 0o750)
}

// ToLoggingConfig converts the config section into a logging.Config.
// A set File selects file output; otherwise logs go to stderr.
func (lc *LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = logging.OutputFile
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}

// GetLoggingConfig returns a copy of the global config's logging section.
// Flag overrides such as --debug are applied by the caller.
func GetLoggingConfig() LoggingConfig {
	return GetGlobalConfig().Logging
}
