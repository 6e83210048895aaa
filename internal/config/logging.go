package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/rshade/kep/internal/logging"
)

// LoggingConfig is the "logging" section of the configuration file.
type LoggingConfig struct {
	// Level is a zerolog level name; "warn" by default.
	Level string `yaml:"level"`

	// Format is "console" or "json".
	Format string `yaml:"format"`

	// File redirects log output from stderr to an append-only file.
	File string `yaml:"file,omitempty"`
}

// Validate rejects unknown levels and formats.
func (lc *LoggingConfig) Validate() error {
	if lc.Level != "" {
		lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(lc.Level)))
		if err != nil || lvl == zerolog.NoLevel {
			return fmt.Errorf("invalid logging.level %q", lc.Level)
		}
	}

	switch lc.Format {
	case "", logging.FormatConsole, logging.FormatJSON:
	default:
		return fmt.Errorf("invalid logging.format %q (want %q or %q)",
			lc.Format, logging.FormatConsole, logging.FormatJSON)
	}

	return nil
}

// ToLoggingConfig converts LoggingConfig to logging.Config for use with
// the internal/logging package.
//
// The conversion applies these rules:
//   - Level, Format are copied directly
//   - If File is set, Output becomes "file" and File is passed through
//   - If File is empty, Output defaults to "stderr"
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
