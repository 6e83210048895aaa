// Package logging configures the zerolog logger used across kep.
//
// kep's stdout belongs to the wrapped command, so every log line goes to stderr
// (or a file) and the default level is quiet enough that normal cache hits and
// misses print nothing at all.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Supported values for Config.Format and Config.Output.
const (
	FormatConsole = "console"
	FormatJSON    = "json"

	OutputStderr = "stderr"
	OutputFile   = "file"
)

// DefaultLevel keeps log output silent unless something is misconfigured.
const DefaultLevel = zerolog.WarnLevel

// Config describes how the logger should be built.
type Config struct {
	// Level is a zerolog level name (trace, debug, info, warn, error, disabled).
	Level string

	// Format is "console" (human readable) or "json".
	Format string

	// Output is "stderr" or "file".
	Output string

	// File is the log file path, used when Output is "file".
	File string

	// Caller adds file:line to each entry.
	Caller bool

	// Stderr overrides the stderr writer. Nil means os.Stderr.
	Stderr io.Writer
}

// LogPathResult is the outcome of building a logger, including where it writes.
type LogPathResult struct {
	Logger zerolog.Logger

	// UsingFile is true when entries go to FilePath.
	UsingFile bool
	FilePath  string

	// FallbackUsed is set when a file was requested but could not be opened,
	// in which case the logger writes to stderr instead.
	FallbackUsed   bool
	FallbackReason string

	file *os.File
}

// Close releases the log file handle, if one was opened.
func (r *LogPathResult) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// ParseLevel converts a level name to a zerolog level.
// Empty or unrecognised names yield DefaultLevel.
func ParseLevel(level string) zerolog.Level {
	if strings.TrimSpace(level) == "" {
		return DefaultLevel
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return DefaultLevel
	}
	return lvl
}

// NewLogger builds a logger from cfg, discarding the path details.
func NewLogger(cfg Config) zerolog.Logger {
	return NewLoggerWithPath(cfg).Logger
}

// NewLoggerWithPath builds a logger from cfg and reports where it writes.
// When the log file cannot be opened the logger falls back to stderr and the
// reason is recorded in the result.
func NewLoggerWithPath(cfg Config) LogPathResult {
	var result LogPathResult

	stderr := cfg.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	var out io.Writer = stderr
	if cfg.Output == OutputFile && cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			result.FallbackUsed = true
			result.FallbackReason = err.Error()
		} else {
			out = f
			result.file = f
			result.UsingFile = true
			result.FilePath = cfg.File
		}
	}

	if cfg.Format != FormatJSON {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
			NoColor:    result.UsingFile,
		}
	}

	ctx := zerolog.New(out).Level(ParseLevel(cfg.Level)).With().Timestamp()
	if cfg.Caller {
		ctx = ctx.Caller()
	}
	result.Logger = ctx.Logger()

	return result
}

// ComponentLogger returns a child logger tagged with the component name.
func ComponentLogger(l zerolog.Logger, component string) zerolog.Logger {
	return l.With().Str("component", component).Logger()
}

// PrintFallbackWarning tells the user the log file could not be used.
func PrintFallbackWarning(w io.Writer, reason string) {
	_, _ = fmt.Fprintf(w, "Warning: could not open log file, logging to stderr: %s\n", reason)
}
