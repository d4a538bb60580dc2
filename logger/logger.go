// Package logger configures the structured logger of the rcv command.
package logger

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds logger configuration
type Config struct {
	Level   string    // debug, info, warn, error
	Pretty  bool      // human readable console output
	Console io.Writer // defaults to os.Stderr
	File    io.Writer // optional copy of every entry, as JSON lines
}

// ParseLevel maps a configuration value to a level, info when empty.
func ParseLevel(s string) (zerolog.Level, error) {
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(s)
}

// New creates a new structured logger
func New(cfg Config) zerolog.Logger {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	var console io.Writer = os.Stderr
	if cfg.Console != nil {
		console = cfg.Console
	}
	if cfg.Pretty {
		console = zerolog.ConsoleWriter{
			Out:        console,
			TimeFormat: "15:04:05",
		}
	}

	output := console
	if cfg.File != nil {
		output = zerolog.MultiLevelWriter(console, cfg.File)
	}

	return zerolog.New(output).
		With().
		Timestamp().
		Logger()
}

// OpenFile creates the log file at path, and its directory, truncating any
// previous run.
func OpenFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
}

// SetGlobalLogger sets the package-level logger
func SetGlobalLogger(l zerolog.Logger) {
	log.Logger = l
}
