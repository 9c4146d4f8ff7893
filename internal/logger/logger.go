// Package logger builds the charmbracelet/log loggers used by the utilx
// command. Library packages never create loggers; they accept one through
// their options.
package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// NewWithConfig creates a logger with custom config. A nil w writes to
// stderr.
func NewWithConfig(w io.Writer, prefix string, level log.Level, showTimestamp bool, fmt log.Formatter) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportTimestamp: showTimestamp,
		Formatter:       fmt,
	})
}

// ParseLevel maps a level name such as "debug" or "warn" to a log.Level.
// An empty name selects info.
func ParseLevel(name string) (log.Level, error) {
	if name == "" {
		return log.InfoLevel, nil
	}
	return log.ParseLevel(name)
}
