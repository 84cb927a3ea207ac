package util

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"
)

// DefaultLogger writes warnings and errors to stderr. Library packages use it
// when the host does not inject its own logger.
var DefaultLogger = pterm.DefaultLogger.WithWriter(os.Stderr).WithLevel(pterm.LogLevelWarn)

// DiscardLogger drops everything.
var DiscardLogger = pterm.DefaultLogger.WithWriter(io.Discard).WithLevel(pterm.LogLevelDisabled)

var logLevels = map[string]pterm.LogLevel{
	"trace": pterm.LogLevelTrace,
	"debug": pterm.LogLevelDebug,
	"info":  pterm.LogLevelInfo,
	"warn":  pterm.LogLevelWarn,
	"error": pterm.LogLevelError,
	"off":   pterm.LogLevelDisabled,
}

// ParseLogLevel maps a level name to a pterm log level.
func ParseLogLevel(name string) (pterm.LogLevel, error) {
	if lvl, ok := logLevels[strings.ToLower(strings.TrimSpace(name))]; ok {
		return lvl, nil
	}
	return pterm.LogLevelWarn, fmt.Errorf("unknown log level %q (use trace, debug, info, warn, error or off)", name)
}

// NewLogger builds a diagnostic logger writing to w.
func NewLogger(w io.Writer, level string, json bool) (*pterm.Logger, error) {
	lvl, err := ParseLogLevel(level)
	if err != nil {
		return nil, err
	}
	logger := pterm.DefaultLogger.WithWriter(w).WithLevel(lvl)
	if json {
		logger = logger.WithFormatter(pterm.LogFormatterJSON)
	}
	return logger, nil
}
