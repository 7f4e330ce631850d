// Package logging configures the diagnostic logger shared by the CLI.
//
// Diagnostics go to stderr so stdout stays reserved for command output.
// Without --verbose only warnings and errors are shown; with it, debug
// records describe what the CLI is doing (settings resolution, dispatch,
// version lookups).
package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// New returns a logger writing text records to w. Timestamps are omitted
// because records are meant for a human watching a single short run.
func New(w io.Writer, verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})
	SetVerbose(logger, verbose)
	return logger
}

// SetVerbose switches the logger between warn and debug level.
func SetVerbose(logger *logrus.Logger, verbose bool) {
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
		return
	}
	logger.SetLevel(logrus.WarnLevel)
}

// Discard returns a logger that drops everything. Tests and library
// callers that do not care about diagnostics use it.
func Discard() *logrus.Logger {
	return New(io.Discard, false)
}
