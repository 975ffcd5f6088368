// Package logging wires the shared logrus configuration for both front
// ends, grounded on lib/utils/cli.go's InitLogger split between CLI and
// daemon logging purposes.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Purpose selects how the logger routes output.
type Purpose int

const (
	// ForCLI discards logs unless verbose/debug is requested, since a CLI's
	// stdout and stderr are often consumed by another program.
	ForCLI Purpose = iota
	// ForTUI always writes to a log file and never to stdout/stderr, since
	// the terminal is owned by the renderer while the alternate screen is
	// active.
	ForTUI
)

// Component is a logrus field key for the subsystem emitting a log line,
// mirroring trace.Component usage in the teacher.
const Component = "component"

// Init configures the standard logrus logger for the given purpose.
//
// logDir is only consulted for ForTUI; an empty logDir discards TUI logs
// rather than risk corrupting the terminal.
func Init(purpose Purpose, level logrus.Level, logDir string) error {
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		DisableColors:   purpose == ForTUI,
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})

	switch purpose {
	case ForCLI:
		if level <= logrus.DebugLevel {
			logrus.SetOutput(os.Stderr)
		} else {
			logrus.SetOutput(io.Discard)
		}
	case ForTUI:
		if logDir == "" {
			logrus.SetOutput(io.Discard)
			return nil
		}
		if err := os.MkdirAll(logDir, 0o700); err != nil {
			return err
		}
		f, err := os.OpenFile(filepath.Join(logDir, "splunk-tui.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			return err
		}
		logrus.SetOutput(f)
	}
	return nil
}

// For returns a component-scoped logger entry.
func For(component string) *logrus.Entry {
	return logrus.WithField(Component, component)
}
