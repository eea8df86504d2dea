// Package logger provides centralized, leveled logging with a single
// verbosity knob.
//
// Verbosity levels (in increasing order):
//
//	Error < Info < Debug < Trace
//
// The package wraps a logrus logger so call sites stay format-only:
//
//	logger.SetVerbosity(2) // Debug
//	logger.Infof("pricing started")
//	logger.Debugf("d1=%f d2=%f", d1, d2)
package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Level represents a logging verbosity level.
// Higher values mean more verbose logging.
type Level int

const (
	Error Level = iota // Error logs only failures.
	Info               // Info logs high-level progress.
	Debug              // Debug logs intermediate values.
	Trace              // Trace logs very fine-grained details.
)

var std = newLogger(os.Stderr)

func newLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006/01/02 15:04:05",
	})
	l.SetLevel(toLogrus(Info))
	return l
}

func toLogrus(l Level) logrus.Level {
	switch {
	case l <= Error:
		return logrus.ErrorLevel
	case l == Info:
		return logrus.InfoLevel
	case l == Debug:
		return logrus.DebugLevel
	default:
		return logrus.TraceLevel
	}
}

// SetVerbosity sets the global logging verbosity.
// Values below 0 clamp to Error and values above 3 clamp to Trace.
// Typically called once after parsing CLI flags.
func SetVerbosity(v int) {
	std.SetLevel(toLogrus(Level(v)))
}

// Verbosity returns the current verbosity level.
func Verbosity() Level {
	switch std.GetLevel() {
	case logrus.TraceLevel:
		return Trace
	case logrus.DebugLevel:
		return Debug
	case logrus.InfoLevel, logrus.WarnLevel:
		return Info
	default:
		return Error
	}
}

// SetOutput redirects log output, stderr by default.
func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

// Errorf logs an error-level message.
func Errorf(format string, args ...any) {
	std.Errorf(format, args...)
}

// Infof logs an informational message.
func Infof(format string, args ...any) {
	std.Infof(format, args...)
}

// Debugf logs debugging information.
func Debugf(format string, args ...any) {
	std.Debugf(format, args...)
}

// Tracef logs very detailed execution traces.
func Tracef(format string, args ...any) {
	std.Tracef(format, args...)
}
