// Package log is the elaborator pipeline's diagnostic logger, adapted from
// the teacher's logger package: a minimal leveled-logger interface an
// injectable sink implements, never used for control flow. A Logger is
// threaded through elaborate.Config explicitly (no package-level global),
// matching the rest of this module's constructor-injection style.
package log

import (
	"fmt"
	"io"
	"os"
)

// Logger records elaborator diagnostics: Elaborate logs the start of each
// operation and, when it ends with problems, their count. It never
// influences compilation outcome.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

type writerLogger struct{ out io.Writer }

// New creates a Logger that writes to stdout.
func New() Logger { return &writerLogger{os.Stdout} }

// NewTo creates a Logger that writes to an arbitrary writer, for tests
// that want to assert on log output.
func NewTo(w io.Writer) Logger { return &writerLogger{w} }

func (l *writerLogger) print(level, format string, args ...interface{}) {
	fmt.Fprintf(l.out, "[%s] %s\n", level, fmt.Sprintf(format, args...))
}

func (l *writerLogger) Debugf(format string, args ...interface{}) { l.print("debug", format, args...) }
func (l *writerLogger) Infof(format string, args ...interface{})  { l.print("info", format, args...) }
func (l *writerLogger) Warnf(format string, args ...interface{})  { l.print("warn", format, args...) }
func (l *writerLogger) Errorf(format string, args ...interface{}) { l.print("error", format, args...) }

type noop struct{}

func (noop) Debugf(string, ...interface{}) {}
func (noop) Infof(string, ...interface{})  {}
func (noop) Warnf(string, ...interface{})  {}
func (noop) Errorf(string, ...interface{}) {}

// Noop is a Logger that discards everything, used as the elaborator's
// default when a caller does not supply one.
var Noop Logger = noop{}
