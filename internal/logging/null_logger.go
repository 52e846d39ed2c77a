package logging

import "github.com/vvka-141/floppy/pkg/floppy"

var (
	_ floppy.Logger = (*ConsoleLogger)(nil)
	_ floppy.Logger = (*NullLogger)(nil)
)

// NullLogger discards every message. The terminal uses it while the
// full-screen UI owns stderr and no log file was requested.
type NullLogger struct{}

// NewNullLogger creates a new NullLogger.
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (l *NullLogger) Verbose(format string, args ...interface{}) {}

func (l *NullLogger) Info(format string, args ...interface{}) {}

func (l *NullLogger) Error(format string, args ...interface{}) {}
