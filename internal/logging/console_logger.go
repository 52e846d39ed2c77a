package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// ConsoleLogger writes log messages to stderr or a caller-supplied writer.
// Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	verbose bool
	out     io.Writer
	mu      sync.Mutex
}

// NewConsoleLogger creates a new ConsoleLogger writing to stderr.
// If verbose is true, Verbose() calls will produce output.
// If verbose is false, Verbose() calls are no-ops.
func NewConsoleLogger(verbose bool) *ConsoleLogger {
	return &ConsoleLogger{
		verbose: verbose,
	}
}

// NewWriterLogger creates a ConsoleLogger that writes to w instead of stderr.
func NewWriterLogger(w io.Writer, verbose bool) *ConsoleLogger {
	return &ConsoleLogger{
		verbose: verbose,
		out:     w,
	}
}

func (l *ConsoleLogger) writer() io.Writer {
	if l.out != nil {
		return l.out
	}
	return os.Stderr
}

func (l *ConsoleLogger) write(prefix, format string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(args) > 0 {
		fmt.Fprintf(l.writer(), prefix+format+"\n", args...)
	} else {
		fmt.Fprint(l.writer(), prefix+format+"\n")
	}
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.write("[VERBOSE] ", format, args)
}

// Info logs informational messages about normal operations.
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	l.write("", format, args)
}

// Error logs error messages.
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	l.write("[ERROR] ", format, args)
}
