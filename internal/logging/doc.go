// Package logging provides concrete implementations of the floppy.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes formatted messages to stderr, or to any io.Writer
//     such as a log file while the full-screen terminal owns the screen
//   - NullLogger: Discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
