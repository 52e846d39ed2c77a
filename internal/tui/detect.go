package tui

import (
	"os"

	"golang.org/x/term"
)

// Mode represents the interaction mode of the terminal.
type Mode int

const (
	// ModeNonInteractive reads lines from stdin and prints plain output.
	ModeNonInteractive Mode = iota
	// ModeInteractive runs the full-screen terminal.
	ModeInteractive
)

// NonInteractiveEnv forces ModeNonInteractive when set to "1".
const NonInteractiveEnv = "FLOPPY_NON_INTERACTIVE"

// DetectMode determines whether floppy should run the full-screen terminal.
//
// Returns ModeNonInteractive if:
//   - stdin is not a terminal (piped input, CI/CD)
//   - FLOPPY_NON_INTERACTIVE=1 is set
//   - CI is set (common CI/CD convention)
//   - NO_COLOR is set (accessibility/automation indicator)
//
// Returns ModeInteractive otherwise.
func DetectMode() Mode {
	if os.Getenv(NonInteractiveEnv) == "1" {
		return ModeNonInteractive
	}
	if os.Getenv("CI") != "" {
		return ModeNonInteractive
	}
	if os.Getenv("NO_COLOR") != "" {
		return ModeNonInteractive
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return ModeNonInteractive
	}

	// The screen is drawn on stdout.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ModeNonInteractive
	}

	return ModeInteractive
}

// IsInteractive is a convenience function that returns true if running in interactive mode.
func IsInteractive() bool {
	return DetectMode() == ModeInteractive
}
