package floppy

import (
	"errors"
	"strings"
)

// Sentinel errors for the failure classes of a terminal session.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	res := interp.Execute("delete notes.txt")
//	if errors.Is(res.Err, floppy.ErrNotFound) {
//	    // the file was not there
//	}
var (
	// ErrNotFound indicates a directory or file does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a directory or file already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrUnknownCommand indicates the first token of a line is not a known command.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrExecutionFault indicates a file passed to run failed to parse or evaluate.
	ErrExecutionFault = errors.New("execution fault")

	// ErrInvalidSnapshot indicates a floppy disk image failed to decode or validate.
	ErrInvalidSnapshot = errors.New("invalid snapshot")

	// ErrInvalidName indicates a directory or file name that cannot be used as a path segment.
	ErrInvalidName = errors.New("invalid name")

	// ErrUsage indicates a command was issued without its required argument.
	ErrUsage = errors.New("usage error")

	// ErrRunDisabled indicates the run command is switched off by configuration.
	ErrRunDisabled = errors.New("run is disabled")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrCommandFailed indicates at least one scripted command reported an error.
	ErrCommandFailed = errors.New("command failed")
)

// usagePatterns are the messages cobra produces for argument and flag misuse.
var usagePatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"requires at least",
	"required flag",
	"invalid argument",
	"flag needs an argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrInvalidSnapshot):
		return ExitConfigError
	case errors.Is(err, ErrCommandFailed):
		return ExitCommandFailed
	}

	errStr := err.Error()
	for _, p := range usagePatterns {
		if strings.Contains(errStr, p) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
