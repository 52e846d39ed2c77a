package floppy

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess       = 0  // Session or script completed successfully
	ExitGeneralError  = 1  // Unknown or unclassified error
	ExitUsageError    = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic         = 3  // Internal panic (unexpected crash)
	ExitConfigError   = 10 // Invalid configuration or floppy disk image
	ExitCommandFailed = 13 // A scripted terminal command reported an error
)

const (
	// RootDirectory is the name of the distinguished root directory.
	RootDirectory = "root"

	// EditTerminator ends an edit session when entered on its own line.
	EditTerminator = ":wq"

	// SnapshotFileName is the name of the floppy disk image written by save
	// and read by load when no name is given.
	SnapshotFileName = "FloppyDisk.json"

	// WelcomeBanner is the first line of every session and the only line left after clear.
	WelcomeBanner = "Welcome to the terminal. Type help for commands."

	// DefaultDiskDirectory is the host directory acting as the floppy drive.
	DefaultDiskDirectory = "floppy"
)
