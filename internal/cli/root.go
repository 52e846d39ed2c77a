package cli

import (
	"os"

	"github.com/spf13/cobra"
)

const asciiLogo = ` ___ _                    
| __| |___ _ __ _ __ _  _ 
| _|| / _ \ '_ \ '_ \ || |
|_| |_\___/ .__/ .__/\_, |
          |_|  |_|   |__/ `

var rootCmd = &cobra.Command{
	Use:   "floppy",
	Short: "A toy terminal with a virtual filesystem and a floppy drive",
	Long: asciiLogo + `

floppy is a small terminal holding an in-memory tree of directories and text
files. Save the tree to a floppy disk image on your real disk and load it back
in a later session.

Run without a subcommand to start an interactive session.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or floppy disk image
  13 - A scripted command reported an error`,
	Args:         cobra.NoArgs,
	RunE:         runShell,
	SilenceUsage: true,
}

var rootFlags struct {
	verbose bool
	config  string
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for floppy")
	rootCmd.PersistentFlags().BoolVarP(&rootFlags.verbose, "verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().StringVar(&rootFlags.config, "config", "", "Path to floppy.yaml (default: ./floppy.yaml)")

	addSessionFlags(rootCmd)
}
