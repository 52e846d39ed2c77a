package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ExclusiveScriptSource rejects command arguments combined with --file.
func ExclusiveScriptSource(cmd *cobra.Command, args []string) error {
	if len(args) > 0 && execFlags.file != "" {
		return fmt.Errorf(`invalid argument: commands and --file cannot be combined

Usage: %s

Example:
  %s --file setup.txt`, cmd.UseLine(), cmd.CommandPath())
	}
	return nil
}
