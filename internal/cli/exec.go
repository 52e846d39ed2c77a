package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/floppy/internal/logging"
	"github.com/vvka-141/floppy/internal/tui"
	"github.com/vvka-141/floppy/pkg/floppy"
)

var execCmd = &cobra.Command{
	Use:   "exec [commands...]",
	Short: "Run terminal commands non-interactively",
	Long: `Run terminal commands and print their output.

Each argument is one terminal line. With --file, each line of the script is
run instead; with neither, lines are read from stdin. The exit code is 13 if
any line reported an error.

Examples:
  floppy exec "mkdir docs" "cd docs" "touch todo" save
  floppy exec --load FloppyDisk.json ls
  floppy exec --file setup.txt`,
	Args: ExclusiveScriptSource,
	RunE: runExec,
}

var execFlags struct {
	file string
}

func init() {
	rootCmd.AddCommand(execCmd)
	addSessionFlags(execCmd)
	execCmd.Flags().StringVarP(&execFlags.file, "file", "f", "", "Script with one terminal line per line")
}

func runExec(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	logger := logging.NewConsoleLogger(rootFlags.verbose)
	interp, err := openSession(cfg, logger)
	if err != nil {
		return err
	}

	runner := tui.NewPlain(interp, cmd.OutOrStdout(), false)

	switch {
	case len(args) > 0:
		for _, line := range args {
			if !runner.Line(line) {
				break
			}
		}
	case execFlags.file != "":
		f, err := os.Open(execFlags.file)
		if err != nil {
			return fmt.Errorf("failed to open script: %w", err)
		}
		defer f.Close()
		if err := runner.Run(f); err != nil {
			return fmt.Errorf("failed to read script: %w", err)
		}
	default:
		if err := runner.Run(cmd.InOrStdin()); err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}

	n := runner.Failed()
	logger.Verbose("exec finished with %d failed line(s)", n)
	if n > 0 {
		return fmt.Errorf("%w: %d line(s) reported an error", floppy.ErrCommandFailed, n)
	}
	return nil
}
