package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vvka-141/floppy/internal/logging"
	"github.com/vvka-141/floppy/internal/tui"
	"github.com/vvka-141/floppy/pkg/floppy"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive terminal session",
	Long: `Start a terminal session.

On a TTY this opens the full-screen terminal. With piped input, CI=true,
NO_COLOR or FLOPPY_NON_INTERACTIVE=1 it reads one command per line from stdin
and prints plain output instead.

Examples:
  floppy shell
  floppy shell --disk ~/floppies --load FloppyDisk.json
  printf 'mkdir a\nls\n' | floppy shell`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)
	addSessionFlags(shellCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	interactive := tui.IsInteractive()

	var logger floppy.Logger = logging.NewConsoleLogger(rootFlags.verbose)
	if interactive {
		logger = logging.NewNullLogger()
		if rootFlags.verbose {
			fl, closer, err := fileLogger(cfg.Disk)
			if err != nil {
				return err
			}
			defer closer.Close()
			logger = fl
		}
	}

	interp, err := openSession(cfg, logger)
	if err != nil {
		return err
	}

	if interactive {
		return tui.RunTerminal(interp)
	}
	return runPlainShell(interp, cmd.InOrStdin(), cmd.OutOrStdout())
}

func runPlainShell(interp tui.Interpreter, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, interp.Welcome())
	return tui.NewPlain(interp, out, false).Run(in)
}
