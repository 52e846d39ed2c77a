package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/floppy/internal/config"
	"github.com/vvka-141/floppy/internal/disk"
	"github.com/vvka-141/floppy/internal/eval"
	"github.com/vvka-141/floppy/internal/logging"
	"github.com/vvka-141/floppy/internal/shell"
	"github.com/vvka-141/floppy/pkg/floppy"
)

// logFileName receives verbose logs while the full-screen terminal owns stdout.
const logFileName = "floppy.log"

// sessionFlags are shared by every command that opens a session.
var sessionFlags struct {
	disk  string
	load  string
	noRun bool
}

func addSessionFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&sessionFlags.disk, "disk", "", "Directory holding floppy disk images (overrides config)")
	cmd.Flags().StringVar(&sessionFlags.load, "load", "", "Floppy disk image to load when the session starts")
	cmd.Flags().BoolVar(&sessionFlags.noRun, "no-run", false, "Disable the run command")

	_ = cmd.RegisterFlagCompletionFunc("load", completeImageNames)
}

func resetSessionFlags() {
	sessionFlags.disk = ""
	sessionFlags.load = ""
	sessionFlags.noRun = false
}

// loadSettings loads godotenv and floppy.yaml, applies the environment and
// then the command-line flags.
func loadSettings() (*config.Config, error) {
	_ = godotenv.Load()

	fileCfg, err := loadConfigFile()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Resolve(fileCfg)
	if err != nil {
		return nil, err
	}

	if sessionFlags.disk != "" {
		cfg.Disk = sessionFlags.disk
	}
	if sessionFlags.noRun {
		disabled := false
		cfg.Run.Enabled = &disabled
	}
	return cfg, nil
}

// loadConfigFile returns nil when no config file exists, unless --config
// named one explicitly.
func loadConfigFile() (*config.Config, error) {
	if rootFlags.config != "" {
		cfg, err := config.LoadFile(rootFlags.config)
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("%w: %s does not exist", floppy.ErrInvalidConfig, rootFlags.config)
		}
		return cfg, err
	}

	cfg, err := config.Load(".")
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, nil // Config file not found is not an error
		}
		return nil, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
	}
	return cfg, nil
}

// openSession builds an interpreter for cfg and mounts --load if given.
func openSession(cfg *config.Config, logger floppy.Logger) (*shell.Interpreter, error) {
	onRetry := func(attempt int, err error, delay time.Duration) {
		logger.Verbose("floppy drive busy, retry %d in %s: %v", attempt+1, delay, err)
	}
	drive, err := disk.NewDrive(cfg.Disk, disk.WithRetry(disk.DefaultRetry().WithOnRetry(onRetry)))
	if err != nil {
		return nil, err
	}
	logger.Verbose("floppy drive at %s", drive.Root())

	opts := []shell.Option{
		shell.WithDrive(drive),
		shell.WithLogger(logger),
		shell.WithWelcome(cfg.Welcome),
	}
	if !cfg.RunEnabled() {
		opts = append(opts, shell.WithEvaluator(eval.Disabled{}))
	}

	interp, err := shell.NewInterpreter(opts...)
	if err != nil {
		return nil, err
	}

	if sessionFlags.load != "" {
		if err := interp.Mount(sessionFlags.load); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", sessionFlags.load, err)
		}
	}
	return interp, nil
}

// fileLogger opens floppy.log in the disk directory. The returned closer
// must be called when the session ends.
func fileLogger(diskDir string) (floppy.Logger, io.Closer, error) {
	if err := os.MkdirAll(diskDir, 0755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(filepath.Join(diskDir, logFileName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return logging.NewWriterLogger(f, true), f, nil
}
