package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/floppy/pkg/floppy"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

type RunConfig struct {
	Enabled *bool `yaml:"enabled,omitempty"`
}

type Config struct {
	Disk    string    `yaml:"disk"`
	Welcome string    `yaml:"welcome,omitempty"`
	Run     RunConfig `yaml:"run"`
}

const ConfigFileName = "floppy.yaml"

// Environment variables that override the config file.
const (
	EnvDisk       = "FLOPPY_DISK"
	EnvWelcome    = "FLOPPY_WELCOME"
	EnvRunEnabled = "FLOPPY_RUN_ENABLED"
)

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	enabled := true
	return &Config{
		Disk:    floppy.DefaultDiskDirectory,
		Welcome: floppy.WelcomeBanner,
		Run:     RunConfig{Enabled: &enabled},
	}
}

// Load reads floppy.yaml from dir.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads the config file at path. Unset fields are left empty;
// use Resolve to fill defaults and apply the environment.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", floppy.ErrInvalidConfig, path, err)
	}
	return &cfg, nil
}

// Resolve merges defaults, the file config (may be nil) and the environment,
// in increasing order of precedence. A leading ~ in the disk directory is
// expanded to the user's home.
func Resolve(file *Config) (*Config, error) {
	cfg := Default()
	if file != nil {
		if file.Disk != "" {
			cfg.Disk = file.Disk
		}
		if file.Welcome != "" {
			cfg.Welcome = file.Welcome
		}
		if file.Run.Enabled != nil {
			cfg.Run.Enabled = file.Run.Enabled
		}
	}

	if v := os.Getenv(EnvDisk); v != "" {
		cfg.Disk = v
	}
	if v := os.Getenv(EnvWelcome); v != "" {
		cfg.Welcome = v
	}
	if v := os.Getenv(EnvRunEnabled); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q is not a boolean", floppy.ErrInvalidConfig, EnvRunEnabled, v)
		}
		cfg.Run.Enabled = &enabled
	}

	disk, err := homedir.Expand(cfg.Disk)
	if err != nil {
		return nil, fmt.Errorf("%w: disk %q: %v", floppy.ErrInvalidConfig, cfg.Disk, err)
	}
	cfg.Disk = disk
	return cfg, nil
}

// RunEnabled reports whether the run command may evaluate files.
func (c *Config) RunEnabled() bool {
	return c.Run.Enabled == nil || *c.Run.Enabled
}
