package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/floppy/pkg/floppy"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvDisk, EnvWelcome, EnvRunEnabled} {
		t.Setenv(k, "")
	}
}

func TestLoad_AllFields(t *testing.T) {
	dir := t.TempDir()
	content := `disk: /mnt/a
welcome: "hello"
run:
  enabled: false
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "/mnt/a", cfg.Disk)
	assert.Equal(t, "hello", cfg.Welcome)
	require.NotNil(t, cfg.Run.Enabled)
	assert.False(t, *cfg.Run.Enabled)
	assert.False(t, cfg.RunEnabled())
}

func TestLoad_MinimalYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("disk: d\n"), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "d", cfg.Disk)
	assert.Nil(t, cfg.Run.Enabled)
	assert.True(t, cfg.RunEnabled())
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load(t.TempDir())
	assert.True(t, errors.Is(err, ErrConfigNotFound), "expected ErrConfigNotFound, got: %v", err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("{{invalid"), 0644))

	cfg, err := Load(dir)
	assert.True(t, errors.Is(err, floppy.ErrInvalidConfig))
	assert.Nil(t, cfg)
}

func TestResolve_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Resolve(nil)
	require.NoError(t, err)
	assert.Equal(t, floppy.DefaultDiskDirectory, cfg.Disk)
	assert.Equal(t, floppy.WelcomeBanner, cfg.Welcome)
	assert.True(t, cfg.RunEnabled())
}

func TestResolve_FileOverridesDefaults(t *testing.T) {
	clearEnv(t)
	disabled := false

	cfg, err := Resolve(&Config{Disk: "from-file", Run: RunConfig{Enabled: &disabled}})
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.Disk)
	assert.Equal(t, floppy.WelcomeBanner, cfg.Welcome)
	assert.False(t, cfg.RunEnabled())
}

func TestResolve_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvDisk, "from-env")
	t.Setenv(EnvRunEnabled, "true")
	disabled := false

	cfg, err := Resolve(&Config{Disk: "from-file", Run: RunConfig{Enabled: &disabled}})
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Disk)
	assert.True(t, cfg.RunEnabled())
}

func TestResolve_InvalidEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvRunEnabled, "sometimes")

	_, err := Resolve(nil)
	assert.True(t, errors.Is(err, floppy.ErrInvalidConfig))
}

func TestResolve_ExpandsHome(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })

	cfg, err := Resolve(&Config{Disk: "~/floppies"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "floppies"), cfg.Disk)
}

func TestResolve_RejectsOtherUsersHome(t *testing.T) {
	clearEnv(t)

	_, err := Resolve(&Config{Disk: "~someone/floppies"})
	assert.True(t, errors.Is(err, floppy.ErrInvalidConfig))
}
