// Package disk is the floppy drive: a directory on the host where save writes
// filesystem images and load reads them back.
package disk

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/vvka-141/floppy/internal/retry"
	"github.com/vvka-141/floppy/internal/vfs"
	"github.com/vvka-141/floppy/pkg/floppy"
)

const imageExt = ".json"

// defaultRetries is how often a host drive retries a busy or interrupted read or write.
const defaultRetries = 3

// Drive stores floppy disk images on a billy filesystem.
type Drive struct {
	fs    billy.Filesystem
	retry *retry.Executor
}

// Option configures a Drive.
type Option func(*Drive)

// WithRetry replaces the executor that retries transient I/O errors.
// A nil executor disables retries.
func WithRetry(e *retry.Executor) Option {
	return func(d *Drive) {
		d.retry = e
	}
}

// DefaultRetry returns the executor a host drive uses unless WithRetry replaces it.
func DefaultRetry() *retry.Executor {
	return retry.NewExecutor(retry.NewIOErrorClassifier(), retry.NewExponentialBackoff(defaultRetries))
}

// NewDrive opens the host directory dir as a drive, creating it if needed.
// Transient I/O errors are retried with backoff.
func NewDrive(dir string, opts ...Option) (*Drive, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create disk directory %s: %w", dir, err)
	}
	d := &Drive{
		fs:    osfs.New(dir),
		retry: DefaultRetry(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// NewDriveFS wraps an existing billy filesystem, typically memfs in tests.
func NewDriveFS(fs billy.Filesystem, opts ...Option) *Drive {
	d := &Drive{fs: fs}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Drive) do(op func() error) error {
	if d.retry == nil {
		return op()
	}
	return d.retry.Execute(context.Background(), func(context.Context) error {
		return op()
	})
}

// Root returns the location of the drive as reported by the filesystem.
func (d *Drive) Root() string {
	return d.fs.Root()
}

// Save writes s as the default disk image and returns the image name.
func (d *Drive) Save(s vfs.Snapshot) (string, error) {
	data, err := vfs.EncodeSnapshot(s)
	if err != nil {
		return "", err
	}
	err = d.do(func() error {
		return util.WriteFile(d.fs, floppy.SnapshotFileName, data, 0644)
	})
	if err != nil {
		return "", fmt.Errorf("failed to write %s: %w", floppy.SnapshotFileName, err)
	}
	return floppy.SnapshotFileName, nil
}

// Load reads and validates the image called name. An empty name means the
// default image written by Save.
func (d *Drive) Load(name string) (vfs.Snapshot, error) {
	if name == "" {
		name = floppy.SnapshotFileName
	}
	if err := validateImageName(name); err != nil {
		return vfs.Snapshot{}, err
	}

	var data []byte
	err := d.do(func() (err error) {
		data, err = util.ReadFile(d.fs, name)
		return err
	})
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return vfs.Snapshot{}, fmt.Errorf("%s: %w", name, floppy.ErrNotFound)
		}
		return vfs.Snapshot{}, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return vfs.DecodeSnapshot(data)
}

// List returns the names of the disk images on the drive, sorted.
func (d *Drive) List() ([]string, error) {
	infos, err := d.fs.ReadDir("/")
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var names []string
	for _, info := range infos {
		if info.IsDir() || !strings.HasSuffix(info.Name(), imageExt) {
			continue
		}
		names = append(names, info.Name())
	}
	sort.Strings(names)
	return names, nil
}

// validateImageName keeps load confined to the top level of the drive.
func validateImageName(name string) error {
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("%w: disk image %q must be a plain file name", floppy.ErrInvalidName, name)
	}
	return nil
}
