package vfs

import (
	"fmt"
	"strings"

	"github.com/vvka-141/floppy/pkg/floppy"
)

const separator = "/"

// Path is a directory or file location expressed as ordered segment names.
// The zero value is not valid; use Root, Child or ParsePath.
type Path struct {
	segments []string
}

// Root returns the path of the root directory.
func Root() Path {
	return Path{segments: []string{floppy.RootDirectory}}
}

// ParsePath parses the slash-joined form produced by Path.String.
func ParsePath(s string) (Path, error) {
	segments := strings.Split(s, separator)
	if segments[0] != floppy.RootDirectory {
		return Path{}, fmt.Errorf("path %q does not start with %q", s, floppy.RootDirectory)
	}
	for _, seg := range segments[1:] {
		if err := ValidateName(seg); err != nil {
			return Path{}, fmt.Errorf("path %q: %w", s, err)
		}
	}
	return Path{segments: segments}, nil
}

// ValidateName reports whether name can be used as a single path segment.
// "~" and "-" are reserved by cd.
func ValidateName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("%w: empty name", floppy.ErrInvalidName)
	case strings.Contains(name, separator):
		return fmt.Errorf("%w: %q contains %q", floppy.ErrInvalidName, name, separator)
	case name == "~" || name == "-":
		return fmt.Errorf("%w: %q is reserved", floppy.ErrInvalidName, name)
	}
	return nil
}

// Child returns the path of name inside p. Child does not validate name:
// a name containing "/" would address a deeper entry, so every caller
// handling user input must pass it through ValidateName first.
func (p Path) Child(name string) Path {
	segments := make([]string, len(p.segments), len(p.segments)+1)
	copy(segments, p.segments)
	return Path{segments: append(segments, name)}
}

// Parent returns the directory containing p. The parent of root is root.
func (p Path) Parent() Path {
	if len(p.segments) <= 1 {
		return Root()
	}
	segments := make([]string, len(p.segments)-1)
	copy(segments, p.segments)
	return Path{segments: segments}
}

// Name returns the last segment.
func (p Path) Name() string {
	if len(p.segments) == 0 {
		return ""
	}
	return p.segments[len(p.segments)-1]
}

// IsRoot reports whether p is the root directory.
func (p Path) IsRoot() bool {
	return len(p.segments) == 1 && p.segments[0] == floppy.RootDirectory
}

// IsZero reports whether p is the zero Path.
func (p Path) IsZero() bool {
	return len(p.segments) == 0
}

// Depth is the number of segments below root.
func (p Path) Depth() int {
	return len(p.segments) - 1
}

// Equal reports whether p and other name the same location.
func (p Path) Equal(other Path) bool {
	return p.String() == other.String()
}

func (p Path) String() string {
	return strings.Join(p.segments, separator)
}
