package vfs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/vvka-141/floppy/pkg/floppy"
)

// DirectoryMarker is the value stored for each directory in a Snapshot.
// It always serializes as an empty JSON object.
type DirectoryMarker struct{}

// Snapshot is the serialized form of a whole filesystem, as written to a
// floppy disk image:
//
//	{"files": {"root/a/f": "text"}, "directories": {"root": {}, "root/a": {}}}
type Snapshot struct {
	Files       map[string]string          `json:"files"`
	Directories map[string]DirectoryMarker `json:"directories"`
}

// EncodeSnapshot renders s as indented JSON with sorted keys.
func EncodeSnapshot(s Snapshot) ([]byte, error) {
	if s.Files == nil {
		s.Files = map[string]string{}
	}
	if s.Directories == nil {
		s.Directories = map[string]DirectoryMarker{}
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return append(data, '\n'), nil
}

// DecodeSnapshot parses and validates a floppy disk image.
// Unknown fields and wrongly typed values are rejected.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var s Snapshot
	if err := dec.Decode(&s); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", floppy.ErrInvalidSnapshot, err)
	}
	if dec.More() {
		return Snapshot{}, fmt.Errorf("%w: trailing data after snapshot", floppy.ErrInvalidSnapshot)
	}
	if err := s.Validate(); err != nil {
		return Snapshot{}, err
	}
	return s, nil
}

// Validate checks that s describes a well-formed tree: root exists, every
// path parses, and every entry's parent directory exists. Files and
// directories are separate namespaces, so one path may name both.
// All problems are reported together.
func (s Snapshot) Validate() error {
	var errs *multierror.Error

	if _, ok := s.Directories[floppy.RootDirectory]; !ok {
		errs = multierror.Append(errs, fmt.Errorf("missing %q directory", floppy.RootDirectory))
	}

	for _, dirPath := range sortedKeys(s.Directories) {
		p, err := ParsePath(dirPath)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("directory: %w", err))
			continue
		}
		if p.IsRoot() {
			continue
		}
		if _, ok := s.Directories[p.Parent().String()]; !ok {
			errs = multierror.Append(errs, fmt.Errorf("directory %q: parent %q does not exist", dirPath, p.Parent()))
		}
	}

	for _, filePath := range sortedKeys(s.Files) {
		p, err := ParsePath(filePath)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("file: %w", err))
			continue
		}
		if p.IsRoot() {
			errs = multierror.Append(errs, fmt.Errorf("file %q: cannot replace the root directory", filePath))
			continue
		}
		if _, ok := s.Directories[p.Parent().String()]; !ok {
			errs = multierror.Append(errs, fmt.Errorf("file %q: parent %q does not exist", filePath, p.Parent()))
		}
	}

	if errs == nil {
		return nil
	}
	errs.ErrorFormat = joinErrors
	return fmt.Errorf("%w: %w", floppy.ErrInvalidSnapshot, errs)
}

func joinErrors(es []error) string {
	msgs := make([]string, len(es))
	for i, e := range es {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
