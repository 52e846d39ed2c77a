package vfs

import (
	"fmt"
)

// Error wraps a filesystem failure with the operation and the path it hit.
// Err is one of the floppy sentinel errors, so errors.Is works through it.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(op string, p Path, err error) *Error {
	return &Error{Op: op, Path: p.String(), Err: err}
}

// Operation names used in Error.Op.
const (
	OpMkdir  = "mkdir"
	OpCreate = "create"
	OpList   = "list"
	OpRead   = "read"
	OpWrite  = "write"
	OpAppend = "append"
	OpDelete = "delete"
	OpImport = "import"
)
