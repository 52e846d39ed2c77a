// Package vfs implements the in-memory filesystem behind the terminal.
//
// Directories and files live in a go-memdb database. Every entry records the
// exact path of its parent directory, so listing a directory returns its
// direct children only, never siblings that happen to share a name prefix.
//
// Paths are hierarchical Path values whose first segment is always "root".
// The whole tree can be exported as a Snapshot and replaced wholesale by
// importing one; imports are validated before any state changes.
package vfs
