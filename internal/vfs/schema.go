package vfs

import (
	"github.com/hashicorp/go-memdb"
)

const (
	directoriesTableName = "directories"
	filesTableName       = "files"
)

// directory is the stored form of a directory node. Root has an empty Parent.
type directory struct {
	Path   string
	Parent string
}

// file is the stored form of a file. Records are never mutated after insert;
// writes insert a fresh record under the same Path.
type file struct {
	Path    string
	Dir     string
	Content string
}

var dbSchema = &memdb.DBSchema{
	Tables: map[string]*memdb.TableSchema{
		directoriesTableName: {
			Name: directoriesTableName,
			Indexes: map[string]*memdb.IndexSchema{
				"id": {
					Name:    "id",
					Unique:  true,
					Indexer: &memdb.StringFieldIndex{Field: "Path"},
				},
				"parent": {
					Name:         "parent",
					AllowMissing: true,
					Indexer:      &memdb.StringFieldIndex{Field: "Parent"},
				},
			},
		},
		filesTableName: {
			Name: filesTableName,
			Indexes: map[string]*memdb.IndexSchema{
				"id": {
					Name:    "id",
					Unique:  true,
					Indexer: &memdb.StringFieldIndex{Field: "Path"},
				},
				"dir": {
					Name:    "dir",
					Indexer: &memdb.StringFieldIndex{Field: "Dir"},
				},
			},
		},
	},
}
