package vfs

import (
	"fmt"
	"sort"

	"github.com/hashicorp/go-memdb"

	"github.com/vvka-141/floppy/pkg/floppy"
)

// Listing holds the leaf names of the direct children of a directory.
type Listing struct {
	Directories []string
	Files       []string
}

// FileSystem is the virtual filesystem of one terminal session.
// It is not safe for concurrent mutation; the interpreter owns it.
type FileSystem struct {
	db *memdb.MemDB
}

// New creates a filesystem holding only the root directory.
func New() (*FileSystem, error) {
	db, err := newDatabase(Snapshot{
		Directories: map[string]DirectoryMarker{floppy.RootDirectory: {}},
	})
	if err != nil {
		return nil, err
	}
	return &FileSystem{db: db}, nil
}

// newDatabase builds a database holding exactly the entries of s.
// s must already be valid.
func newDatabase(s Snapshot) (*memdb.MemDB, error) {
	db, err := memdb.NewMemDB(dbSchema)
	if err != nil {
		return nil, fmt.Errorf("failed to create filesystem database: %w", err)
	}

	txn := db.Txn(true)
	defer txn.Abort()

	for dirPath := range s.Directories {
		p, err := ParsePath(dirPath)
		if err != nil {
			return nil, err
		}
		if err := txn.Insert(directoriesTableName, newDirectory(p)); err != nil {
			return nil, err
		}
	}
	for filePath, content := range s.Files {
		p, err := ParsePath(filePath)
		if err != nil {
			return nil, err
		}
		rec := &file{Path: p.String(), Dir: p.Parent().String(), Content: content}
		if err := txn.Insert(filesTableName, rec); err != nil {
			return nil, err
		}
	}

	txn.Commit()
	return db, nil
}

func newDirectory(p Path) *directory {
	d := &directory{Path: p.String()}
	if !p.IsRoot() {
		d.Parent = p.Parent().String()
	}
	return d
}

// CreateDirectory creates name inside parent and returns its path.
// name must be a single valid segment.
func (fs *FileSystem) CreateDirectory(parent Path, name string) (Path, error) {
	if err := ValidateName(name); err != nil {
		return Path{}, newError(OpMkdir, parent, err)
	}
	child := parent.Child(name)

	txn := fs.db.Txn(true)
	defer txn.Abort()

	if ok, err := exists(txn, directoriesTableName, parent); err != nil {
		return Path{}, err
	} else if !ok {
		return Path{}, newError(OpMkdir, parent, floppy.ErrNotFound)
	}
	if ok, err := exists(txn, directoriesTableName, child); err != nil {
		return Path{}, err
	} else if ok {
		return Path{}, newError(OpMkdir, child, floppy.ErrAlreadyExists)
	}

	if err := txn.Insert(directoriesTableName, newDirectory(child)); err != nil {
		return Path{}, err
	}
	txn.Commit()
	return child, nil
}

// CreateFile creates an empty file name inside parent and returns its path.
// name must be a single valid segment.
func (fs *FileSystem) CreateFile(parent Path, name string) (Path, error) {
	if err := ValidateName(name); err != nil {
		return Path{}, newError(OpCreate, parent, err)
	}
	child := parent.Child(name)

	txn := fs.db.Txn(true)
	defer txn.Abort()

	if ok, err := exists(txn, directoriesTableName, parent); err != nil {
		return Path{}, err
	} else if !ok {
		return Path{}, newError(OpCreate, parent, floppy.ErrNotFound)
	}
	if ok, err := exists(txn, filesTableName, child); err != nil {
		return Path{}, err
	} else if ok {
		return Path{}, newError(OpCreate, child, floppy.ErrAlreadyExists)
	}

	rec := &file{Path: child.String(), Dir: parent.String()}
	if err := txn.Insert(filesTableName, rec); err != nil {
		return Path{}, err
	}
	txn.Commit()
	return child, nil
}

// List returns the direct children of dir, each group sorted by name.
func (fs *FileSystem) List(dir Path) (Listing, error) {
	txn := fs.db.Txn(false)

	if ok, err := exists(txn, directoriesTableName, dir); err != nil {
		return Listing{}, err
	} else if !ok {
		return Listing{}, newError(OpList, dir, floppy.ErrNotFound)
	}

	listing := Listing{
		Directories: make([]string, 0),
		Files:       make([]string, 0),
	}

	it, err := txn.Get(directoriesTableName, "parent", dir.String())
	if err != nil {
		return Listing{}, err
	}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		p, err := ParsePath(obj.(*directory).Path)
		if err != nil {
			return Listing{}, err
		}
		listing.Directories = append(listing.Directories, p.Name())
	}

	it, err = txn.Get(filesTableName, "dir", dir.String())
	if err != nil {
		return Listing{}, err
	}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		p, err := ParsePath(obj.(*file).Path)
		if err != nil {
			return Listing{}, err
		}
		listing.Files = append(listing.Files, p.Name())
	}

	sort.Strings(listing.Directories)
	sort.Strings(listing.Files)
	return listing, nil
}

// DirectoryExists reports whether p is a directory.
func (fs *FileSystem) DirectoryExists(p Path) bool {
	ok, err := exists(fs.db.Txn(false), directoriesTableName, p)
	return err == nil && ok
}

// FileExists reports whether p is a file.
func (fs *FileSystem) FileExists(p Path) bool {
	ok, err := exists(fs.db.Txn(false), filesTableName, p)
	return err == nil && ok
}

// ReadFile returns the content of the file at p.
func (fs *FileSystem) ReadFile(p Path) (string, error) {
	rec, err := getFile(fs.db.Txn(false), p)
	if err != nil {
		return "", newError(OpRead, p, err)
	}
	return rec.Content, nil
}

// WriteFile replaces the content of the existing file at p.
func (fs *FileSystem) WriteFile(p Path, content string) error {
	return fs.update(OpWrite, p, func(string) string { return content })
}

// AppendFile appends text to the existing file at p.
func (fs *FileSystem) AppendFile(p Path, text string) error {
	return fs.update(OpAppend, p, func(old string) string { return old + text })
}

func (fs *FileSystem) update(op string, p Path, fn func(string) string) error {
	txn := fs.db.Txn(true)
	defer txn.Abort()

	rec, err := getFile(txn, p)
	if err != nil {
		return newError(op, p, err)
	}

	updated := &file{Path: rec.Path, Dir: rec.Dir, Content: fn(rec.Content)}
	if err := txn.Insert(filesTableName, updated); err != nil {
		return err
	}
	txn.Commit()
	return nil
}

// DeleteFile removes the file at p.
func (fs *FileSystem) DeleteFile(p Path) error {
	txn := fs.db.Txn(true)
	defer txn.Abort()

	n, err := txn.DeleteAll(filesTableName, "id", p.String())
	if err != nil {
		return err
	}
	if n == 0 {
		return newError(OpDelete, p, floppy.ErrNotFound)
	}
	txn.Commit()
	return nil
}

// Stats returns the number of directories (root included) and files.
func (fs *FileSystem) Stats() (dirs, files int, err error) {
	txn := fs.db.Txn(false)
	if dirs, err = count(txn, directoriesTableName); err != nil {
		return 0, 0, err
	}
	if files, err = count(txn, filesTableName); err != nil {
		return 0, 0, err
	}
	return dirs, files, nil
}

// Export copies the whole filesystem into a Snapshot.
func (fs *FileSystem) Export() (Snapshot, error) {
	txn := fs.db.Txn(false)
	s := Snapshot{
		Files:       make(map[string]string),
		Directories: make(map[string]DirectoryMarker),
	}

	it, err := txn.Get(directoriesTableName, "id")
	if err != nil {
		return Snapshot{}, err
	}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		s.Directories[obj.(*directory).Path] = DirectoryMarker{}
	}

	it, err = txn.Get(filesTableName, "id")
	if err != nil {
		return Snapshot{}, err
	}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		rec := obj.(*file)
		s.Files[rec.Path] = rec.Content
	}
	return s, nil
}

// Import validates s and replaces the whole filesystem with it.
// On any error the current contents are left untouched.
func (fs *FileSystem) Import(s Snapshot) error {
	if err := s.Validate(); err != nil {
		return &Error{Op: OpImport, Err: err}
	}
	db, err := newDatabase(s)
	if err != nil {
		return &Error{Op: OpImport, Err: err}
	}
	fs.db = db
	return nil
}

func exists(txn *memdb.Txn, table string, p Path) (bool, error) {
	obj, err := txn.First(table, "id", p.String())
	if err != nil {
		return false, err
	}
	return obj != nil, nil
}

func getFile(txn *memdb.Txn, p Path) (*file, error) {
	obj, err := txn.First(filesTableName, "id", p.String())
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, floppy.ErrNotFound
	}
	return obj.(*file), nil
}

func count(txn *memdb.Txn, table string) (int, error) {
	it, err := txn.Get(table, "id")
	if err != nil {
		return 0, err
	}
	n := 0
	for obj := it.Next(); obj != nil; obj = it.Next() {
		n++
	}
	return n, nil
}
