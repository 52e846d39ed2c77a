package shell

import (
	"github.com/google/uuid"

	"github.com/vvka-141/floppy/internal/vfs"
)

// EditState is either Idle or Editing.
type EditState interface {
	isEditState()
}

// Idle means input lines are commands.
type Idle struct{}

// Editing means input lines are appended to Target until the terminator.
type Editing struct {
	Target vfs.Path
	Name   string
}

func (Idle) isEditState()    {}
func (Editing) isEditState() {}

// Session is the mutable state of one terminal.
type Session struct {
	ID uuid.UUID

	fs       *vfs.FileSystem
	current  vfs.Path
	previous vfs.Path
	edit     EditState
}

// NewSession starts in root with an empty filesystem.
func NewSession() (*Session, error) {
	fs, err := vfs.New()
	if err != nil {
		return nil, err
	}
	return &Session{
		ID:      uuid.New(),
		fs:      fs,
		current: vfs.Root(),
		edit:    Idle{},
	}, nil
}

// FileSystem returns the session's filesystem.
func (s *Session) FileSystem() *vfs.FileSystem {
	return s.fs
}

// Current returns the working directory.
func (s *Session) Current() vfs.Path {
	return s.current
}

// Previous returns the directory cd - returns to, or the zero Path.
func (s *Session) Previous() vfs.Path {
	return s.previous
}

// EditState returns the current edit state.
func (s *Session) EditState() EditState {
	return s.edit
}

// moveTo changes directory and remembers where we came from.
func (s *Session) moveTo(p vfs.Path) {
	s.previous = s.current
	s.current = p
}

// swap exchanges the current and previous directories.
func (s *Session) swap() bool {
	if s.previous.IsZero() || !s.fs.DirectoryExists(s.previous) {
		return false
	}
	s.current, s.previous = s.previous, s.current
	return true
}

// reset returns to root and forgets the previous directory.
func (s *Session) reset() {
	s.current = vfs.Root()
	s.previous = vfs.Path{}
	s.edit = Idle{}
}
