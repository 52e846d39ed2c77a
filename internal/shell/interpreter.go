package shell

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vvka-141/floppy/internal/eval"
	"github.com/vvka-141/floppy/internal/logging"
	"github.com/vvka-141/floppy/internal/vfs"
	"github.com/vvka-141/floppy/pkg/floppy"
)

// Result is the outcome of one input line.
type Result struct {
	// Lines are appended to the output in order.
	Lines []string
	// Clear asks the renderer to drop its buffer before appending Lines.
	Clear bool
	// Quit asks the renderer to end the session.
	Quit bool
	// Err classifies a failed command. Lines already describe it.
	Err error
}

func output(lines ...string) Result {
	return Result{Lines: lines}
}

func failure(err error, format string, args ...interface{}) Result {
	return Result{Lines: []string{fmt.Sprintf(format, args...)}, Err: err}
}

// Drive persists snapshots for save and load.
type Drive interface {
	Save(s vfs.Snapshot) (string, error)
	Load(name string) (vfs.Snapshot, error)
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithDrive attaches the floppy drive used by save and load.
func WithDrive(d Drive) Option {
	return func(i *Interpreter) {
		i.drive = d
	}
}

// WithEvaluator replaces the evaluator used by run.
func WithEvaluator(e eval.Evaluator) Option {
	return func(i *Interpreter) {
		i.evaluator = e
	}
}

// WithLogger sets the logger for dispatch and state changes.
func WithLogger(l floppy.Logger) Option {
	return func(i *Interpreter) {
		i.logger = l
	}
}

// WithWelcome replaces the banner shown by clear.
func WithWelcome(banner string) Option {
	return func(i *Interpreter) {
		i.welcome = banner
	}
}

// Interpreter executes terminal input lines against its Session.
type Interpreter struct {
	session   *Session
	drive     Drive
	evaluator eval.Evaluator
	logger    floppy.Logger
	welcome   string
}

// NewInterpreter creates an interpreter with a fresh session.
func NewInterpreter(opts ...Option) (*Interpreter, error) {
	session, err := NewSession()
	if err != nil {
		return nil, err
	}

	i := &Interpreter{
		session:   session,
		evaluator: eval.NewHCL(),
		logger:    logging.NewNullLogger(),
		welcome:   floppy.WelcomeBanner,
	}
	for _, opt := range opts {
		opt(i)
	}

	i.logger.Verbose("[%s] session started", session.ID)
	return i, nil
}

// Session returns the interpreter's session.
func (i *Interpreter) Session() *Session {
	return i.session
}

// Welcome returns the banner printed at start and by clear.
func (i *Interpreter) Welcome() string {
	return i.welcome
}

// Prompt returns the input prompt for the current state.
func (i *Interpreter) Prompt() string {
	if e, ok := i.session.edit.(Editing); ok {
		return "edit:" + e.Name + "> "
	}
	return i.session.current.String() + "> "
}

// Execute handles one line of input.
func (i *Interpreter) Execute(raw string) Result {
	if state, ok := i.session.edit.(Editing); ok {
		return i.editLine(state, strings.TrimRight(raw, "\r\n"))
	}

	line := strings.TrimSpace(raw)
	if line == "" {
		return Result{}
	}

	fields := strings.Split(line, " ")
	name, args := fields[0], fields[1:]

	cmd, ok := commands[name]
	if !ok {
		i.logger.Verbose("[%s] unknown command %q", i.session.ID, name)
		return failure(fmt.Errorf("%w: %s", floppy.ErrUnknownCommand, name), "Unknown command: %s", name)
	}

	i.logger.Verbose("[%s] %s %v in %s", i.session.ID, name, args, i.session.current)

	var arg string
	if len(args) > 0 {
		arg = args[0]
	}
	if cmd.arg == argRequired && len(args) == 0 {
		return failure(fmt.Errorf("%w: %s", floppy.ErrUsage, cmd.usage), "Usage: %s", cmd.usage)
	}

	res := cmd.run(i, arg)
	if res.Err != nil {
		i.logger.Verbose("[%s] %s failed: %v", i.session.ID, name, res.Err)
	}
	return res
}

// CommandNames returns every command name in help order.
func CommandNames() []string {
	names := make([]string, len(commandOrder))
	copy(names, commandOrder)
	return names
}

// checkName validates a user-supplied entry name.
func checkName(name string) (Result, bool) {
	if err := vfs.ValidateName(name); err != nil {
		return failure(err, "Invalid name: %s", name), false
	}
	return Result{}, true
}

// EntryNames returns the directory and file names in the current directory,
// sorted. It feeds tab completion.
func (i *Interpreter) EntryNames() []string {
	listing, err := i.session.fs.List(i.session.current)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(listing.Directories)+len(listing.Files))
	names = append(names, listing.Directories...)
	names = append(names, listing.Files...)
	sort.Strings(names)
	return names
}

// Editing reports whether input lines are being appended to a file.
func (i *Interpreter) Editing() bool {
	_, ok := i.session.edit.(Editing)
	return ok
}
