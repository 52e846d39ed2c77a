package shell

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vvka-141/floppy/pkg/floppy"
)

type argSpec int

const (
	argNone argSpec = iota
	argRequired
	argOptional
)

type command struct {
	usage string
	help  string
	arg   argSpec
	run   func(i *Interpreter, arg string) Result
}

var (
	commands     map[string]command
	commandOrder []string
)

// Registered in init because help reads the table it belongs to.
func init() {
	register := func(name string, c command) {
		commands[name] = c
		commandOrder = append(commandOrder, name)
	}

	commands = make(map[string]command)
	register("mkdir", command{usage: "mkdir <name>", help: "To create a directory", arg: argRequired, run: (*Interpreter).mkdir})
	register("touch", command{usage: "touch <name>", help: "To create a file", arg: argRequired, run: (*Interpreter).touch})
	register("ed", command{usage: "ed <name>", help: "To edit a file", arg: argRequired, run: (*Interpreter).startEdit})
	register("print", command{usage: "print <name>", help: "To view a file's text contents", arg: argRequired, run: (*Interpreter).print})
	register("delete", command{usage: "delete <name>", help: "To delete a file", arg: argRequired, run: (*Interpreter).delete})
	register("run", command{usage: "run <name>", help: "To evaluate a file", arg: argRequired, run: (*Interpreter).run})
	register("ls", command{usage: "ls", help: "To list directories and files", run: (*Interpreter).ls})
	register("cd", command{usage: "cd <name|~|->", help: "To open a directory (~ goes up, - goes back)", arg: argRequired, run: (*Interpreter).cd})
	register("pwd", command{usage: "pwd", help: "To show the current directory", run: (*Interpreter).pwd})
	register("save", command{usage: "save", help: "To save your files and directories to a floppy disk", run: (*Interpreter).save})
	register("load", command{usage: "load [image]", help: "To mount a floppy disk", arg: argOptional, run: (*Interpreter).load})
	register("clear", command{usage: "clear", help: "To clear the terminal", run: (*Interpreter).clear})
	register("help", command{usage: "help", help: "To show this help", run: (*Interpreter).help})
	register("exit", command{usage: "exit", help: "To leave the terminal", run: (*Interpreter).exit})
}

func (i *Interpreter) clear(string) Result {
	return Result{Lines: []string{i.welcome}, Clear: true}
}

func (i *Interpreter) help(string) Result {
	lines := make([]string, 0, len(commandOrder)+1)
	for _, name := range commandOrder {
		c := commands[name]
		lines = append(lines, fmt.Sprintf("%s: %s", c.help, c.usage))
	}
	lines = append(lines, fmt.Sprintf("While editing, type '%s' on its own line to save and quit.", floppy.EditTerminator))
	return output(lines...)
}

func (i *Interpreter) mkdir(name string) Result {
	if res, ok := checkName(name); !ok {
		return res
	}
	_, err := i.session.fs.CreateDirectory(i.session.current, name)
	switch {
	case err == nil:
		return output("Directory created: " + name)
	case errors.Is(err, floppy.ErrAlreadyExists):
		return failure(err, "Directory already exists: %s", name)
	default:
		return failure(err, "Error creating directory: %v", err)
	}
}

func (i *Interpreter) touch(name string) Result {
	if res, ok := checkName(name); !ok {
		return res
	}
	_, err := i.session.fs.CreateFile(i.session.current, name)
	switch {
	case err == nil:
		return output("File created: " + name)
	case errors.Is(err, floppy.ErrAlreadyExists):
		return failure(err, "File already exists: %s", name)
	default:
		return failure(err, "Error creating file: %v", err)
	}
}

func (i *Interpreter) cd(name string) Result {
	var res Result
	s := i.session

	switch name {
	case "~":
		s.moveTo(s.current.Parent())
	case "-":
		if !s.swap() {
			res = failure(fmt.Errorf("cd -: %w", floppy.ErrNotFound), "No previous directory")
		}
	default:
		if r, ok := checkName(name); !ok {
			return r
		}
		target := s.current.Child(name)
		if s.fs.DirectoryExists(target) {
			s.moveTo(target)
		} else {
			res = failure(fmt.Errorf("%s: %w", name, floppy.ErrNotFound), "Directory does not exist: %s", name)
		}
	}

	res.Lines = append(res.Lines, "Current directory: "+s.current.String())
	return res
}

func (i *Interpreter) pwd(string) Result {
	return output("Current directory: " + i.session.current.String())
}

func (i *Interpreter) ls(string) Result {
	listing, err := i.session.fs.List(i.session.current)
	if err != nil {
		return failure(err, "Error listing directory: %v", err)
	}

	lines := make([]string, 0, len(listing.Directories)+len(listing.Files)+2)
	lines = append(lines, "Directories:")
	lines = append(lines, listing.Directories...)
	lines = append(lines, "Files:")
	lines = append(lines, listing.Files...)
	return output(lines...)
}

func (i *Interpreter) print(name string) Result {
	if res, ok := checkName(name); !ok {
		return res
	}
	content, err := i.session.fs.ReadFile(i.session.current.Child(name))
	if err != nil {
		return failure(err, "File does not exist: %s", name)
	}

	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	lines[0] = name + ": " + lines[0]
	return output(lines...)
}

func (i *Interpreter) delete(name string) Result {
	if res, ok := checkName(name); !ok {
		return res
	}
	if err := i.session.fs.DeleteFile(i.session.current.Child(name)); err != nil {
		return failure(err, "File does not exist: %s", name)
	}
	return output("File deleted: " + name)
}

func (i *Interpreter) run(name string) Result {
	if res, ok := checkName(name); !ok {
		return res
	}
	content, err := i.session.fs.ReadFile(i.session.current.Child(name))
	if err != nil {
		return failure(err, "File does not exist: %s", name)
	}

	lines, err := i.evaluator.Run(name, content)
	switch {
	case errors.Is(err, floppy.ErrRunDisabled):
		return failure(err, "Run is disabled")
	case err != nil:
		return failure(err, "Error running file: %v", err)
	case len(lines) == 0:
		return output(fmt.Sprintf("Ran %s: no values", name))
	}
	return output(lines...)
}

func (i *Interpreter) save(string) Result {
	if i.drive == nil {
		return failure(errors.New("no floppy drive attached"), "Error saving file system: no floppy drive attached")
	}

	snap, err := i.session.fs.Export()
	if err != nil {
		return failure(err, "Error saving file system: %v", err)
	}
	name, err := i.drive.Save(snap)
	if err != nil {
		i.logger.Error("[%s] save failed: %v", i.session.ID, err)
		return failure(err, "Error saving file system: %v", err)
	}

	i.logger.Verbose("[%s] saved %d directories and %d files to %s", i.session.ID, len(snap.Directories), len(snap.Files), name)
	return output("File system saved to floppy disk: " + name)
}

func (i *Interpreter) load(name string) Result {
	if name == "" {
		name = floppy.SnapshotFileName
	}
	if err := i.Mount(name); err != nil {
		return failure(err, "Error loading file system: %v", err)
	}
	return output("File system loaded from " + name)
}

// Mount replaces the filesystem with the named image from the drive and
// returns the session to root. On error nothing changes.
func (i *Interpreter) Mount(name string) error {
	if i.drive == nil {
		return errors.New("no floppy drive attached")
	}

	snap, err := i.drive.Load(name)
	if err != nil {
		return err
	}
	if err := i.session.fs.Import(snap); err != nil {
		return err
	}

	i.session.reset()
	if dirs, files, err := i.session.fs.Stats(); err == nil {
		i.logger.Verbose("[%s] loaded %d directories and %d files from %s", i.session.ID, dirs, files, name)
	}
	return nil
}

func (i *Interpreter) exit(string) Result {
	return Result{Lines: []string{"Goodbye."}, Quit: true}
}
