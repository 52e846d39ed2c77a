package shell

import (
	"fmt"

	"github.com/vvka-141/floppy/pkg/floppy"
)

// startEdit moves the session from Idle to Editing if name is a file in the
// current directory.
func (i *Interpreter) startEdit(name string) Result {
	if res, ok := checkName(name); !ok {
		return res
	}
	target := i.session.current.Child(name)
	if !i.session.fs.FileExists(target) {
		return failure(fmt.Errorf("%s: %w", name, floppy.ErrNotFound), "File does not exist: %s", name)
	}
	i.session.edit = Editing{Target: target, Name: name}
	i.logger.Verbose("[%s] editing %s", i.session.ID, target)
	return output(fmt.Sprintf("Editing %s. Type '%s' to save and quit.", name, floppy.EditTerminator))
}

// editLine handles one input line while Editing.
func (i *Interpreter) editLine(state Editing, line string) Result {
	if line == floppy.EditTerminator {
		i.session.edit = Idle{}
		i.logger.Verbose("[%s] saved %s", i.session.ID, state.Target)
		return output("File saved: " + state.Name)
	}

	if err := i.session.fs.AppendFile(state.Target, line+"\n"); err != nil {
		i.session.edit = Idle{}
		i.logger.Error("[%s] edit of %s aborted: %v", i.session.ID, state.Target, err)
		return failure(err, "File does not exist: %s", state.Name)
	}
	return Result{}
}
