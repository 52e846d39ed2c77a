package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/floppy/internal/eval"
	"github.com/vvka-141/floppy/internal/shell"
)

func newInterpreter(t *testing.T) *shell.Interpreter {
	t.Helper()
	interp, err := shell.NewInterpreter(shell.WithEvaluator(eval.Disabled{}))
	require.NoError(t, err)
	return interp
}

func TestPlain_RunPrintsOutput(t *testing.T) {
	var out bytes.Buffer
	p := NewPlain(newInterpreter(t), &out, false)

	script := "mkdir docs\ncd docs\ntouch a\ned a\nhello\n:wq\nprint a\n"
	require.NoError(t, p.Run(strings.NewReader(script)))

	assert.Equal(t, strings.Join([]string{
		"Directory created: docs",
		"Current directory: root/docs",
		"File created: a",
		"Editing a. Type ':wq' to save and quit.",
		"File saved: a",
		"a: hello",
	}, "\n")+"\n", out.String())
	assert.Equal(t, 0, p.Failed())
}

func TestPlain_CountsFailures(t *testing.T) {
	var out bytes.Buffer
	p := NewPlain(newInterpreter(t), &out, false)

	require.NoError(t, p.Run(strings.NewReader("bogus\nprint missing\nls\n")))

	assert.Equal(t, 2, p.Failed())
	assert.Contains(t, out.String(), "Unknown command: bogus")
	assert.Contains(t, out.String(), "File does not exist: missing")
}

func TestPlain_StopsAtExit(t *testing.T) {
	var out bytes.Buffer
	p := NewPlain(newInterpreter(t), &out, false)

	require.NoError(t, p.Run(strings.NewReader("exit\nmkdir late\n")))

	assert.Equal(t, "Goodbye.\n", out.String())
	assert.False(t, p.Line("ls"))
}

func TestPlain_Prompt(t *testing.T) {
	var out bytes.Buffer
	p := NewPlain(newInterpreter(t), &out, true)

	require.NoError(t, p.Run(strings.NewReader("pwd\n")))

	assert.Equal(t, "root> Current directory: root\nroot> \n", out.String())
}
