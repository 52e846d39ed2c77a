package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeSource struct {
	commands []string
	entries  []string
}

func (f fakeSource) CommandNames() []string { return f.commands }
func (f fakeSource) EntryNames() []string   { return f.entries }

func newTestCompleter() *Completer {
	return NewCompleter(fakeSource{
		commands: []string{"mkdir", "touch", "print", "pwd", "cd", "clear"},
		entries:  []string{"docs", "draft.txt", "notes"},
	})
}

func TestCompleter_CommandSingleMatch(t *testing.T) {
	c := newTestCompleter()
	assert.Equal(t, "mkdir", c.Next("mk"))
}

func TestCompleter_CommonPrefixFirst(t *testing.T) {
	c := newTestCompleter()
	// print and pwd share only "p"
	assert.Equal(t, "print", c.Next("p"))
	assert.Equal(t, "pwd", c.Next("print"))
}

func TestCompleter_EntryNames(t *testing.T) {
	c := newTestCompleter()
	assert.Equal(t, "cd notes", c.Next("cd no"))
}

func TestCompleter_ExtendsToCommonPrefix(t *testing.T) {
	c := newTestCompleter()
	// docs and draft.txt share "d"; "cd d" is already that long, so cycling starts
	assert.Equal(t, "cd docs", c.Next("cd d"))
	assert.Equal(t, "cd draft.txt", c.Next("cd docs"))
	assert.Equal(t, "cd docs", c.Next("cd draft.txt"))
}

func TestCompleter_ExtendsCommandPrefix(t *testing.T) {
	c := NewCompleter(fakeSource{commands: []string{"delete", "deploy"}})
	assert.Equal(t, "de", c.Next(""))
}

func TestCompleter_CyclesThroughEntries(t *testing.T) {
	c := newTestCompleter()

	r1 := c.Next("print ")
	r2 := c.Next(r1)
	r3 := c.Next(r2)
	r4 := c.Next(r3)

	assert.Equal(t, []string{"print docs", "print draft.txt", "print notes", "print docs"}, []string{r1, r2, r3, r4})
}

func TestCompleter_ResetStopsCycling(t *testing.T) {
	c := newTestCompleter()

	r1 := c.Next("print ")
	c.Reset()
	r2 := c.Next("print ")

	assert.Equal(t, r1, r2)
}

func TestCompleter_NoMatchLeavesInput(t *testing.T) {
	c := newTestCompleter()
	assert.Equal(t, "zz", c.Next("zz"))
	assert.Equal(t, "cd zz", c.Next("cd zz"))
}

func TestSplitInput(t *testing.T) {
	tests := []struct {
		input          string
		expectedHead   string
		expectedPrefix string
	}{
		{"", "", ""},
		{"pr", "", "pr"},
		{"cd ", "cd ", ""},
		{"cd do", "cd ", "do"},
	}

	for _, tt := range tests {
		head, prefix := splitInput(tt.input)
		assert.Equal(t, tt.expectedHead, head, "head of %q", tt.input)
		assert.Equal(t, tt.expectedPrefix, prefix, "prefix of %q", tt.input)
	}
}
