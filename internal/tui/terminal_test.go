package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeLine(t *testing.T, term Terminal, line string) Terminal {
	t.Helper()
	for _, r := range line {
		m, _ := term.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		term = m.(Terminal)
	}
	return term
}

func press(t *testing.T, term Terminal, k tea.KeyType) (Terminal, tea.Cmd) {
	t.Helper()
	m, cmd := term.Update(tea.KeyMsg{Type: k})
	return m.(Terminal), cmd
}

func plainText(lines []string) string {
	return strings.Join(lines, "\n")
}

func TestTerminal_ShowsWelcome(t *testing.T) {
	term := NewTerminal(newInterpreter(t))

	require.Len(t, term.Lines(), 1)
	assert.Contains(t, term.Lines()[0], "Welcome to the terminal.")
	assert.Equal(t, "root> ", term.input.Prompt)
}

func TestTerminal_SubmitRunsCommand(t *testing.T) {
	term := NewTerminal(newInterpreter(t))

	term = typeLine(t, term, "mkdir docs")
	term, cmd := press(t, term, tea.KeyEnter)

	assert.Nil(t, cmd)
	assert.Equal(t, "", term.input.Value())
	out := plainText(term.Lines())
	assert.Contains(t, out, "root> mkdir docs")
	assert.Contains(t, out, "Directory created: docs")
}

func TestTerminal_PromptFollowsState(t *testing.T) {
	term := NewTerminal(newInterpreter(t))

	for _, line := range []string{"mkdir docs", "cd docs", "touch a"} {
		term = typeLine(t, term, line)
		term, _ = press(t, term, tea.KeyEnter)
	}
	assert.Equal(t, "root/docs> ", term.input.Prompt)

	term = typeLine(t, term, "ed a")
	term, _ = press(t, term, tea.KeyEnter)
	assert.Equal(t, "edit:a> ", term.input.Prompt)
}

func TestTerminal_TabCompletes(t *testing.T) {
	term := NewTerminal(newInterpreter(t))

	term = typeLine(t, term, "mkd")
	term, _ = press(t, term, tea.KeyTab)
	assert.Equal(t, "mkdir", term.input.Value())
}

func TestTerminal_TabCyclesEntries(t *testing.T) {
	term := NewTerminal(newInterpreter(t))
	for _, line := range []string{"mkdir alpha", "mkdir beta"} {
		term = typeLine(t, term, line)
		term, _ = press(t, term, tea.KeyEnter)
	}

	term = typeLine(t, term, "cd ")
	term, _ = press(t, term, tea.KeyTab)
	assert.Equal(t, "cd alpha", term.input.Value())
	term, _ = press(t, term, tea.KeyTab)
	assert.Equal(t, "cd beta", term.input.Value())
}

func TestTerminal_ClearDropsOutput(t *testing.T) {
	term := NewTerminal(newInterpreter(t))

	term = typeLine(t, term, "ls")
	term, _ = press(t, term, tea.KeyEnter)
	term = typeLine(t, term, "clear")
	term, _ = press(t, term, tea.KeyEnter)

	require.Len(t, term.Lines(), 1)
	assert.Contains(t, term.Lines()[0], "Welcome to the terminal.")
}

func TestTerminal_ExitQuits(t *testing.T) {
	term := NewTerminal(newInterpreter(t))

	term = typeLine(t, term, "exit")
	term, cmd := press(t, term, tea.KeyEnter)

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, "", term.View())
}

func TestTerminal_CtrlCQuits(t *testing.T) {
	term := NewTerminal(newInterpreter(t))

	_, cmd := press(t, term, tea.KeyCtrlC)

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestTerminal_WindowResize(t *testing.T) {
	term := NewTerminal(newInterpreter(t))

	m, _ := term.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	term = m.(Terminal)

	assert.Equal(t, 100, term.viewport.Width)
	assert.Equal(t, 38, term.viewport.Height)
}
