package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvka-141/floppy/internal/shell"
	"github.com/vvka-141/floppy/internal/tui/components"
)

// Interpreter is the part of shell.Interpreter the terminal drives.
type Interpreter interface {
	Execute(line string) shell.Result
	Prompt() string
	Welcome() string
	Editing() bool
	EntryNames() []string
}

// commandSource adapts an Interpreter to components.CompletionSource.
type commandSource struct {
	Interpreter
}

func (commandSource) CommandNames() []string {
	return shell.CommandNames()
}

// Terminal is the full-screen terminal: a scrolling output viewport above a
// single input line.
type Terminal struct {
	interp    Interpreter
	input     textinput.Model
	viewport  viewport.Model
	completer *components.Completer
	lines     []string
	keys      KeyMap

	width  int
	height int
	done   bool
}

// NewTerminal creates a terminal showing the welcome banner.
func NewTerminal(interp Interpreter) Terminal {
	ti := textinput.New()
	ti.CharLimit = 0
	ti.Focus()

	t := Terminal{
		interp:    interp,
		input:     ti,
		viewport:  viewport.New(80, 22),
		completer: components.NewCompleter(commandSource{interp}),
		lines:     []string{BannerStyle.Render(interp.Welcome())},
		keys:      DefaultKeyMap(),
		width:     80,
		height:    24,
	}
	t.syncPrompt()
	t.refresh()
	return t
}

// Init implements tea.Model.
func (t Terminal) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (t Terminal) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		t.width = msg.Width
		t.height = msg.Height
		t.viewport.Width = msg.Width
		t.viewport.Height = max(msg.Height-2, 1)
		t.input.Width = max(msg.Width-len(t.input.Prompt)-1, 1)
		t.refresh()
		return t, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, t.keys.Quit):
			t.done = true
			return t, tea.Quit

		case key.Matches(msg, t.keys.Submit):
			return t.submit()

		case key.Matches(msg, t.keys.Complete):
			if !t.interp.Editing() {
				t.input.SetValue(t.completer.Next(t.input.Value()))
				t.input.CursorEnd()
			}
			return t, nil

		case key.Matches(msg, t.keys.PageUp), key.Matches(msg, t.keys.PageDown):
			var cmd tea.Cmd
			t.viewport, cmd = t.viewport.Update(msg)
			return t, cmd
		}
		t.completer.Reset()
	}

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return t, cmd
}

func (t Terminal) submit() (tea.Model, tea.Cmd) {
	line := t.input.Value()
	t.lines = append(t.lines, EchoStyle.Render(t.interp.Prompt()+line))
	t.input.Reset()
	t.completer.Reset()

	res := t.interp.Execute(line)
	if res.Clear {
		t.lines = t.lines[:0]
	}
	for n, l := range res.Lines {
		switch {
		case res.Clear && n == 0:
			t.lines = append(t.lines, BannerStyle.Render(l))
		case res.Err != nil && n == 0:
			t.lines = append(t.lines, ErrorStyle.Render(l))
		default:
			t.lines = append(t.lines, OutputStyle.Render(l))
		}
	}

	t.syncPrompt()
	t.refresh()
	if res.Quit {
		t.done = true
		return t, tea.Quit
	}
	return t, nil
}

func (t *Terminal) syncPrompt() {
	t.input.Prompt = t.interp.Prompt()
	if t.interp.Editing() {
		t.input.PromptStyle = EditPromptStyle
	} else {
		t.input.PromptStyle = PromptStyle
	}
}

func (t *Terminal) refresh() {
	t.viewport.SetContent(strings.Join(t.lines, "\n"))
	t.viewport.GotoBottom()
}

// View implements tea.Model.
func (t Terminal) View() string {
	if t.done {
		return ""
	}
	return t.viewport.View() + "\n" + t.input.View() + "\n" + HelpStyle.Render(t.keys.HelpText())
}

// Lines returns the rendered output buffer.
func (t Terminal) Lines() []string {
	return t.lines
}

// RunTerminal runs the full-screen terminal until the user quits.
func RunTerminal(interp Interpreter) error {
	p := tea.NewProgram(NewTerminal(interp), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
