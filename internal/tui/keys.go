package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the terminal screen.
type KeyMap struct {
	Submit   key.Binding
	Complete key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run"),
		),
		Complete: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "complete"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdown", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// HelpText returns a one-line summary of the bindings.
func (k KeyMap) HelpText() string {
	return "enter run • tab complete • pgup/pgdown scroll • ctrl+c quit"
}
