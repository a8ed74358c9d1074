package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Stop key.Binding
	Help key.Binding
}

var keys = keyMap{
	Stop: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "stop session"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Stop, k.Help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Stop, k.Help}}
}
