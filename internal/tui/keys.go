package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the watch view's key bindings
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Flip   key.Binding
	Pulse  key.Binding
	AllOn  key.Binding
	AllOff key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "select previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "select next"),
		),
		Flip: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "flip selected relay"),
		),
		Pulse: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "pulse selected relay"),
		),
		AllOn: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "all relays on"),
		),
		AllOff: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "all relays off"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "Q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flip, k.Pulse, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Flip, k.Pulse},
		{k.AllOn, k.AllOff, k.Help, k.Quit},
	}
}
