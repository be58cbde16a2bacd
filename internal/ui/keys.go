package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Prev   key.Binding
	Next   key.Binding
	Up     key.Binding
	Down   key.Binding
	Today  key.Binding
	Reload key.Binding
	Switch key.Binding
	Wider  key.Binding
	Narrow key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Prev:   key.NewBinding(key.WithKeys("left", "h", "p"), key.WithHelp("←/h", "prev day")),
		Next:   key.NewBinding(key.WithKeys("right", "l", "n"), key.WithHelp("→/l", "next day")),
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Today:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Switch: key.NewBinding(key.WithKeys("tab", "s"), key.WithHelp("tab", "day/stats")),
		Wider:  key.NewBinding(key.WithKeys("]", "+"), key.WithHelp("]", "+7 days")),
		Narrow: key.NewBinding(key.WithKeys("[", "-"), key.WithHelp("[", "-7 days")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Switch, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Today, k.Reload},
		{k.Up, k.Down, k.Switch},
		{k.Wider, k.Narrow, k.Help, k.Quit},
	}
}
