package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Test   key.Binding
	Toggle key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Test: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "test alarm"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "a"),
			key.WithHelp("space", "disable alarm"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Test, k.Toggle, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Test, k.Toggle},
		{k.Help, k.Quit},
	}
}
