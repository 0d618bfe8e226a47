package login

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Activate key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Next:     key.NewBinding(key.WithKeys("tab", "right", "down", "j", "l"), key.WithHelp("tab", "next")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab", "left", "up", "k", "h"), key.WithHelp("shift+tab", "previous")),
		Activate: key.NewBinding(key.WithKeys("enter", " ", "space"), key.WithHelp("enter", "select")),
	}
}

// ShortHelp lists the bindings shown in the footer hint.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Activate}
}
