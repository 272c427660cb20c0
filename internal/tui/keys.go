package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	refresh     key.Binding
	copy        key.Binding
	acknowledge key.Binding
	reset       key.Binding
	quit        key.Binding
}

var keys = keyMap{
	refresh:     key.NewBinding(key.WithKeys("r")),
	copy:        key.NewBinding(key.WithKeys("c")),
	acknowledge: key.NewBinding(key.WithKeys("a")),
	reset:       key.NewBinding(key.WithKeys("x")),
	quit:        key.NewBinding(key.WithKeys("q", "ctrl+c")),
}
