package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up     key.Binding
	down   key.Binding
	enter  key.Binding
	esc    key.Binding
	sync   key.Binding
	print  key.Binding
	export key.Binding
	copy   key.Binding
	quit   key.Binding
}

var keys = keyMap{
	up:     key.NewBinding(key.WithKeys("up", "k")),
	down:   key.NewBinding(key.WithKeys("down", "j")),
	enter:  key.NewBinding(key.WithKeys("enter")),
	esc:    key.NewBinding(key.WithKeys("esc")),
	sync:   key.NewBinding(key.WithKeys("r")),
	print:  key.NewBinding(key.WithKeys("p")),
	export: key.NewBinding(key.WithKeys("e")),
	copy:   key.NewBinding(key.WithKeys("c")),
	quit:   key.NewBinding(key.WithKeys("q", "ctrl+c")),
}
