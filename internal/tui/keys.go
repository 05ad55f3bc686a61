package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter     key.Binding
	esc       key.Binding
	focus     key.Binding
	quit      key.Binding
	copy      key.Binding
	health    key.Binding
	buildInfo key.Binding
}

// Letter bindings apply only while the path input is not focused.
var keys = keyMap{
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	focus:     key.NewBinding(key.WithKeys("tab", "i")),
	quit:      key.NewBinding(key.WithKeys("q")),
	copy:      key.NewBinding(key.WithKeys("c")),
	health:    key.NewBinding(key.WithKeys("h")),
	buildInfo: key.NewBinding(key.WithKeys("v")),
}
