// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	forceQuit key.Binding
	newItem   key.Binding
	reload    key.Binding
	edit      key.Binding
	delete    key.Binding
	copyAddr  key.Binding
	copyLink  key.Binding
	buildInfo key.Binding
	yes       key.Binding
	no        key.Binding
	submit    key.Binding
	toggle    key.Binding
	remove    key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab", "down")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab", "up")),
	quit:      key.NewBinding(key.WithKeys("q")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	newItem:   key.NewBinding(key.WithKeys("n")),
	reload:    key.NewBinding(key.WithKeys("r")),
	edit:      key.NewBinding(key.WithKeys("e")),
	delete:    key.NewBinding(key.WithKeys("d")),
	copyAddr:  key.NewBinding(key.WithKeys("c")),
	copyLink:  key.NewBinding(key.WithKeys("l")),
	buildInfo: key.NewBinding(key.WithKeys("v")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n", "esc")),
	submit:    key.NewBinding(key.WithKeys("ctrl+s")),
	toggle:    key.NewBinding(key.WithKeys(" ", "enter")),
	remove:    key.NewBinding(key.WithKeys("enter", "delete", "backspace", "x")),
}
