// SPDX-License-Identifier: MIT

package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the keybindings of the balancing view.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Balance confirms the current input.
	Balance key.Binding

	// Clear empties the input line.
	Clear key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
		Balance: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "balance"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "clear"),
		),
	}
}

// ShortHelp lists the bindings shown in the help line.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Balance, k.Clear, k.Quit}
}
