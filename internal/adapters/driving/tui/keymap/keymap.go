// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help shows the help view.
	Help key.Binding

	// Prev moves the cursor to the previous slot.
	Prev key.Binding

	// Next moves the cursor to the next slot.
	Next key.Binding

	// Accept records the current detection as correct.
	Accept key.Binding

	// MarkEmpty records the current slot as holding no item.
	MarkEmpty key.Binding

	// Skip leaves the current slot unlabeled and moves on.
	Skip key.Binding

	// Finish ends the session and shows the summary.
	Finish key.Binding

	// Cancel backs out of the current view.
	Cancel key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev slot"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next slot"),
		),
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "accept"),
		),
		MarkEmpty: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "mark empty"),
		),
		Skip: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "skip"),
		),
		Finish: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "finish"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// ReviewHelp returns keybindings for the review view.
func (k *KeyMap) ReviewHelp() []key.Binding {
	return []key.Binding{k.Accept, k.MarkEmpty, k.Skip, k.Finish}
}

// ShortHelp returns a short list of keybindings for the help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Help}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next},
		{k.Accept, k.MarkEmpty, k.Skip},
		{k.Finish, k.Cancel, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}

// AlternativeIndex maps a digit key to a quick-select alternative index.
// Returns -1 when the key is not a digit between 1 and 6.
func AlternativeIndex(keyStr string) int {
	if len(keyStr) != 1 {
		return -1
	}
	c := keyStr[0]
	if c < '1' || c > '6' {
		return -1
	}
	return int(c - '1')
}
