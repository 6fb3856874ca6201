package main

import (
	"github.com/charmbracelet/bubbles/key"
)

// Keymap holds the host-level bindings. Everything not bound here is turned
// into an editor intent (see command.go).
type Keymap struct {
	Quit       key.Binding
	QuitView   key.Binding
	ToggleList key.Binding
	OpenHelp   key.Binding
	HelpView   key.Binding
	CopyDoc    key.Binding
	SaveDoc    key.Binding
	CloseDoc   key.Binding

	// Listed in help only; these reach the list as intents.
	RowDown  key.Binding
	RowUp    key.Binding
	OpenRow  key.Binding
	NextTab  key.Binding
	PageDown key.Binding
	PageUp   key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "ctrl+q"),
		key.WithHelp("ctrl+q", "quit"),
	),
	QuitView: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit (outside the list)"),
	),
	ToggleList: key.NewBinding(
		key.WithKeys("ctrl+g"),
		key.WithHelp("ctrl+g", "open / close the snippet list"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("f1"),
		key.WithHelp("f1", "help / keys"),
	),
	HelpView: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help (outside the list)"),
	),
	CopyDoc: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy snippet to clipboard"),
	),
	SaveDoc: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "save snippet to a file"),
	),
	CloseDoc: key.NewBinding(
		key.WithKeys("ctrl+w"),
		key.WithHelp("ctrl+w", "close tab"),
	),
	RowDown: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "next snippet / line"),
	),
	RowUp: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "previous snippet / line"),
	),
	OpenRow: key.NewBinding(
		key.WithKeys("enter", "l", "right"),
		key.WithHelp("enter/l", "open snippet"),
	),
	NextTab: key.NewBinding(
		key.WithKeys("tab", "shift+tab"),
		key.WithHelp("tab", "next / previous tab"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("ctrl+d", "pgdown"),
		key.WithHelp("ctrl+d", "page down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("ctrl+u", "pgup"),
		key.WithHelp("ctrl+u", "page up"),
	),
}

func (k Keymap) Legend() []key.Binding {
	return []key.Binding{
		k.ToggleList,
		k.RowDown,
		k.RowUp,
		k.OpenRow,
		k.NextTab,
		k.PageDown,
		k.PageUp,
		k.CopyDoc,
		k.SaveDoc,
		k.CloseDoc,
		k.OpenHelp,
		k.Quit,
	}
}
