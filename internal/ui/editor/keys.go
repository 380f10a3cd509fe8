package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the editor commands.
type KeyMap struct {
	Export  key.Binding
	Copy    key.Binding
	Example key.Binding
	Clear   key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Export: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "export"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy json"),
		),
		Example: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("ctrl+e", "example"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "clear"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// bindings returns the bindings in help order.
func (k KeyMap) bindings() []key.Binding {
	return []key.Binding{k.Export, k.Copy, k.Example, k.Clear, k.Quit}
}
