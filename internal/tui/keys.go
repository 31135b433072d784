package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the key bindings for the TUI.
type KeyMap struct {
	Quit       key.Binding
	Help       key.Binding
	SwitchPane key.Binding

	// List pane
	Up       key.Binding
	Down     key.Binding
	Select   key.Binding
	TabOne   key.Binding
	TabTwo   key.Binding
	TabThree key.Binding
	PrevTab  key.Binding
	NextTab  key.Binding

	// Detail pane
	ScrollUp     key.Binding
	ScrollDown   key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	Top          key.Binding
	Bottom       key.Binding
	PrevPart     key.Binding
	NextPart     key.Binding
	ToggleFilter key.Binding
	Play         key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		SwitchPane: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		TabOne: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1-3", "tab"),
		),
		TabTwo: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("1-3", "tab"),
		),
		TabThree: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("1-3", "tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[]", "prev/next tab"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("[]", "prev/next tab"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "scroll down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("PgUp", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("PgDn", "page down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),
		PrevPart: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "prev participant"),
		),
		NextPart: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "next participant"),
		),
		ToggleFilter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "all/highlights"),
		),
		Play: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "play"),
		),
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.SwitchPane, k.Select, k.PrevTab, k.PrevPart, k.ToggleFilter, k.Help}
}

// FullHelp returns all key bindings for the help overlay.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Quit, k.Help, k.SwitchPane},
		{k.Up, k.Down, k.Select, k.TabOne, k.PrevTab},
		{k.ScrollUp, k.ScrollDown, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.PrevPart, k.NextPart, k.ToggleFilter, k.Play},
	}
}
