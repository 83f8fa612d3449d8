// Package keys contains keybinding definitions.
package keys

import "github.com/charmbracelet/bubbles/key"

// Common bindings shared by both screens.
type CommonKeys struct {
	Help key.Binding
	Quit key.Binding
}

// MarketplaceKeys are active on the listing page.
type MarketplaceKeys struct {
	Download   key.Binding
	Contact    key.Binding
	NextField  key.Binding
	PrevField  key.Binding
	Send       key.Binding
	Blur       key.Binding
	GitHub     key.Binding
	LinkedIn   key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
}

// EditorKeys are active in the editor view.
type EditorKeys struct {
	Back          key.Binding
	ToggleSidebar key.Binding
	Up            key.Binding
	Down          key.Binding
	Open          key.Binding
	CloseTab      key.Binding
	NextTab       key.Binding
	PrevTab       key.Binding
	PageUp        key.Binding
	PageDown      key.Binding
	LineNumbers   key.Binding
	Preview       key.Binding
}

var Common = CommonKeys{
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

var Marketplace = MarketplaceKeys{
	Download: key.NewBinding(
		key.WithKeys("d", "enter"),
		key.WithHelp("d", "download"),
	),
	Contact: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "contact form"),
	),
	NextField: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
	PrevField: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous field"),
	),
	Send: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "send email"),
	),
	Blur: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "leave form"),
	),
	GitHub: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "open GitHub"),
	),
	LinkedIn: key.NewBinding(
		key.WithKeys("L"),
		key.WithHelp("L", "open LinkedIn"),
	),
	ScrollUp: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "scroll up"),
	),
	ScrollDown: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "scroll down"),
	),
}

var Editor = EditorKeys{
	Back: key.NewBinding(
		key.WithKeys("esc", "backspace"),
		key.WithHelp("esc", "back to listing"),
	),
	ToggleSidebar: key.NewBinding(
		key.WithKeys("ctrl+b", "e"),
		key.WithHelp("ctrl+b", "toggle explorer"),
	),
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "previous file"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "next file"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter", "o"),
		key.WithHelp("enter", "open file"),
	),
	CloseTab: key.NewBinding(
		key.WithKeys("w", "ctrl+w"),
		key.WithHelp("w", "close tab"),
	),
	NextTab: key.NewBinding(
		key.WithKeys("tab", "]"),
		key.WithHelp("tab", "next tab"),
	),
	PrevTab: key.NewBinding(
		key.WithKeys("shift+tab", "["),
		key.WithHelp("shift+tab", "previous tab"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "ctrl+u"),
		key.WithHelp("pgup", "scroll up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+d", " "),
		key.WithHelp("pgdn", "scroll down"),
	),
	LineNumbers: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "line numbers"),
	),
	Preview: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "markdown preview"),
	),
}

// ShortHelp returns keybindings for the short help view.
func (k MarketplaceKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Download, k.Contact, Common.Help, Common.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k MarketplaceKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Download, k.GitHub, k.LinkedIn, k.ScrollUp, k.ScrollDown},
		{k.Contact, k.NextField, k.PrevField, k.Send, k.Blur},
		{Common.Help, Common.Quit},
	}
}

func (k EditorKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.CloseTab, k.NextTab, k.Back, Common.Help}
}

func (k EditorKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open, k.ToggleSidebar},
		{k.NextTab, k.PrevTab, k.CloseTab, k.PageUp, k.PageDown},
		{k.LineNumbers, k.Preview, k.Back, Common.Help, Common.Quit},
	}
}
