package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding

	// Interaction
	Toggle      key.Binding
	Search      key.Binding
	CloseSearch key.Binding
	GroupBy     key.Binding
	TypeFacet   key.Binding
	TeamFacet   key.Binding
	SetFacet    key.Binding
	ClearFacets key.Binding
	Reload      key.Binding

	// All-cards mode
	PrevPage key.Binding
	NextPage key.Binding
	JumpPage key.Binding

	// Instances
	NextWidget key.Binding
	PrevWidget key.Binding

	// Application
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+b"),
			key.WithHelp("PgUp", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+f"),
			key.WithHelp("PgDn", "scroll down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("Home/g", "go to start"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("End/G", "go to end"),
		),

		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("Enter", "expand/collapse"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		CloseSearch: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "close search"),
		),
		GroupBy: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "cycle grouping"),
		),
		TypeFacet: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "cycle type filter"),
		),
		TeamFacet: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "cycle team filter"),
		),
		SetFacet: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "cycle set filter"),
		),
		ClearFacets: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear filters"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),

		PrevPage: key.NewBinding(
			key.WithKeys("h", "left", "["),
			key.WithHelp("←/h", "prev page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("l", "right", "]"),
			key.WithHelp("→/l", "next page"),
		),
		JumpPage: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "jump to page"),
		),

		NextWidget: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "next catalog"),
		),
		PrevWidget: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("Shift+Tab", "previous catalog"),
		),

		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "force quit"),
		),
	}
}

// ShortHelp returns key bindings for the help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.GroupBy, k.TypeFacet, k.Toggle, k.Reload, k.Quit}
}

// FullHelp returns all key bindings grouped for the help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Home, k.End},
		{k.Toggle, k.Search, k.GroupBy, k.Reload},
		{k.TypeFacet, k.TeamFacet, k.SetFacet, k.ClearFacets},
		{k.PrevPage, k.NextPage, k.JumpPage},
		{k.NextWidget, k.PrevWidget, k.Help, k.Quit},
	}
}
