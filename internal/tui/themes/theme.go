// Package themes defines the visual styles for the catalog browser.
package themes

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/andrewfx2/cardshelf/internal/catalog"
)

// Theme defines the visual style for the TUI.
type Theme struct {
	badges        map[catalog.BadgeKind]lipgloss.Style
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	GroupHeader   lipgloss.Style
	GroupExpanded lipgloss.Style
	GroupCount    lipgloss.Style
	CardTitle     lipgloss.Style
	CardSubtitle  lipgloss.Style
	Cursor        lipgloss.Style
	DetailLabel   lipgloss.Style
	DetailValue   lipgloss.Style
	StatsLine     lipgloss.Style
	ErrorPanel    lipgloss.Style
	EmptyNotice   lipgloss.Style
	TabActive     lipgloss.Style
	TabInactive   lipgloss.Style
	Help          lipgloss.Style
	Muted         lipgloss.Color
	Border        lipgloss.Color
}

// Badge returns the style for a badge kind.
func (t Theme) Badge(kind catalog.BadgeKind) lipgloss.Style {
	if s, ok := t.badges[kind]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

// Default is the default theme, tuned to the rink-board look of the hosted
// widget.
var Default = Theme{
	Muted:  lipgloss.Color("#737373"),
	Border: lipgloss.Color("#004400"),

	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00FF66")),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#A3A3A3")),
	GroupHeader: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#E5E5E5")),
	GroupExpanded: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00CC66")),
	GroupCount: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")),
	CardTitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FAFAFA")),
	CardSubtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#8B949E")),
	Cursor: lipgloss.NewStyle().
		Background(lipgloss.Color("#004400")).
		Foreground(lipgloss.Color("#FAFAFA")).
		Bold(true),
	DetailLabel: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00CC66")),
	DetailValue: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#E5E5E5")),
	StatsLine: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#A5D6FF")),
	ErrorPanel: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#F85149")).
		Foreground(lipgloss.Color("#F85149")).
		Padding(0, 1),
	EmptyNotice: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#CCCCCC")).
		Italic(true),
	TabActive: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00FF66")).
		Underline(true),
	TabInactive: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")),
	Help: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")),

	badges: map[catalog.BadgeKind]lipgloss.Style{
		catalog.BadgeRookie: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1A1A1A")).
			Background(lipgloss.Color("#FFD700")).
			Padding(0, 1),
		catalog.BadgeAuto: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7C3AED")).
			Padding(0, 1),
		catalog.BadgeMem: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#B45309")).
			Padding(0, 1),
		catalog.BadgeSerial: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#1F6FEB")).
			Padding(0, 1),
		catalog.BadgePoints: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1A1A1A")).
			Background(lipgloss.Color("#4ECDC4")).
			Padding(0, 1),
	},
}
