package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/andrewfx2/cardshelf/internal/catalog"
	"github.com/andrewfx2/cardshelf/internal/model"
)

// chromeHeight is the number of lines spent on header, stats, search and
// help around the scrolling list.
const chromeHeight = 6

// View renders the widget for the current state.
func (w *Widget) View() string {
	var b strings.Builder

	b.WriteString(w.renderHeader())
	b.WriteString("\n")

	switch w.state {
	case stateLoading:
		b.WriteString(w.renderLoading())
	case stateError:
		b.WriteString(w.renderError())
	case stateEmpty:
		b.WriteString(w.theme.EmptyNotice.Render("No cards in this catalog."))
	case stateReady:
		b.WriteString(w.renderList())
	}

	b.WriteString("\n")
	b.WriteString(w.renderHelp())
	return b.String()
}

func (w *Widget) renderHeader() string {
	title := w.catalog.Title
	if title == "" {
		title = w.catalog.Table
	}

	lines := []string{w.theme.Title.Render(title)}
	if w.catalog.Description != "" {
		lines = append(lines, w.theme.Subtitle.Render(w.catalog.Description))
	}
	if w.state == stateReady {
		lines = append(lines, w.theme.StatsLine.Render(w.renderStats()))
	}
	if w.searching {
		lines = append(lines, "/ "+w.searchInput.View())
	} else if w.criteria.Search != "" {
		lines = append(lines, w.theme.Subtitle.Render(fmt.Sprintf("search: %q", w.criteria.Search)))
	}
	return strings.Join(lines, "\n")
}

// renderStats builds the one-line summary of the filtered set plus the
// active filters, mirroring the checklist footer of the hosted widget.
func (w *Widget) renderStats() string {
	stats := catalog.Tally(w.filtered)

	parts := []string{fmt.Sprintf("%d cards", stats.Total)}
	if stats.Rookies > 0 {
		parts = append(parts, fmt.Sprintf("%d RC", stats.Rookies))
	}
	if stats.Autos > 0 {
		parts = append(parts, fmt.Sprintf("%d auto", stats.Autos))
	}
	if stats.Mem > 0 {
		parts = append(parts, fmt.Sprintf("%d mem", stats.Mem))
	}
	if stats.Serialed > 0 {
		parts = append(parts, fmt.Sprintf("%d #'d", stats.Serialed))
	}

	parts = append(parts, "by "+w.dim.String())
	if w.criteria.Kind != catalog.KindAny {
		parts = append(parts, "type: "+w.criteria.Kind.String())
	}
	if w.criteria.Team != "" {
		parts = append(parts, "team: "+w.criteria.Team)
	}
	if w.criteria.Set != "" {
		parts = append(parts, "set: "+w.criteria.Set)
	}
	return strings.Join(parts, " · ")
}

func (w *Widget) renderLoading() string {
	return fmt.Sprintf("%s Loading %s...", w.spinner.View(), w.catalog.Table)
}

func (w *Widget) renderError() string {
	msg := fmt.Sprintf("Failed to load catalog: %v\n\nPress r to retry.", w.loadErr)
	return w.theme.ErrorPanel.Render(msg)
}

func (w *Widget) renderList() string {
	if len(w.rows) == 0 {
		return w.theme.EmptyNotice.Render("No cards match the current filters. Press c to clear.")
	}

	visible := w.contentHeight()
	end := w.viewOffset + visible
	if end > len(w.rows) {
		end = len(w.rows)
	}

	var lines []string
	for i := w.viewOffset; i < end; i++ {
		lines = append(lines, w.renderRow(i))
	}

	if w.dim == catalog.AllCards && w.totalPages > 1 {
		lines = append(lines, w.theme.Subtitle.Render(
			fmt.Sprintf("page %d/%d · h/l or 1-9 to flip", w.page, w.totalPages)))
	}
	return strings.Join(lines, "\n")
}

func (w *Widget) renderRow(i int) string {
	r := w.rows[i]
	selected := i == w.cursor

	if r.kind == rowGroupHeader {
		return w.renderGroupHeader(r, selected)
	}
	return w.renderCardRow(r, selected)
}

func (w *Widget) renderGroupHeader(r row, selected bool) string {
	group := w.groups[r.group]

	arrow := "▸"
	style := w.theme.GroupHeader
	if w.expanded[group.Name] {
		arrow = "▾"
		style = w.theme.GroupExpanded
	}

	line := fmt.Sprintf("%s %s %s", arrow, style.Render(group.Name),
		w.theme.GroupCount.Render(fmt.Sprintf("(%d)", len(group.Cards))))
	if selected {
		return w.theme.Cursor.Render("▍") + " " + line
	}
	return "  " + line
}

func (w *Widget) renderCardRow(r row, selected bool) string {
	group := w.groups[r.group]
	card := group.Cards[r.card]

	indent := "    "
	if w.dim == catalog.AllCards {
		indent = "  "
	}

	marker := " "
	if selected {
		marker = w.theme.Cursor.Render("▍")
	}

	identity := cardIdentity(group.Name, r.card)

	// Narrow layouts reformat far more often per keystroke, so the styled
	// body is memoized there until the row set changes.
	body, cached := "", false
	if w.width < narrowWidth {
		body, cached = w.lineCache[identity]
	}
	if !cached {
		title := w.theme.CardTitle.Render(catalog.Title(card, w.dim))
		subtitle := catalog.Subtitle(card, w.dim)

		segments := []string{fmt.Sprintf("#%s", strings.TrimSpace(card.CardNumber)), title}
		if subtitle != "" {
			segments = append(segments, w.theme.CardSubtitle.Render(subtitle))
		}
		for _, badge := range catalog.Badges(card) {
			segments = append(segments, w.theme.Badge(badge.Kind).Render(badge.Text))
		}
		body = strings.Join(segments, " ")
		if w.width < narrowWidth {
			w.lineCache[identity] = body
		}
	}

	line := marker + indent + body
	if w.expandedCard == identity {
		line += "\n" + w.renderDetail(card, indent+"  ")
	}
	return line
}

// renderDetail shows the complete, untruncated card data. The list rows
// summarize multi-valued fields; the detail panel never does.
func (w *Widget) renderDetail(card model.Card, indent string) string {
	label := func(s string) string { return w.theme.DetailLabel.Render(s + ":") }
	value := func(s string) string { return w.theme.DetailValue.Render(s) }

	var lines []string
	add := func(name, v string) {
		if strings.TrimSpace(v) == "" {
			return
		}
		lines = append(lines, fmt.Sprintf("%s%s %s", indent, label(name), value(v)))
	}

	add("Set", card.SetName)
	add("Players", strings.Join(catalog.Entities(card.Description), ", "))
	add("Team", card.FullTeam())
	if card.IsRookie() {
		add("Rookie", card.Rookie)
	}
	if card.HasAuto() {
		add("Auto", card.Auto)
	}
	if card.HasMem() {
		add("Mem", card.Mem)
	}
	if card.IsSerialNumbered() {
		add("Serial", card.SerialNumbered)
	}
	add("SPs", card.ShortPrints)
	add("Odds", card.Odds)
	if model.HasValue(card.PointValue) {
		add("Points", card.PointValue)
	}

	border := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(w.theme.Border).
		PaddingLeft(1)
	return border.Render(strings.Join(lines, "\n"))
}

func (w *Widget) renderHelp() string {
	var parts []string
	for _, binding := range w.keys.ShortHelp() {
		h := binding.Help()
		parts = append(parts, fmt.Sprintf("%s %s", h.Key, h.Desc))
	}
	return w.theme.Help.Render(strings.Join(parts, "  "))
}
