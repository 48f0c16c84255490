package catalog

import (
	"fmt"
	"strings"

	"github.com/andrewfx2/cardshelf/internal/model"
)

// DefaultDisplayBudget is the character budget for entity-summarized titles
// and subtitles before the "+N more" rule kicks in.
const DefaultDisplayBudget = 34

// BadgeKind identifies the badge category for styling.
type BadgeKind int

// Badge kinds, in display order.
const (
	BadgeRookie BadgeKind = iota
	BadgeAuto
	BadgeMem
	BadgeSerial
	BadgePoints
)

// Badge is one labeled marker derived from a card.
type Badge struct {
	Kind BadgeKind
	Text string
}

// Badges derives the badge list for a card in fixed order: rookie, auto,
// memorabilia, serial, points. Absent fields produce no badge, and each value
// is deduplicated before display.
func Badges(card model.Card) []Badge {
	var badges []Badge

	if card.IsRookie() {
		badges = append(badges, Badge{Kind: BadgeRookie, Text: DedupBadge(card.Rookie)})
	}
	if card.HasAuto() {
		badges = append(badges, Badge{Kind: BadgeAuto, Text: DedupBadge(card.Auto)})
	}
	if card.HasMem() {
		badges = append(badges, Badge{Kind: BadgeMem, Text: DedupBadge(card.Mem)})
	}
	if card.IsSerialNumbered() {
		text := DedupBadge(card.SerialNumbered)
		if !strings.HasPrefix(text, "/") {
			text = "/" + text
		}
		badges = append(badges, Badge{Kind: BadgeSerial, Text: text})
	}
	if model.HasValue(card.PointValue) {
		badges = append(badges, Badge{Kind: BadgePoints, Text: strings.TrimSpace(card.PointValue) + " pts"})
	}

	return badges
}

// Title returns the headline string for a card under the active dimension.
func Title(card model.Card, dim Dimension) string {
	if dim == ByPlayer {
		return strings.TrimSpace(card.SetName)
	}
	return playerDisplay(card)
}

// Subtitle returns the secondary string for a card under the active
// dimension.
func Subtitle(card model.Card, dim Dimension) string {
	if dim == ByTeam {
		return strings.TrimSpace(card.SetName)
	}
	return teamDisplay(card)
}

// Entities exposes the analyzer's entity list for a raw field so the detail
// view can always show the complete, untruncated data.
func Entities(raw string) []string {
	return SplitEntities(raw, GroupDelims)
}

func playerDisplay(card model.Card) string {
	return SummarizeEntities(SplitEntities(card.Description, DisplayDelims), DefaultDisplayBudget)
}

func teamDisplay(card model.Card) string {
	entities := SplitEntities(card.TeamName, DisplayDelims)
	if len(entities) <= 1 {
		// Single team: show the city-qualified form.
		return truncateEllipsis(card.FullTeam(), DefaultDisplayBudget)
	}
	return SummarizeEntities(entities, DefaultDisplayBudget)
}

// SummarizeEntities renders an entity list within a character budget. One
// entity shows verbatim (hard-truncated if very long). Two entities join as
// "A & B" when that fits, then try the abbreviation table, then fall back to
// "+1 more". Three or more always summarize as "<first> +<N-1> more".
// Presentation only: the underlying entity list is never altered.
func SummarizeEntities(entities []string, budget int) string {
	if budget <= 0 {
		budget = DefaultDisplayBudget
	}

	switch len(entities) {
	case 0:
		return ""
	case 1:
		return truncateEllipsis(entities[0], budget)
	case 2:
		joined := entities[0] + " & " + entities[1]
		if len(joined) <= budget {
			return joined
		}
		abbreviated := abbreviate(entities[0]) + " & " + abbreviate(entities[1])
		if len(abbreviated) <= budget {
			return abbreviated
		}
		return moreSummary(entities[0], 1, budget)
	default:
		return moreSummary(entities[0], len(entities)-1, budget)
	}
}

func moreSummary(first string, rest, budget int) string {
	suffix := fmt.Sprintf(" +%d more", rest)
	head := budget - len(suffix)
	if head < 1 {
		head = 1
	}
	return truncateEllipsis(first, head) + suffix
}

func truncateEllipsis(s string, maxLen int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 1 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-1]) + "…"
}

// teamAbbrevs maps common long team names onto recognizable short forms for
// the two-entity joined display.
var teamAbbrevs = map[string]string{
	"Maple Leafs":    "Leafs",
	"Golden Knights": "Knights",
	"Blue Jackets":   "Jackets",
	"Hurricanes":     "Canes",
	"Avalanche":      "Avs",
	"Lightning":      "Bolts",
	"Predators":      "Preds",
	"Blackhawks":     "Hawks",
	"Senators":       "Sens",
	"Canadiens":      "Habs",
	"Red Wings":      "Wings",
	"Islanders":      "Isles",
}

func abbreviate(name string) string {
	if short, ok := teamAbbrevs[name]; ok {
		return short
	}
	return name
}
