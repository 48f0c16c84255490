package catalog

import (
	"strings"

	"github.com/andrewfx2/cardshelf/internal/model"
)

// Kind is the single-choice type facet.
type Kind int

// Type facet values.
const (
	KindAny Kind = iota
	KindRookie
	KindAuto
	KindMem
	KindSerial
)

// String returns the facet label used in config and the UI.
func (k Kind) String() string {
	switch k {
	case KindRookie:
		return "rookie"
	case KindAuto:
		return "auto"
	case KindMem:
		return "mem"
	case KindSerial:
		return "serial"
	default:
		return "any"
	}
}

// Criteria is the composite filter predicate. Zero value matches everything.
// All set fields combine with AND semantics.
type Criteria struct {
	Search string // case-insensitive substring over Card.SearchText
	Team   string // containment against the unsplit team field
	Set    string // containment against the set field
	Kind   Kind
}

// IsZero reports whether no criterion is active.
func (c Criteria) IsZero() bool {
	return strings.TrimSpace(c.Search) == "" && c.Team == "" && c.Set == "" && c.Kind == KindAny
}

// Matches applies the composite predicate to a single card.
func (c Criteria) Matches(card model.Card) bool {
	if term := strings.ToLower(strings.TrimSpace(c.Search)); term != "" {
		if !strings.Contains(card.SearchText(), term) {
			return false
		}
	}

	// Facets use containment, not equality, so a value derived from one
	// entity of a split multi-team field still matches the combined field.
	if c.Team != "" && !strings.Contains(card.TeamName, c.Team) {
		return false
	}
	if c.Set != "" && !strings.Contains(card.SetName, c.Set) {
		return false
	}

	switch c.Kind {
	case KindRookie:
		return card.IsRookie()
	case KindAuto:
		return card.HasAuto()
	case KindMem:
		return card.HasMem()
	case KindSerial:
		return card.IsSerialNumbered()
	default:
		return true
	}
}

// Apply filters cards against the criteria, preserving input order. The input
// slice is never mutated.
func Apply(cards []model.Card, c Criteria) []model.Card {
	filtered := make([]model.Card, 0, len(cards))
	for _, card := range cards {
		if c.Matches(card) {
			filtered = append(filtered, card)
		}
	}
	return filtered
}

// Stats summarizes a card set for the stats line. Counts use the same
// emptiness predicates as the type facet and the badge renderer.
type Stats struct {
	Total    int
	Rookies  int
	Autos    int
	Mem      int
	Serialed int
}

// Tally computes aggregate statistics over the given cards.
func Tally(cards []model.Card) Stats {
	var s Stats
	s.Total = len(cards)
	for _, card := range cards {
		if card.IsRookie() {
			s.Rookies++
		}
		if card.HasAuto() {
			s.Autos++
		}
		if card.HasMem() {
			s.Mem++
		}
		if card.IsSerialNumbered() {
			s.Serialed++
		}
	}
	return s
}

// TeamOptions returns the distinct team entities across all cards, sorted for
// the team facet selector. Multi-valued fields contribute each entity.
func TeamOptions(cards []model.Card) []string {
	return facetOptions(cards, func(c model.Card) string { return c.TeamName })
}

// SetOptions returns the distinct set names across all cards, sorted for the
// set facet selector.
func SetOptions(cards []model.Card) []string {
	return facetOptions(cards, func(c model.Card) string { return c.SetName })
}

func facetOptions(cards []model.Card, field func(model.Card) string) []string {
	seen := make(map[string]bool)
	var options []string
	for _, card := range cards {
		for _, entity := range SplitEntities(field(card), GroupDelims) {
			if !seen[entity] {
				seen[entity] = true
				options = append(options, entity)
			}
		}
	}
	sortLocale(options)
	return options
}
