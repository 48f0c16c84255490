package catalog

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/andrewfx2/cardshelf/internal/model"
)

// Dimension is the axis used to partition filtered cards into groups.
type Dimension int

// Grouping dimensions.
const (
	ByTeam Dimension = iota
	ByPlayer
	BySet
	AllCards
)

// ParseDimension maps a config/UI label onto a Dimension.
func ParseDimension(s string) (Dimension, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "team":
		return ByTeam, nil
	case "player":
		return ByPlayer, nil
	case "set":
		return BySet, nil
	case "all":
		return AllCards, nil
	default:
		return ByTeam, fmt.Errorf("unknown grouping dimension %q", s)
	}
}

// String returns the label used in config and the UI.
func (d Dimension) String() string {
	switch d {
	case ByPlayer:
		return "player"
	case BySet:
		return "set"
	case AllCards:
		return "all"
	default:
		return "team"
	}
}

// Labels for cards whose grouping field is blank, and the constant key for
// the flat paginated mode.
const (
	UnknownTeam   = "Unknown Team"
	UnknownPlayer = "Unknown Player"
	UnknownSet    = "Unknown Set"
	AllCardsKey   = "All Cards"
)

// multiPrefix marks aggregate groups so ordering can demote them.
const multiPrefix = "Multiple "

// Key derives the group name for a card under the given dimension. Pure: the
// key depends only on (card, dimension).
func Key(card model.Card, dim Dimension) string {
	switch dim {
	case BySet:
		if s := strings.TrimSpace(card.SetName); s != "" {
			return s
		}
		return UnknownSet
	case ByTeam:
		return entityKey(card.TeamName, "Teams", UnknownTeam)
	case ByPlayer:
		return entityKey(card.Description, "Players", UnknownPlayer)
	default:
		return AllCardsKey
	}
}

func entityKey(raw, plural, unknown string) string {
	entities := SplitEntities(raw, GroupDelims)
	switch len(entities) {
	case 0:
		return unknown
	case 1:
		return entities[0]
	default:
		return fmt.Sprintf("%s%s (%d)", multiPrefix, plural, len(entities))
	}
}

// Group is a named bucket of cards under the current dimension.
type Group struct {
	Name  string
	Cards []model.Card
}

// Partition buckets cards by group key and returns groups in display order.
// Cards within a group sort ascending by player name, case-insensitive and
// locale-aware, ties keeping input order. Groups sort alphabetically; for
// team and player dimensions the aggregate "Multiple ..." groups form a
// trailing tier so ambiguous buckets never crowd out real ones. Every call is
// a full recompute.
func Partition(cards []model.Card, dim Dimension) []Group {
	buckets := make(map[string][]model.Card)
	var order []string
	for _, card := range cards {
		k := Key(card, dim)
		if _, ok := buckets[k]; !ok {
			order = append(order, k)
		}
		buckets[k] = append(buckets[k], card)
	}

	coll := newCollator()
	sort.SliceStable(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if dim == ByTeam || dim == ByPlayer {
			aMulti := strings.HasPrefix(a, multiPrefix)
			bMulti := strings.HasPrefix(b, multiPrefix)
			if aMulti != bMulti {
				return bMulti
			}
		}
		return coll.CompareString(a, b) < 0
	})

	groups := make([]Group, 0, len(order))
	for _, name := range order {
		members := buckets[name]
		sort.SliceStable(members, func(i, j int) bool {
			return coll.CompareString(members[i].Description, members[j].Description) < 0
		})
		groups = append(groups, Group{Name: name, Cards: members})
	}

	return groups
}

// newCollator builds the case-insensitive locale collator used for all
// display ordering. Collators are not safe for concurrent use, so callers get
// a fresh one.
func newCollator() *collate.Collator {
	return collate.New(language.English, collate.IgnoreCase)
}

func sortLocale(values []string) {
	newCollator().SortStrings(values)
}
