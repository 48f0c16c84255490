package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewfx2/cardshelf/internal/model"
)

func TestKey(t *testing.T) {
	tests := []struct {
		name string
		card model.Card
		dim  Dimension
		want string
	}{
		{
			name: "set dimension uses set name",
			card: model.Card{SetName: "Retro"},
			dim:  BySet,
			want: "Retro",
		},
		{
			name: "blank set falls back",
			card: model.Card{SetName: "  "},
			dim:  BySet,
			want: UnknownSet,
		},
		{
			name: "single team",
			card: model.Card{TeamName: "Bruins"},
			dim:  ByTeam,
			want: "Bruins",
		},
		{
			name: "multi team aggregates",
			card: model.Card{TeamName: "Bruins/Leafs"},
			dim:  ByTeam,
			want: "Multiple Teams (2)",
		},
		{
			name: "duplicate entities count once",
			card: model.Card{TeamName: "Bruins/Bruins"},
			dim:  ByTeam,
			want: "Bruins",
		},
		{
			name: "blank team falls back",
			card: model.Card{},
			dim:  ByTeam,
			want: UnknownTeam,
		},
		{
			name: "multi player aggregates",
			card: model.Card{Description: "Orr | Bourque | Chara"},
			dim:  ByPlayer,
			want: "Multiple Players (3)",
		},
		{
			name: "all dimension is constant",
			card: model.Card{TeamName: "Bruins"},
			dim:  AllCards,
			want: AllCardsKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Key(tt.card, tt.dim))
		})
	}
}

func TestPartitionBasicGrouping(t *testing.T) {
	cards := []model.Card{
		{TeamName: "Bruins", Description: "B"},
		{TeamName: "Leafs", Description: "C"},
		{TeamName: "Bruins", Description: "A"},
	}

	groups := Partition(cards, ByTeam)
	require.Len(t, groups, 2)

	assert.Equal(t, "Bruins", groups[0].Name)
	require.Len(t, groups[0].Cards, 2)
	assert.Equal(t, "A", groups[0].Cards[0].Description)
	assert.Equal(t, "B", groups[0].Cards[1].Description)

	assert.Equal(t, "Leafs", groups[1].Name)
	require.Len(t, groups[1].Cards, 1)
	assert.Equal(t, "C", groups[1].Cards[0].Description)
}

func TestPartitionMultiTeamPlacement(t *testing.T) {
	cards := []model.Card{
		{TeamName: "Bruins/Leafs", Description: "Duo"},
		{TeamName: "Bruins", Description: "Solo"},
	}

	groups := Partition(cards, ByTeam)
	require.Len(t, groups, 2)

	// The dual-team card lands only in the aggregate group.
	assert.Equal(t, "Bruins", groups[0].Name)
	assert.Equal(t, []model.Card{{TeamName: "Bruins", Description: "Solo"}}, groups[0].Cards)
	assert.Equal(t, "Multiple Teams (2)", groups[1].Name)
	assert.Equal(t, "Duo", groups[1].Cards[0].Description)
}

func TestPartitionDemotesAggregateGroups(t *testing.T) {
	cards := []model.Card{
		{TeamName: "Avalanche/Blues", Description: "X"},
		{TeamName: "Zamboni FC", Description: "Y"},
		{TeamName: "Avalanche/Blues/Bruins", Description: "Z"},
		{TeamName: "Avalanche", Description: "W"},
	}

	groups := Partition(cards, ByTeam)
	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = g.Name
	}

	// Regular names alphabetical first, "Multiple ..." alphabetical after.
	assert.Equal(t, []string{"Avalanche", "Zamboni FC", "Multiple Teams (2)", "Multiple Teams (3)"}, names)
}

func TestPartitionSetDimensionHasNoDemotionTier(t *testing.T) {
	cards := []model.Card{
		{SetName: "Zebra Stripes"},
		{SetName: "Multiple Exposure"},
		{SetName: "Base"},
	}

	groups := Partition(cards, BySet)
	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = g.Name
	}

	assert.Equal(t, []string{"Base", "Multiple Exposure", "Zebra Stripes"}, names)
}

func TestPartitionInvariant(t *testing.T) {
	cards := []model.Card{
		{TeamName: "Bruins", Description: "A", CardNumber: "1"},
		{TeamName: "Bruins/Leafs", Description: "B", CardNumber: "2"},
		{TeamName: "", Description: "C", CardNumber: "3"},
		{TeamName: "Leafs", Description: "D", CardNumber: "4"},
		{TeamName: "Leafs", Description: "D", CardNumber: "5"},
	}

	for _, dim := range []Dimension{ByTeam, ByPlayer, BySet, AllCards} {
		groups := Partition(cards, dim)

		seen := make(map[string]int)
		total := 0
		for _, g := range groups {
			total += len(g.Cards)
			for _, c := range g.Cards {
				seen[c.CardNumber]++
			}
		}

		assert.Equal(t, len(cards), total, "dimension %s", dim)
		for _, c := range cards {
			assert.Equal(t, 1, seen[c.CardNumber], "card %s under %s", c.CardNumber, dim)
		}
	}
}

func TestPartitionDeterministic(t *testing.T) {
	cards := []model.Card{
		{TeamName: "Leafs", Description: "z"},
		{TeamName: "Bruins", Description: "A"},
		{TeamName: "Leafs", Description: "Z"},
		{TeamName: "bruins", Description: "a"},
	}

	first := Partition(cards, ByTeam)
	second := Partition(cards, ByTeam)
	assert.Equal(t, first, second)
}

func TestPartitionStableTies(t *testing.T) {
	// Same player name: input order must survive the in-group sort.
	cards := []model.Card{
		{TeamName: "Bruins", Description: "Orr", CardNumber: "1"},
		{TeamName: "Bruins", Description: "Orr", CardNumber: "2"},
		{TeamName: "Bruins", Description: "Orr", CardNumber: "3"},
	}

	groups := Partition(cards, ByTeam)
	require.Len(t, groups, 1)
	assert.Equal(t, "1", groups[0].Cards[0].CardNumber)
	assert.Equal(t, "2", groups[0].Cards[1].CardNumber)
	assert.Equal(t, "3", groups[0].Cards[2].CardNumber)
}

func TestParseDimension(t *testing.T) {
	for _, dim := range []Dimension{ByTeam, ByPlayer, BySet, AllCards} {
		parsed, err := ParseDimension(dim.String())
		require.NoError(t, err)
		assert.Equal(t, dim, parsed)
	}

	_, err := ParseDimension("rarity")
	assert.Error(t, err)
}
