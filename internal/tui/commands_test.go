package tui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewfx2/cardshelf/internal/store"
)

func TestFetchCardsCmdDeliversCards(t *testing.T) {
	fetcher := store.StaticFetcher(store.SampleCards())

	msg := fetchCardsCmd(fetcher, "main", "hockey_cards")()
	loaded, ok := msg.(cardsLoadedMsg)
	require.True(t, ok)

	assert.Equal(t, "main", loaded.catalogID)
	assert.NoError(t, loaded.err)
	assert.Len(t, loaded.cards, len(store.SampleCards()))
}

func TestFetchCardsCmdDeliversTransportErrors(t *testing.T) {
	fetcher := store.FailingFetcher(503, "service unavailable")

	msg := fetchCardsCmd(fetcher, "main", "hockey_cards")()
	loaded, ok := msg.(cardsLoadedMsg)
	require.True(t, ok)

	require.Error(t, loaded.err)
	var terr *store.TransportError
	require.True(t, errors.As(loaded.err, &terr))
	assert.Equal(t, 503, terr.Status)
	assert.Empty(t, loaded.cards)
}

func TestDebounceWindowNarrowsWithTerminal(t *testing.T) {
	// The command itself is opaque; the window choice is what matters.
	assert.Less(t, debounceNarrow, debounceWide)
	assert.NotNil(t, debounceSearchCmd("main", 1, 60))
	assert.NotNil(t, debounceSearchCmd("main", 1, 120))
}
