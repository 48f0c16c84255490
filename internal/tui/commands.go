package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andrewfx2/cardshelf/internal/store"
)

const (
	fetchTimeout = 2 * time.Minute

	// Debounce windows for search input. Narrow terminals rerender
	// less per keystroke, so they get the shorter window.
	debounceWide   = 250 * time.Millisecond
	debounceNarrow = 150 * time.Millisecond

	narrowWidth = 80
)

// fetchCardsCmd loads every record for a catalog table.
func fetchCardsCmd(fetcher store.RecordFetcher, catalogID, table string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		cards, err := fetcher.FetchAll(ctx, table)
		return cardsLoadedMsg{catalogID: catalogID, cards: cards, err: err}
	}
}

// debounceSearchCmd schedules a search application after the debounce
// window for the given terminal width.
func debounceSearchCmd(catalogID string, seq, width int) tea.Cmd {
	window := debounceWide
	if width < narrowWidth {
		window = debounceNarrow
	}
	return tea.Tick(window, func(time.Time) tea.Msg {
		return searchDebounceMsg{catalogID: catalogID, seq: seq}
	})
}
