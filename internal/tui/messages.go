package tui

import "github.com/andrewfx2/cardshelf/internal/model"

// cardsLoadedMsg carries the result of a catalog fetch. Messages are
// routed by catalog ID so a slow fetch for one catalog never clobbers
// another.
type cardsLoadedMsg struct {
	catalogID string
	cards     []model.Card
	err       error
}

// searchDebounceMsg fires when the search debounce window elapses. The
// sequence number identifies which keystroke scheduled it; a stale
// sequence is ignored.
type searchDebounceMsg struct {
	catalogID string
	seq       int
}
