// Package tui implements the interactive catalog browser.
package tui

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andrewfx2/cardshelf/internal/catalog"
	"github.com/andrewfx2/cardshelf/internal/config"
	"github.com/andrewfx2/cardshelf/internal/model"
	"github.com/andrewfx2/cardshelf/internal/store"
	"github.com/andrewfx2/cardshelf/internal/tui/themes"
)

// widgetState tracks the load lifecycle of one catalog instance.
type widgetState int

const (
	stateLoading widgetState = iota
	stateReady
	stateEmpty
	stateError
)

// rowKind distinguishes the two selectable row types in the list.
type rowKind int

const (
	rowGroupHeader rowKind = iota
	rowCard
)

// row is one selectable line: either a group header or a card within an
// expanded group. The indices point into Widget.groups.
type row struct {
	kind  rowKind
	group int
	card  int // index within groups[group].Cards, -1 for headers
}

// Widget is one independent catalog browser instance. Every instance owns
// its own records, filters, grouping and expansion state, so two widgets
// over the same table never interfere.
type Widget struct {
	id      string
	catalog config.Catalog
	fetcher store.RecordFetcher
	theme   themes.Theme
	logger  *slog.Logger
	keys    KeyMap

	state   widgetState
	loadErr error

	cards    []model.Card
	criteria catalog.Criteria
	dim      catalog.Dimension
	page     int
	pageSize int

	// Derived on every rebuild.
	filtered   []model.Card
	groups     []catalog.Group
	rows       []row
	totalPages int

	// Rendered card lines, cached on narrow layouts where per-frame
	// formatting is the dominant cost. Invalidated whenever the visible
	// row set changes.
	lineCache map[string]string

	// Interaction state. expandedCard holds at most one card identity so
	// opening a detail panel closes any other.
	expanded     map[string]bool
	expandedCard string
	cursor       int
	viewOffset   int

	searching   bool
	searchInput textinput.Model
	searchSeq   int
	spinner     spinner.Model

	teamOptions []string
	setOptions  []string
	teamIdx     int // index into teamOptions, -1 = no team filter
	setIdx      int // index into setOptions, -1 = no set filter

	width  int
	height int
}

// NewWidget builds a widget for one configured catalog. The catalog must
// already be validated; an invalid grouping label here is a programmer error
// and falls back to team grouping.
func NewWidget(cat config.Catalog, opts Options) *Widget {
	dim, err := cat.Dimension()
	if err != nil {
		dim = catalog.ByTeam
	}

	pageSize := cat.PageSize
	if pageSize <= 0 {
		pageSize = config.DefaultPageSize
	}

	input := textinput.New()
	input.Placeholder = "search cards..."
	input.CharLimit = 120
	input.Width = 40

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = opts.Theme.Title

	return &Widget{
		id:          cat.ID,
		catalog:     cat,
		fetcher:     opts.Fetcher,
		theme:       opts.Theme,
		logger:      opts.Logger.With("component", "widget", "catalog", cat.ID),
		keys:        DefaultKeyMap(),
		state:       stateLoading,
		dim:         dim,
		page:        1,
		pageSize:    pageSize,
		expanded:    make(map[string]bool),
		lineCache:   make(map[string]string),
		searchInput: input,
		spinner:     spin,
		teamIdx:     -1,
		setIdx:      -1,
		width:       opts.Width,
		height:      opts.Height,
	}
}

// ID returns the catalog identifier this widget browses.
func (w *Widget) ID() string { return w.id }

// Init starts the initial fetch.
func (w *Widget) Init() tea.Cmd {
	return tea.Batch(
		fetchCardsCmd(w.fetcher, w.id, w.catalog.Table),
		w.spinner.Tick,
	)
}

// SetSize updates the layout for a new terminal size.
func (w *Widget) SetSize(width, height int) {
	w.width = width
	w.height = height
	clear(w.lineCache)
	w.ensureVisible()
}

// Update handles one message for this widget.
func (w *Widget) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case cardsLoadedMsg:
		if msg.catalogID != w.id {
			return nil
		}
		return w.handleLoaded(msg)

	case searchDebounceMsg:
		if msg.catalogID != w.id || msg.seq != w.searchSeq {
			return nil
		}
		w.criteria.Search = w.searchInput.Value()
		w.resetPage()
		w.rebuild()
		return nil

	case spinner.TickMsg:
		if w.state != stateLoading {
			return nil
		}
		var cmd tea.Cmd
		w.spinner, cmd = w.spinner.Update(msg)
		return cmd

	case tea.KeyMsg:
		if w.searching {
			return w.handleSearchKey(msg)
		}
		return w.handleKey(msg)
	}
	return nil
}

func (w *Widget) handleLoaded(msg cardsLoadedMsg) tea.Cmd {
	if msg.err != nil {
		w.state = stateError
		w.loadErr = msg.err
		w.logger.Error("catalog load failed", "error", msg.err)
		return nil
	}
	if len(msg.cards) == 0 {
		w.state = stateEmpty
		w.cards = nil
		return nil
	}

	w.state = stateReady
	w.loadErr = nil
	w.cards = msg.cards
	w.teamOptions = catalog.TeamOptions(msg.cards)
	w.setOptions = catalog.SetOptions(msg.cards)
	w.logger.Info("catalog loaded", "cards", len(msg.cards))
	w.rebuild()
	return nil
}

func (w *Widget) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, w.keys.CloseSearch):
		w.searching = false
		w.searchInput.Blur()
		if w.criteria.Search != "" || w.searchInput.Value() != "" {
			w.searchInput.SetValue("")
			w.criteria.Search = ""
			w.resetPage()
			w.rebuild()
		}
		return nil

	case key.Matches(msg, w.keys.Toggle) && msg.String() == "enter":
		// Commit immediately; any pending debounce becomes stale.
		w.searching = false
		w.searchInput.Blur()
		w.searchSeq++
		w.criteria.Search = w.searchInput.Value()
		w.resetPage()
		w.rebuild()
		return nil
	}

	var cmd tea.Cmd
	w.searchInput, cmd = w.searchInput.Update(msg)
	w.searchSeq++
	return tea.Batch(cmd, debounceSearchCmd(w.id, w.searchSeq, w.width))
}

func (w *Widget) handleKey(msg tea.KeyMsg) tea.Cmd {
	// While loading, filter and search input still lands; it just runs
	// against the empty collection until data arrives. Only the error
	// state locks input down to a reload.
	if w.state == stateError {
		if key.Matches(msg, w.keys.Reload) {
			return w.reload()
		}
		return nil
	}

	switch {
	case key.Matches(msg, w.keys.Up):
		w.moveCursor(-1)
	case key.Matches(msg, w.keys.Down):
		w.moveCursor(1)
	case key.Matches(msg, w.keys.PageUp):
		w.moveCursor(-w.contentHeight())
	case key.Matches(msg, w.keys.PageDown):
		w.moveCursor(w.contentHeight())
	case key.Matches(msg, w.keys.Home):
		w.cursor = 0
		w.ensureVisible()
	case key.Matches(msg, w.keys.End):
		w.cursor = len(w.rows) - 1
		if w.cursor < 0 {
			w.cursor = 0
		}
		w.ensureVisible()

	case key.Matches(msg, w.keys.Toggle):
		w.toggleCurrent()
	case key.Matches(msg, w.keys.Search):
		w.searching = true
		return w.searchInput.Focus()
	case key.Matches(msg, w.keys.GroupBy):
		w.cycleDimension()
	case key.Matches(msg, w.keys.TypeFacet):
		w.cycleKind()
	case key.Matches(msg, w.keys.TeamFacet):
		w.cycleTeam()
	case key.Matches(msg, w.keys.SetFacet):
		w.cycleSet()
	case key.Matches(msg, w.keys.ClearFacets):
		w.clearFilters()
	case key.Matches(msg, w.keys.Reload):
		return w.reload()

	case key.Matches(msg, w.keys.PrevPage):
		w.setPage(w.page - 1)
	case key.Matches(msg, w.keys.NextPage):
		w.setPage(w.page + 1)
	case key.Matches(msg, w.keys.JumpPage):
		if n := int(msg.String()[0] - '0'); n >= 1 && n <= 9 {
			w.setPage(n)
		}
	}
	return nil
}

// reload refetches the table from scratch, keeping current filters so the
// view rebuilds in place once data arrives.
func (w *Widget) reload() tea.Cmd {
	w.state = stateLoading
	w.loadErr = nil
	return tea.Batch(
		fetchCardsCmd(w.fetcher, w.id, w.catalog.Table),
		w.spinner.Tick,
	)
}

func (w *Widget) moveCursor(delta int) {
	w.cursor += delta
	if w.cursor >= len(w.rows) {
		w.cursor = len(w.rows) - 1
	}
	if w.cursor < 0 {
		w.cursor = 0
	}
	w.ensureVisible()
}

// toggleCurrent expands or collapses the row under the cursor. Group headers
// toggle independently; card detail panels are exclusive, so opening one
// closes any previously open panel.
func (w *Widget) toggleCurrent() {
	if w.cursor < 0 || w.cursor >= len(w.rows) {
		return
	}
	r := w.rows[w.cursor]
	switch r.kind {
	case rowGroupHeader:
		name := w.groups[r.group].Name
		if w.expanded[name] {
			delete(w.expanded, name)
		} else {
			w.expanded[name] = true
		}
		w.rebuildRows()
	case rowCard:
		id := cardIdentity(w.groups[r.group].Name, r.card)
		if w.expandedCard == id {
			w.expandedCard = ""
		} else {
			w.expandedCard = id
		}
	}
}

// cardIdentity names one card position so the exclusive detail panel can
// survive cursor movement but not regrouping.
func cardIdentity(groupName string, index int) string {
	return fmt.Sprintf("%s#%d", groupName, index)
}

// cycleDimension advances team -> player -> set -> all -> team. Expansion
// state is meaningless across dimensions, so it resets.
func (w *Widget) cycleDimension() {
	w.dim = (w.dim + 1) % 4
	w.expanded = make(map[string]bool)
	w.expandedCard = ""
	w.resetPage()
	w.rebuild()
}

func (w *Widget) cycleKind() {
	w.criteria.Kind = (w.criteria.Kind + 1) % 5
	w.resetPage()
	w.rebuild()
}

// cycleTeam steps the team facet through none -> each option -> none.
func (w *Widget) cycleTeam() {
	if len(w.teamOptions) == 0 {
		return
	}
	w.teamIdx++
	if w.teamIdx >= len(w.teamOptions) {
		w.teamIdx = -1
		w.criteria.Team = ""
	} else {
		w.criteria.Team = w.teamOptions[w.teamIdx]
	}
	w.resetPage()
	w.rebuild()
}

func (w *Widget) cycleSet() {
	if len(w.setOptions) == 0 {
		return
	}
	w.setIdx++
	if w.setIdx >= len(w.setOptions) {
		w.setIdx = -1
		w.criteria.Set = ""
	} else {
		w.criteria.Set = w.setOptions[w.setIdx]
	}
	w.resetPage()
	w.rebuild()
}

func (w *Widget) clearFilters() {
	if w.criteria.IsZero() {
		return
	}
	w.criteria = catalog.Criteria{}
	w.teamIdx = -1
	w.setIdx = -1
	w.searchInput.SetValue("")
	w.searchSeq++
	w.resetPage()
	w.rebuild()
}

// setPage moves to the requested page in all-cards mode, clamped to the
// valid range. Outside all-cards mode pagination is a no-op.
func (w *Widget) setPage(page int) {
	if w.dim != catalog.AllCards {
		return
	}
	if page < 1 {
		page = 1
	}
	if page > w.totalPages {
		page = w.totalPages
	}
	if page == w.page {
		return
	}
	w.page = page
	w.expandedCard = ""
	w.rebuildRows()
}

// resetPage returns to page one; any filter or grouping change invalidates
// the current page position.
func (w *Widget) resetPage() {
	w.page = 1
	w.expandedCard = ""
}

// rebuild recomputes the derived pipeline: filter, partition, clamp
// pagination, then flatten visible rows.
func (w *Widget) rebuild() {
	if w.state != stateReady {
		return
	}

	w.filtered = catalog.Apply(w.cards, w.criteria)
	w.groups = catalog.Partition(w.filtered, w.dim)

	w.totalPages = 1
	if w.dim == catalog.AllCards && len(w.filtered) > 0 {
		w.totalPages = (len(w.filtered) + w.pageSize - 1) / w.pageSize
	}
	if w.page > w.totalPages {
		w.page = w.totalPages
	}
	if w.page < 1 {
		w.page = 1
	}

	w.rebuildRows()
}

// rebuildRows flattens the groups into selectable rows based on expansion
// and pagination, then clamps the cursor to the new extent.
func (w *Widget) rebuildRows() {
	w.rows = w.rows[:0]
	clear(w.lineCache)

	for gi, group := range w.groups {
		if w.dim == catalog.AllCards {
			// Flat paginated mode: no header, one page of cards.
			start := (w.page - 1) * w.pageSize
			end := start + w.pageSize
			if end > len(group.Cards) {
				end = len(group.Cards)
			}
			for ci := start; ci < end; ci++ {
				w.rows = append(w.rows, row{kind: rowCard, group: gi, card: ci})
			}
			continue
		}

		w.rows = append(w.rows, row{kind: rowGroupHeader, group: gi, card: -1})
		if w.expanded[group.Name] {
			for ci := range group.Cards {
				w.rows = append(w.rows, row{kind: rowCard, group: gi, card: ci})
			}
		}
	}

	if w.cursor >= len(w.rows) {
		w.cursor = len(w.rows) - 1
	}
	if w.cursor < 0 {
		w.cursor = 0
	}
	w.ensureVisible()
}

// ensureVisible scrolls the list window so the cursor row stays on screen.
func (w *Widget) ensureVisible() {
	visible := w.contentHeight()
	if visible <= 0 {
		return
	}
	if w.cursor < w.viewOffset {
		w.viewOffset = w.cursor
	}
	if w.cursor >= w.viewOffset+visible {
		w.viewOffset = w.cursor - visible + 1
	}
	if w.viewOffset < 0 {
		w.viewOffset = 0
	}
}

// contentHeight is the number of list rows that fit below the chrome
// (header, stats, search and help lines).
func (w *Widget) contentHeight() int {
	h := w.height - chromeHeight
	if h < 1 {
		h = 1
	}
	return h
}
