package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andrewfx2/cardshelf/internal/common"
	"github.com/andrewfx2/cardshelf/internal/tui/themes"
)

// App hosts one or more catalog widgets and routes input to the active
// one. Tab cycles between catalogs; each widget keeps its own filters,
// grouping and expansion state while in the background.
type App struct {
	widgets []*Widget
	active  int
	keys    KeyMap
	theme   themes.Theme
	logger  *slog.Logger

	width    int
	height   int
	quitting bool
	testMode bool
}

// New builds the browser application. It fails up front when no catalog or
// no record source is configured, rather than rendering an empty shell.
func New(opts ...Option) (*App, error) {
	options := buildOptions(opts)

	if options.Fetcher == nil {
		return nil, fmt.Errorf("%w: no record source configured", common.ErrMissingConfig)
	}
	if len(options.Catalogs) == 0 {
		return nil, fmt.Errorf("%w: no catalogs configured", common.ErrMissingConfig)
	}

	app := &App{
		keys:     DefaultKeyMap(),
		theme:    options.Theme,
		logger:   options.Logger.With("component", "tui"),
		width:    options.Width,
		height:   options.Height,
		testMode: options.TestMode,
	}

	for _, cat := range options.Catalogs {
		if err := cat.Validate(); err != nil {
			return nil, err
		}
		app.widgets = append(app.widgets, NewWidget(cat, options))
	}
	for _, w := range app.widgets {
		w.SetSize(app.width, app.contentRows())
	}
	return app, nil
}

// Init kicks off every widget's initial fetch so background catalogs are
// warm before the user tabs to them.
func (a *App) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(a.widgets))
	for _, w := range a.widgets {
		cmds = append(cmds, w.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		for _, w := range a.widgets {
			w.SetSize(msg.Width, a.contentRows())
		}
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.ForceQuit):
			a.quitting = true
			return a, tea.Quit
		case key.Matches(msg, a.keys.Quit) && !a.activeWidget().searching:
			a.quitting = true
			return a, tea.Quit
		case key.Matches(msg, a.keys.NextWidget) && !a.activeWidget().searching:
			a.active = (a.active + 1) % len(a.widgets)
			return a, nil
		case key.Matches(msg, a.keys.PrevWidget) && !a.activeWidget().searching:
			a.active = (a.active - 1 + len(a.widgets)) % len(a.widgets)
			return a, nil
		}
		// Other keys go to the active widget only.
		return a, a.activeWidget().Update(msg)
	}

	// Data and tick messages carry their own routing, so every widget
	// sees them; a fetch finishing in the background still lands.
	cmds := make([]tea.Cmd, 0, len(a.widgets))
	for _, w := range a.widgets {
		if cmd := w.Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return a, tea.Batch(cmds...)
}

// View implements tea.Model.
func (a *App) View() string {
	if a.quitting {
		return ""
	}

	var b strings.Builder
	if len(a.widgets) > 1 {
		b.WriteString(a.renderTabs())
		b.WriteString("\n")
	}
	b.WriteString(a.activeWidget().View())
	return b.String()
}

func (a *App) renderTabs() string {
	labels := make([]string, 0, len(a.widgets))
	for i, w := range a.widgets {
		label := w.catalog.Title
		if label == "" {
			label = w.catalog.Table
		}
		if i == a.active {
			labels = append(labels, a.theme.TabActive.Render(label))
		} else {
			labels = append(labels, a.theme.TabInactive.Render(label))
		}
	}
	return strings.Join(labels, a.theme.TabInactive.Render(" │ "))
}

func (a *App) activeWidget() *Widget {
	return a.widgets[a.active]
}

// contentRows is the height available to each widget after the tab bar.
func (a *App) contentRows() int {
	if len(a.widgets) > 1 {
		return a.height - 1
	}
	return a.height
}

// Run starts the interactive program and blocks until the user quits.
func (a *App) Run() error {
	var opts []tea.ProgramOption
	if !a.testMode {
		opts = append(opts, tea.WithAltScreen())
	}

	program := tea.NewProgram(a, opts...)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running browser: %w", err)
	}
	return nil
}
