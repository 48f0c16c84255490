package tui

import (
	"log/slog"

	"github.com/andrewfx2/cardshelf/internal/config"
	"github.com/andrewfx2/cardshelf/internal/store"
	"github.com/andrewfx2/cardshelf/internal/tui/themes"
)

// Options configures the browser application.
type Options struct {
	Fetcher  store.RecordFetcher
	Catalogs []config.Catalog
	Theme    themes.Theme
	Logger   *slog.Logger
	Width    int
	Height   int
	TestMode bool
}

// Option is a functional option for New.
type Option func(*Options)

// WithFetcher sets the record source for all catalogs.
func WithFetcher(f store.RecordFetcher) Option {
	return func(o *Options) {
		o.Fetcher = f
	}
}

// WithCatalogs sets the catalogs to browse, in tab order.
func WithCatalogs(catalogs []config.Catalog) Option {
	return func(o *Options) {
		o.Catalogs = catalogs
	}
}

// WithTheme overrides the default theme.
func WithTheme(theme themes.Theme) Option {
	return func(o *Options) {
		o.Theme = theme
	}
}

// WithLogger sets the logger for the TUI.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithSize sets an initial terminal size, used before the first
// WindowSizeMsg arrives and by tests that never send one.
func WithSize(width, height int) Option {
	return func(o *Options) {
		o.Width = width
		o.Height = height
	}
}

// WithTestMode disables alternate-screen behavior for tests.
func WithTestMode() Option {
	return func(o *Options) {
		o.TestMode = true
	}
}

func buildOptions(opts []Option) Options {
	options := Options{
		Theme:  themes.Default,
		Logger: slog.Default(),
		Width:  100,
		Height: 35,
	}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}
