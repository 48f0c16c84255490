package store

import (
	"context"

	"github.com/andrewfx2/cardshelf/internal/model"
)

// RecordFetcher defines the contract for loading a catalog table. The TUI
// and CLI commands depend on this interface so tests and --test-mode can
// substitute a canned fetcher.
type RecordFetcher interface {
	FetchAll(ctx context.Context, table string) ([]model.Card, error)
}
