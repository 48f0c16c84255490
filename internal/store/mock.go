package store

import (
	"context"
	"fmt"

	"github.com/andrewfx2/cardshelf/internal/model"
)

// MockFetcher is a canned RecordFetcher for tests and --test-mode.
type MockFetcher struct {
	// FetchAllFn can be set by tests to control behavior.
	FetchAllFn func(ctx context.Context, table string) ([]model.Card, error)

	// Call tracking.
	FetchAllCalls []string
}

// NewMockFetcher creates a mock fetcher.
func NewMockFetcher() *MockFetcher {
	return &MockFetcher{}
}

// FetchAll implements RecordFetcher.
func (m *MockFetcher) FetchAll(ctx context.Context, table string) ([]model.Card, error) {
	m.FetchAllCalls = append(m.FetchAllCalls, table)

	if m.FetchAllFn != nil {
		return m.FetchAllFn(ctx, table)
	}

	return SampleCards(), nil
}

// SampleCards returns a small realistic checklist for demos and tests.
func SampleCards() []model.Card {
	return []model.Card{
		{SetName: "Base", CardNumber: "1", Description: "David Pastrnak", TeamCity: "Boston", TeamName: "Bruins", PointValue: "2"},
		{SetName: "Base", CardNumber: "2", Description: "Auston Matthews", TeamCity: "Toronto", TeamName: "Maple Leafs", Rookie: "0"},
		{SetName: "Base", CardNumber: "3", Description: "Connor Bedard", TeamCity: "Chicago", TeamName: "Blackhawks", Rookie: "RC"},
		{SetName: "Marquee Rookies", CardNumber: "501", Description: "Macklin Celebrini", TeamCity: "San Jose", TeamName: "Sharks", Rookie: "RC", SerialNumbered: "/99"},
		{SetName: "Retro", CardNumber: "R-12", Description: "Cale Makar", TeamCity: "Colorado", TeamName: "Avalanche", Auto: "Auto", Odds: "1:24"},
		{SetName: "Retro", CardNumber: "R-40", Description: "Quinn Hughes/Jack Hughes", TeamName: "Canucks/Devils", Mem: "Dual Jersey", SerialNumbered: "/25"},
		{SetName: "Retro", CardNumber: "R-41", Description: "Sidney Crosby", TeamCity: "Pittsburgh", TeamName: "Penguins", ShortPrints: "SP"},
	}
}

// StaticFetcher returns a fetcher that always serves the given cards,
// regardless of table.
func StaticFetcher(cards []model.Card) *MockFetcher {
	return &MockFetcher{
		FetchAllFn: func(_ context.Context, _ string) ([]model.Card, error) {
			return cards, nil
		},
	}
}

// FailingFetcher returns a fetcher whose loads always fail with a transport
// error, for exercising error states.
func FailingFetcher(status int, body string) *MockFetcher {
	return &MockFetcher{
		FetchAllFn: func(_ context.Context, table string) ([]model.Card, error) {
			return nil, fmt.Errorf("fetching %q: %w", table, &TransportError{Status: status, Body: body})
		},
	}
}
