// Package store provides the client for the remote catalog store, a
// Supabase-style REST endpoint serving one table per catalog.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/andrewfx2/cardshelf/internal/model"
)

const (
	// pageLimit is the rows-per-request cursor size.
	pageLimit = 1000
	// maxRecords bounds the total fetch if the remote store misbehaves or a
	// table is misconfigured. Not a streaming mechanism, just a ceiling.
	maxRecords = 50000
)

// TransportError is any failed exchange with the remote store: a non-2xx
// response or a network-level failure. Status is 0 for network failures.
type TransportError struct {
	err    error
	Body   string
	Status int
}

func (e *TransportError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("remote store unreachable: %v", e.err)
	}
	return fmt.Sprintf("remote store returned HTTP %d: %s", e.Status, e.Body)
}

func (e *TransportError) Unwrap() error { return e.err }

// Config holds remote store connection settings.
type Config struct {
	// OnPage, if set, is invoked after each fetched page with the running
	// record total. Used for progress reporting.
	OnPage func(total int)
	URL    string
	Key    string
}

// Validate ensures required fields are present.
func (c *Config) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("store URL is required")
	}
	if c.Key == "" {
		return fmt.Errorf("store API key is required")
	}
	return nil
}

// Client implements RecordFetcher against the REST store.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
	onPage     func(total int)
	baseURL    string
	key        string
}

// NewClient creates a store client with the given configuration.
func NewClient(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		key:     cfg.Key,
		onPage:  cfg.OnPage,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		// The anon key is shared across every embedded widget, so pace page
		// requests instead of bursting a 50-page fetch at the endpoint.
		limiter: rate.NewLimiter(rate.Every(100*time.Millisecond), 5),
		logger:  slog.Default().With("component", "store"),
	}, nil
}

// FetchAll pages through a catalog table with an offset/limit cursor and
// returns every record. The loop ends on a short batch or at the record
// ceiling. Any failed page fails the whole fetch; no retry, no partial data.
func (c *Client) FetchAll(ctx context.Context, table string) ([]model.Card, error) {
	if table == "" {
		return nil, fmt.Errorf("table name is required")
	}

	c.logger.Info("Fetching catalog", "table", table)

	var cards []model.Card
	for offset := 0; ; offset += pageLimit {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		batch, err := c.fetchPage(ctx, table, offset)
		if err != nil {
			return nil, err
		}

		cards = append(cards, batch...)
		c.logger.Debug("Fetched page", "table", table, "offset", offset, "count", len(batch))
		if c.onPage != nil {
			c.onPage(len(cards))
		}

		if len(batch) < pageLimit || len(cards) >= maxRecords {
			break
		}
	}

	if len(cards) > maxRecords {
		cards = cards[:maxRecords]
	}

	c.logger.Info("Fetched catalog", "table", table, "count", len(cards))
	return cards, nil
}

func (c *Client) fetchPage(ctx context.Context, table string, offset int) ([]model.Card, error) {
	u := fmt.Sprintf("%s/rest/v1/%s?limit=%d&offset=%d",
		c.baseURL, url.PathEscape(table), pageLimit, offset)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("apikey", c.key)
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &TransportError{Status: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var rows []row
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, &TransportError{Status: resp.StatusCode, Body: fmt.Sprintf("malformed response body: %v", err), err: err}
	}

	batch := make([]model.Card, 0, len(rows))
	for _, r := range rows {
		batch = append(batch, r.card())
	}
	return batch, nil
}

// row mirrors the upstream column names. Cells coerce numbers and booleans to
// text so one oddly typed column never aborts a load.
type row struct {
	SetName        cell `json:"Set Name"`
	CardNumber     cell `json:"Card"`
	Description    cell `json:"Description"`
	TeamCity       cell `json:"Team City"`
	TeamName       cell `json:"Team Name"`
	Rookie         cell `json:"Rookie"`
	Auto           cell `json:"Auto"`
	Mem            cell `json:"Mem"`
	SerialNumbered cell `json:"Serial #'d"`
	ShortPrints    cell `json:"SP's"`
	Odds           cell `json:"Odds"`
	PointValue     cell `json:"Point"`
}

func (r row) card() model.Card {
	return model.Card{
		SetName:        string(r.SetName),
		CardNumber:     string(r.CardNumber),
		Description:    string(r.Description),
		TeamCity:       string(r.TeamCity),
		TeamName:       string(r.TeamName),
		Rookie:         string(r.Rookie),
		Auto:           string(r.Auto),
		Mem:            string(r.Mem),
		SerialNumbered: string(r.SerialNumbered),
		ShortPrints:    string(r.ShortPrints),
		Odds:           string(r.Odds),
		PointValue:     string(r.PointValue),
	}
}

// cell is a string that tolerates non-string JSON values.
type cell string

func (c *cell) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*c = ""
		return nil
	}
	if len(s) > 0 && s[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*c = cell(v)
		return nil
	}
	*c = cell(s)
	return nil
}

// Ensure Client implements RecordFetcher.
var _ RecordFetcher = (*Client)(nil)
