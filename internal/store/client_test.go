package store

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, url string) *Client {
	t.Helper()
	c, err := NewClient(Config{URL: url, Key: "test-key"})
	require.NoError(t, err)
	return c
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "valid", cfg: Config{URL: "https://example.test", Key: "k"}, wantErr: false},
		{name: "missing url", cfg: Config{Key: "k"}, wantErr: true},
		{name: "missing key", cfg: Config{URL: "https://example.test"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFetchAllSinglePage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "1000", r.URL.Query().Get("limit"))
		assert.Equal(t, "0", r.URL.Query().Get("offset"))

		fmt.Fprint(w, `[
			{"Set Name": "Base", "Card": 101, "Description": "David Pastrnak", "Team City": "Boston", "Team Name": "Bruins", "Rookie": null, "Point": 2},
			{"Set Name": "Base", "Card": "102", "Description": "Brad Marchand", "Team Name": "Bruins"}
		]`)
	}))
	defer srv.Close()

	cards, err := newTestClient(t, srv.URL).FetchAll(context.Background(), "opc-2020-21")
	require.NoError(t, err)
	require.Len(t, cards, 2)

	// Numeric and null cells coerce to text instead of failing the load.
	assert.Equal(t, "101", cards[0].CardNumber)
	assert.Equal(t, "2", cards[0].PointValue)
	assert.Equal(t, "", cards[0].Rookie)
	assert.Equal(t, "David Pastrnak", cards[0].Description)
	assert.Equal(t, "Brad Marchand", cards[1].Description)
}

func TestFetchAllPaginatesUntilShortBatch(t *testing.T) {
	var offsets []int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
		offsets = append(offsets, offset)

		// Two full pages, then a short one.
		size := pageLimit
		if offset >= 2*pageLimit {
			size = 10
		}
		rows := make([]map[string]any, size)
		for i := range rows {
			rows[i] = map[string]any{"Card": fmt.Sprintf("%d", offset+i)}
		}
		require.NoError(t, json.NewEncoder(w).Encode(rows))
	}))
	defer srv.Close()

	var pages int
	client, err := NewClient(Config{URL: srv.URL, Key: "test-key", OnPage: func(int) { pages++ }})
	require.NoError(t, err)

	cards, err := client.FetchAll(context.Background(), "big-table")
	require.NoError(t, err)

	assert.Len(t, cards, 2*pageLimit+10)
	assert.Equal(t, []int{0, pageLimit, 2 * pageLimit}, offsets)
	assert.Equal(t, 3, pages)
	assert.Equal(t, "0", cards[0].CardNumber)
	assert.Equal(t, fmt.Sprintf("%d", pageLimit), cards[pageLimit].CardNumber)
}

func TestFetchAllStopsAtCeiling(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Always a full page: only the ceiling can end the loop.
		rows := make([]map[string]any, pageLimit)
		for i := range rows {
			rows[i] = map[string]any{"Card": "x"}
		}
		require.NoError(t, json.NewEncoder(w).Encode(rows))
	}))
	defer srv.Close()

	cards, err := newTestClient(t, srv.URL).FetchAll(context.Background(), "runaway")
	require.NoError(t, err)
	assert.Len(t, cards, maxRecords)
}

func TestFetchAllSurfacesTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"message":"permission denied"}`)
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL).FetchAll(context.Background(), "secret")
	require.Error(t, err)

	var terr *TransportError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, http.StatusForbidden, terr.Status)
	assert.Contains(t, terr.Body, "permission denied")
	assert.Contains(t, terr.Error(), "403")
}

func TestFetchAllFailedPageFailsWholeLoad(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		if calls == 1 {
			rows := make([]map[string]any, pageLimit)
			for i := range rows {
				rows[i] = map[string]any{"Card": "x"}
			}
			require.NoError(t, json.NewEncoder(w).Encode(rows))
			return
		}
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	cards, err := newTestClient(t, srv.URL).FetchAll(context.Background(), "flaky")
	require.Error(t, err)
	assert.Nil(t, cards, "a failed page must not yield partial data")
	assert.Equal(t, 2, calls, "no retry at this layer")
}

func TestFetchAllContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "[]")
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL).FetchAll(ctx, "anything")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFetchAllRequiresTable(t *testing.T) {
	_, err := newTestClient(t, "https://example.test").FetchAll(context.Background(), "")
	assert.Error(t, err)
}

func TestCellUnmarshal(t *testing.T) {
	var r row
	err := json.Unmarshal([]byte(`{"Card": 7, "Rookie": true, "Mem": null, "Odds": "1:24"}`), &r)
	require.NoError(t, err)

	assert.Equal(t, "7", string(r.CardNumber))
	assert.Equal(t, "true", string(r.Rookie))
	assert.Equal(t, "", string(r.Mem))
	assert.Equal(t, "1:24", string(r.Odds))
}
