package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewfx2/cardshelf/internal/model"
	"github.com/andrewfx2/cardshelf/internal/store"
)

func TestWriteJSONRoundTrips(t *testing.T) {
	cards := store.SampleCards()

	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, cards))

	var decoded []model.Card
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, cards, decoded)
}

func TestWriteCSVHasHeaderAndRows(t *testing.T) {
	cards := store.SampleCards()

	var buf bytes.Buffer
	require.NoError(t, writeCSV(&buf, cards))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, len(cards)+1)
	assert.Equal(t, "set", records[0][0])
	assert.Equal(t, cards[0].SetName, records[1][0])
	assert.Equal(t, cards[0].Description, records[1][2])
}
