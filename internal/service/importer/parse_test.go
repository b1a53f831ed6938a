package importer

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFieldBook(t *testing.T) {
	rows := [][]string{
		{"DATE", "1", "2", "3", "4"},
		{"MARY CHEBET", "12", "", "8.5", "0"},
		{"ADV", "", "500", "", ""},
		{"JOHN KIPROTICH", "", "10", "", "7"},
		{"TOTALS", "12", "10", "8.5", "7"},
		{"SUP.  VICTOR", "4", "", "", ""},
	}

	parsed := parseFieldBook(rows)
	require.Len(t, parsed, 2)

	mary := parsed[0]
	assert.Equal(t, "MARY CHEBET", mary.name)
	require.Len(t, mary.quantities, 2)
	assert.Equal(t, 1, mary.quantities[0].day)
	assert.True(t, mary.quantities[0].value.Equal(decimal.NewFromInt(12)))
	assert.Equal(t, 3, mary.quantities[1].day)
	assert.True(t, mary.quantities[1].value.Equal(decimal.RequireFromString("8.5")))
	require.Len(t, mary.advances, 1)
	assert.Equal(t, 2, mary.advances[0].day)
	assert.True(t, mary.advances[0].value.Equal(decimal.NewFromInt(500)))

	john := parsed[1]
	assert.Equal(t, "JOHN KIPROTICH", john.name)
	require.Len(t, john.quantities, 2)
	assert.Empty(t, john.advances)
}

func TestParseFieldBookAdvanceBeforeAnyWorker(t *testing.T) {
	rows := [][]string{
		{"ADV", "100"},
		{"MARY CHEBET", "5"},
	}

	parsed := parseFieldBook(rows)
	require.Len(t, parsed, 1)
	assert.Empty(t, parsed[0].advances)
}

func TestParseFieldBookMergesRepeatedWorkerRows(t *testing.T) {
	rows := [][]string{
		{"MARY CHEBET", "5"},
		{"JOHN KIPROTICH", "3"},
		{"MARY CHEBET", "", "6"},
	}

	parsed := parseFieldBook(rows)
	require.Len(t, parsed, 2)
	assert.Len(t, parsed[0].quantities, 2)
}

func TestParseRoster(t *testing.T) {
	rows := [][]string{
		{"DATE"},
		{"MARY CHEBET", "12"},
		{"ADV", "500"},
		{"KAISUGU TOTAL", "900"},
		{"FINLAYS", "400"},
		{"JOHN KIPROTICH"},
		{"MARY CHEBET"},
		{"SUP.  VICTOR"},
		{"TOTALS"},
	}

	names := parseRoster(rows)
	assert.Equal(t, []string{"MARY CHEBET", "JOHN KIPROTICH"}, names)
}

func TestParseDayCells(t *testing.T) {
	row := []string{"NAME", "10", "abc", "-5", "0", "", "7.25"}

	entries := parseDayCells(row)
	require.Len(t, entries, 2)
	assert.Equal(t, 1, entries[0].day)
	assert.True(t, entries[0].value.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, 6, entries[1].day)
	assert.True(t, entries[1].value.Equal(decimal.RequireFromString("7.25")))
}
