package database

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowToEntry(t *testing.T) {
	row := map[string]any{
		"id":           "id-1",
		"analysisid":   "an-1",
		"pair":         "EURUSD",
		"bias":         "Bullish",
		"entry":        "1.0850",
		"stoploss":     "1.0800",
		"takeprofit":   "1.0950",
		"analysistext": "BOS confirmed...",
		"createdon":    float64(1767225600),
	}

	entry, err := rowToEntry(row)
	require.NoError(t, err)
	assert.Equal(t, "id-1", entry.ID)
	assert.Equal(t, "an-1", entry.AnalysisID)
	assert.Equal(t, "EURUSD", entry.Pair)
	assert.Equal(t, "Bullish", entry.Bias)
	assert.True(t, entry.Entry.Equal(decimal.RequireFromString("1.0850")))
	assert.True(t, entry.StopLoss.Equal(decimal.RequireFromString("1.0800")))
	assert.True(t, entry.TakeProfit.Equal(decimal.RequireFromString("1.0950")))
	assert.Equal(t, "BOS confirmed...", entry.AnalysisText)
	assert.Equal(t, int64(1767225600), entry.CreatedOn.Unix())
}

func TestRowToEntry_NumericPrices(t *testing.T) {
	row := map[string]any{
		"id":         "id-2",
		"pair":       "XAUUSD",
		"bias":       "Bearish",
		"entry":      float64(2400),
		"stoploss":   float64(2420),
		"takeprofit": float64(2350),
	}

	entry, err := rowToEntry(row)
	require.NoError(t, err)
	assert.Equal(t, "2400", entry.Entry.String())
}

func TestRowToEntry_MalformedPrice(t *testing.T) {
	row := map[string]any{
		"id":    "id-3",
		"entry": "not-a-number",
	}

	_, err := rowToEntry(row)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entry price")
}
