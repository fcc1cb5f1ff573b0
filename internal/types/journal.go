package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is a user-confirmed record of a trading setup intended for
// long-term review. Prices are decimals: the instruments journaled here
// (forex pairs in particular) carry fractional pip precision.
type JournalEntry struct {
	ID           string          `json:"id"`
	AnalysisID   string          `json:"analysis_id,omitempty"`
	Pair         string          `json:"pair"`
	Bias         string          `json:"bias"`
	Entry        decimal.Decimal `json:"entry"`
	StopLoss     decimal.Decimal `json:"stop_loss"`
	TakeProfit   decimal.Decimal `json:"take_profit"`
	AnalysisText string          `json:"analysis_text"`
	CreatedOn    time.Time       `json:"created_on"`
}
