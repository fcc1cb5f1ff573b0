package notifier

import (
	"strings"

	"chartwhisperer/internal/types"
)

const maxAlertAnalysisLen = 600

// BuildJournalAlert formats a journaled trade setup as a structured
// alert for the operator channel.
func BuildJournalAlert(entry *types.JournalEntry) StructuredMessage {
	analysis := truncateRunes(strings.TrimSpace(entry.AnalysisText), maxAlertAnalysisLen)

	sections := []MessageSection{
		{
			Title: "Trade Plan",
			Lines: []string{
				"Pair: " + entry.Pair,
				"Bias: " + entry.Bias,
				"Entry: " + entry.Entry.String(),
				"SL: " + entry.StopLoss.String(),
				"TP: " + entry.TakeProfit.String(),
			},
		},
	}
	if analysis != "" {
		sections = append(sections, MessageSection{
			Title: "Analysis",
			Lines: []string{analysis},
		})
	}

	footer := ""
	if entry.AnalysisID != "" {
		footer = "Analysis ID: " + entry.AnalysisID
	}

	return StructuredMessage{
		Icon:      "📓",
		Title:     "New Trade Journaled",
		Sections:  sections,
		Footer:    footer,
		Timestamp: entry.CreatedOn,
	}
}
