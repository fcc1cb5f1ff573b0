package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPromptContainsContract(t *testing.T) {
	prompt := BuildPrompt("", "Buy on bullish BOS with retest of broken resistance")

	for _, label := range []string{"PAIR:", "BIAS:", "ENTRY:", "SL:", "TP:", "ANALYSIS:"} {
		assert.Contains(t, prompt, label)
	}
	assert.Contains(t, prompt, NoSetupLiteral)
	assert.Contains(t, prompt, DefaultPreamble)
	assert.Contains(t, prompt, "Buy on bullish BOS with retest of broken resistance")
}

func TestBuildPromptInterpolatesStrategyVerbatim(t *testing.T) {
	// quote and format-breaking characters must survive untouched
	strategy := `Enter on "CHoCH" at 50% retrace {fvg} — risk %d of account \n literally`
	prompt := BuildPrompt("", strategy)
	assert.Contains(t, prompt, strategy)
}

func TestBuildPromptCustomPreamble(t *testing.T) {
	prompt := BuildPrompt("You are a scalping coach.", "strategy text")
	assert.True(t, strings.HasPrefix(prompt, "You are a scalping coach."))
	assert.NotContains(t, prompt, DefaultPreamble)
	// the contract survives any preamble override
	assert.Contains(t, prompt, "PAIR:")
	assert.Contains(t, prompt, NoSetupLiteral)
}

func TestBuildPromptBlankPreambleFallsBack(t *testing.T) {
	prompt := BuildPrompt("   \n", "strategy text")
	assert.Contains(t, prompt, DefaultPreamble)
}
