package analysis

import "strings"

// NoSetupLiteral is the exact sentence the model must reply with when
// the chart does not match the caller's rules. Clients match on it
// textually, so it is not configurable.
const NoSetupLiteral = "No Setup Found"

// DefaultPreamble is the mentor persona used when no prompt profile
// overrides it.
const DefaultPreamble = `You are a professional trading mentor.
Analyze this chart image specifically looking for setups that match MY STRATEGY below.`

// responseContract fixes the response layout the caller parses. The six
// field labels and the no-setup sentence are a contract shared with
// every client and must stay byte-identical.
const responseContract = `If the chart matches my rules, respond in EXACTLY this format, one field per line:
PAIR: <instrument>
BIAS: <Bullish or Bearish>
ENTRY: <entry price>
SL: <stop loss price>
TP: <take profit price>
ANALYSIS: <why this is a valid setup>

If it does NOT match my rules, reply with the exact sentence: ` + NoSetupLiteral

// BuildPrompt assembles the analysis prompt. The strategy string is
// interpolated verbatim; quotes, braces and format verbs inside it must
// survive untouched.
func BuildPrompt(preamble, strategy string) string {
	if strings.TrimSpace(preamble) == "" {
		preamble = DefaultPreamble
	}

	var b strings.Builder
	b.WriteString(strings.TrimSpace(preamble))
	b.WriteString("\n\nMY STRATEGY RULES:\n\"")
	b.WriteString(strategy)
	b.WriteString("\"\n\n")
	b.WriteString(responseContract)
	return b.String()
}
