package notifier

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Telegram rejects bodies over 4096 bytes; stay below it with headroom
// for the closing ellipsis.
const maxStructuredMessageLen = 3800

// MessageSection is one labeled block of lines inside an alert.
type MessageSection struct {
	Title string
	Lines []string
}

// StructuredMessage is the uniform shape of every outbound alert.
type StructuredMessage struct {
	Icon      string
	Title     string
	Sections  []MessageSection
	Footer    string
	Timestamp time.Time
}

// RenderMarkdown assembles the alert body and caps it at Telegram's
// size limit without splitting a multibyte rune.
func (m StructuredMessage) RenderMarkdown() string {
	parts := make([]string, 0, 3)
	if header := strings.TrimSpace(m.Icon + " " + m.Title); header != "" {
		parts = append(parts, header)
	}
	if block := m.sectionBlock(); block != "" {
		parts = append(parts, block)
	}

	tail := make([]string, 0, 2)
	if footer := strings.TrimSpace(m.Footer); footer != "" {
		tail = append(tail, escapeFences(footer))
	}
	if !m.Timestamp.IsZero() {
		tail = append(tail, "Time: "+m.Timestamp.Format("2006-01-02 15:04:05 MST"))
	}
	if len(tail) > 0 {
		parts = append(parts, strings.Join(tail, "\n"))
	}

	return truncateRunes(strings.Join(parts, "\n\n"), maxStructuredMessageLen)
}

// sectionBlock renders every non-empty section into one shared fenced
// code block so Telegram preserves the alignment. A section with no
// non-blank lines is dropped, title and all.
func (m StructuredMessage) sectionBlock() string {
	blocks := make([]string, 0, len(m.Sections))
	for _, sec := range m.Sections {
		items := make([]string, 0, len(sec.Lines))
		for _, raw := range sec.Lines {
			if text := strings.TrimSpace(raw); text != "" {
				items = append(items, "- "+escapeFences(text))
			}
		}
		if len(items) == 0 {
			continue
		}
		if title := strings.TrimSpace(sec.Title); title != "" {
			items = append([]string{escapeFences(title)}, items...)
		}
		blocks = append(blocks, strings.Join(items, "\n"))
	}
	if len(blocks) == 0 {
		return ""
	}
	return "```\n" + strings.Join(blocks, "\n\n") + "\n```"
}

// escapeFences keeps caller-supplied text from closing the
// surrounding code block.
func escapeFences(s string) string {
	return strings.ReplaceAll(s, "```", "'''")
}

// truncateRunes caps s at max bytes, backing the cut onto a rune
// boundary so the result stays valid UTF-8, and marks the cut with an
// ellipsis.
func truncateRunes(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
