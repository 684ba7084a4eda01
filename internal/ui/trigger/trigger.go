// Package trigger finds mention triggers in composer text and splices
// committed mentions back in.
package trigger

import (
	"strings"
	"unicode"

	"github.com/nhath/mentions/internal/config"
)

// Match is an active trigger word ending at the cursor.
type Match struct {
	Trigger config.Trigger
	Start   int // rune offset of the trigger char
	End     int // rune offset of the cursor
	Query   string
}

// Detect reports the trigger word ending at cursor. The word must begin
// with a configured trigger char and sit at the start of text or after
// whitespace.
func Detect(text []rune, cursor int, triggers []config.Trigger) (Match, bool) {
	if cursor <= 0 || cursor > len(text) {
		return Match{}, false
	}

	start := cursor
	for start > 0 && !unicode.IsSpace(text[start-1]) {
		start--
	}
	word := string(text[start:cursor])

	for _, t := range triggers {
		if t.Char == "" || !strings.HasPrefix(word, t.Char) {
			continue
		}
		return Match{
			Trigger: t,
			Start:   start,
			End:     cursor,
			Query:   strings.TrimPrefix(word, t.Char),
		}, true
	}
	return Match{}, false
}

// Insert replaces the matched word with the trigger char and display.
// It returns the new text and the cursor placed after the mention.
func Insert(text []rune, m Match, display string) ([]rune, int) {
	if m.Start < 0 || m.End > len(text) || m.Start > m.End {
		return text, len(text)
	}

	label := m.Trigger.Char + display
	if m.Trigger.AppendSpace && (m.End >= len(text) || !unicode.IsSpace(text[m.End])) {
		label += " "
	}

	out := make([]rune, 0, len(text)+len(label))
	out = append(out, text[:m.Start]...)
	out = append(out, []rune(label)...)
	cursor := len(out)
	out = append(out, text[m.End:]...)
	return out, cursor
}
