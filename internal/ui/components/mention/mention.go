// Package mention renders a committed mention inside sent text.
package mention

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DefaultStyle is applied under any override.
var DefaultStyle = lipgloss.NewStyle().Bold(true)

// Label renders display with the default style, layering override on top
// when set.
func Label(display string, override *lipgloss.Style) string {
	style := DefaultStyle
	if override != nil {
		style = override.Inherit(DefaultStyle)
	}
	return style.Render(display)
}

// Span locates a committed mention in plain text by rune offsets.
type Span struct {
	Start, End int
	ID         string
}

// Highlight renders text with every span drawn as a label. Spans must be
// sorted and non-overlapping; invalid spans are skipped.
func Highlight(text string, spans []Span, override *lipgloss.Style) string {
	runes := []rune(text)
	var b strings.Builder
	pos := 0
	for _, s := range spans {
		if s.Start < pos || s.End > len(runes) || s.Start >= s.End {
			continue
		}
		b.WriteString(string(runes[pos:s.Start]))
		b.WriteString(Label(string(runes[s.Start:s.End]), override))
		pos = s.End
	}
	b.WriteString(string(runes[pos:]))
	return b.String()
}
