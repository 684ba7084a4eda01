// internal/ui/model_helpers.go
// Small helper functions used across the UI layer
package ui

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/nhath/mentions/internal/ui/components/mention"
	"github.com/nhath/mentions/internal/ui/components/suggestions"
)

// clampFocus keeps focus on an existing entry, defaulting to the first.
func clampFocus(focus, count int) int {
	switch {
	case count <= 0:
		return suggestions.NoFocus
	case focus < 0:
		return 0
	case focus >= count:
		return count - 1
	}
	return focus
}

// locateMentions finds each committed label in text. Labels the user
// edited away are dropped.
func locateMentions(text string, draft []committed) []mention.Span {
	var spans []mention.Span
	taken := func(start, end int) bool {
		for _, s := range spans {
			if start < s.End && s.Start < end {
				return true
			}
		}
		return false
	}

	for _, c := range draft {
		if c.label == "" {
			continue
		}
		length := utf8.RuneCountInString(c.label)
		offset := 0
		rest := text
		for {
			i := strings.Index(rest, c.label)
			if i < 0 {
				break
			}
			start := offset + utf8.RuneCountInString(rest[:i])
			if !taken(start, start+length) {
				spans = append(spans, mention.Span{Start: start, End: start + length, ID: c.id})
				break
			}
			skip := i + len(c.label)
			offset = start + length
			rest = rest[skip:]
		}
	}

	slices.SortFunc(spans, func(a, b mention.Span) int { return a.Start - b.Start })
	return spans
}

// runePrefix returns the first n runes of s.
func runePrefix(s string, n int) string {
	r := []rune(s)
	if n > len(r) {
		n = len(r)
	}
	if n < 0 {
		n = 0
	}
	return string(r[:n])
}
