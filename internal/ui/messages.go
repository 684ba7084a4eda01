// internal/ui/messages.go
package ui

import (
	"github.com/nhath/mentions/internal/history"
	"github.com/nhath/mentions/internal/ui/components/suggestions"
)

// DebounceMsg triggers the actual suggestion lookup after the typing pause
type DebounceMsg struct {
	ID int
}

// SuggestionsLoadedMsg carries one source's results for a lookup
type SuggestionsLoadedMsg struct {
	Seq        int
	Descriptor suggestions.Descriptor
	Entities   []suggestions.Entity
	Err        error
}

// MentionSelectedMsg is emitted by the overlay when an entry is committed
type MentionSelectedMsg struct {
	Entity     suggestions.Entity
	Descriptor suggestions.Descriptor
}

// MentionHoveredMsg is emitted when the pointer enters an overlay entry
type MentionHoveredMsg struct {
	Index int
}

// MentionRecordedMsg is sent after a committed mention is written to history
type MentionRecordedMsg struct {
	Entry *history.Entry
	Err   error
}
