// internal/history/entry.go
package history

import "time"

// Entry represents a single committed mention
type Entry struct {
	ID          int64
	Trigger     string
	Source      string
	EntityID    string
	Display     string
	IsRecord    bool
	MentionedAt time.Time
}

// DisplayPreview returns a truncated version of the display text
func (e *Entry) DisplayPreview(maxLen int) string {
	d := []rune(e.Display)
	if len(d) > maxLen && maxLen > 3 {
		return string(d[:maxLen-3]) + "..."
	}
	return e.Display
}
