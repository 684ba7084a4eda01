package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nhath/mentions/internal/ui/components/mention"
	"github.com/nhath/mentions/internal/ui/icons"
	"github.com/nhath/mentions/internal/ui/styles"
)

// refreshTranscript re-renders sent messages into the transcript viewport
func (m Model) refreshTranscript() Model {
	if len(m.messages) == 0 {
		m.transcript.SetContent(styles.MetaStyle.Render("No messages yet. Type @ to mention someone."))
		return m
	}

	bullet := styles.MetaStyle.Render(icons.IconBullet)
	lines := make([]string, 0, len(m.messages))
	for _, msg := range m.messages {
		line := bullet + " " + mention.Highlight(msg.Text, msg.Spans, &styles.MentionStyle)
		if m.transcript.Width > 0 {
			line = lipgloss.NewStyle().Width(m.transcript.Width).Render(line)
		}
		lines = append(lines, line)
	}
	m.transcript.SetContent(strings.Join(lines, "\n"))
	return m
}
