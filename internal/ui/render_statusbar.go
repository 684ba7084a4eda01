package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/nhath/mentions/internal/ui/components/suggestions"
	"github.com/nhath/mentions/internal/ui/icons"
	"github.com/nhath/mentions/internal/ui/styles"
)

func (m Model) renderStatusBar() string {
	var parts []string

	// 1. Mode
	parts = append(parts, styles.ModeStyle.Render("COMPOSE"))

	// 2. Active trigger
	if m.active {
		t := m.match.Trigger
		info := fmt.Sprintf(" %s%s %s %d ", t.Char, m.match.Query, icons.IconBullet, suggestions.Count(m.suggestions))
		if t.Name != "" {
			info = fmt.Sprintf(" %s %s", t.Name, info)
		}
		parts = append(parts, lipgloss.NewStyle().Foreground(styles.AccentColor()).Render(info))
	}

	// 3. Status message (success/info)
	if m.statusMsg != "" {
		parts = append(parts, styles.SuccessStyle.Padding(0, 1).Render(icons.IconSuccess+" "+m.statusMsg))
	}

	// 4. Error indicator
	if m.errorMsg != "" {
		truncated := m.errorMsg
		if len(truncated) > 40 {
			truncated = truncated[:37] + "..."
		}
		parts = append(parts, styles.ErrorStyle.Padding(0, 1).Render(icons.IconError+" "+truncated))
	}

	content := lipgloss.JoinHorizontal(lipgloss.Left, parts...)
	return styles.StatusBarStyle.Width(m.width).MaxHeight(1).Render(content)
}
