package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/nhath/mentions/internal/ui/styles"
)

func (m Model) renderHelp() string {
	// Style for key hints - makes keys look like keyboard buttons
	keyStyle := lipgloss.NewStyle().
		Foreground(styles.TextPrimary()).
		Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(styles.TextSecondary())

	hint := func(b key.Binding) string {
		h := b.Help()
		if h.Key == "" {
			return ""
		}
		return keyStyle.Render(h.Key) + descStyle.Render(" "+h.Desc)
	}

	// Context-aware hints based on current state
	var bindings []key.Binding
	if m.overlayVisible() {
		bindings = []key.Binding{m.keys.Up, m.keys.Down, m.keys.Select, m.keys.Dismiss}
	} else {
		bindings = []key.Binding{m.keys.Send}
	}
	bindings = append(bindings, m.keys.Quit)

	var hints []string
	for _, b := range bindings {
		if h := hint(b); h != "" {
			hints = append(hints, h)
		}
	}

	line := strings.Join(hints, styles.HelpStyle.Render("  "))
	return ansi.Truncate(line, m.width, "")
}
