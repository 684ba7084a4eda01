package ui

import (
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/nhath/mentions/internal/ui/styles"
)

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	inputView := styles.InputStyle.Width(m.width).Render(m.input.View())

	main := lipgloss.JoinVertical(lipgloss.Left,
		m.transcript.View(),
		inputView,
		m.renderStatusBar(),
		m.renderHelp(),
	)

	if m.overlayVisible() {
		x, y := m.overlay.Position()
		main = overlay.Composite(m.overlay.View(), main, overlay.Left, overlay.Top, x, y)
	}
	return main
}

// placeOverlay anchors the overlay just above the input border, starting
// at the column of the trigger char.
func (m Model) placeOverlay() Model {
	if m.width == 0 {
		return m
	}

	view := m.overlay.View()
	w, h := lipgloss.Width(view), lipgloss.Height(view)

	inputTop := m.height - chromeHeight
	y := max(inputTop-h, 0)

	x := lipgloss.Width(m.input.Prompt) + lipgloss.Width(runePrefix(m.input.Value(), m.match.Start))
	x = max(min(x, m.width-w), 0)

	m.overlay = m.overlay.SetPosition(x, y)
	return m
}
