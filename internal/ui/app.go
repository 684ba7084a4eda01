// internal/ui/app.go
package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// chromeHeight is the number of rows below the transcript: the input with
// its top border, the status bar and the help line.
const chromeHeight = 4

// Update handles incoming messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-lipgloss.Width(m.input.Prompt)-1, 1)
		m.transcript.Width = msg.Width
		m.transcript.Height = max(msg.Height-chromeHeight, 0)
		m.overlay = m.overlay.SetWidth(min(m.config.Overlay.Width, msg.Width))
		m = m.refreshTranscript()
		m = m.placeOverlay()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		if m.overlayVisible() {
			m.overlay, cmd = m.overlay.Update(msg)
			return m, cmd
		}
		m.transcript, cmd = m.transcript.Update(msg)
		return m, cmd

	case DebounceMsg:
		// Only the latest keystroke's debounce starts a lookup
		if msg.ID != m.debounceID || !m.active {
			return m, nil
		}
		return m.startLookup()

	case SuggestionsLoadedMsg:
		return m.applyLoaded(msg), nil

	case MentionSelectedMsg:
		return m.commitMention(msg)

	case MentionHoveredMsg:
		if !m.active {
			return m, nil
		}
		m.focus = msg.Index
		return m.syncOverlay(false), nil

	case MentionRecordedMsg:
		if msg.Err != nil {
			m.log.Warn().Err(msg.Err).Str("entity", msg.Entry.EntityID).Msg("record mention failed")
			m.errorMsg = "history: " + msg.Err.Error()
			return m, nil
		}
		m.log.Debug().Int64("id", msg.Entry.ID).Str("entity", msg.Entry.EntityID).Msg("mention recorded")
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.overlay, cmd = m.overlay.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}
