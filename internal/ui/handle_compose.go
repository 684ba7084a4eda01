// internal/ui/handle_compose.go
// Key handling for the composer and its suggestions overlay.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/nhath/mentions/internal/history"
	"github.com/nhath/mentions/internal/ui/components/suggestions"
	"github.com/nhath/mentions/internal/ui/trigger"
)

// handleKey processes keys. While the overlay is shown it owns the
// navigation keys; everything else edits the draft.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.overlayVisible() {
		count := suggestions.Count(m.suggestions)
		switch {
		case key.Matches(msg, m.keys.Up):
			m.focus = suggestions.PrevIndex(m.focus, count)
			return m.syncOverlay(true), nil
		case key.Matches(msg, m.keys.Down):
			m.focus = suggestions.NextIndex(m.focus, count)
			return m.syncOverlay(true), nil
		case key.Matches(msg, m.keys.Select):
			if e, ok := m.overlay.Focused(); ok {
				return m, m.overlay.Select(e.Entity, e.Descriptor)
			}
			return m, nil
		case key.Matches(msg, m.keys.Dismiss):
			m.dismissed = m.match.Start
			return m.closeOverlay(), nil
		}
	}

	if key.Matches(msg, m.keys.Send) {
		return m.send(), nil
	}

	value, pos := m.input.Value(), m.input.Position()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == value && m.input.Position() == pos {
		return m, cmd
	}

	m.statusMsg, m.errorMsg = "", ""
	m, lookup := m.detectTrigger()
	return m, tea.Batch(cmd, lookup)
}

// detectTrigger opens, updates or closes the overlay for the word at the
// cursor and schedules a debounced lookup when the query changed.
func (m Model) detectTrigger() (Model, tea.Cmd) {
	match, ok := trigger.Detect([]rune(m.input.Value()), m.input.Position(), m.config.Triggers)
	if !ok {
		m.dismissed = -1
		return m.closeOverlay(), nil
	}
	if match.Start == m.dismissed {
		return m.closeOverlay(), nil
	}
	if m.active && match.Start == m.match.Start &&
		match.Trigger.Char == m.match.Trigger.Char && match.Query == m.match.Query {
		m.match = match
		return m, nil
	}

	if !m.active || match.Trigger.Char != m.match.Trigger.Char {
		m.suggestions = suggestions.Suggestions{}
		m.focus = suggestions.NoFocus
	}
	m.active = true
	m.match = match
	m.debounceID++

	delay := time.Duration(m.config.Overlay.DebounceMs) * time.Millisecond
	if delay <= 0 {
		return m.startLookup()
	}
	id := m.debounceID
	return m, tea.Tick(delay, func(time.Time) tea.Msg {
		return DebounceMsg{ID: id}
	})
}

// closeOverlay hides the overlay and drops in-flight lookups.
func (m Model) closeOverlay() Model {
	if !m.active {
		return m
	}
	m.active = false
	m.match = trigger.Match{}
	m.suggestions = suggestions.Suggestions{}
	m.pending = nil
	m.focus = suggestions.NoFocus
	m.loadSeq++
	return m.syncOverlay(false)
}

// commitMention splices the selected entity into the draft and records it.
func (m Model) commitMention(msg MentionSelectedMsg) (Model, tea.Cmd) {
	if !m.active {
		return m, nil
	}

	display := msg.Entity.Display()
	text, cursor := trigger.Insert([]rune(m.input.Value()), m.match, display)
	m.input.SetValue(string(text))
	m.input.SetCursor(cursor)

	m.draft = append(m.draft, committed{
		label: m.match.Trigger.Char + display,
		id:    msg.Entity.ID(),
	})
	m.dismissed = m.match.Start
	m = m.closeOverlay()

	m.log.Debug().
		Str("trigger", msg.Descriptor.Mention.Trigger).
		Str("source", msg.Descriptor.Mention.Source).
		Str("entity", msg.Entity.ID()).
		Msg("mention committed")

	entry := &history.Entry{
		Trigger:     msg.Descriptor.Mention.Trigger,
		Source:      msg.Descriptor.Mention.Source,
		EntityID:    msg.Entity.ID(),
		Display:     display,
		IsRecord:    msg.Entity.Kind() == suggestions.KindRecord,
		MentionedAt: time.Now().UTC(),
	}
	return m, m.recordMentionCmd(entry)
}

func (m Model) recordMentionCmd(entry *history.Entry) tea.Cmd {
	store := m.historyStore
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		return MentionRecordedMsg{Entry: entry, Err: store.Add(entry)}
	}
}

// send moves the draft into the transcript with its mentions located.
func (m Model) send() Model {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return m
	}

	msg := Message{ID: uuid.New().String(), Text: text, Spans: locateMentions(text, m.draft)}
	m.messages = append(m.messages, msg)

	m.input.Reset()
	m.draft = nil
	m.dismissed = -1
	m = m.closeOverlay()
	m = m.refreshTranscript()
	m.transcript.GotoBottom()

	m.statusMsg = fmt.Sprintf("Sent with %d mention(s)", len(msg.Spans))
	m.log.Info().Str("id", msg.ID).Int("mentions", len(msg.Spans)).Int("length", len(text)).Msg("message sent")
	return m
}
