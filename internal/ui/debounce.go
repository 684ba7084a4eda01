package ui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhath/mentions/internal/config"
	"github.com/nhath/mentions/internal/ui/components/suggestions"
)

// startLookup queries every source of the active trigger. Each source gets
// its own group, in configured order, and keeps showing its previous
// results until the new ones arrive.
func (m Model) startLookup() (Model, tea.Cmd) {
	m.loadSeq++
	t := m.match.Trigger

	previous := make(map[suggestions.MentionDescriptor][]suggestions.Entity)
	for _, g := range m.suggestions.Groups() {
		previous[g.Descriptor.Mention] = g.Entities
	}

	groups := make([]suggestions.Group, 0, len(t.Sources))
	pending := make(map[suggestions.Descriptor]bool, len(t.Sources))
	cmds := make([]tea.Cmd, 0, len(t.Sources))
	for _, name := range t.Sources {
		d := suggestions.Descriptor{
			Mention: suggestions.MentionDescriptor{
				Trigger:     t.Char,
				Source:      name,
				AppendSpace: t.AppendSpace,
			},
			Query: m.match.Query,
		}
		if pending[d] {
			continue
		}
		pending[d] = true
		groups = append(groups, suggestions.Group{Descriptor: d, Entities: previous[d.Mention]})
		cmds = append(cmds, m.fetchCmd(m.loadSeq, t, d))
	}

	m.suggestions = suggestions.NewSuggestions(groups...)
	m.pending = pending
	m.focus = clampFocus(m.focus, suggestions.Count(m.suggestions))

	m.log.Debug().
		Int("seq", m.loadSeq).
		Str("trigger", t.Char).
		Str("query", m.match.Query).
		Int("sources", len(groups)).
		Msg("lookup started")

	return m.syncOverlay(true), tea.Batch(cmds...)
}

// fetchCmd runs one source off the update loop, bounded by the configured
// source timeout.
func (m Model) fetchCmd(seq int, t config.Trigger, d suggestions.Descriptor) tea.Cmd {
	src, ok := m.registry.Lookup(t, d.Mention.Source)
	limit := m.config.Overlay.Limit
	timeout := time.Duration(m.config.Overlay.SourceTimeoutMs) * time.Millisecond

	return func() tea.Msg {
		if !ok {
			return SuggestionsLoadedMsg{
				Seq:        seq,
				Descriptor: d,
				Err:        fmt.Errorf("%w: %s", config.ErrUnknownSource, d.Mention.Source),
			}
		}

		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		entities, err := src.Suggest(ctx, d.Query, limit)
		return SuggestionsLoadedMsg{Seq: seq, Descriptor: d, Entities: entities, Err: err}
	}
}

// applyLoaded stores one source's results. Failed sources show as empty
// groups; the error only goes to the log.
func (m Model) applyLoaded(msg SuggestionsLoadedMsg) Model {
	if msg.Seq != m.loadSeq || !m.active {
		return m
	}

	entities := msg.Entities
	if msg.Err != nil {
		m.log.Warn().
			Err(msg.Err).
			Str("source", msg.Descriptor.Mention.Source).
			Str("query", msg.Descriptor.Query).
			Msg("suggestion source failed")
		entities = nil
	}

	m.suggestions = m.suggestions.Set(msg.Descriptor, entities)
	delete(m.pending, msg.Descriptor)
	m.focus = clampFocus(m.focus, suggestions.Count(m.suggestions))
	return m.syncOverlay(true)
}

// syncOverlay pushes the current props into the overlay. scroll requests
// the focused entry be brought into view.
func (m Model) syncOverlay(scroll bool) Model {
	m.overlay = m.overlay.SetProps(suggestions.Props{
		Suggestions:           m.suggestions,
		FocusIndex:            m.focus,
		IsLoading:             m.active && len(m.pending) > 0,
		ScrollFocusedIntoView: scroll && m.config.Overlay.ScrollFocusedIntoView,
	})
	return m.placeOverlay()
}

func (m Model) overlayVisible() bool {
	return m.active && m.overlay.Visible()
}
