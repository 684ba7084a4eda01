// Package suggestions provides the mention suggestions overlay component.
//
// The overlay is a pure reflection of its Props: the host owns the grouped
// suggestions, the focused index and the loading flag. The only state the
// overlay keeps across updates is the scroll offset of its list.
package suggestions

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// NoFocus marks the absence of a focused entry.
const NoFocus = -1

// Props are the host-supplied inputs of the overlay.
type Props struct {
	Suggestions           Suggestions
	FocusIndex            int
	IsLoading             bool
	ScrollFocusedIntoView bool
}

// Model represents the suggestions overlay
type Model struct {
	props   Props
	entries []Entry
	layout  layout

	viewport viewport.Model
	spinner  spinner.Model
	renderer ItemRenderer
	styles   Styles

	onSelect     func(Entity, Descriptor) tea.Cmd
	onMouseEnter func(index int) tea.Cmd

	maxHeight int
	width     int
	x, y      int
	hovered   int
}

// New creates a new suggestions overlay
func New() Model {
	return Model{
		props:     Props{FocusIndex: NoFocus},
		viewport:  viewport.New(0, 0),
		spinner:   spinner.New(spinner.WithSpinner(spinner.MiniDot)),
		renderer:  DefaultRenderer,
		styles:    DefaultStyles(),
		onSelect:  func(Entity, Descriptor) tea.Cmd { return nil },
		maxHeight: 5,
		width:     36,
		hovered:   NoFocus,
	}
}

// SetStyles sets custom styles
func (m Model) SetStyles(s Styles) Model {
	m.styles = s
	m.commit()
	return m
}

// SetRenderer replaces the leaf item renderer.
func (m Model) SetRenderer(r ItemRenderer) Model {
	if r == nil {
		r = DefaultRenderer
	}
	m.renderer = r
	m.commit()
	return m
}

// SetMaxHeight sets the maximum number of visible list lines
func (m Model) SetMaxHeight(n int) Model {
	if n < 1 {
		n = 1
	}
	m.maxHeight = n
	m.commit()
	return m
}

// SetWidth sets the outer width of the overlay.
func (m Model) SetWidth(w int) Model {
	m.width = w
	m.commit()
	return m
}

// SetPosition records the screen cell of the overlay's top-left corner so
// mouse events can be mapped onto items.
func (m Model) SetPosition(x, y int) Model {
	m.x, m.y = x, y
	return m
}

// Position returns the screen cell of the overlay's top-left corner.
func (m Model) Position() (x, y int) {
	return m.x, m.y
}

// OnSelect sets the callback invoked when an entry is committed.
func (m Model) OnSelect(fn func(Entity, Descriptor) tea.Cmd) Model {
	if fn == nil {
		fn = func(Entity, Descriptor) tea.Cmd { return nil }
	}
	m.onSelect = fn
	m.commit()
	return m
}

// OnMouseEnter sets the callback invoked when the pointer enters an item.
// A nil callback makes hovering a no-op.
func (m Model) OnMouseEnter(fn func(index int) tea.Cmd) Model {
	m.onMouseEnter = fn
	m.commit()
	return m
}

// SetProps replaces the host inputs and reconciles the scroll position.
func (m Model) SetProps(p Props) Model {
	m.props = p
	m.commit()
	return m
}

// Props returns the current host inputs.
func (m Model) Props() Props {
	return m.props
}

// Entries returns the flattened suggestions in render order.
func (m Model) Entries() []Entry {
	return m.entries
}

// Len returns number of entries
func (m Model) Len() int {
	return len(m.entries)
}

// Focused returns the entry at the focus index, if any.
func (m Model) Focused() (Entry, bool) {
	i := m.props.FocusIndex
	if i < 0 || i >= len(m.entries) {
		return Entry{}, false
	}
	return m.entries[i], true
}

// Visible reports whether the overlay renders anything.
func (m Model) Visible() bool {
	return Count(m.props.Suggestions) > 0 || m.props.IsLoading
}

// ScrollOffset returns the first visible list line.
func (m Model) ScrollOffset() int {
	return m.viewport.YOffset
}

// Select forwards a choice to the host unchanged.
func (m Model) Select(e Entity, d Descriptor) tea.Cmd {
	return m.onSelect(e, d)
}

// Init starts the loading spinner.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles spinner ticks and mouse input.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

// View renders the suggestions overlay
func (m Model) View() string {
	if !m.Visible() {
		return ""
	}

	var parts []string
	if len(m.entries) > 0 {
		parts = append(parts, m.styles.List.Render(m.viewport.View()))
	}
	if m.props.IsLoading {
		parts = append(parts, m.styles.LoadingIndicator.Render(m.spinner.View()+" Loading..."))
	}
	return m.styles.Container.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// commit re-renders the list content from props and then runs the settled
// step against the realized layout.
func (m *Model) commit() {
	m.entries = Aggregate(m.props.Suggestions)
	m.layout = layout{}

	width := m.itemWidth()
	views := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		props := m.itemProps(e, width)
		view := m.renderer.RenderItem(props)
		m.layout.add(props, lipgloss.Height(view))
		views = append(views, view)
	}

	m.viewport.Width = width
	m.viewport.Height = min(m.layout.lines, m.maxHeight)
	m.viewport.SetContent(strings.Join(views, "\n"))
	m.viewport.SetYOffset(m.viewport.YOffset)

	m.settled(viewportGeometry{vp: &m.viewport, layout: &m.layout, top: m.listTop()})
}

// settled runs after the list content reflects the latest props.
func (m *Model) settled(g Geometry) {
	if !m.props.ScrollFocusedIntoView || len(m.entries) == 0 {
		return
	}
	ScrollIntoView(g, m.props.FocusIndex)
}

func (m Model) itemProps(e Entry, width int) ItemProps {
	var (
		onSelect = m.onSelect
		onEnter  = m.onMouseEnter
		entity   = e.Entity
		desc     = e.Descriptor
		index    = e.Index
	)
	return ItemProps{
		Key:        e.Key,
		Index:      index,
		ID:         entity.ID(),
		Descriptor: desc.Mention,
		Query:      desc.Query,
		Entity:     entity,
		Focused:    index == m.props.FocusIndex,
		Width:      width,
		Styles:     m.styles,
		Select:     func() tea.Cmd { return onSelect(entity, desc) },
		Hover: func() tea.Cmd {
			if onEnter == nil {
				return nil
			}
			return onEnter(index)
		},
	}
}

func (m Model) itemWidth() int {
	w := m.width - m.styles.Container.GetHorizontalFrameSize() - m.styles.List.GetHorizontalFrameSize()
	return max(w, 1)
}

// listTop is the screen row of the first visible list line.
func (m Model) listTop() int {
	c, l := m.styles.Container, m.styles.List
	return m.y + c.GetBorderTopSize() + c.GetPaddingTop() + c.GetMarginTop() +
		l.GetBorderTopSize() + l.GetPaddingTop() + l.GetMarginTop()
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if len(m.entries) == 0 {
		return m, nil
	}

	row := msg.Y - m.listTop()
	if row < 0 || row >= m.viewport.Height || msg.X < m.x || msg.X >= m.x+m.width {
		m.hovered = NoFocus
		return m, nil
	}
	s, ok := m.layout.itemAt(row + m.viewport.YOffset)
	if !ok {
		m.hovered = NoFocus
		return m, nil
	}

	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		return m, s.props.Select()
	case msg.Action == tea.MouseActionMotion:
		if s.props.Index == m.hovered {
			return m, nil
		}
		m.hovered = s.props.Index
		return m, s.props.Hover()
	}
	return m, nil
}
