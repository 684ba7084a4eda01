package suggestions

import "github.com/charmbracelet/lipgloss"

// Styles for the suggestions overlay
type Styles struct {
	Container        lipgloss.Style
	List             lipgloss.Style
	Item             lipgloss.Style
	ItemFocused      lipgloss.Style
	Highlight        lipgloss.Style
	Detail           lipgloss.Style
	LoadingIndicator lipgloss.Style
}

// DefaultStyles returns default styling
func DefaultStyles() Styles {
	return Styles{
		Container: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#6272A4")).
			Padding(0, 1),
		List: lipgloss.NewStyle(),
		Item: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8F8F2")),
		ItemFocused: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#282A36")).
			Background(lipgloss.Color("#8BE9FD")),
		Highlight: lipgloss.NewStyle().
			Bold(true).
			Underline(true),
		Detail: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6272A4")),
		LoadingIndicator: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6272A4")).
			Italic(true),
	}
}

// Overrides holds optional per-part styles. Set properties win over the
// defaults; unset properties fall through.
type Overrides struct {
	Container        *lipgloss.Style
	List             *lipgloss.Style
	Item             *lipgloss.Style
	ItemFocused      *lipgloss.Style
	Highlight        *lipgloss.Style
	Detail           *lipgloss.Style
	LoadingIndicator *lipgloss.Style
}

// Merge returns s with o layered on top.
func (s Styles) Merge(o Overrides) Styles {
	s.Container = merge(s.Container, o.Container)
	s.List = merge(s.List, o.List)
	s.Item = merge(s.Item, o.Item)
	s.ItemFocused = merge(s.ItemFocused, o.ItemFocused)
	s.Highlight = merge(s.Highlight, o.Highlight)
	s.Detail = merge(s.Detail, o.Detail)
	s.LoadingIndicator = merge(s.LoadingIndicator, o.LoadingIndicator)
	return s
}

func merge(base lipgloss.Style, override *lipgloss.Style) lipgloss.Style {
	if override == nil {
		return base
	}
	s := override.Inherit(base)
	// Inherit skips spacing, so carry it over when the override leaves it unset.
	if t, r, b, l := s.GetPadding(); t+r+b+l == 0 {
		s = s.Padding(base.GetPadding())
	}
	if t, r, b, l := s.GetMargin(); t+r+b+l == 0 {
		s = s.Margin(base.GetMargin())
	}
	return s
}
