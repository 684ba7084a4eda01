package suggestions

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/nhath/mentions/internal/ui/icons"
)

// ItemProps is everything a leaf renderer gets for one entry.
type ItemProps struct {
	Key        string
	Index      int
	ID         string
	Descriptor MentionDescriptor
	Query      string
	Entity     Entity
	Focused    bool
	Width      int
	Styles     Styles

	// Select and Hover are bound to Index.
	Select func() tea.Cmd
	Hover  func() tea.Cmd
}

// ItemRenderer draws a single suggestion. The result may span several lines.
type ItemRenderer interface {
	RenderItem(p ItemProps) string
}

// ItemRendererFunc adapts a function to ItemRenderer.
type ItemRendererFunc func(p ItemProps) string

// RenderItem implements ItemRenderer.
func (f ItemRendererFunc) RenderItem(p ItemProps) string { return f(p) }

// DefaultRenderer renders one line per entity with the query highlighted.
var DefaultRenderer ItemRenderer = ItemRendererFunc(renderDefaultItem)

func renderDefaultItem(p ItemProps) string {
	style := p.Styles.Item
	prefix := "  "
	if p.Focused {
		style = p.Styles.ItemFocused
		prefix = icons.IconSelect + " "
	}

	avail := p.Width - ansi.StringWidth(prefix)
	label := p.Entity.Display()
	if avail > 0 && ansi.StringWidth(label) > avail {
		label = ansi.Truncate(label, avail, "…")
	}

	line := prefix + highlightQuery(label, p.Query, p.Styles.Highlight.Inherit(style))
	if detail := p.Entity.Detail(); detail != "" {
		room := avail - ansi.StringWidth(label) - 2
		if room > 1 {
			line += "  " + p.Styles.Detail.Render(ansi.Truncate(detail, room, "…"))
		}
	}

	if p.Width > 0 {
		style = style.Width(p.Width)
	}
	return style.Render(line)
}

// highlightQuery styles the first case-insensitive occurrence of query.
func highlightQuery(label, query string, hl lipgloss.Style) string {
	if query == "" {
		return label
	}
	lower := strings.ToLower(label)
	if len(lower) != len(label) {
		return label
	}
	q := strings.ToLower(query)
	i := strings.Index(lower, q)
	if i < 0 {
		return label
	}
	j := i + len(q)
	return label[:i] + hl.Render(label[i:j]) + label[j:]
}
