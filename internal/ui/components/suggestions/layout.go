package suggestions

import "github.com/charmbracelet/bubbles/viewport"

// span is the line range [start, end) an item occupies in the list content.
type span struct {
	start, end int
	props      ItemProps
}

// layout records where each rendered item landed, indexed by flat index.
type layout struct {
	spans []span
	lines int
}

func (l *layout) add(props ItemProps, height int) {
	if height < 1 {
		height = 1
	}
	l.spans = append(l.spans, span{start: l.lines, end: l.lines + height, props: props})
	l.lines += height
}

// itemAt returns the item covering a content line.
func (l layout) itemAt(line int) (span, bool) {
	lo, hi := 0, len(l.spans)
	for lo < hi {
		mid := (lo + hi) / 2
		s := l.spans[mid]
		switch {
		case line < s.start:
			hi = mid
		case line >= s.end:
			lo = mid + 1
		default:
			return s, true
		}
	}
	return span{}, false
}

// viewportGeometry measures items against a viewport whose first visible
// line sits at screen row top.
type viewportGeometry struct {
	vp     *viewport.Model
	layout *layout
	top    int
}

func (g viewportGeometry) ScrollOffset() int { return g.vp.YOffset }

func (g viewportGeometry) SetScrollOffset(offset int) { g.vp.SetYOffset(offset) }

func (g viewportGeometry) VisibleHeight() int { return g.vp.Height }

func (g viewportGeometry) ContentHeight() int { return g.vp.TotalLineCount() }

func (g viewportGeometry) ContainerBounds() Bounds {
	return Bounds{Top: g.top, Bottom: g.top + g.vp.Height}
}

func (g viewportGeometry) ItemBounds(index int) (Bounds, bool) {
	if index < 0 || index >= len(g.layout.spans) {
		return Bounds{}, false
	}
	s := g.layout.spans[index]
	return Bounds{
		Top:    g.top + s.start - g.vp.YOffset,
		Bottom: g.top + s.end - g.vp.YOffset,
	}, true
}
