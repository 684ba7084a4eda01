package suggestions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeGeometry lays out items in content coordinates and reports them the
// way a renderer would: relative to a container whose top edge is at
// containerTop, shifted by the current scroll offset.
type fakeGeometry struct {
	scroll       int
	visible      int
	content      int
	containerTop int
	items        map[int]Bounds
	writes       int
}

func (g *fakeGeometry) ScrollOffset() int { return g.scroll }

func (g *fakeGeometry) SetScrollOffset(offset int) {
	g.scroll = offset
	g.writes++
}

func (g *fakeGeometry) VisibleHeight() int { return g.visible }
func (g *fakeGeometry) ContentHeight() int { return g.content }

func (g *fakeGeometry) ContainerBounds() Bounds {
	return Bounds{Top: g.containerTop, Bottom: g.containerTop + g.visible}
}

func (g *fakeGeometry) ItemBounds(index int) (Bounds, bool) {
	b, ok := g.items[index]
	if !ok {
		return Bounds{}, false
	}
	return Bounds{
		Top:    g.containerTop + b.Top - g.scroll,
		Bottom: g.containerTop + b.Bottom - g.scroll,
	}, true
}

func TestScrollIntoView(t *testing.T) {
	tests := []struct {
		name       string
		geo        fakeGeometry
		focus      int
		wantScroll int
		wantMoved  bool
	}{
		{
			name: "scrolls up to reveal top edge",
			geo: fakeGeometry{
				scroll: 100, visible: 200, content: 1000, containerTop: 30,
				items: map[int]Bounds{2: {Top: 40, Bottom: 60}},
			},
			focus:      2,
			wantScroll: 40,
			wantMoved:  true,
		},
		{
			name: "scrolls down to reveal bottom edge",
			geo: fakeGeometry{
				scroll: 0, visible: 200, content: 1000, containerTop: 12,
				items: map[int]Bounds{5: {Top: 240, Bottom: 260}},
			},
			focus:      5,
			wantScroll: 60,
			wantMoved:  true,
		},
		{
			name: "already visible is left alone",
			geo: fakeGeometry{
				scroll: 60, visible: 200, content: 1000,
				items: map[int]Bounds{4: {Top: 200, Bottom: 240}},
			},
			focus:      4,
			wantScroll: 60,
		},
		{
			name: "content fits",
			geo: fakeGeometry{
				scroll: 0, visible: 200, content: 200,
				items: map[int]Bounds{1: {Top: 180, Bottom: 220}},
			},
			focus:      1,
			wantScroll: 0,
		},
		{
			name: "no item at focus",
			geo: fakeGeometry{
				scroll: 20, visible: 5, content: 30,
				items: map[int]Bounds{0: {Top: 0, Bottom: 1}},
			},
			focus:      999,
			wantScroll: 20,
		},
		{
			name: "degenerate container",
			geo: fakeGeometry{
				scroll: 3, visible: 0, content: 10,
				items: map[int]Bounds{0: {Top: 0, Bottom: 1}},
			},
			focus:      0,
			wantScroll: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := tt.geo
			moved := ScrollIntoView(&g, tt.focus)
			assert.Equal(t, tt.wantMoved, moved)
			assert.Equal(t, tt.wantScroll, g.scroll)
			if !tt.wantMoved {
				assert.Zero(t, g.writes)
			}
		})
	}
}

func TestScrollIntoView_Idempotent(t *testing.T) {
	g := &fakeGeometry{
		visible: 3, content: 10,
		items: map[int]Bounds{},
	}
	for i := 0; i < 10; i++ {
		g.items[i] = Bounds{Top: i, Bottom: i + 1}
	}

	assert.True(t, ScrollIntoView(g, 7))
	assert.Equal(t, 5, g.scroll)

	assert.False(t, ScrollIntoView(g, 7))
	assert.False(t, ScrollIntoView(g, 6))
	assert.Equal(t, 5, g.scroll)
}

func TestLayout_ItemAt(t *testing.T) {
	var l layout
	l.add(ItemProps{Index: 0}, 1)
	l.add(ItemProps{Index: 1}, 3)
	l.add(ItemProps{Index: 2}, 0)

	tests := []struct {
		line int
		want int
		ok   bool
	}{
		{0, 0, true},
		{1, 1, true},
		{3, 1, true},
		{4, 2, true},
		{5, 0, false},
		{-1, 0, false},
	}
	for _, tt := range tests {
		s, ok := l.itemAt(tt.line)
		assert.Equal(t, tt.ok, ok, "line %d", tt.line)
		if ok {
			assert.Equal(t, tt.want, s.props.Index, "line %d", tt.line)
		}
	}
	assert.Equal(t, 5, l.lines)
}
